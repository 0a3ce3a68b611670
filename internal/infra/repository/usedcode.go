package repository

import (
	"context"
	"time"

	"giftsafer/internal/domain/card"
	"giftsafer/internal/infra"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	"giftsafer/internal/pkg/pgconv"
)

type UsedCodeWriteQueries interface {
	UsedCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	TryInsertUsedCode(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertUsedCodeParams) (int64, error)
}

type UsedCodeRepository struct {
	queries UsedCodeWriteQueries
	db      sqlc.DBTX
}

func NewUsedCodeRepository(queries UsedCodeWriteQueries, db sqlc.DBTX) *UsedCodeRepository {
	return &UsedCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UsedCodeRepository) IsUsed(ctx context.Context, code card.Code) (bool, error) {
	exists, err := r.queries.UsedCodeExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up used code", err)
	}
	return exists, nil
}

// MarkUsed claims the code with an insert that backs off on conflict.
// The UNIQUE constraint on code is the consumption guarantee: of any
// number of concurrent claims for the same code, exactly one reports
// inserted=true.
func (r *UsedCodeRepository) MarkUsed(ctx context.Context, cardType card.Type, code card.Code, reference string, usedAt time.Time) (bool, error) {
	rows, err := r.queries.TryInsertUsedCode(ctx, r.db, sqlc.TryInsertUsedCodeParams{
		CardType:  cardType.String(),
		Code:      code.String(),
		UsedAt:    pgconv.TimeToPgtype(usedAt),
		Reference: reference,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark code used", err)
	}
	return rows > 0, nil
}
