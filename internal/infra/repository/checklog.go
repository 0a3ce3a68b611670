package repository

import (
	"context"

	"giftsafer/internal/infra"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	"giftsafer/internal/pkg/pgconv"
	"giftsafer/internal/usecase/commands"
)

type CheckLogWriteQueries interface {
	CreateCheckLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCheckLogParams) error
}

type CheckLogRepository struct {
	queries CheckLogWriteQueries
	db      sqlc.DBTX
}

func NewCheckLogRepository(queries CheckLogWriteQueries, db sqlc.DBTX) *CheckLogRepository {
	return &CheckLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CheckLogRepository) Append(ctx context.Context, entry commands.CheckLogEntry) error {
	err := r.queries.CreateCheckLog(ctx, r.db, sqlc.CreateCheckLogParams{
		ClientIp:   entry.ClientIP,
		CardType:   entry.CardType,
		CodeMasked: entry.CodeMasked,
		Status:     entry.Status.String(),
		CheckedAt:  pgconv.TimeToPgtype(entry.CheckedAt),
		Reference:  entry.Reference,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append check log", err)
	}
	return nil
}
