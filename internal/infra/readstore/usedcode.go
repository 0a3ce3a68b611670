package readstore

import (
	"context"
	"time"

	"giftsafer/internal/infra"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	"giftsafer/internal/pkg/pgconv"
	"giftsafer/internal/usecase/queries"
)

type UsedCodeReadQueries interface {
	GetUsedCodesFirstPage(ctx context.Context, db sqlc.DBTX, resultLimit int32) ([]sqlc.UsedCodes, error)
	GetUsedCodesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUsedCodesKeysetParams) ([]sqlc.UsedCodes, error)
	CountUsedCodes(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type UsedCodeReadStore struct {
	queries UsedCodeReadQueries
	db      sqlc.DBTX
}

func NewUsedCodeReadStore(queries UsedCodeReadQueries, db sqlc.DBTX) *UsedCodeReadStore {
	return &UsedCodeReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *UsedCodeReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.UsedCodeView, error) {
	rows, err := s.queries.GetUsedCodesFirstPage(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list used codes", err)
	}
	return toUsedCodeViews(rows), nil
}

func (s *UsedCodeReadStore) FindKeyset(ctx context.Context, lastUsedAt time.Time, lastID int64, limit int32) ([]*queries.UsedCodeView, error) {
	rows, err := s.queries.GetUsedCodesKeyset(ctx, s.db, sqlc.GetUsedCodesKeysetParams{
		UsedAt:      pgconv.TimeToPgtype(lastUsedAt),
		ID:          lastID,
		ResultLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list used codes after cursor", err)
	}
	return toUsedCodeViews(rows), nil
}

func (s *UsedCodeReadStore) Count(ctx context.Context) (int64, error) {
	count, err := s.queries.CountUsedCodes(ctx, s.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count used codes", err)
	}
	return count, nil
}

func toUsedCodeViews(rows []sqlc.UsedCodes) []*queries.UsedCodeView {
	views := make([]*queries.UsedCodeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.UsedCodeView{
			ID:        row.ID,
			CardType:  row.CardType,
			Code:      row.Code,
			UsedAt:    pgconv.TimeFromPgtype(row.UsedAt),
			Reference: row.Reference,
		})
	}
	return views
}
