package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"giftsafer/internal/infra"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	"giftsafer/internal/pkg/pgconv"
	"giftsafer/internal/usecase/queries"
)

type CheckLogReadQueries interface {
	GetCheckLogsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCheckLogsFirstPageParams) ([]sqlc.CheckLogs, error)
	GetCheckLogsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCheckLogsKeysetParams) ([]sqlc.CheckLogs, error)
	CountCheckLogs(ctx context.Context, db sqlc.DBTX, status pgtype.Text) (int64, error)
}

type CheckLogReadStore struct {
	queries CheckLogReadQueries
	db      sqlc.DBTX
}

func NewCheckLogReadStore(queries CheckLogReadQueries, db sqlc.DBTX) *CheckLogReadStore {
	return &CheckLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CheckLogReadStore) FindFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.CheckLogView, error) {
	rows, err := s.queries.GetCheckLogsFirstPage(ctx, s.db, sqlc.GetCheckLogsFirstPageParams{
		Status:      pgconv.StringPtrToPgtype(status),
		ResultLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list check logs", err)
	}
	return toCheckLogViews(rows), nil
}

func (s *CheckLogReadStore) FindKeyset(ctx context.Context, status *string, lastCheckedAt time.Time, lastID int64, limit int32) ([]*queries.CheckLogView, error) {
	rows, err := s.queries.GetCheckLogsKeyset(ctx, s.db, sqlc.GetCheckLogsKeysetParams{
		Status:      pgconv.StringPtrToPgtype(status),
		CheckedAt:   pgconv.TimeToPgtype(lastCheckedAt),
		ID:          lastID,
		ResultLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list check logs after cursor", err)
	}
	return toCheckLogViews(rows), nil
}

func (s *CheckLogReadStore) Count(ctx context.Context, status *string) (int64, error) {
	count, err := s.queries.CountCheckLogs(ctx, s.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count check logs", err)
	}
	return count, nil
}

func toCheckLogViews(rows []sqlc.CheckLogs) []*queries.CheckLogView {
	views := make([]*queries.CheckLogView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CheckLogView{
			ID:         row.ID,
			ClientIP:   row.ClientIp,
			CardType:   row.CardType,
			CodeMasked: row.CodeMasked,
			Status:     row.Status,
			CheckedAt:  pgconv.TimeFromPgtype(row.CheckedAt),
			Reference:  row.Reference,
		})
	}
	return views
}
