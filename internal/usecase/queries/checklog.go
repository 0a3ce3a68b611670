package queries

import (
	"context"
	"time"

	"giftsafer/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrInvalidStatus = errs.New("invalid status filter")
)

var validStatusFilters = map[string]struct{}{
	"rate_limited": {},
	"invalid":      {},
	"used":         {},
	"valid":        {},
}

type CheckLogView struct {
	ID         int64     `json:"id"`
	ClientIP   string    `json:"client_ip"`
	CardType   string    `json:"card_type"`
	CodeMasked string    `json:"code_masked"`
	Status     string    `json:"status"`
	CheckedAt  time.Time `json:"checked_at"`
	Reference  string    `json:"reference"`
}

type CheckLogFilters struct {
	Status *string
}

type CheckLogReadStore interface {
	FindFirstPage(ctx context.Context, status *string, limit int32) ([]*CheckLogView, error)
	FindKeyset(ctx context.Context, status *string, lastCheckedAt time.Time, lastID int64, limit int32) ([]*CheckLogView, error)
	Count(ctx context.Context, status *string) (int64, error)
}

type CheckLogQueries interface {
	List(ctx context.Context, filters CheckLogFilters, cursor *Cursor, limit int) ([]*CheckLogView, *Cursor, error)
	Count(ctx context.Context, filters CheckLogFilters) (int64, error)
}

type checkLogQueriesImpl struct {
	repo CheckLogReadStore
}

func NewCheckLogQueries(repo CheckLogReadStore) CheckLogQueries {
	return &checkLogQueriesImpl{repo: repo}
}

func (q *checkLogQueriesImpl) List(ctx context.Context, filters CheckLogFilters, cursor *Cursor, limit int) ([]*CheckLogView, *Cursor, error) {
	if err := validateStatusFilter(filters.Status); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*CheckLogView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, filters.Status, int32(limit+1))
	} else {
		lastCheckedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, filters.Status, lastCheckedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CheckedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *checkLogQueriesImpl) Count(ctx context.Context, filters CheckLogFilters) (int64, error) {
	if err := validateStatusFilter(filters.Status); err != nil {
		return 0, err
	}
	return q.repo.Count(ctx, filters.Status)
}

func validateStatusFilter(status *string) error {
	if status == nil {
		return nil
	}
	if _, ok := validStatusFilters[*status]; !ok {
		return ErrInvalidStatus
	}
	return nil
}
