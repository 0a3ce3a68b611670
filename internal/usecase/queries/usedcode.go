package queries

import (
	"context"
	"time"
)

type UsedCodeView struct {
	ID        int64     `json:"id"`
	CardType  string    `json:"card_type"`
	Code      string    `json:"code"`
	UsedAt    time.Time `json:"used_at"`
	Reference string    `json:"reference"`
}

type UsedCodeReadStore interface {
	FindFirstPage(ctx context.Context, limit int32) ([]*UsedCodeView, error)
	FindKeyset(ctx context.Context, lastUsedAt time.Time, lastID int64, limit int32) ([]*UsedCodeView, error)
	Count(ctx context.Context) (int64, error)
}

type UsedCodeQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*UsedCodeView, *Cursor, error)
	Count(ctx context.Context) (int64, error)
}

type usedCodeQueriesImpl struct {
	repo UsedCodeReadStore
}

func NewUsedCodeQueries(repo UsedCodeReadStore) UsedCodeQueries {
	return &usedCodeQueriesImpl{repo: repo}
}

func (q *usedCodeQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*UsedCodeView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*UsedCodeView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, int32(limit+1))
	} else {
		lastUsedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, lastUsedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.UsedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *usedCodeQueriesImpl) Count(ctx context.Context) (int64, error) {
	return q.repo.Count(ctx)
}
