//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"giftsafer/internal/domain/card"
	"giftsafer/internal/infra"
	"giftsafer/internal/infra/repository"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	repositorymock "giftsafer/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUsedCodeRepository_IsUsed(t *testing.T) {
	ctx := context.Background()
	code := card.NewCode("DEMO-1234-5678-9010")

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockUsedCodeWriteQueries, sqlc.DBTX)
		expected      bool
		expectedError bool
	}{
		{
			name: "success: code already in ledger",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UsedCodeExists(ctx, db, code.String()).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "success: code not in ledger",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UsedCodeExists(ctx, db, code.String()).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UsedCodeExists(ctx, db, code.String()).Return(false, errors.New("database connection error"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUsedCodeWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUsedCodeRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			used, err := repo.IsUsed(ctx, code)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, used)
			}
		})
	}
}

func TestUsedCodeRepository_MarkUsed(t *testing.T) {
	ctx := context.Background()
	code := card.NewCode("DEMO-1234-5678-9010")
	usedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockUsedCodeWriteQueries, sqlc.DBTX)
		expectedOk    bool
		expectedError bool
	}{
		{
			name: "success: code claimed",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().TryInsertUsedCode(ctx, db, gomock.Any()).Return(int64(1), nil)
			},
			expectedOk: true,
		},
		{
			name: "success: conflict backs off without error",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().TryInsertUsedCode(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectedOk: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockUsedCodeWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().TryInsertUsedCode(ctx, db, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUsedCodeWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUsedCodeRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			inserted, err := repo.MarkUsed(ctx, card.TypeDemoCard, code, "AB12CD34EF", usedAt)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, inserted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedOk, inserted)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
