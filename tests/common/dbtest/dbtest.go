//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE used_codes, check_logs RESTART IDENTITY")
	return err
}

// CountUsedCodes returns the number of ledger rows for a code.
func CountUsedCodes(t *testing.T, pool *pgxpool.Pool, code string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM used_codes WHERE code = $1", code).Scan(&count)
	require.NoError(t, err, "Failed to count used codes")
	return count
}

// CountCheckLogs returns the number of audit rows with the given status.
func CountCheckLogs(t *testing.T, pool *pgxpool.Pool, status string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM check_logs WHERE status = $1", status).Scan(&count)
	require.NoError(t, err, "Failed to count check logs")
	return count
}

// InsertUsedCode seeds a ledger row directly, bypassing the API.
func InsertUsedCode(t *testing.T, pool *pgxpool.Pool, cardType, code, reference string, usedAt time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"INSERT INTO used_codes (card_type, code, used_at, reference) VALUES ($1, $2, $3, $4)",
		cardType, code, usedAt, reference)
	require.NoError(t, err, "Failed to seed used code")
}

// InsertCheckLog seeds an audit row directly, bypassing the API.
func InsertCheckLog(t *testing.T, pool *pgxpool.Pool, clientIP, cardType, masked, status, reference string, checkedAt time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"INSERT INTO check_logs (client_ip, card_type, code_masked, status, checked_at, reference) VALUES ($1, $2, $3, $4, $5, $6)",
		clientIP, cardType, masked, status, checkedAt, reference)
	require.NoError(t, err, "Failed to seed check log")
}
