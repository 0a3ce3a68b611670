//go:build unit

package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftsafer/internal/usecase/queries"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 123456000, time.UTC)
	encoded := queries.EncodeAfterCursor(at, 42)

	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.True(t, at.Equal(gotTime))
	assert.Equal(t, int64(42), gotID)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"not-base64!!",
		"djE6YWJjLWRlZg==", // v1:abc-def
		"djI6MTIzLTQ1Ng==", // v2:123-456
	}
	for _, cursor := range cases {
		_, _, err := queries.DecodeAfterCursor(cursor)
		assert.Error(t, err, "cursor: %q", cursor)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
