//go:build unit

package datauri_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftsafer/internal/pkg/datauri"
)

func TestParseImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	t.Run("decodes a valid png data uri", func(t *testing.T) {
		img, err := datauri.ParseImage("data:image/png;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MIMEType)
		assert.Equal(t, []byte("fake-png-bytes"), img.Data)
		assert.Equal(t, "png", img.Ext())
	})

	t.Run("maps jpeg subtype to jpg extension", func(t *testing.T) {
		img, err := datauri.ParseImage("data:image/jpeg;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "jpg", img.Ext())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []string{
			"",
			"image/png;base64," + payload,
			"data:image/png;base64",
			"data:image/png," + payload,
			"data:text/plain;base64," + payload,
			"data:image/png;base64,@@@not-base64@@@",
			"data:image/png;base64,",
		}
		for _, raw := range cases {
			_, err := datauri.ParseImage(raw)
			assert.ErrorIs(t, err, datauri.ErrInvalidDataURI, "input: %q", raw)
		}
	})
}
