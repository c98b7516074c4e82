package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), token)

	t.Run("tokens are unique", func(t *testing.T) {
		seen := map[string]bool{token: true}
		for i := 0; i < 100; i++ {
			next, err := GenerateShareToken()
			require.NoError(t, err)
			assert.False(t, seen[next], "token repeated")
			seen[next] = true
		}
	})
}
