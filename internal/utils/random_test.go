package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomNumericString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := RandomNumericString(6)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "non-digit %q in code %s", r, code)
		}
		seen[code] = true
	}
	// 50 draws from a million values should essentially never all collide.
	require.Greater(t, len(seen), 1)
}
