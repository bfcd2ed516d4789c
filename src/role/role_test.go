package role

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		binary string
		want   string
	}{
		{"mommy", "mommy"},
		{"daddy", "daddy"},
		{"cargo-mommy", "mommy"},
		{"cargo-daddy", "daddy"},
		{"shell-mommy", "mommy"},
		{"something-else", "mommy"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Detect(tc.binary), "binary %q", tc.binary)
	}
}

func TestIsCargoSubcommand(t *testing.T) {
	assert.True(t, IsCargoSubcommand("cargo-mommy"))
	assert.True(t, IsCargoSubcommand("cargo-daddy"))
	assert.False(t, IsCargoSubcommand("mommy"))
	assert.False(t, IsCargoSubcommand("my-cargo-mommy"))
}

func TestTransformCopiesBinary(t *testing.T) {
	newPath, err := Transform("sparkle")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(newPath) })

	info, err := os.Stat(newPath)
	require.NoError(t, err)
	assert.Equal(t, "sparkle", filepath.Base(newPath))
	assert.Greater(t, info.Size(), int64(0))
}
