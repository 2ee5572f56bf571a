package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfgPath := filepath.Join(tmpDir, "a", ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0644))

	t.Run("found in ancestor", func(t *testing.T) {
		got, err := FindConfig(nested)
		require.NoError(t, err)
		assert.Equal(t, cfgPath, got)
	})

	t.Run("found in start dir", func(t *testing.T) {
		got, err := FindConfig(filepath.Join(tmpDir, "a"))
		require.NoError(t, err)
		assert.Equal(t, cfgPath, got)
	})

	t.Run("directory with the same name is ignored", func(t *testing.T) {
		other := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(other, ConfigFileName), 0755))

		got, err := FindConfig(other)
		if err == nil {
			// An ancestor of the temp dir may legitimately carry a config.
			assert.NotEqual(t, filepath.Join(other, ConfigFileName), got)
		} else {
			assert.ErrorIs(t, err, ErrNoConfig)
		}
	})
}
