package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid config", func(t *testing.T) {
		path := filepath.Join(dir, ".liumcomp.yml")
		require.NoError(t, os.WriteFile(path, []byte("tool: lium\n"), 0644))

		out := captureStdout(t, func() {
			assert.NoError(t, Validate(path))
		})
		assert.Contains(t, out, "is valid")
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(dir, "bad.liumcomp.yml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0644))

		out := captureStdout(t, func() {
			assert.Error(t, Validate(path))
		})
		assert.Contains(t, out, "is invalid")
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, Validate(filepath.Join(dir, "nope.yml")))
	})

	t.Run("no config discovered", func(t *testing.T) {
		empty := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(empty, "xdg"))
		t.Chdir(empty)

		assert.Error(t, Validate(""))
	})

	t.Run("discovers local config", func(t *testing.T) {
		work := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(work, "xdg"))
		require.NoError(t, os.WriteFile(filepath.Join(work, ".liumcomp.yml"), []byte("tool: lium\n"), 0644))
		t.Chdir(work)

		out := captureStdout(t, func() {
			assert.NoError(t, Validate(""))
		})
		assert.Contains(t, out, "is valid")
	})
}

func TestInit(t *testing.T) {
	t.Run("creates local sample", func(t *testing.T) {
		work := t.TempDir()
		t.Chdir(work)

		out := captureStdout(t, func() {
			assert.NoError(t, Init(false))
		})
		assert.Contains(t, out, ".liumcomp.yml")

		data, err := os.ReadFile(filepath.Join(work, ".liumcomp.yml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "liumcomp configuration")

		// A second init must refuse to overwrite
		assert.Error(t, Init(false))
	})

	t.Run("creates global sample", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

		captureStdout(t, func() {
			assert.NoError(t, Init(true))
		})

		_, err := os.Stat(filepath.Join(home, ".config", "liumcomp", "config.yml"))
		assert.NoError(t, err)
	})
}
