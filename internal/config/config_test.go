package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "lium", cfg.Tool)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Equal(t, []string{"--repo", "--dir", "--dest"}, cfg.Flags.Dir)
	assert.Equal(t, []string{"--version", "--board", "--workon", "--packages"}, cfg.Flags.Todo)
	assert.Equal(t, "--dut", cfg.Flags.Dut)
	assert.Equal(t, "--serial", cfg.Flags.Serial)
}

func TestLoadBytes_YAML(t *testing.T) {
	data := []byte(`
tool: cro3
timeout_ms: 500
flags:
  dut: "--device"
`)

	cfg, err := New().LoadBytes(data, ".yml")
	require.NoError(t, err)

	assert.Equal(t, "cro3", cfg.Tool)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout())
	assert.Equal(t, "--device", cfg.Flags.Dut)
	// Unset keys keep the defaults
	assert.Equal(t, "--serial", cfg.Flags.Serial)
	assert.Equal(t, []string{"--repo", "--dir", "--dest"}, cfg.Flags.Dir)
}

func TestLoadBytes_TOML(t *testing.T) {
	data := []byte(`
tool = "cro3"

[flags]
dir = ["--workdir"]
`)

	cfg, err := New().LoadBytes(data, ".toml")
	require.NoError(t, err)

	assert.Equal(t, "cro3", cfg.Tool)
	assert.Equal(t, []string{"--workdir"}, cfg.Flags.Dir)
}

func TestLoadBytes_JSON(t *testing.T) {
	data := []byte(`{"log_level": "debug"}`)

	cfg, err := New().LoadBytes(data, ".json")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "lium", cfg.Tool)
}

func TestLoadBytes_UnsupportedFormat(t *testing.T) {
	_, err := New().LoadBytes([]byte("tool: x"), ".ini")
	assert.Error(t, err)
}

func TestLoadBytes_Malformed(t *testing.T) {
	_, err := New().LoadBytes([]byte("{not yaml: ["), ".yml")
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".liumcomp.yml")
	require.NoError(t, os.WriteFile(path, []byte("tool: cro3\n"), 0644))

	cfg, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cro3", cfg.Tool)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	t.Run("nothing found", func(t *testing.T) {
		assert.Equal(t, "", Discover(dir))
	})

	t.Run("global config", func(t *testing.T) {
		global := GlobalConfigPath()
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
		require.NoError(t, os.WriteFile(global, []byte("tool: global\n"), 0644))

		assert.Equal(t, global, Discover(dir))
	})

	t.Run("local config wins over global", func(t *testing.T) {
		local := filepath.Join(dir, ".liumcomp.yaml")
		require.NoError(t, os.WriteFile(local, []byte("tool: local\n"), 0644))

		assert.Equal(t, local, Discover(dir))
	})

	t.Run("first supported name wins", func(t *testing.T) {
		preferred := filepath.Join(dir, ".liumcomp.yml")
		require.NoError(t, os.WriteFile(preferred, []byte("tool: preferred\n"), 0644))

		assert.Equal(t, preferred, Discover(dir))
	})
}

func TestResolve(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

		cfg, path := Resolve(dir)
		assert.Equal(t, "", path)
		assert.Equal(t, "lium", cfg.Tool)
	})

	t.Run("defaults on unparsable file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".liumcomp.yml"), []byte("{broken: ["), 0644))

		cfg, path := Resolve(dir)
		assert.Equal(t, "", path)
		assert.Equal(t, "lium", cfg.Tool)
	})

	t.Run("loads discovered file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".liumcomp.yml"), []byte("tool: cro3\n"), 0644))

		cfg, path := Resolve(dir)
		assert.Equal(t, filepath.Join(dir, ".liumcomp.yml"), path)
		assert.Equal(t, "cro3", cfg.Tool)
	})
}
