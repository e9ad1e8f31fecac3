package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installFakeLium puts an executable lium stand-in on PATH and chdirs
// into a clean directory with no config.
func installFakeLium(t *testing.T, script string) {
	t.Helper()

	binDir := t.TempDir()
	path := filepath.Join(binDir, "lium")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	workDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(workDir, "xdg"))
	t.Chdir(workDir)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

const fakeLium = `
case "$*" in
  "dut --help")
    printf 'Commands:\n  list list DUTs\n  do run actions\n' ;;
  "dut list --ids")
    printf 'dut-eve-001\n' ;;
  *)
    exit 1 ;;
esac
`

func TestComplete_Subcommands(t *testing.T) {
	installFakeLium(t, fakeLium)

	out := captureStdout(t, func() {
		err := Complete(CompleteParams{
			Words: []string{"lium", "dut", "li"},
			CWord: 2,
		})
		assert.NoError(t, err)
	})

	assert.Equal(t, "list\n", out)
}

func TestComplete_DutOption(t *testing.T) {
	installFakeLium(t, fakeLium)

	out := captureStdout(t, func() {
		err := Complete(CompleteParams{
			Words: []string{"lium", "dut", "shell", "--dut", ""},
			CWord: 4,
		})
		assert.NoError(t, err)
	})

	assert.Equal(t, "dut-eve-001\n", out)
}

func TestComplete_DirOption(t *testing.T) {
	installFakeLium(t, fakeLium)

	require.NoError(t, os.Mkdir("cros", 0755))
	require.NoError(t, os.Mkdir("tools", 0755))

	out := captureStdout(t, func() {
		err := Complete(CompleteParams{
			Words: []string{"lium", "dut", "--repo", ""},
			CWord: 3,
		})
		assert.NoError(t, err)
	})

	// Sorted directory entries of the working directory
	assert.Equal(t, "cros/\ntools/\n", out)
}

func TestComplete_HelpRequested(t *testing.T) {
	installFakeLium(t, fakeLium)

	out := captureStdout(t, func() {
		err := Complete(CompleteParams{
			Words: []string{"lium", "--help", ""},
			CWord: 2,
		})
		assert.NoError(t, err)
	})

	assert.Empty(t, out)
}

func TestComplete_FailedLookupDegradesSilently(t *testing.T) {
	installFakeLium(t, "exit 1\n")

	out := captureStdout(t, func() {
		err := Complete(CompleteParams{
			Words: []string{"lium", "bogus", ""},
			CWord: 2,
		})
		assert.NoError(t, err)
	})

	assert.Empty(t, out)
}

func TestComplete_EmptyWords(t *testing.T) {
	assert.NoError(t, Complete(CompleteParams{}))
}
