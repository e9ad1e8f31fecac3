package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	content := []byte(`
tool: lium
timeout_ms: 2000
log_level: debug
flags:
  dir: ["--repo"]
  dut: "--dut"
`)

	result, err := ValidateWithSchema(".liumcomp.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_InvalidYAMLSyntax(t *testing.T) {
	result, err := ValidateWithSchema(".liumcomp.yml", []byte("{broken: ["))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_UnknownKey(t *testing.T) {
	result, err := ValidateWithSchema(".liumcomp.yml", []byte("shell: bash\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_BadValues(t *testing.T) {
	t.Run("log level outside enum", func(t *testing.T) {
		result, err := ValidateWithSchema(".liumcomp.yml", []byte("log_level: loud\n"))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("flag without dash", func(t *testing.T) {
		result, err := ValidateWithSchema(".liumcomp.yml", []byte("flags:\n  dut: dut\n"))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("non-integer timeout", func(t *testing.T) {
		result, err := ValidateWithSchema(".liumcomp.json", []byte(`{"timeout_ms": "fast"}`))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestValidateWithSchema_TOML(t *testing.T) {
	result, err := ValidateWithSchema(".liumcomp.toml", []byte("tool = \"lium\"\n"))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("tool=lium"))
	assert.Error(t, err)
}
