package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBashCodeGenerator(t *testing.T) {
	gen := &BashCodeGenerator{}
	assert.Equal(t, "bash", gen.Name())

	script := gen.GenerateRegistration("lium")

	assert.Contains(t, script, "complete -o nospace -F _liumcomp_lium lium")
	assert.Contains(t, script, "LIUMCOMP_COMP_CWORD=$COMP_CWORD")
	assert.Contains(t, script, "liumcomp complete --")
	assert.Contains(t, script, `"${COMP_WORDS[@]}"`)
	// Completion noise must never reach the user
	assert.Contains(t, script, "2>/dev/null")
}

func TestZshCodeGenerator(t *testing.T) {
	gen := &ZshCodeGenerator{}
	assert.Equal(t, "zsh", gen.Name())

	script := gen.GenerateRegistration("lium")

	assert.Contains(t, script, "bashcompinit")
	assert.Contains(t, script, "complete -o nospace -F _liumcomp_lium lium")
}

func TestGenerateRegistration_ToolSubstitution(t *testing.T) {
	script := (&BashCodeGenerator{}).GenerateRegistration("cro3")

	assert.Contains(t, script, "complete -o nospace -F _liumcomp_cro3 cro3")
	assert.False(t, strings.Contains(script, "%s"), "unexpanded template verb")
}

func TestNewCompletionGenerator(t *testing.T) {
	assert.Equal(t, "bash", NewCompletionGenerator("bash").Name())
	assert.Equal(t, "zsh", NewCompletionGenerator("zsh").Name())
	// Unknown shells fall back to the bash protocol
	assert.Equal(t, "bash", NewCompletionGenerator("fish").Name())
}
