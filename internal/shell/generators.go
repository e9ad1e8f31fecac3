// Package shell generates the shell code that registers liumcomp as
// the completion handler for the lium tool.
package shell

import (
	"fmt"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
)

// CodeGenerator is an interface for shell-specific completion code generation
type CodeGenerator interface {
	// GenerateRegistration generates the code registering the
	// completion handler for the given tool
	GenerateRegistration(tool string) string
	// Name returns the shell name (bash, zsh)
	Name() string
}

// BashCodeGenerator generates bash-specific registration code
type BashCodeGenerator struct{}

// Name returns the shell name for bash
func (b *BashCodeGenerator) Name() string {
	return shellBash
}

// GenerateRegistration generates the bash completion registration
func (b *BashCodeGenerator) GenerateRegistration(tool string) string {
	return fmt.Sprintf(bashTemplate, tool)
}

// ZshCodeGenerator generates zsh registration code. Zsh runs the same
// bash-protocol function through bashcompinit, the way the original
// tool installed its completions for both shells.
type ZshCodeGenerator struct{}

// Name returns the shell name for zsh
func (z *ZshCodeGenerator) Name() string {
	return shellZsh
}

// GenerateRegistration generates the zsh completion registration
func (z *ZshCodeGenerator) GenerateRegistration(tool string) string {
	return fmt.Sprintf(zshTemplate, tool)
}

// NewCompletionGenerator creates the generator for the given shell.
// Unknown shells fall back to bash, the protocol both supported shells
// ultimately speak.
func NewCompletionGenerator(shell string) CodeGenerator {
	switch shell {
	case shellZsh:
		return &ZshCodeGenerator{}
	default:
		return &BashCodeGenerator{}
	}
}
