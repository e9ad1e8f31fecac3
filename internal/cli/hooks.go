package cli

import (
	"os"
	"strings"

	"github.com/lium-tools/liumcomp/internal/shell"
)

const (
	// ShellBash represents bash shell
	ShellBash = "bash"
	// ShellZsh represents zsh shell
	ShellZsh = "zsh"
)

// DetectShell determines the shell type based on the flag or environment.
func DetectShell(shellFlag string) string {
	if shellFlag != "auto" {
		return shellFlag
	}

	shellEnv := os.Getenv("SHELL")
	if strings.Contains(shellEnv, "zsh") {
		return ShellZsh
	}
	if strings.Contains(shellEnv, "bash") {
		return ShellBash
	}

	// Default to bash
	return ShellBash
}

// GenerateHookCode generates the completion registration code for the
// specified shell and tool.
func GenerateHookCode(shellName, tool string) string {
	generator := shell.NewCompletionGenerator(shellName)
	return generator.GenerateRegistration(tool)
}
