// Package setup installs the shell hook that routes lium completion
// requests through liumcomp. The rendered registration script lives
// under the XDG data dir; the shell rc file only carries a small
// marker-delimited block sourcing it.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lium-tools/liumcomp/internal/shell"
)

const (
	// HookMarkerStart is the starting marker for the liumcomp block in rc files
	HookMarkerStart = "# liumcomp completion - START"
	// HookMarkerEnd is the ending marker for the liumcomp block in rc files
	HookMarkerEnd = "# liumcomp completion - END"
)

// Result represents the result of a setup operation
type Result struct {
	RCFile     string
	ScriptPath string
	Updated    bool
	Message    string
}

// dataDir returns the directory holding rendered completion scripts.
func dataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "liumcomp"), nil
}

// ScriptPath returns the path of the rendered registration script for
// the given shell.
func ScriptPath(shellName string) (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lium."+shellName), nil
}

// RCFilePath returns the rc file that sources the registration script.
// Bash completions load from ~/.bash_completion, the file the original
// tool used for both shells; zsh gets its own block in ~/.zshrc.
func RCFilePath(shellName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch shellName {
	case "bash":
		return filepath.Join(home, ".bash_completion"), nil
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash or zsh)", shellName)
	}
}

// InstallHook renders the registration script for tool and wires it
// into the shell's rc file. Installing twice is a no-op.
func InstallHook(shellName, tool string) (*Result, error) {
	rcFile, err := RCFilePath(shellName)
	if err != nil {
		return nil, err
	}

	scriptPath, err := ScriptPath(shellName)
	if err != nil {
		return nil, err
	}

	generator := shell.NewCompletionGenerator(shellName)
	script := generator.GenerateRegistration(tool)

	if err := os.MkdirAll(filepath.Dir(scriptPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return nil, fmt.Errorf("failed to write completion script: %w", err)
	}

	block := fmt.Sprintf("%s\nsource %s\n%s", HookMarkerStart, scriptPath, HookMarkerEnd)
	updated, err := upsertMarkerBlock(rcFile, block)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Completion for %s already installed in %s", tool, rcFile)
	if updated {
		message = fmt.Sprintf("Installed completion for %s: %s sourced from %s", tool, scriptPath, rcFile)
	}

	return &Result{
		RCFile:     rcFile,
		ScriptPath: scriptPath,
		Updated:    updated,
		Message:    message,
	}, nil
}

// UninstallHook removes the marker block and the rendered script.
func UninstallHook(shellName string) (*Result, error) {
	rcFile, err := RCFilePath(shellName)
	if err != nil {
		return nil, err
	}

	scriptPath, err := ScriptPath(shellName)
	if err != nil {
		return nil, err
	}

	updated, err := removeMarkerBlock(rcFile)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(scriptPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove completion script: %w", err)
	}

	message := fmt.Sprintf("No liumcomp hook found in %s", rcFile)
	if updated {
		message = fmt.Sprintf("Removed liumcomp hook from %s", rcFile)
	}

	return &Result{
		RCFile:     rcFile,
		ScriptPath: scriptPath,
		Updated:    updated,
		Message:    message,
	}, nil
}

// upsertMarkerBlock ensures the rc file contains exactly the given
// marker block, replacing a stale one if present. Returns whether the
// file changed.
func upsertMarkerBlock(rcFile, block string) (bool, error) {
	content := ""
	if data, err := os.ReadFile(rcFile); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", rcFile, err)
	}

	existing, rest := extractMarkerBlock(content)
	if existing == block {
		return false, nil
	}

	updated := rest
	if updated != "" && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += block + "\n"

	if err := os.WriteFile(rcFile, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", rcFile, err)
	}
	return true, nil
}

// removeMarkerBlock deletes the marker block from the rc file if
// present. Returns whether the file changed.
func removeMarkerBlock(rcFile string) (bool, error) {
	data, err := os.ReadFile(rcFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", rcFile, err)
	}

	existing, rest := extractMarkerBlock(string(data))
	if existing == "" {
		return false, nil
	}

	if err := os.WriteFile(rcFile, []byte(rest), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", rcFile, err)
	}
	return true, nil
}

// extractMarkerBlock splits rc file content into the marker block (if
// any) and the remaining content.
func extractMarkerBlock(content string) (block, rest string) {
	start := strings.Index(content, HookMarkerStart)
	if start == -1 {
		return "", content
	}

	end := strings.Index(content[start:], HookMarkerEnd)
	if end == -1 {
		// Orphaned start marker, drop through to end of file
		return strings.TrimSuffix(content[start:], "\n"), content[:start]
	}
	end = start + end + len(HookMarkerEnd)

	block = content[start:end]
	rest = content[:start] + strings.TrimPrefix(content[end:], "\n")
	return block, rest
}
