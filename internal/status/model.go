// Package status collects and renders the current liumcomp state: the
// configuration in effect, whether the lium binary resolves, and which
// shell hooks are installed.
package status

import (
	"os"
	"strings"

	"github.com/lium-tools/liumcomp/internal/config"
	"github.com/lium-tools/liumcomp/internal/liumcli"
	"github.com/lium-tools/liumcomp/internal/setup"
	"github.com/lium-tools/liumcomp/pkg/version"
)

// HookStatus describes one shell's hook installation state
type HookStatus struct {
	Shell     string
	RCFile    string
	Installed bool
}

// Data holds everything the status view renders
type Data struct {
	Version    string
	CurrentDir string
	ConfigPath string
	Tool       string
	ToolPath   string
	ToolErr    error
	TimeoutMs  int
	LogLevel   string
	Flags      config.FlagSets
	Hooks      []HookStatus
}

// Collect gathers status data for the given configuration.
func Collect(cfg *config.Config, configPath string) *Data {
	currentDir, _ := os.Getwd()

	data := &Data{
		Version:    version.Version,
		CurrentDir: currentDir,
		ConfigPath: configPath,
		Tool:       cfg.Tool,
		TimeoutMs:  cfg.TimeoutMs,
		LogLevel:   cfg.LogLevel,
		Flags:      cfg.Flags,
	}

	client := liumcli.New(cfg.Tool, cfg.Timeout())
	data.ToolPath, data.ToolErr = client.LookPath()

	for _, shellName := range []string{"bash", "zsh"} {
		data.Hooks = append(data.Hooks, collectHook(shellName))
	}

	return data
}

// collectHook checks whether the marker block for a shell is present
// in its rc file.
func collectHook(shellName string) HookStatus {
	hook := HookStatus{Shell: shellName}

	rcFile, err := setup.RCFilePath(shellName)
	if err != nil {
		return hook
	}
	hook.RCFile = rcFile

	data, err := os.ReadFile(rcFile)
	if err != nil {
		return hook
	}
	hook.Installed = strings.Contains(string(data), setup.HookMarkerStart)

	return hook
}
