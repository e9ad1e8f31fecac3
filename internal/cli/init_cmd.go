package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lium-tools/liumcomp/internal/config"
)

const sampleConfig = `# liumcomp configuration
# Every key is optional; absent keys use the built-in lium defaults.

# Name of the underlying CLI binary
#tool: lium

# Timeout for each subprocess invocation, in milliseconds
#timeout_ms: 3000

# Log verbosity on stderr: debug, info, warn, error
#log_level: warn

# Option classification sets driving completion dispatch
#flags:
#  dir: ["--repo", "--dir", "--dest"]
#  todo: ["--version", "--board", "--workon", "--packages"]
#  dut: "--dut"
#  serial: "--serial"
`

// Init writes a commented sample configuration file: locally in the
// current directory, or globally under $XDG_CONFIG_HOME.
func Init(global bool) error {
	var path string

	if global {
		path = config.GlobalConfigPath()
		if path == "" {
			return fmt.Errorf("failed to determine global config path")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	} else {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(currentDir, config.SupportedConfigNames[0])
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
