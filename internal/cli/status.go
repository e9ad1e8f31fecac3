package cli

import (
	"fmt"
	"os"

	"github.com/lium-tools/liumcomp/internal/config"
	"github.com/lium-tools/liumcomp/internal/status"
)

// Status shows the current liumcomp configuration and hook state.
func Status() error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, configPath := config.Resolve(currentDir)
	data := status.Collect(cfg, configPath)

	fmt.Println(status.Render(data))
	return nil
}
