package cli

import (
	"fmt"
	"os"

	"github.com/lium-tools/liumcomp/internal/config"
)

// Validate validates a liumcomp configuration file against the schema.
// With no path, the config discovered for the current directory is
// validated.
func Validate(configPath string) error {
	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = config.Discover(currentDir)
		if configPath == "" {
			return fmt.Errorf("no config file found (looked for %v)", config.SupportedConfigNames)
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("✓ %s is valid\n", configPath)
		return nil
	}

	fmt.Printf("✗ %s is invalid:\n", configPath)
	for _, validationErr := range result.Errors {
		fmt.Printf("  - %s: %s\n", validationErr.Field, validationErr.Message)
	}
	return fmt.Errorf("config validation failed with %d error(s)", len(result.Errors))
}
