package cli

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/lium-tools/liumcomp/internal/logger"
)

// EnvCheckParams contains parameters for the EnvCheck command
type EnvCheckParams struct {
	LogLevel string
	Tool     string
}

// EnvCheck verifies the machine is set up for ChromeOS DUT work: the
// target tool, depot_tools (repo), gsutil and gcloud must be on PATH,
// and gcloud should have an authenticated account. Each check reports
// and moves on; a broken environment is never fatal.
func EnvCheck(params EnvCheckParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	log.Info().Msg("Checking the environment...")

	checkBinary(log, params.Tool)
	checkBinary(log, "repo")
	checkBinary(log, "gsutil")
	checkBinary(log, "gcloud")
	checkGcloudAuth(log)

	return nil
}

func checkBinary(log *logger.Logger, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		log.Error().Str("command", name).Msg("FAIL: command not found on PATH")
		return
	}
	log.Info().Str("command", name).Str("path", path).Msg("found")
}

func checkGcloudAuth(log *logger.Logger) {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "gcloud", "auth", "list")
	output, err := cmd.Output()
	if err != nil {
		log.Error().Err(err).Msg("FAIL: could not run gcloud auth list")
		return
	}

	for _, line := range strings.Split(strings.TrimRight(string(output), "\n"), "\n") {
		log.Info().Msg(line)
	}
}
