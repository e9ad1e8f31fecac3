// Package cli implements the liumcomp commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/lium-tools/liumcomp/internal/config"
	"github.com/lium-tools/liumcomp/internal/liumcli"
	"github.com/lium-tools/liumcomp/internal/logger"
	"github.com/lium-tools/liumcomp/internal/resolver"
	"github.com/lium-tools/liumcomp/internal/trace"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	LogLevel string
	Words    []string // Words in the command line (COMP_WORDS)
	CWord    int      // Index of word being completed (COMP_CWORD)
}

// Complete resolves completion candidates for the current command line
// and prints them one per line. It never returns an error to the
// shell: every failure degrades to no candidates.
func Complete(params CompleteParams) error {
	ctx := context.Background()
	defer trace.Region(ctx, "cli.Complete")()

	if len(params.Words) == 0 {
		return nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil
	}

	cfg, configPath := config.Resolve(currentDir)

	logLevel := params.LogLevel
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	log := logger.New(logLevel, os.Stderr)

	log.Debug().
		Str("config", configPath).
		Str("tool", cfg.Tool).
		Int("words_count", len(params.Words)).
		Int("cword", params.CWord).
		Str("words", fmt.Sprintf("%q", params.Words)).
		Msg("Received completion request")

	client := liumcli.New(cfg.Tool, cfg.Timeout())
	res := resolver.New(client, cfg.Flags, log)

	var result resolver.Result
	trace.WithRegion(ctx, "resolver.Resolve", func() {
		result = res.Resolve(ctx, resolver.Request{Words: params.Words, CWord: params.CWord})
	})

	log.Debug().
		Int("candidates", len(result.Candidates)).
		Str("source", result.Source).
		Err(result.Err).
		Msg("Resolved completions")

	sort.Strings(result.Candidates)
	for _, candidate := range result.Candidates {
		fmt.Println(candidate)
	}

	return nil
}
