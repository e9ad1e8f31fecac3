// Package main is the entry point for the liumcomp CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	lcli "github.com/lium-tools/liumcomp/internal/cli"
	"github.com/lium-tools/liumcomp/internal/config"
	"github.com/lium-tools/liumcomp/internal/setup"
	"github.com/lium-tools/liumcomp/internal/trace"
	"github.com/lium-tools/liumcomp/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	defer trace.Init()()

	app := &cli.Command{
		Name:    "liumcomp",
		Usage:   "Shell completion helper for the lium ChromeOS DUT tool",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LIUMCOMP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "complete",
				Usage:           "Resolve completion candidates for the current command line",
				ArgsUsage:       "[words...]",
				Hidden:          true, // Hidden from help - invoked by the shell completion function
				SkipFlagParsing: true, // The typed line may contain anything, including flags
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					// Bash provides COMP_WORDS via args and COMP_CWORD
					// via the LIUMCOMP_COMP_CWORD env var.
					//
					// Use os.Args directly instead of cmd.Args():
					// urfave/cli treats "--" as a separator and filters
					// it out, but only the first one is the shell's.
					var words []string
					foundComplete := false
					skipFirstDoubleDash := true
					for _, arg := range os.Args {
						if arg == "complete" && !foundComplete {
							foundComplete = true
							continue
						}
						if foundComplete {
							if arg == "--" && skipFirstDoubleDash {
								skipFirstDoubleDash = false
								continue
							}
							words = append(words, arg)
						}
					}

					cword := len(words) - 1 // default to last word
					if cwordStr := os.Getenv("LIUMCOMP_COMP_CWORD"); cwordStr != "" {
						_, _ = fmt.Sscanf(cwordStr, "%d", &cword) // Ignore errors, keep default
					}

					return lcli.Complete(lcli.CompleteParams{
						LogLevel: cmd.String("log-level"),
						Words:    words,
						CWord:    cword,
					})
				},
			},
			{
				Name:  "hook",
				Usage: "Print completion registration code for manual installation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("LIUMCOMP_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					shell := lcli.DetectShell(cmd.String("shell"))
					tool := toolFromConfig()

					fmt.Printf("# Add this to your shell config file (%s):\n\n", shell)
					fmt.Println(lcli.GenerateHookCode(shell, tool))
					return nil
				},
			},
			{
				Name:  "setup",
				Usage: "Install or uninstall the shell completion hook",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("LIUMCOMP_SHELL"),
					},
					&cli.BoolFlag{
						Name:    "uninstall",
						Aliases: []string{"u"},
						Usage:   "Uninstall the completion hook instead of installing it",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					shell := lcli.DetectShell(cmd.String("shell"))

					var result *setup.Result
					var err error

					if cmd.Bool("uninstall") {
						result, err = setup.UninstallHook(shell)
					} else {
						result, err = setup.InstallHook(shell, toolFromConfig())
					}

					if err != nil {
						return err
					}

					fmt.Println(result.Message)
					if result.Updated && !cmd.Bool("uninstall") {
						fmt.Println("\nTo activate in the current shell, run:")
						fmt.Printf("  source %s\n", result.ScriptPath)
					}

					return nil
				},
			},
			{
				Name:  "env",
				Usage: "Check this machine is ready for ChromeOS DUT work",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return lcli.EnvCheck(lcli.EnvCheckParams{
						LogLevel: cmd.String("log-level"),
						Tool:     toolFromConfig(),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show current liumcomp configuration status",
				Action: func(_ context.Context, _ *cli.Command) error {
					return lcli.Status()
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a liumcomp configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return lcli.Validate(configPath)
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in current folder or global config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "global",
						Aliases: []string{"g"},
						Usage:   "Create global config file instead of local",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return lcli.Init(cmd.Bool("global"))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// toolFromConfig returns the configured tool name for the current
// directory, defaulting to lium.
func toolFromConfig() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return config.Default().Tool
	}
	cfg, _ := config.Resolve(currentDir)
	return cfg.Tool
}
