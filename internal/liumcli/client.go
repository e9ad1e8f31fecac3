// Package liumcli is a client for the lium CLI. Completion data is
// discovered at runtime by invoking lium itself: its help output acts
// as an implicit describe-command endpoint and its list subcommands
// provide the dynamic value sets (device IDs, test names, servo
// serials, DUT actions).
package liumcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lium-tools/liumcomp/internal/lerrors"
)

const (
	// DefaultTool is the binary the completions are resolved against
	DefaultTool = "lium"
	// DefaultCommandTimeout bounds every lium invocation so a hung
	// tool can never stall the interactive shell
	DefaultCommandTimeout = 3 * time.Second
	// MaxOutputSize is the maximum size of command output (1MB)
	MaxOutputSize = 1024 * 1024
)

// Client invokes the lium binary and parses its output.
type Client struct {
	tool    string
	timeout time.Duration
}

// New creates a client for the given tool binary. Empty arguments fall
// back to the defaults.
func New(tool string, timeout time.Duration) *Client {
	if tool == "" {
		tool = DefaultTool
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &Client{tool: tool, timeout: timeout}
}

// Tool returns the underlying binary name.
func (c *Client) Tool() string {
	return c.tool
}

// LookPath reports whether the underlying binary is on PATH.
func (c *Client) LookPath() (string, error) {
	path, err := exec.LookPath(c.tool)
	if err != nil {
		return "", lerrors.NewNotFoundError(c.tool, fmt.Sprintf("%s not found on PATH", c.tool))
	}
	return path, nil
}

// run executes the tool with a timeout and returns stdout. Stderr is
// discarded; a non-zero exit comes back as an ExecutionError and the
// caller degrades to no candidates.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.tool, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, lerrors.NewExecutionError(c.tool, fmt.Sprintf("command timeout after %v", c.timeout), err)
		}
		return nil, lerrors.NewExecutionError(c.tool, fmt.Sprintf("%s %s failed", c.tool, strings.Join(args, " ")), err)
	}

	if len(output) > MaxOutputSize {
		return output[:MaxOutputSize], nil
	}

	return output, nil
}

// DutIDs returns the known device identifiers (lium dut list --ids).
func (c *Client) DutIDs(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "dut", "list", "--ids")
	if err != nil {
		return nil, err
	}
	return parseLines(output), nil
}

// ServoSerials returns servo serials (lium servo list --serials).
// Only the first whitespace-delimited field of each line is a serial.
func (c *Client) ServoSerials(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "servo", "list", "--serials")
	if err != nil {
		return nil, err
	}

	serials := []string{}
	for _, line := range parseLines(output) {
		if fields := strings.Fields(line); len(fields) > 0 {
			serials = append(serials, fields[0])
		}
	}
	return serials, nil
}

// TestNames returns Tast test names (lium tast list --cached). The
// output is comma-delimited; the first field is the test name.
func (c *Client) TestNames(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "tast", "list", "--cached")
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, line := range parseLines(output) {
		name, _, _ := strings.Cut(line, ",")
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Actions returns DUT action names (lium dut do --list-actions).
func (c *Client) Actions(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "dut", "do", "--list-actions")
	if err != nil {
		return nil, err
	}
	return parseLines(output), nil
}

// Help runs `lium <path...> --help` and parses the output into its
// positional, option and subcommand sections. path is the subcommand
// chain without the tool name itself.
func (c *Client) Help(ctx context.Context, path []string) (*Help, error) {
	args := append(append([]string{}, path...), "--help")
	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseHelp(output), nil
}

// parseLines splits output into trimmed, non-empty lines.
func parseLines(output []byte) []string {
	lines := []string{}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
