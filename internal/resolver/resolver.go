// Package resolver turns an in-progress lium command line into a set
// of completion candidates. Resolution is a single synchronous pass
// over the typed tokens: value-consuming options dispatch to dynamic
// lists or path completion, everything else is answered from the
// tool's own help output.
package resolver

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/lium-tools/liumcomp/internal/config"
	"github.com/lium-tools/liumcomp/internal/liumcli"
	"github.com/lium-tools/liumcomp/internal/logger"
	"github.com/lium-tools/liumcomp/internal/pathcomp"
)

// Lister provides the dynamic completion data fetched from the
// underlying tool. *liumcli.Client implements it; tests substitute a
// fake.
type Lister interface {
	DutIDs(ctx context.Context) ([]string, error)
	ServoSerials(ctx context.Context) ([]string, error)
	TestNames(ctx context.Context) ([]string, error)
	Actions(ctx context.Context) ([]string, error)
	Help(ctx context.Context, path []string) (*liumcli.Help, error)
}

// Request is one completion request: the full token sequence typed so
// far (tool name at index 0) and the index of the token being
// completed.
type Request struct {
	Words []string
	CWord int
}

// CurrentWord returns the token under the cursor, or "" when the
// cursor sits past the last typed token.
func (r Request) CurrentWord() string {
	if r.CWord >= 0 && r.CWord < len(r.Words) {
		return r.Words[r.CWord]
	}
	return ""
}

// PrevWord returns the token immediately before the cursor.
func (r Request) PrevWord() string {
	if r.CWord-1 >= 0 && r.CWord-1 < len(r.Words) {
		return r.Words[r.CWord-1]
	}
	return ""
}

// typed returns the tokens before the cursor.
func (r Request) typed() []string {
	n := r.CWord
	if n > len(r.Words) {
		n = len(r.Words)
	}
	if n < 0 {
		n = 0
	}
	return r.Words[:n]
}

// Result is the outcome of one resolution. Err records a failed
// lookup for diagnostics and tests; externally a failed lookup and a
// genuinely empty list are identical (no candidates, no error shown).
type Result struct {
	Candidates []string
	Source     string
	Err        error
}

func empty(source string, err error) Result {
	return Result{Candidates: []string{}, Source: source, Err: err}
}

// Resolver resolves completion requests against one tool.
type Resolver struct {
	lister  Lister
	flags   config.FlagSets
	log     *logger.Logger
	workdir string
}

// New creates a resolver using the given lister and option sets.
func New(lister Lister, flags config.FlagSets, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.New("warn", nil)
	}
	return &Resolver{lister: lister, flags: flags, log: log, workdir: "."}
}

// Resolve applies the dispatch rules in priority order and returns the
// candidates for the current word. The first matching rule wins.
func (r *Resolver) Resolve(ctx context.Context, req Request) Result {
	if len(req.Words) == 0 {
		return empty("none", nil)
	}

	typed := req.typed()
	current := req.CurrentWord()
	prev := req.PrevWord()

	// Once help has been requested nothing further is meaningful
	for _, word := range typed {
		if word == "--help" {
			return empty("help-requested", nil)
		}
	}

	// Value completion for these options is intentionally unsupported
	if contains(r.flags.Todo, prev) {
		return empty("todo-option", nil)
	}

	if prev == r.flags.Dut {
		return r.dynamicList(ctx, "dut-list", current, r.lister.DutIDs)
	}

	if prev == r.flags.Serial {
		return r.dynamicList(ctx, "servo-list", current, r.lister.ServoSerials)
	}

	if contains(r.flags.Dir, prev) {
		return Result{Candidates: pathcomp.Dirs(current), Source: "dir-path"}
	}

	return r.resolveFromHelp(ctx, typed, current)
}

// dynamicList fetches a list from the underlying tool and prefix
// filters it against the current word.
func (r *Resolver) dynamicList(ctx context.Context, source, current string, fetch func(context.Context) ([]string, error)) Result {
	values, err := fetch(ctx)
	if err != nil {
		r.log.Debug().Err(err).Str("source", source).Msg("Dynamic list lookup failed")
		return empty(source, err)
	}
	return Result{Candidates: filterPrefix(values, current), Source: source}
}

// resolveFromHelp answers the default case from the tool's help
// output: option flags not yet used, resolved positional placeholders
// and child subcommands.
func (r *Resolver) resolveFromHelp(ctx context.Context, typed []string, current string) Result {
	path := commandPath(typed)

	// Ambient repo detection: the original tool accepts a --repo
	// default taken from the working directory. The probe result is
	// informational only; no dispatch branch consumes it.
	if !contains(typed, "--repo") {
		r.log.Debug().
			Bool("ambient_repo", r.detectAmbientRepo()).
			Msg("Checked working directory for an ambient repo")
	}

	subpath := []string{}
	if len(path) > 1 {
		subpath = path[1:]
	}
	help, err := r.lister.Help(ctx, subpath)
	if err != nil {
		r.log.Debug().Err(err).Str("path", strings.Join(path, " ")).Msg("Help lookup failed")
		return empty("schema", err)
	}

	result := Result{Candidates: []string{}, Source: "schema"}

	// Each option is assumed usable at most once per invocation
	for _, opt := range help.Options {
		if !contains(typed, opt) {
			result.Candidates = append(result.Candidates, opt)
		}
	}

	for _, name := range help.Positionals {
		values, err := r.resolvePositional(ctx, name, current)
		if err != nil {
			r.log.Debug().Err(err).Str("placeholder", name).Msg("Positional lookup failed")
			result.Err = err
			continue
		}
		result.Candidates = append(result.Candidates, values...)
	}

	result.Candidates = append(result.Candidates, help.Commands...)
	result.Candidates = filterPrefix(result.Candidates, current)
	return result
}

// resolvePositional maps a positional placeholder name from the help
// output to its dynamic value list. Unknown placeholders resolve to
// nothing.
func (r *Resolver) resolvePositional(ctx context.Context, name, current string) ([]string, error) {
	switch name {
	case "dut", "duts":
		return r.lister.DutIDs(ctx)
	case "actions":
		return r.lister.Actions(ctx)
	case "tests":
		return r.lister.TestNames(ctx)
	case "files":
		// A word that looks like a flag is not a file
		if strings.HasPrefix(current, "-") {
			return nil, nil
		}
		return pathcomp.Files(current), nil
	default:
		return nil, nil
	}
}

// commandPath returns the longest prefix of typed tokens that forms
// the subcommand chain: the scan stops at the first flag-looking
// token, everything after it is not part of the path.
func commandPath(typed []string) []string {
	path := []string{}
	for _, token := range typed {
		if strings.HasPrefix(token, "-") {
			break
		}
		path = append(path, token)
	}
	return path
}

// detectAmbientRepo reports whether the working directory looks like a
// checked-out cros repo (sibling .repo and chroot directories).
func (r *Resolver) detectAmbientRepo() bool {
	repoInfo, err := os.Stat(filepath.Join(r.workdir, ".repo"))
	if err != nil || !repoInfo.IsDir() {
		return false
	}
	chrootInfo, err := os.Stat(filepath.Join(r.workdir, "chroot"))
	return err == nil && chrootInfo.IsDir()
}

// filterPrefix keeps the candidates matching prefix.
func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		if candidates == nil {
			return []string{}
		}
		return candidates
	}

	filtered := []string{}
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
