// Package pathcomp provides filesystem candidate listing for
// completion. Directories are suffixed with a path separator so the
// shell can keep descending without adding a space.
package pathcomp

import (
	"os"
	"path/filepath"
	"strings"
)

// splitWord splits a partially typed path into the directory to search
// and the prefix to match against entry names.
func splitWord(word string) (searchDir, prefix string) {
	searchDir = "."
	if word == "" {
		return searchDir, ""
	}

	// A trailing separator means the word itself is the directory
	if strings.HasSuffix(word, "/") {
		return word, ""
	}

	return filepath.Dir(word), filepath.Base(word)
}

// joinEntry joins a search directory and entry name the way the shell
// expects the candidate to be spelled (no "./" prefix for the cwd).
func joinEntry(searchDir, name string) string {
	if searchDir == "." {
		return name
	}
	if strings.HasSuffix(searchDir, "/") {
		return searchDir + name
	}
	return filepath.Join(searchDir, name)
}

// list returns candidates under word. When dirsOnly is true, plain
// files are skipped. Hidden entries are skipped unless the typed
// prefix itself starts with a dot. Errors degrade to no candidates.
func list(word string, dirsOnly bool) []string {
	searchDir, prefix := splitWord(word)

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return []string{}
	}

	candidates := []string{}
	for _, entry := range entries {
		name := entry.Name()

		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if dirsOnly && !entry.IsDir() {
			continue
		}

		candidate := joinEntry(searchDir, name)
		if entry.IsDir() {
			candidate += "/"
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}

// Files returns file and directory candidates matching word.
func Files(word string) []string {
	return list(word, false)
}

// Dirs returns directory candidates matching word. When the listing
// yields exactly one directory, the completion descends into it and
// returns the entries inside, so a unique match does not cost the user
// a second keypress. The descent happens at most once.
func Dirs(word string) []string {
	candidates := list(word, true)

	if len(candidates) == 1 && strings.HasSuffix(candidates[0], "/") {
		inside := list(candidates[0], true)
		if len(inside) > 0 {
			return inside
		}
	}

	return candidates
}
