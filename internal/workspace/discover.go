package workspace

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/wahlandcase/attuned.gitdaily/internal/git"
)

// DiscoveryError reports a workspace root that could not be read.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return "failed to read workspace directory " + e.Path + ": " + e.Err.Error()
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// FindRepos lists the immediate subdirectories of root that are git
// repositories, sorted by path. Nested repositories are deliberately not
// discovered: recursing would be unbounded and nested-repository semantics
// are ambiguous.
func FindRepos(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &DiscoveryError{Path: root, Err: err}
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if git.IsRepo(path) {
			repos = append(repos, path)
		}
	}

	sort.Strings(repos)
	return repos, nil
}
