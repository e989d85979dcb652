// Package gittest builds throwaway git repositories for tests. Each fixture
// is a bare "origin" plus a clone wired to it, so fetch and pull run against
// local paths without any network.
package gittest

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Repo is a working clone with a bare origin behind it.
type Repo struct {
	Dir    string // working clone
	Origin string // bare repository acting as origin
	tb     testing.TB
}

// NewRepo creates a bare origin and a clone on the given branch with one
// pushed commit.
func NewRepo(tb testing.TB, branch string) *Repo {
	tb.Helper()
	return NewWorkspaceRepo(tb, tb.TempDir(), "clone", branch)
}

// NewWorkspaceRepo creates a repo whose clone lives at root/name. The origin
// lives in a separate temp directory so workspace discovery only sees clones.
func NewWorkspaceRepo(tb testing.TB, root, name, branch string) *Repo {
	tb.Helper()

	origin := filepath.Join(tb.TempDir(), name+".git")
	clone := filepath.Join(root, name)

	Run(tb, filepath.Dir(origin), "init", "--bare", origin)
	Run(tb, root, "clone", origin, clone)

	r := &Repo{Dir: clone, Origin: origin, tb: tb}
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "Test User")
	r.WriteFile("README.md", "# Test Repo\n")
	r.Git("add", "README.md")
	r.Git("commit", "-m", "Initial commit")
	r.Git("branch", "-M", branch)
	r.Git("push", "-u", "origin", branch)
	return r
}

// Git runs a git command in the clone and returns its trimmed output.
func (r *Repo) Git(args ...string) string {
	r.tb.Helper()
	return Run(r.tb, r.Dir, args...)
}

// WriteFile writes a file inside the clone.
func (r *Repo) WriteFile(name, content string) {
	r.tb.Helper()
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(content), 0644); err != nil {
		r.tb.Fatalf("failed to write %s: %v", name, err)
	}
}

// ReadFile reads a file inside the clone.
func (r *Repo) ReadFile(name string) string {
	r.tb.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		r.tb.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// CreateBranch creates a local branch without checking it out.
func (r *Repo) CreateBranch(name string) {
	r.tb.Helper()
	r.Git("branch", name)
}

// Checkout switches the clone to the named branch.
func (r *Repo) Checkout(name string) {
	r.tb.Helper()
	r.Git("checkout", name)
}

// Detach puts the clone into detached HEAD state at the current commit.
func (r *Repo) Detach() {
	r.tb.Helper()
	r.Git("checkout", "--detach", "HEAD")
}

// RemoveRemote deletes the origin remote, making fetch fail.
func (r *Repo) RemoveRemote() {
	r.tb.Helper()
	r.Git("remote", "remove", "origin")
}

// CurrentBranch returns the abbreviated HEAD ref, "HEAD" when detached.
func (r *Repo) CurrentBranch() string {
	r.tb.Helper()
	return r.Git("rev-parse", "--abbrev-ref", "HEAD")
}

// CurrentCommit returns the commit hash HEAD points at.
func (r *Repo) CurrentCommit() string {
	r.tb.Helper()
	return r.Git("rev-parse", "HEAD")
}

// HasStash reports whether the clone has any stash entries.
func (r *Repo) HasStash() bool {
	r.tb.Helper()
	return r.Git("stash", "list") != ""
}

// AdvanceOrigin pushes a new commit to origin's branch through a second
// clone, leaving this clone behind the remote.
func (r *Repo) AdvanceOrigin(branch string) {
	r.tb.Helper()

	other := filepath.Join(r.tb.TempDir(), "other")
	Run(r.tb, filepath.Dir(other), "clone", r.Origin, other)
	Run(r.tb, other, "config", "user.email", "test@example.com")
	Run(r.tb, other, "config", "user.name", "Test User")
	Run(r.tb, other, "checkout", branch)

	if err := os.WriteFile(filepath.Join(other, "upstream.txt"), []byte("upstream change\n"), 0644); err != nil {
		r.tb.Fatalf("failed to write upstream file: %v", err)
	}
	Run(r.tb, other, "add", "upstream.txt")
	Run(r.tb, other, "commit", "-m", "Upstream change")
	Run(r.tb, other, "push", "origin", branch)
}

// OriginHead returns the commit hash of the given branch on origin.
func (r *Repo) OriginHead(branch string) string {
	r.tb.Helper()
	return Run(r.tb, r.Origin, "rev-parse", branch)
}

// Run executes a git command in dir and returns its trimmed output. Any
// failure fails the test immediately.
func Run(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return trimmed(output)
}

func trimmed(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
