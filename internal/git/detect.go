package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Conventional main branch names tried during checkout.
const (
	MasterBranch = "master"
	MainBranch   = "main"
)

// IsRepo checks if the path is a git repository
func IsRepo(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// HasRemote checks whether the repository has any remote configured. Used as
// a fetch pre-flight so a remote-less repository fails with a clear message
// instead of a git usage error.
func HasRemote(path string) bool {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return false
	}
	remotes, err := repo.Remotes()
	return err == nil && len(remotes) > 0
}

// MainBranchCandidates returns the checkout order for the repository's main
// branch: the detected default first, the conventional alternative second.
// Remote-tracking refs are preferred over local ones; a repository showing
// neither falls back to master-then-main.
func MainBranchCandidates(path string) [2]string {
	masterFirst := [2]string{MasterBranch, MainBranch}
	mainFirst := [2]string{MainBranch, MasterBranch}

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return masterFirst
	}

	refs, err := repo.References()
	if err != nil {
		return masterFirst
	}

	var hasRemoteMain, hasRemoteMaster, hasLocalMain, hasLocalMaster bool

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		switch ref.Name().String() {
		case "refs/remotes/origin/main":
			hasRemoteMain = true
		case "refs/remotes/origin/master":
			hasRemoteMaster = true
		case "refs/heads/main":
			hasLocalMain = true
		case "refs/heads/master":
			hasLocalMaster = true
		}
		return nil
	})
	if err != nil {
		return masterFirst
	}

	// Prefer remote refs
	if hasRemoteMaster {
		return masterFirst
	}
	if hasRemoteMain {
		return mainFirst
	}

	// Fall back to local refs
	if hasLocalMaster {
		return masterFirst
	}
	if hasLocalMain {
		return mainFirst
	}

	return masterFirst
}
