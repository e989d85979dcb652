package models

// OriginalHead records where HEAD pointed before the update touched anything.
// It is captured exactly once, before any mutating operation, and restoration
// always targets this captured value - never a reconstructed one.
type OriginalHead interface {
	isOriginalHead()
	// Ref returns the value to check out when restoring this head.
	Ref() string
}

type headBranch struct{ name string }
type headDetached struct{ commit string }

func (headBranch) isOriginalHead()   {}
func (headDetached) isOriginalHead() {}

func (h headBranch) Ref() string   { return h.name }
func (h headDetached) Ref() string { return h.commit }

// Branch creates an OriginalHead for a working copy on a named branch.
func Branch(name string) OriginalHead {
	return headBranch{name: name}
}

// DetachedAt creates an OriginalHead for a detached HEAD at the given commit.
func DetachedAt(commit string) OriginalHead {
	return headDetached{commit: commit}
}

// IsDetached returns true if h is a detached HEAD.
func IsDetached(h OriginalHead) bool {
	_, ok := h.(headDetached)
	return ok
}

// DescribeHead returns a short human-readable form of h for summaries.
func DescribeHead(h OriginalHead) string {
	switch v := h.(type) {
	case headBranch:
		return v.name
	case headDetached:
		commit := v.commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		return "detached @ " + commit
	default:
		return "unknown"
	}
}
