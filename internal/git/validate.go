package git

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateBranchName rejects branch names that could smuggle extra options or
// shell syntax into a git invocation. Git is always spawned directly, never
// through a shell, so this is defense in depth for anything downstream that
// logs or reuses the name.
func ValidateBranchName(name string) error {
	if name == "" {
		return &ValidationError{Name: name, Reason: "branch name cannot be empty"}
	}

	// Argument injection: "-x" or "--exec=..." would read as an option.
	if strings.HasPrefix(name, "-") {
		return &ValidationError{Name: name, Reason: "branch name cannot start with '-'"}
	}

	for _, r := range name {
		switch r {
		case ';', '|', '&', '$', '`', '(', ')', '{', '}':
			return &ValidationError{Name: name, Reason: fmt.Sprintf("unsafe character %q", r)}
		}
		if r == 0 || unicode.IsControl(r) {
			return &ValidationError{Name: name, Reason: "control character in branch name"}
		}
	}

	return nil
}
