package errors

import (
	"fmt"
	"strings"
)

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// GroupNotFound represents a name lookup that matched no sync group.
type GroupNotFound struct {
	Name string
}

func (err GroupNotFound) Error() string {
	return err.FriendlyMessage()
}

// FriendlyMessage returns the user-facing message.
func (err GroupNotFound) FriendlyMessage() string {
	return fmt.Sprintf("found no sync by the name %q", err.Name)
}

// AmbiguousGroupName represents a name lookup that matched more than one
// sync group. Ambiguity is never auto-resolved, even when one of the
// matches equals the query exactly, so that a lookup never silently picks
// the wrong group.
type AmbiguousGroupName struct {
	Name    string
	Matches []string
}

func (err AmbiguousGroupName) Error() string {
	return fmt.Sprintf("name %q is ambiguous: matches %s",
		err.Name, strings.Join(err.Matches, ", "))
}

// FriendlyMessage returns the user-facing message, listing every match.
func (err AmbiguousGroupName) FriendlyMessage() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name %q is ambiguous. The following syncs match:", err.Name)
	for _, match := range err.Matches {
		fmt.Fprintf(&sb, "\n\t%s", match)
	}
	return sb.String()
}
