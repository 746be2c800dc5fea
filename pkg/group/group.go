// Package group defines the sync group data model: named sets of local
// paths and host:path remotes that are expected to hold identical content.
// It also implements the matching and selection logic used to resolve user
// references to groups. Nothing in this package touches the network or the
// persisted store.
package group

import (
	"path/filepath"
	"strings"
)

// Group is a named set of file locations that are kept content-identical.
type Group struct {
	Name string `json:"name"`

	// Locals are absolute paths on the machine running the tool. Order is
	// preserved: it is both the display order and the tie-break order when
	// several members share the newest modification time. Duplicates are
	// allowed.
	Locals []string `json:"locals,omitempty"`

	// Remotes are files on other machines, reachable via scp.
	Remotes []Remote `json:"remotes,omitempty"`
}

// New creates an empty group with the given name.
func New(name string) Group {
	return Group{Name: name}
}

// Remote identifies a file on another machine.
type Remote struct {
	Host string `json:"host"`
	Path string `json:"path"`
}

// String formats the remote the way scp expects it.
func (r Remote) String() string {
	return r.Host + ":" + r.Path
}

// ParseRemote splits a host:path reference at the first colon. References
// without a colon aren't remotes.
func ParseRemote(ref string) (Remote, bool) {
	host, path, ok := strings.Cut(ref, ":")
	if !ok {
		return Remote{}, false
	}
	return Remote{Host: host, Path: path}, true
}

// AddMembers appends each item to the group. Items containing a colon are
// recorded as host:path remotes; everything else is recorded as a local
// path, canonicalized when possible. The returned slice reports, in input
// order, whether each item was added as a remote. Members are never
// deduplicated, and local paths aren't required to exist.
func (g *Group) AddMembers(items []string) []bool {
	wasRemote := make([]bool, 0, len(items))
	for _, item := range items {
		if remote, ok := ParseRemote(item); ok {
			g.Remotes = append(g.Remotes, remote)
			wasRemote = append(wasRemote, true)
			continue
		}
		g.Locals = append(g.Locals, canonicalize(item))
		wasRemote = append(wasRemote, false)
	}
	return wasRemote
}

// canonicalize resolves path to an absolute path with symlinks expanded.
// Paths that can't be resolved (typically because they don't exist yet)
// are kept verbatim rather than failing the add.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return path
	}
	return resolved
}

// RemoveResult reports the outcome of removing a single member.
type RemoveResult struct {
	// Removed is false when no member matched the input exactly.
	Removed bool

	// WasRemote reports which member category the input targeted.
	WasRemote bool
}

// RemoveMembers removes each item from the group. Items containing a colon
// are matched against the remotes, everything else against the locals.
// Only exact matches are removed; a removed item that appeared several
// times is removed everywhere. Results are in input order.
func (g *Group) RemoveMembers(items []string) []RemoveResult {
	results := make([]RemoveResult, 0, len(items))
	for _, item := range items {
		if remote, ok := ParseRemote(item); ok {
			results = append(results, RemoveResult{
				Removed:   g.removeRemote(remote),
				WasRemote: true,
			})
			continue
		}
		results = append(results, RemoveResult{Removed: g.removeLocal(item)})
	}
	return results
}

func (g *Group) removeLocal(path string) bool {
	var kept []string
	for _, local := range g.Locals {
		if local != path {
			kept = append(kept, local)
		}
	}

	removed := len(kept) != len(g.Locals)
	g.Locals = kept
	return removed
}

func (g *Group) removeRemote(remote Remote) bool {
	var kept []Remote
	for _, r := range g.Remotes {
		if r != remote {
			kept = append(kept, r)
		}
	}

	removed := len(kept) != len(g.Remotes)
	g.Remotes = kept
	return removed
}
