package group

import "strings"

// PathIsUnder reports whether candidate falls under root. The test is a
// literal byte prefix, not a path-segment comparison: "/a/b" matches
// "/a/bc" as well as "/a/b/c". Stored groups and existing user workflows
// rely on this exact behavior, so it must not be tightened to segment
// boundaries.
func PathIsUnder(root, candidate string) bool {
	return strings.HasPrefix(candidate, root)
}

// NameIsPrefix reports whether candidate starts with query.
func NameIsPrefix(query, candidate string) bool {
	return strings.HasPrefix(candidate, query)
}

// NameMatches reports whether the group's name starts with query.
func (g Group) NameMatches(query string) bool {
	return NameIsPrefix(query, g.Name)
}

// ContainsPath reports whether any member of the group falls under the
// query. A host:path query is matched against the remotes (exact host,
// path prefix); a plain path is matched against the locals.
func (g Group) ContainsPath(query string) bool {
	if remote, ok := ParseRemote(query); ok {
		for _, r := range g.Remotes {
			if r.Host == remote.Host && PathIsUnder(remote.Path, r.Path) {
				return true
			}
		}
		return false
	}

	for _, local := range g.Locals {
		if PathIsUnder(query, local) {
			return true
		}
	}
	return false
}

// MemberMatch lists the members of one group that fall under a query path.
type MemberMatch struct {
	// Remote reports whether Members are host:path references rather than
	// local paths.
	Remote bool

	Members []string
}

// MatchingMembers returns the members of the group that fall under the
// query, mirroring ContainsPath but reporting the members themselves. It's
// used to display which files of a selected group live under a directory.
func (g Group) MatchingMembers(query string) MemberMatch {
	if remote, ok := ParseRemote(query); ok {
		match := MemberMatch{Remote: true}
		for _, r := range g.Remotes {
			if r.Host == remote.Host && PathIsUnder(remote.Path, r.Path) {
				match.Members = append(match.Members, r.String())
			}
		}
		return match
	}

	var match MemberMatch
	for _, local := range g.Locals {
		if PathIsUnder(query, local) {
			match.Members = append(match.Members, local)
		}
	}
	return match
}
