package group

import "github.com/Theomat/rusync/pkg/errors"

// Collection is the full set of sync groups. It's owned exclusively by one
// command invocation: loaded once at startup, mutated in memory, and
// persisted as a whole.
type Collection []Group

// Find returns the group with the given canonical name, or nil.
func (c Collection) Find(name string) *Group {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// Without returns the collection with the named group removed. The group's
// files are never touched.
func (c Collection) Without(name string) Collection {
	var kept Collection
	for _, g := range c {
		if g.Name != name {
			kept = append(kept, g)
		}
	}
	return kept
}

// SelectByName resolves query to the single group whose name it prefixes
// and returns that group's canonical name. Zero matches yield
// errors.GroupNotFound; two or more yield errors.AmbiguousGroupName
// carrying every match, even when one of them equals the query exactly.
func SelectByName(c Collection, query string) (string, error) {
	var matches []string
	for _, g := range c {
		if g.NameMatches(query) {
			matches = append(matches, g.Name)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.GroupNotFound{Name: query}
	case 1:
		return matches[0], nil
	default:
		return "", errors.AmbiguousGroupName{Name: query, Matches: matches}
	}
}

// SelectByLocation returns every group with at least one member under the
// query, which is either a plain path or a host:path reference. Unlike
// name lookup, multiple matches aren't an error: location queries are used
// to sync or list everything under a directory.
func SelectByLocation(c Collection, query string) Collection {
	var selected Collection
	for _, g := range c {
		if g.ContainsPath(query) {
			selected = append(selected, g)
		}
	}
	return selected
}
