package store

import (
	"bytes"
	"strings"

	"github.com/Theomat/rusync/pkg/group"
)

// The pre-schema store format: group records joined by a record-separator
// token, each record holding the group name, a field-separator token, and
// the members joined by newlines (locals first, then remotes as
// host:path). Kept read-only so stores written by old releases still load;
// the next save rewrites them in the current schema.
const (
	legacyRecordSeparator = "$RUSEP$"
	legacyFieldSeparator  = "$FILES$"
)

// isLegacy sniffs the legacy format by its field-separator token. Group
// names and paths can never contain the token, so its presence is
// unambiguous, and the current yaml schema never produces it.
func isLegacy(data []byte) bool {
	return bytes.Contains(data, []byte(legacyFieldSeparator))
}

// decodeLegacy parses the flat format. Splitting on the record separator
// leaves a leading fragment before the first record; it carries no field
// separator and is discarded, as is any other malformed fragment.
func decodeLegacy(data string) group.Collection {
	var collection group.Collection
	for _, record := range strings.Split(data, legacyRecordSeparator) {
		name, members, ok := strings.Cut(record, legacyFieldSeparator)
		if !ok {
			continue
		}

		g := group.New(name)
		for _, member := range strings.Split(members, "\n") {
			if member == "" {
				continue
			}
			g.AddMembers([]string{member})
		}
		collection = append(collection, g)
	}
	return collection
}
