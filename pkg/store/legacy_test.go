package store

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theomat/rusync/pkg/group"
)

func TestDecodeLegacy(t *testing.T) {
	content := "$RUSEP$" + "website" + "$FILES$" +
		"/srv/www/index.html\n/srv/www/style.css\nweb1:/var/www/index.html" +
		"$RUSEP$" + "empty" + "$FILES$" +
		"$RUSEP$" + "notes" + "$FILES$" +
		"/home/alice/notes.txt"

	collection := decodeLegacy(content)
	assert.Equal(t, group.Collection{
		{
			Name:   "website",
			Locals: []string{"/srv/www/index.html", "/srv/www/style.css"},
			Remotes: []group.Remote{
				{Host: "web1", Path: "/var/www/index.html"},
			},
		},
		{
			Name: "empty",
		},
		{
			Name:   "notes",
			Locals: []string{"/home/alice/notes.txt"},
		},
	}, collection)
}

func TestDecodeLegacyDiscardsLeadingFragment(t *testing.T) {
	// Old writers emitted a record separator before every record, so
	// splitting leaves a fragment before the first record. It has no field
	// separator and must be ignored, whatever it contains.
	for _, leading := range []string{"", "junk that was prepended"} {
		content := leading + "$RUSEP$" + "website" + "$FILES$" + "/srv/www/index.html"

		collection := decodeLegacy(content)
		assert.Equal(t, group.Collection{
			{
				Name:   "website",
				Locals: []string{"/srv/www/index.html"},
			},
		}, collection)
	}
}

func TestDecodeLegacyEmptyStore(t *testing.T) {
	assert.Empty(t, decodeLegacy(""))
}

func TestLoadMigratesLegacyStore(t *testing.T) {
	fs = afero.NewMemMapFs()
	s := New("/home/alice/.rusync")

	content := "$RUSEP$" + "website" + "$FILES$" +
		"/srv/www/index.html\nweb1:/var/www/index.html"
	require.NoError(t, afero.WriteFile(
		fs, "/home/alice/.rusync", []byte(content), 0644))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, group.Collection{
		{
			Name:   "website",
			Locals: []string{"/srv/www/index.html"},
			Remotes: []group.Remote{
				{Host: "web1", Path: "/var/www/index.html"},
			},
		},
	}, loaded)

	// Saving rewrites the store in the current schema; the legacy tokens
	// are gone and the content round-trips.
	require.NoError(t, s.Save(loaded))

	data, err := afero.ReadFile(fs, "/home/alice/.rusync")
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), legacyFieldSeparator))

	reloaded, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}
