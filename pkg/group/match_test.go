package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIsUnder(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		candidate string
		exp       bool
	}{
		{
			name:      "FileInDirectory",
			root:      "/a/b",
			candidate: "/a/b/c.txt",
			exp:       true,
		},
		{
			name:      "ExactPath",
			root:      "/a/b",
			candidate: "/a/b",
			exp:       true,
		},
		{
			// The match is a literal prefix, not segment-aware. This is
			// load-bearing compatibility behavior: stored groups depend
			// on it, so it's pinned here on purpose.
			name:      "SiblingSharingPrefix",
			root:      "/a/b",
			candidate: "/a/bc",
			exp:       true,
		},
		{
			name:      "Parent",
			root:      "/a/b",
			candidate: "/a",
			exp:       false,
		},
		{
			name:      "Unrelated",
			root:      "/a/b",
			candidate: "/x/y",
			exp:       false,
		},
		{
			name:      "EmptyRootMatchesEverything",
			root:      "",
			candidate: "/a",
			exp:       true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, PathIsUnder(test.root, test.candidate))
		})
	}
}

func TestNameIsPrefix(t *testing.T) {
	assert.True(t, NameIsPrefix("web", "website"))
	assert.True(t, NameIsPrefix("", "website"))
	assert.False(t, NameIsPrefix("website", "web"))
	assert.False(t, NameIsPrefix("blog", "website"))

	// Reflexivity: an exact name always matches itself.
	assert.True(t, NameIsPrefix("website", "website"))
}

func TestContainsPath(t *testing.T) {
	g := Group{
		Name:   "dotfiles",
		Locals: []string{"/home/alice/.vimrc", "/home/alice/.bashrc"},
		Remotes: []Remote{
			{Host: "build", Path: "/home/alice/.vimrc"},
		},
	}

	assert.True(t, g.ContainsPath("/home/alice"))
	assert.False(t, g.ContainsPath("/home/bob"))

	// host:path queries only consider remotes, and the host must match
	// exactly.
	assert.True(t, g.ContainsPath("build:/home/alice"))
	assert.False(t, g.ContainsPath("builder:/home/alice"))
	assert.False(t, g.ContainsPath("build:/home/bob"))
}

func TestMatchingMembers(t *testing.T) {
	g := Group{
		Name:   "dotfiles",
		Locals: []string{"/home/alice/.vimrc", "/etc/hosts"},
		Remotes: []Remote{
			{Host: "build", Path: "/home/alice/.vimrc"},
			{Host: "build", Path: "/etc/hosts"},
		},
	}

	local := g.MatchingMembers("/home/alice")
	assert.False(t, local.Remote)
	assert.Equal(t, []string{"/home/alice/.vimrc"}, local.Members)

	remote := g.MatchingMembers("build:/etc")
	assert.True(t, remote.Remote)
	assert.Equal(t, []string{"build:/etc/hosts"}, remote.Members)

	none := g.MatchingMembers("/var")
	assert.False(t, none.Remote)
	assert.Empty(t, none.Members)
}
