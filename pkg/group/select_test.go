package group

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Theomat/rusync/pkg/errors"
)

func TestSelectByName(t *testing.T) {
	collection := Collection{
		New("website"),
		New("webapp"),
		New("blog"),
	}

	tests := []struct {
		name     string
		query    string
		expName  string
		expError error
	}{
		{
			name:    "UniquePrefix",
			query:   "bl",
			expName: "blog",
		},
		{
			name:    "UniqueExact",
			query:   "website",
			expName: "website",
		},
		{
			name:     "NoMatch",
			query:    "mail",
			expError: errors.GroupNotFound{Name: "mail"},
		},
		{
			name:  "Ambiguous",
			query: "web",
			expError: errors.AmbiguousGroupName{
				Name:    "web",
				Matches: []string{"website", "webapp"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			name, err := SelectByName(collection, test.query)
			assert.Equal(t, test.expName, name)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestSelectByNameExactMatchIsStillAmbiguous(t *testing.T) {
	collection := Collection{
		New("web"),
		New("website"),
	}

	// "web" names an existing group, but it's also a prefix of "website".
	// The lookup refuses to guess.
	_, err := SelectByName(collection, "web")
	assert.Equal(t, errors.AmbiguousGroupName{
		Name:    "web",
		Matches: []string{"web", "website"},
	}, err)
}

func TestSelectByLocation(t *testing.T) {
	website := Group{
		Name:   "website",
		Locals: []string{"/srv/www/index.html"},
	}
	dotfiles := Group{
		Name:   "dotfiles",
		Locals: []string{"/home/alice/.vimrc"},
		Remotes: []Remote{
			{Host: "build", Path: "/home/alice/.vimrc"},
		},
	}
	collection := Collection{website, dotfiles}

	assert.Equal(t, Collection{website}, SelectByLocation(collection, "/srv"))
	assert.Equal(t, Collection{dotfiles}, SelectByLocation(collection, "/home/alice"))
	assert.Equal(t, Collection{dotfiles}, SelectByLocation(collection, "build:/home"))
	assert.Empty(t, SelectByLocation(collection, "/opt"))

	// A location query can legitimately match several groups; all of them
	// are returned.
	both := Collection{
		Group{Name: "a", Locals: []string{"/srv/a"}},
		Group{Name: "b", Locals: []string{"/srv/b"}},
	}
	assert.Len(t, SelectByLocation(both, "/srv"), 2)
}

func TestCollectionFindAndWithout(t *testing.T) {
	collection := Collection{New("website"), New("blog")}

	found := collection.Find("blog")
	assert.NotNil(t, found)
	assert.Equal(t, "blog", found.Name)
	assert.Nil(t, collection.Find("mail"))

	remaining := collection.Without("website")
	assert.Equal(t, Collection{New("blog")}, remaining)
	assert.Equal(t, remaining, remaining.Without("mail"))
}
