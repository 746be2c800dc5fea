package new

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `new` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "new NAME",
		Short: "Create a new, empty sync group",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := run(args[0]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(name string) error {
	st, err := util.OpenStore()
	if err != nil {
		return err
	}

	collection, err := st.Load()
	if err != nil {
		return errors.WithContext(err, "load store")
	}

	if existing, ok := existingName(collection, name); ok {
		return errors.NewFriendlyError("a sync with the name %q already exists", existing)
	}

	collection = append(collection, group.New(name))
	if err := st.Save(collection); err != nil {
		return errors.WithContext(err, "save store")
	}

	fmt.Printf("successfully created: %s\n", util.Name(name))
	return nil
}

// existingName reports whether name resolves to an existing group, using
// the same prefix lookup as every other command. Only a unique resolution
// blocks creation: a name that ambiguously matches several groups (for
// example `new web` while both "web" and "website" exist) goes through
// and can create a duplicate. Long-standing behavior, kept as is.
func existingName(collection group.Collection, name string) (string, bool) {
	resolved, err := group.SelectByName(collection, name)
	return resolved, err == nil
}
