package rm

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `rm` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME FILE...",
		Short: "Remove members from a sync group. The files themselves are kept.",
		Args:  cobra.MinimumNArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			if err := run(args[0], args[1:]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(name string, files []string) error {
	st, err := util.OpenStore()
	if err != nil {
		return err
	}

	collection, err := st.Load()
	if err != nil {
		return errors.WithContext(err, "load store")
	}

	resolved, err := group.SelectByName(collection, name)
	if err != nil {
		return err
	}

	results := collection.Find(resolved).RemoveMembers(files)
	if err := st.Save(collection); err != nil {
		return errors.WithContext(err, "save store")
	}

	// Only actual removals are listed; inputs that matched nothing are
	// silently skipped.
	fmt.Printf("successfully removed files from %s\n", util.Name(resolved))
	for i, file := range files {
		if !results[i].Removed {
			continue
		}
		fmt.Printf("\t%s\n", util.Member(file, results[i].WasRemote))
	}
	return nil
}
