package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `add` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME FILE...",
		Short: "Add local paths or host:path remotes to a sync group",
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

	wasRemote := collection.Find(resolved).AddMembers(files)
	if err := st.Save(collection); err != nil {
		return errors.WithContext(err, "save store")
	}

	fmt.Printf("successfully added files to %s:\n", util.Name(resolved))
	for i, file := range files {
		fmt.Printf("\t%s\n", util.Member(file, wasRemote[i]))
	}
	return nil
}
