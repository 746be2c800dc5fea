package show

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `show` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Display the members of a sync group",
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

	resolved, err := group.SelectByName(collection, name)
	if err != nil {
		return err
	}
	g := collection.Find(resolved)

	fmt.Printf("name: %s\n", util.Name(g.Name))
	fmt.Printf("local files (%d):\n", len(g.Locals))
	for _, local := range g.Locals {
		fmt.Printf("\t%s\n", util.Local(local))
	}
	fmt.Printf("remote files (%d):\n", len(g.Remotes))
	for _, remote := range g.Remotes {
		fmt.Printf("\t%s\n", util.Remote(remote.String()))
	}
	return nil
}
