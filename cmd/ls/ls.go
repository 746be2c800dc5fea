package ls

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `ls` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [FOLDER]",
		Short: "List the sync groups with members under a folder",
		Long: "List the sync groups that have at least one member under\n" +
			"FOLDER (default: the current directory), along with the\n" +
			"matching members. FOLDER may also be a host:path reference.",
		Args: cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			var folder string
			if len(args) == 1 {
				folder = args[0]
			}
			if err := run(folder); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(folder string) error {
	if folder == "" {
		var err error
		if folder, err = util.CurrentDir(); err != nil {
			return err
		}
	}

	st, err := util.OpenStore()
	if err != nil {
		return err
	}

	collection, err := st.Load()
	if err != nil {
		return errors.WithContext(err, "load store")
	}

	selected := group.SelectByLocation(collection, folder)
	if len(selected) == 0 {
		fmt.Printf("found no sync in %s\n", util.Path(folder))
		return nil
	}

	fmt.Printf("the following syncs are in %s:\n", util.Path(folder))
	for _, g := range selected {
		fmt.Printf("name: %s\n", util.Name(g.Name))
		fmt.Println("matching files:")
		match := g.MatchingMembers(folder)
		for _, member := range match.Members {
			fmt.Printf("\t%s\n", util.Member(member, match.Remote))
		}
	}
	return nil
}
