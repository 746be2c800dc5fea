package delete

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// New creates a new `delete` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a sync group. The files themselves are kept.",
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

	if err := st.Save(collection.Without(resolved)); err != nil {
		return errors.WithContext(err, "save store")
	}

	fmt.Printf("successfully deleted: %s\n", util.Name(resolved))
	return nil
}
