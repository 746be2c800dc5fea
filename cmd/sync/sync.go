package sync

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/cmd/util"
	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
	"github.com/Theomat/rusync/pkg/scp"
	syncer "github.com/Theomat/rusync/pkg/sync"
)

// New creates a new `sync` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [NAME]",
		Short: "Synchronize a named group, or every group under the current directory",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			var err error
			if len(args) == 1 {
				err = runForName(args[0])
			} else {
				err = RunForCurrentDir()
			}
			if err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

// RunForCurrentDir synchronizes every group that has a member under the
// current directory, in the order they appear in the store. It also backs
// the bare `rusync` invocation.
func RunForCurrentDir() error {
	dir, err := util.CurrentDir()
	if err != nil {
		return err
	}

	collection, err := loadCollection()
	if err != nil {
		return err
	}
	return syncGroups(group.SelectByLocation(collection, dir))
}

func runForName(name string) error {
	collection, err := loadCollection()
	if err != nil {
		return err
	}

	resolved, err := group.SelectByName(collection, name)
	if err != nil {
		return err
	}
	return syncGroups(group.Collection{*collection.Find(resolved)})
}

func loadCollection() (group.Collection, error) {
	st, err := util.OpenStore()
	if err != nil {
		return nil, err
	}

	collection, err := st.Load()
	if err != nil {
		return nil, errors.WithContext(err, "load store")
	}
	return collection, nil
}

// syncGroups runs the engine over each group in order. Groups are synced
// one at a time; a transfer that hangs blocks the whole run, matching
// scp's own blocking behavior.
func syncGroups(groups group.Collection) error {
	scratch, err := os.MkdirTemp("", "rusync")
	if err != nil {
		return errors.WithContext(err, "create scratch directory")
	}
	defer os.RemoveAll(scratch)

	engine := syncer.NewEngine(scp.New(), scratch)
	for _, g := range groups {
		pp := util.NewProgressPrinter(os.Stdout, fmt.Sprintf("synchronizing %s", g.Name))
		go pp.Run()
		report := engine.Sync(g)
		pp.Stop()

		for _, target := range report.Failed {
			fmt.Fprintf(os.Stderr, "%s failed to update %s\n",
				util.ErrorPrefix(), util.Member(target, isRemote(target)))
		}
		if report.Updated > 0 {
			fmt.Printf("%s updated %d %s\n",
				util.Name(report.Group), report.Updated, pluralizeFile(report.Updated))
		}
	}
	return nil
}

func isRemote(member string) bool {
	_, ok := group.ParseRemote(member)
	return ok
}

func pluralizeFile(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
