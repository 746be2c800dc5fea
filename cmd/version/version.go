package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Theomat/rusync/pkg/version"
)

// New creates a new `version` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of rusync",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rusync version: %s\n", version.Version)
		},
	}
}
