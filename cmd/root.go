package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	addCmd "github.com/Theomat/rusync/cmd/add"
	deleteCmd "github.com/Theomat/rusync/cmd/delete"
	lsCmd "github.com/Theomat/rusync/cmd/ls"
	newCmd "github.com/Theomat/rusync/cmd/new"
	rmCmd "github.com/Theomat/rusync/cmd/rm"
	showCmd "github.com/Theomat/rusync/cmd/show"
	syncCmd "github.com/Theomat/rusync/cmd/sync"
	"github.com/Theomat/rusync/cmd/util"
	versionCmd "github.com/Theomat/rusync/cmd/version"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info
// and above.
const verboseLogKey = "RUSYNC_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "rusync",
		Short:        "Keep groups of local and remote files content-identical",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,

		// With no subcommand, synchronize every group that has a member
		// under the current directory.
		Run: func(_ *cobra.Command, _ []string) {
			if err := syncCmd.RunForCurrentDir(); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	rootCmd.AddCommand(
		addCmd.New(),
		deleteCmd.New(),
		lsCmd.New(),
		newCmd.New(),
		rmCmd.New(),
		showCmd.New(),
		syncCmd.New(),
		versionCmd.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}
