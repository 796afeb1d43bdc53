package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var mountCmd = &cobra.Command{
	Use:   "mount <archive-file> <mount-dir>",
	Short: "Mount a snapshot read-only",
	Long: `Mount a snapshot read-only through the engine's FUSE filesystem.

Without --tag the most recent snapshot is mounted. The mount directory is
created if absent. The backing scratch repository stays alive until the
matching umount, which may run from a different process.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		archiveFile, mountDir := args[0], args[1]
		err := withArchive(archiveFile, func(a *core.Archive) error {
			return a.Mount(mountDir, params.archive.Tag)
		})
		if err != nil {
			wrapFatalln("mount snapshot", err)
			return
		}
		infoLogger.Println("mounted at", mountDir)
	},
}

func init() {
	addTagFlag(mountCmd, "Specific tag to mount (default: latest)")
	rootCmd.AddCommand(mountCmd)
}
