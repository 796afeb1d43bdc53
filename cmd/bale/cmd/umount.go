package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

func doUnmount(mountDir string) {
	err := withArchive("", func(a *core.Archive) error {
		return a.Unmount(mountDir)
	})
	if err != nil {
		wrapFatalln("unmount snapshot", err)
		return
	}
	infoLogger.Println("unmounted", mountDir)
}

var umountCmd = &cobra.Command{
	Use:   "umount <mount-dir>",
	Short: "Unmount a previously mounted snapshot",
	Long: `Unmount a previously mounted snapshot.

Scratch state left behind by mount is located through the sidecar record in
the mount directory and cleaned up.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doUnmount(args[0])
	},
}

// unmount is a hidden alias: both spellings are common enough that
// rejecting one of them only causes friction
var unmountCmd = &cobra.Command{
	Use:    "unmount <mount-dir>",
	Short:  "Unmount a previously mounted snapshot",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doUnmount(args[0])
	},
}

func init() {
	rootCmd.AddCommand(umountCmd)
	rootCmd.AddCommand(unmountCmd)
}
