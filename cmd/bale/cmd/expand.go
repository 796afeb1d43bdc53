package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand <archive-file> <repo-directory>",
	Short: "Expand an archive into a repository directory",
	Long: `Expand an archive into a repository directory.

The expanded repository supports faster list and update operations than the
archive file, and can be operated on with borg directly. Collapse folds it
back into a single file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		archiveFile, repoDir := args[0], args[1]
		err := withArchive(archiveFile, func(a *core.Archive) error {
			return a.Expand(repoDir)
		})
		if err != nil {
			wrapFatalln("expand archive", err)
			return
		}
		infoLogger.Println("expanded archive into", repoDir)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
