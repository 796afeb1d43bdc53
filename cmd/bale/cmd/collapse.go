package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var collapseCmd = &cobra.Command{
	Use:   "collapse <repo-directory> <archive-file>",
	Short: "Collapse an expanded repository back into a single-file archive",
	Long: `Collapse an expanded repository back into a single-file archive.

The repository directory is the output of the expand or create-expanded
commands. It is deleted after the archive file is written, along with the
engine's cache and security side-files, unless --keep-repo is given.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		repoDir, archiveFile := args[0], args[1]
		if !confirmOverwrite(archiveFile) {
			osExit(0)
			return
		}
		err := withArchive(archiveFile, func(a *core.Archive) error {
			return a.Collapse(repoDir, params.archive.KeepRepo)
		})
		if err != nil {
			wrapFatalln("collapse repository", err)
			return
		}
		infoLogger.Println("collapsed repository into", archiveFile)
	},
}

func init() {
	addKeepRepoFlag(collapseCmd)
	addForceFlag(collapseCmd)
	rootCmd.AddCommand(collapseCmd)
}
