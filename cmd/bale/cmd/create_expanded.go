package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var createExpandedCmd = &cobra.Command{
	Use:   "create-expanded <repo-directory> <source-dir> [-- <borg-create-options>...]",
	Short: "Create a new expanded archive from a directory",
	Long: `Create a new expanded archive from a directory.

An expanded archive is a repository directory rather than a single file. It
supports efficient repeated updates and can be collapsed into an archive file
with the collapse command when done.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		repoDir, sourceDir := args[0], args[1]
		if !confirmOverwrite(repoDir) {
			osExit(0)
			return
		}
		err := withArchive(repoDir, func(a *core.Archive) error {
			return a.Create(sourceDir, params.archive.Encryption, true, args[2:]...)
		})
		if err != nil {
			wrapFatalln("create expanded archive", err)
			return
		}
		infoLogger.Println("created expanded archive", repoDir)
	},
}

func init() {
	addEncryptionFlag(createExpandedCmd)
	addForceFlag(createExpandedCmd)
	rootCmd.AddCommand(createExpandedCmd)
}
