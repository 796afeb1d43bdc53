package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <archive-file> <source-dir> [-- <borg-create-options>...]",
	Short: "Create a new archive from a directory",
	Long: `Create a new archive from a directory.

The source directory becomes the initial snapshot, tagged "1", and the backing
repository is compressed into the archive file. Any additional arguments after
"--" are passed through to the engine's create command verbatim.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		archiveFile, sourceDir := args[0], args[1]
		if !confirmOverwrite(archiveFile) {
			osExit(0)
			return
		}
		err := withArchive(archiveFile, func(a *core.Archive) error {
			return a.Create(sourceDir, params.archive.Encryption, false, args[2:]...)
		})
		if err != nil {
			wrapFatalln("create archive", err)
			return
		}
		infoLogger.Println("created archive", archiveFile)
	},
}

func init() {
	addEncryptionFlag(createCmd)
	addForceFlag(createCmd)
	rootCmd.AddCommand(createCmd)
}
