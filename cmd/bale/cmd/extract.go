package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive-file> <output-dir>",
	Short: "Extract a snapshot into a directory",
	Long: `Extract a snapshot into a directory.

Without --tag the most recent snapshot is extracted. If the output directory
already exists you are prompted before its contents are overwritten.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		archiveFile, outputDir := args[0], args[1]
		if !confirmOverwrite(outputDir) {
			osExit(0)
			return
		}
		err := withArchive(archiveFile, func(a *core.Archive) error {
			return a.Extract(outputDir, params.archive.Tag)
		})
		if err != nil {
			wrapFatalln("extract snapshot", err)
			return
		}
		infoLogger.Println("extracted into", outputDir)
	},
}

func init() {
	addTagFlag(extractCmd, "Specific tag to extract (default: latest)")
	addForceFlag(extractCmd)
	rootCmd.AddCommand(extractCmd)
}
