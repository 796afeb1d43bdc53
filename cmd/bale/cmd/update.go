package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <archive-or-repo> <source-dir-or-repo>",
	Short: "Update an archive with the current state of a directory",
	Long: `Update an archive with the current state of a directory.

Snapshots the source directory into the archive or expanded repository under
a new tag, auto-numbered unless --tag is given. When the source is itself an
expanded repository, the archive file is instead synced to the repository's
current state without taking a snapshot.

Only one of the two arguments may be an expanded repository directory.

Examples:

Update an archive file with changes to local data files:

    bale update my-data.bale my-data

Update an expanded repository with changes to local data files:

    bale update my-expanded-repo my-data

Sync an archive file with changes made on an expanded repository:

    bale update my-data.bale my-expanded-repo
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		archiveOrRepo, source := args[0], args[1]
		err := withArchive(archiveOrRepo, func(a *core.Archive) error {
			return a.Update(source, params.archive.Tag)
		})
		if err != nil {
			wrapFatalln("update archive", err)
			return
		}
		infoLogger.Println("updated", archiveOrRepo)
	},
}

func init() {
	addTagFlag(updateCmd, "Tag for this update (default: auto-numbering)")
	rootCmd.AddCommand(updateCmd)
}
