package cmd

import (
	"github.com/baletools/bale/pkg/core"
	"github.com/baletools/bale/pkg/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <archive-or-repo>",
	Short: "List the tags held by an archive",
	Long: `List the tags held by an archive, most recent last.

The argument is either an archive file or an expanded repository directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var infos []model.TagInfo
		err := withArchive(args[0], func(a *core.Archive) error {
			var err error
			infos, err = a.ListTags()
			return err
		})
		if err != nil {
			wrapFatalln("list tags", err)
			return
		}
		for _, info := range infos {
			infoLogger.Println(info.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
