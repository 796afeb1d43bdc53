package cmd

import (
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long:  "Create a config to use for bale. Config file will be placed in $HOME/.bale/bale.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := user.Current()
		if user == nil || err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		config := CLIConfig{
			LogLevel: params.root.logLevel,
			Borg:     params.root.borg,
			Scratch:  params.root.scratch,
		}
		o, e := yaml.Marshal(config)
		if e != nil {
			wrapFatalln("serialize config to yaml", e)
			return
		}
		_ = os.Mkdir(filepath.Join(user.HomeDir, ".bale"), 0777)
		err = os.WriteFile(filepath.Join(user.HomeDir, ".bale", "bale.yaml"), o, 0666)
		if err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("config file created in", filepath.Join(user.HomeDir, ".bale", "bale.yaml"))
	},
}

func init() {
	configCmd.AddCommand(configGen)
}
