package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bale",
	Short: "Bale manages directory snapshots as single-file archives",
	Long: `Bale wraps the borg backup engine to manage versioned snapshots of a
directory tree behind a single compressed archive file.

An archive holds any number of tagged snapshots. Day-to-day use is a handful of
verbs: create an archive from a directory, update it with the directory's
current state, list the tags it holds, and extract or mount any tag. For heavy
update traffic the archive can be expanded into a repository directory and
collapsed back into a single file when done.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addBorgBinaryFlag(rootCmd)
	addScratchFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("borg", "borg")
	if os.Getenv("BALE_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("BALE_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.bale")
		viper.AddConfigPath("/etc/bale")
		viper.SetConfigName("bale")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	_ = viper.ReadInConfig()

	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setBaleParams(&params)
}
