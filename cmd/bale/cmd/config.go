package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Log level (info, debug, none)
	Borg     string `json:"borg" yaml:"borg"`         // Name or path of the borg binary
	Scratch  string `json:"scratch" yaml:"scratch"`   // Fixed scratch directory, mainly for debugging
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setBaleParams(flags *flagsT) {
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.borg == "" {
		flags.root.borg = c.Borg
	}
	if flags.root.scratch == "" {
		flags.root.scratch = c.Scratch
	}
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the bale config",
	Long: `Commands to manage the bale CLI config.

Configuration for bale is the small set of flags that do not change across
runs, analogous to "git config ...".`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
