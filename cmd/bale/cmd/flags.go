package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/baletools/bale/pkg/borg"
	"github.com/baletools/bale/pkg/core"
	"github.com/baletools/bale/pkg/dlogger"
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel string
		borg     string
		scratch  string
	}
	archive struct {
		Tag        string
		Encryption string
		KeepRepo   bool
		Force      bool
	}
}

var params flagsT

func addLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&params.root.logLevel, "loglevel", "",
		"The logging level (info, debug, none)")
}

func addBorgBinaryFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&params.root.borg, "borg", "",
		"Name or path of the borg binary")
}

func addScratchFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&params.root.scratch, "scratch", "",
		"Fixed scratch directory to use instead of a fresh temporary one")
}

func addTagFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVar(&params.archive.Tag, "tag", "", usage)
}

func addEncryptionFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&params.archive.Encryption, "encryption", "none",
		"Encryption mode passed to the repository initialization")
}

func addKeepRepoFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&params.archive.KeepRepo, "keep-repo", false,
		"Keep the repository directory after collapsing it into the archive")
}

func addForceFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&params.archive.Force, "force", "f", false,
		"Overwrite an existing target without prompting")
}

// newArchive builds a lifecycle controller from the global flags and config
func newArchive(path string, extra ...core.ArchiveOption) (*core.Archive, error) {
	logger, err := dlogger.GetLogger(params.root.logLevel)
	if err != nil {
		return nil, err
	}
	opts := []core.ArchiveOption{
		core.Logger(logger),
		core.WithEngine(borg.New(
			borg.Binary(params.root.borg),
			borg.Logger(logger),
		)),
	}
	if params.root.scratch != "" {
		opts = append(opts, core.ScratchRoot(params.root.scratch))
	}
	opts = append(opts, extra...)
	return core.New(path, opts...)
}

// withArchive runs op inside a scoped acquisition, guaranteeing teardown on
// every path
func withArchive(path string, op func(*core.Archive) error) error {
	a, err := newArchive(path)
	if err != nil {
		return err
	}
	s, err := a.Acquire()
	if err != nil {
		return err
	}
	if err := op(a); err != nil {
		_ = s.Close()
		return err
	}
	return s.Close()
}

// confirmOverwrite prompts before clobbering an existing target. The --force
// flag bypasses the prompt.
func confirmOverwrite(path string) bool {
	if params.archive.Force {
		return true
	}
	if _, err := os.Stat(path); err != nil {
		return true
	}
	fmt.Fprintf(os.Stderr, "%q already exists. Overwrite? [y/N] ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
