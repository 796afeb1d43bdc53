package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit

	// infoLogger wraps informative messages to os.Stdout without cluttering expected output in tests.
	// To be used instead of fmt.Printf(os.Stdout, ...)
	infoLogger = log.New(os.Stdout, "", 0)

	errorPrefix = color.New(color.FgRed).Sprint("Error:")
)

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalln(errorPrefix, msg)
	} else {
		logFatalf("%s %v", errorPrefix, fmt.Errorf(msg+": %w", err))
	}
}
