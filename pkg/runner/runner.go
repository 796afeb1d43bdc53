// Package runner invokes external commands, either one at a time or as
// a shell-style pipeline, and normalizes their error reporting.
//
// Archive payloads may reach gigabytes, so pipelines connect stages with
// OS-level pipes: memory use stays bounded by pipe buffers, never the
// payload size.
package runner

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/baletools/bale/pkg/errors"
	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Result reports the outcome of a command or of the last stage of a pipeline
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Available reports whether a command can be found in PATH
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes a single command synchronously.
//
// With checking enabled (the default), a non-zero exit yields a
// status.ErrCommand carrying the captured stdout and stderr. A missing
// binary yields status.ErrCommandNotFound.
func Run(name string, args []string, opts ...Option) (Result, error) {
	o := newSettings(opts)

	cmd := exec.Command(name, args...) // #nosec
	cmd.Dir = o.dir
	if len(o.env) > 0 {
		cmd.Env = append(cmd.Environ(), o.env...)
	}
	cmd.Stdin = o.stdin

	var outBuf, errBuf bytes.Buffer
	switch {
	case o.capture:
		cmd.Stdout = &outBuf
	case o.stdout != nil:
		cmd.Stdout = o.stdout
	default:
		cmd.Stdout = os.Stdout
	}
	switch {
	case o.suppressStderr:
		cmd.Stderr = io.Discard
	case o.capture:
		cmd.Stderr = &errBuf
	default:
		// relay diagnostics live, but keep a copy for error reporting
		cmd.Stderr = io.MultiWriter(os.Stderr, &errBuf)
	}

	o.l.Debug("running command", zap.String("cmd", name), zap.Strings("args", args), zap.String("dir", o.dir))

	err := cmd.Run()
	res := Result{Stdout: outBuf.String(), Stderr: errBuf.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			if isNotFound(err) {
				return res, status.ErrCommandNotFound.Wrapf("%s: %v", name, err)
			}
			return res, status.ErrCommand.Wrapf("%s: %v", name, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	if res.ExitCode != 0 && !o.noCheck {
		return res, commandError(commandLine(name, args), res)
	}
	return res, nil
}

func isNotFound(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr)
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func commandError(cmdLine string, res Result) error {
	msg := fmt.Sprintf("%s: exit status %d", cmdLine, res.ExitCode)
	if out := strings.TrimSpace(res.Stdout); out != "" {
		msg += "\nstdout: " + out
	}
	if errOut := strings.TrimSpace(res.Stderr); errOut != "" {
		msg += "\nstderr: " + errOut
	}
	return status.ErrCommand.WrapMessage(msg)
}
