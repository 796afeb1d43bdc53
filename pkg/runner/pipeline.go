package runner

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Stage is one command in a pipeline
type Stage struct {
	Name string
	Args []string
}

func (s Stage) String() string {
	return commandLine(s.Name, s.Args)
}

// Pipeline executes an ordered set of commands, the output of each stage
// feeding the input of the next through an OS pipe.
//
// The parent's pipe handles are closed as soon as all stages have started,
// so downstream stages see EOF promptly and unread pipe buffers cannot
// deadlock the run. After all stages finish, with checking enabled, the
// first failing stage is identified in the returned error along with its
// diagnostic output.
func Pipeline(stages []Stage, opts ...Option) (Result, error) {
	if len(stages) == 0 {
		return Result{}, status.ErrCommand.WrapMessage("pipeline requires at least one command")
	}
	o := newSettings(opts)

	cmds := make([]*exec.Cmd, len(stages))
	stderrBufs := make([]bytes.Buffer, len(stages))
	for i, stage := range stages {
		cmd := exec.Command(stage.Name, stage.Args...) // #nosec
		cmd.Dir = o.dir
		if len(o.env) > 0 {
			cmd.Env = append(cmd.Environ(), o.env...)
		}
		if o.suppressStderr {
			cmd.Stderr = io.Discard
		} else {
			cmd.Stderr = &stderrBufs[i]
		}
		cmds[i] = cmd
	}

	cmds[0].Stdin = o.stdin
	last := len(cmds) - 1
	var outBuf bytes.Buffer
	switch {
	case o.capture:
		cmds[last].Stdout = &outBuf
	case o.stdout != nil:
		cmds[last].Stdout = o.stdout
	default:
		cmds[last].Stdout = os.Stdout
	}

	pipes := make([]*os.File, 0, 2*last)
	for i := 0; i < last; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(pipes)
			return Result{}, status.ErrCommand.Wrapf("pipeline pipe: %v", err)
		}
		cmds[i].Stdout = pw
		cmds[i+1].Stdin = pr
		pipes = append(pipes, pr, pw)
	}

	o.l.Debug("running pipeline", zap.String("stages", describeStages(stages)), zap.String("dir", o.dir))

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			closeAll(pipes)
			for j := 0; j < i; j++ {
				_ = cmds[j].Wait()
			}
			if isNotFound(err) {
				return Result{}, status.ErrCommandNotFound.Wrapf("%s: %v", stages[i], err)
			}
			return Result{}, status.ErrCommand.Wrapf("start %s: %v", stages[i], err)
		}
	}
	closeAll(pipes)

	codes := make([]int, len(cmds))
	for i, cmd := range cmds {
		if err := cmd.Wait(); err != nil {
			codes[i] = cmd.ProcessState.ExitCode()
		}
	}

	res := Result{
		ExitCode: codes[last],
		Stdout:   outBuf.String(),
		Stderr:   stderrBufs[last].String(),
	}
	if !o.noCheck {
		for i, code := range codes {
			if code == 0 {
				continue
			}
			failed := Result{ExitCode: code, Stdout: res.Stdout, Stderr: stderrBufs[i].String()}
			if i != last && res.Stderr != "" {
				failed.Stderr = strings.TrimSpace(failed.Stderr + "\n" + res.Stderr)
			}
			return res, commandError(stages[i].String(), failed)
		}
	}
	return res, nil
}

func describeStages(stages []Stage) string {
	parts := make([]string, 0, len(stages))
	for _, stage := range stages {
		parts = append(parts, stage.String())
	}
	return strings.Join(parts, " | ")
}

func closeAll(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
