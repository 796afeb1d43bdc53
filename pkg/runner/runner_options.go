package runner

import (
	"io"

	"go.uber.org/zap"
)

// Option is a functor to tune a command or pipeline invocation
type Option func(*settings)

type settings struct {
	dir            string
	env            []string
	stdin          io.Reader
	stdout         io.Writer
	capture        bool
	suppressStderr bool
	noCheck        bool
	l              *zap.Logger
}

func newSettings(opts []Option) *settings {
	o := &settings{l: zap.NewNop()}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithDir runs the command from the given working directory,
// to control the relative-path behavior of tools like tar
func WithDir(dir string) Option {
	return func(o *settings) {
		o.dir = dir
	}
}

// WithEnv appends KEY=VALUE entries to the inherited environment
func WithEnv(kv ...string) Option {
	return func(o *settings) {
		o.env = append(o.env, kv...)
	}
}

// WithStdin feeds the command (or the first pipeline stage) from r
func WithStdin(r io.Reader) Option {
	return func(o *settings) {
		o.stdin = r
	}
}

// WithStdout streams the command (or last stage) output to w
func WithStdout(w io.Writer) Option {
	return func(o *settings) {
		o.stdout = w
	}
}

// WithCapture collects stdout and stderr into the Result instead of relaying them
func WithCapture() Option {
	return func(o *settings) {
		o.capture = true
	}
}

// WithSuppressStderr discards the diagnostic stream entirely
func WithSuppressStderr() Option {
	return func(o *settings) {
		o.suppressStderr = true
	}
}

// WithNoCheck disables failure checking: non-zero exits are reported
// in the Result, not as errors
func WithNoCheck() Option {
	return func(o *settings) {
		o.noCheck = true
	}
}

// WithLogger injects a logging facility into command execution
func WithLogger(l *zap.Logger) Option {
	return func(o *settings) {
		if l != nil {
			o.l = l
		}
	}
}
