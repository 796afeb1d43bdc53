package borg

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Engine invokes one borg binary
type Engine struct {
	bin string
	fs  afero.Afero
	l   *zap.Logger
}

// Option is a functor to build an Engine with some options
type Option func(*Engine)

// New builds an Engine resolving "borg" through PATH
func New(opts ...Option) *Engine {
	e := &Engine{
		bin: "borg",
		fs:  afero.Afero{Fs: afero.NewOsFs()},
		l:   zap.NewNop(),
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}

// Binary overrides the borg binary name or path
func Binary(bin string) Option {
	return func(e *Engine) {
		if bin != "" {
			e.bin = bin
		}
	}
}

// Logger injects a logging facility into engine invocations
func Logger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// WithFs overrides the filesystem used for lock checks and side-file purges
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = afero.Afero{Fs: fs}
	}
}

// BinaryName reports the configured borg binary
func (e *Engine) BinaryName() string {
	return e.bin
}
