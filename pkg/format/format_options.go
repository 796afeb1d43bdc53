package format

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Packer compresses repository directories into archive files and back
type Packer struct {
	fs    afero.Afero
	l     *zap.Logger
	write Format
}

// Option is a functor to build a Packer with some options
type Option func(*Packer)

// New builds a Packer for the host filesystem
func New(opts ...Option) *Packer {
	p := &Packer{
		fs: afero.Afero{Fs: afero.NewOsFs()},
		l:  zap.NewNop(),
	}
	for _, apply := range opts {
		apply(p)
	}
	return p
}

// Logger injects a logging facility into archive operations
func Logger(l *zap.Logger) Option {
	return func(p *Packer) {
		if l != nil {
			p.l = l
		}
	}
}

// WithFs overrides the filesystem used for archive file access
func WithFs(fs afero.Fs) Option {
	return func(p *Packer) {
		p.fs = afero.Afero{Fs: fs}
	}
}

// WriteFormat forces the container format for new archives instead of
// probing the host tools
func WriteFormat(f Format) Option {
	return func(p *Packer) {
		p.write = f
	}
}
