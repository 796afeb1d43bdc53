package core

import (
	"github.com/baletools/bale/pkg/borg"
	"github.com/baletools/bale/pkg/format"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Archive binds an archive file and a repository directory to the
// external tools operating on them.
type Archive struct {
	archivePath  string
	repoPath     string
	repoIsTemp   bool
	repoExpanded bool
	mounted      bool
	sqfsMounted  bool

	scratchRoot string
	scratch     string

	fs     afero.Afero
	engine *borg.Engine
	packer *format.Packer
	l      *zap.Logger
}

// ArchiveOption modifies an Archive at construction time.
type ArchiveOption func(*Archive)

func defaultArchive() *Archive {
	return &Archive{
		fs: afero.Afero{Fs: afero.NewOsFs()},
		l:  zap.NewNop(),
	}
}

// Logger sets the logger for the archive and, unless overridden, for
// the engine and packer it builds.
func Logger(l *zap.Logger) ArchiveOption {
	return func(a *Archive) {
		if l != nil {
			a.l = l
		}
	}
}

// Repo binds an existing repository directory, bypassing the scratch
// repository an archive-bound session would otherwise create.
func Repo(dir string) ArchiveOption {
	return func(a *Archive) {
		a.repoPath = dir
	}
}

// ScratchRoot pins the session scratch directory to a fixed location
// instead of a fresh directory under the system temp dir. Intended for
// debugging.
func ScratchRoot(dir string) ArchiveOption {
	return func(a *Archive) {
		a.scratchRoot = dir
	}
}

// WithEngine overrides the borg engine.
func WithEngine(e *borg.Engine) ArchiveOption {
	return func(a *Archive) {
		if e != nil {
			a.engine = e
		}
	}
}

// WithPacker overrides the packer used to compress and decompress the
// repository.
func WithPacker(p *format.Packer) ArchiveOption {
	return func(a *Archive) {
		if p != nil {
			a.packer = p
		}
	}
}

// WithFs overrides the file system abstraction, primarily for testing.
func WithFs(fs afero.Fs) ArchiveOption {
	return func(a *Archive) {
		if fs != nil {
			a.fs = afero.Afero{Fs: fs}
		}
	}
}
