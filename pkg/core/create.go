package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// firstTag is the tag given to the initial snapshot of a new archive.
const firstTag = "1"

// Create initializes a repository, takes the initial snapshot of
// sourceDir tagged "1", and compresses the repository into the bound
// archive file. With expanded set, the positional path names a
// repository directory instead: the repository is left uncompressed at
// that location and no archive file is produced.
//
// encryption is passed through to the repository initialization
// ("none" unless the caller says otherwise); extra carries additional
// engine options verbatim.
func (a *Archive) Create(sourceDir, encryption string, expanded bool, extra ...string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if ok, _ := a.fs.DirExists(sourceDir); !ok {
		return status.ErrValidation.Wrapf("source directory %q does not exist", sourceDir)
	}

	if expanded {
		// the bound path names the repository itself, which outlives
		// the session
		if a.archivePath != "" {
			a.repoPath = a.archivePath
			a.archivePath = ""
		}
		a.repoIsTemp = false
	}

	if err := a.engine.Init(a.repoPath, encryption, extra...); err != nil {
		return status.ErrCreation.Wrap(err)
	}
	a.repoExpanded = true
	if err := a.engine.CreateSnapshot(a.repoPath, firstTag, sourceDir); err != nil {
		return status.ErrCreation.Wrap(err)
	}
	a.l.Info("initial snapshot created",
		zap.String("source", sourceDir),
		zap.String("tag", firstTag),
	)

	if expanded {
		return nil
	}
	if err := a.packer.Compress(a.repoPath, a.archivePath); err != nil {
		return status.ErrCreation.Wrap(err)
	}
	a.reportArchiveSize()
	return nil
}
