package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Collapse compresses an expanded repository directory into the bound
// archive file. Unless retainRepo is set, the repository directory is
// deleted afterwards, caches and security files included.
func (a *Archive) Collapse(repoDir string, retainRepo bool) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if !a.engine.IsRepo(repoDir) {
		return status.ErrCollapse.Wrapf("%q is not a valid repository directory", repoDir)
	}
	a.repoPath = repoDir
	a.repoIsTemp = false

	if err := a.packer.Compress(repoDir, a.archivePath); err != nil {
		return err
	}
	a.reportArchiveSize()

	if retainRepo {
		return nil
	}
	a.engine.PurgeSideFiles(repoDir)
	a.engine.DeleteRepo(repoDir)
	if err := a.fs.RemoveAll(repoDir); err != nil {
		a.l.Warn("could not remove collapsed repository directory",
			zap.String("repo", repoDir), zap.Error(err),
		)
	}
	return nil
}
