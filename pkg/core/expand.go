package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Expand decompresses the bound archive into repoDir, leaving a
// repository directory operable with borg directly.
func (a *Archive) Expand(repoDir string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if err := a.packer.Decompress(a.archivePath, repoDir); err != nil {
		return status.ErrExpand.Wrap(err)
	}
	a.l.Info("archive expanded",
		zap.String("archive", a.archivePath),
		zap.String("repo", repoDir),
	)
	return nil
}
