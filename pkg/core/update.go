package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Update takes a new snapshot of sourceOrRepo and folds it into the
// archive. An empty tag auto-increments from the number of existing
// snapshots; an explicit tag that already exists is refused.
//
// When sourceOrRepo is itself a repository directory, no snapshot is
// taken: the repository is simply recompressed into the bound archive
// file, syncing the archive with changes made on the expanded copy.
func (a *Archive) Update(sourceOrRepo, tag string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	sourceOrRepo, err := filepath.Abs(sourceOrRepo)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if ok, _ := a.fs.DirExists(sourceOrRepo); !ok {
		return status.ErrValidation.Wrapf("source directory %q does not exist", sourceOrRepo)
	}

	fromRepo := a.engine.IsRepo(sourceOrRepo)
	if fromRepo && a.archivePath == "" {
		return status.ErrValidation.WrapMessage("only one of the update target and the source may be a repository directory")
	}
	if fromRepo {
		a.repoPath = sourceOrRepo
		a.repoIsTemp = false
		a.l.Debug("source is a repository, syncing archive without snapshotting",
			zap.String("repo", sourceOrRepo),
		)
	}

	if a.repoIsTemp {
		if err := a.expandIntoRepo(); err != nil {
			return status.ErrUpdate.Wrap(err)
		}
	}

	if !fromRepo {
		if a.engine.Locked(a.repoPath) {
			return status.ErrUpdate.Wrapf(
				"repository %q is locked, most likely because a snapshot is mounted; unmount it and retry",
				a.repoPath,
			)
		}
		next, err := a.engine.NextTag(a.repoPath, tag)
		if err != nil {
			return status.ErrUpdate.Wrap(err)
		}
		if err := a.engine.CreateSnapshot(a.repoPath, next, sourceOrRepo); err != nil {
			return status.ErrUpdate.Wrap(err)
		}
		a.l.Info("snapshot added",
			zap.String("source", sourceOrRepo),
			zap.String("tag", next),
		)
	}

	if a.archivePath == "" {
		return nil
	}
	if err := a.packer.Compress(a.repoPath, a.archivePath); err != nil {
		return status.ErrUpdate.Wrap(err)
	}
	a.reportArchiveSize()
	return nil
}
