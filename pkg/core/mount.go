package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/model"
	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Mount attaches a snapshot read-only at mountDir. An empty tag selects
// the most recent snapshot.
//
// When mounting from an archive file, a sidecar record naming the
// scratch repository is written into mountDir first, so that a later
// Unmount, possibly from another process, can clean up the scratch
// space. A successful mount suppresses the session teardown, since the
// FUSE process keeps using the repository.
func (a *Archive) Mount(mountDir, tag string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	mountDir, err := filepath.Abs(mountDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if err := a.fs.MkdirAll(mountDir, 0755); err != nil {
		return status.ErrMount.Wrap(err)
	}

	if a.repoIsTemp {
		if err := model.WriteMountRecord(a.fs, mountDir, model.MountRecord{RepoPath: a.repoPath}); err != nil {
			return status.ErrMount.Wrap(err)
		}
		if err := a.expandIntoRepo(); err != nil {
			return status.ErrMount.Wrap(err)
		}
	}
	if tag == "" {
		tag, err = a.engine.MostRecentTag(a.repoPath)
		if err != nil {
			return status.ErrMount.Wrap(err)
		}
	}
	if err := a.engine.Mount(a.repoPath, tag, mountDir); err != nil {
		return status.ErrMount.Wrap(err)
	}
	a.mounted = true
	a.l.Info("snapshot mounted read-only",
		zap.String("tag", tag),
		zap.String("mountpoint", mountDir),
	)
	return nil
}

// Unmount detaches a snapshot mounted at mountDir. When a sidecar
// record points at a scratch repository left behind by Mount, the
// scratch space is removed along with the record.
func (a *Archive) Unmount(mountDir string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	mountDir, err := filepath.Abs(mountDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if ok, _ := a.fs.DirExists(mountDir); !ok {
		return status.ErrMount.Wrapf("mount directory %q does not exist", mountDir)
	}

	if err := a.engine.Umount(mountDir); err != nil {
		return status.ErrMount.Wrap(err)
	}
	a.mounted = false

	if !model.HasMountRecord(a.fs, mountDir) {
		return nil
	}
	rec, err := model.ReadMountRecord(a.fs, mountDir)
	if err != nil {
		return status.ErrMount.Wrap(err)
	}
	a.unmountSquashfs(rec.RepoPath)
	a.engine.PurgeSideFiles(rec.RepoPath)
	scratch := ownScratchDir(rec.RepoPath)
	if err := a.fs.RemoveAll(scratch); err != nil {
		return status.ErrMount.Wrap(err)
	}
	if err := model.RemoveMountRecord(a.fs, mountDir); err != nil {
		return status.ErrMount.Wrap(err)
	}
	a.l.Info("snapshot unmounted", zap.String("mountpoint", mountDir))
	return nil
}
