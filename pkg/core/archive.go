package core

import (
	"path/filepath"
	"strings"

	"github.com/baletools/bale/pkg/borg"
	"github.com/baletools/bale/pkg/format"
	"github.com/baletools/bale/pkg/runner"
	"github.com/baletools/bale/pkg/status"
	"github.com/docker/go-units"
	"go.uber.org/zap"
)

// scratchPrefix marks scratch directories created by Acquire, so that
// Unmount can recognize and remove a whole scratch tree recorded in a
// sidecar file.
const scratchPrefix = "bale-"

// New builds an Archive bound to the given path.
//
// When archiveOrRepo names an existing directory and no repository was
// supplied through an option, the path is taken to be a repository
// directory and the archive slot is left empty. Any other non-empty
// path names the archive file. The path may be empty for operations
// that need neither, such as Unmount.
func New(archiveOrRepo string, opts ...ArchiveOption) (*Archive, error) {
	a := defaultArchive()
	for _, apply := range opts {
		apply(a)
	}
	if a.engine == nil {
		a.engine = borg.New(borg.Logger(a.l), borg.WithFs(a.fs.Fs))
	}
	if a.packer == nil {
		a.packer = format.New(format.Logger(a.l), format.WithFs(a.fs.Fs))
	}

	if archiveOrRepo != "" {
		abs, err := filepath.Abs(archiveOrRepo)
		if err != nil {
			return nil, status.ErrValidation.Wrap(err)
		}
		isDir, _ := a.fs.DirExists(abs)
		if isDir && a.repoPath == "" {
			a.repoPath = abs
		} else {
			a.archivePath = abs
		}
	}
	if a.repoPath != "" {
		abs, err := filepath.Abs(a.repoPath)
		if err != nil {
			return nil, status.ErrValidation.Wrap(err)
		}
		a.repoPath = abs
	}

	if err := a.checkCommands(); err != nil {
		return nil, err
	}
	return a, nil
}

// checkCommands verifies that the external tools every operation relies
// on are resolvable. Compressor availability is negotiated later by the
// packer, since the set of acceptable tools depends on the format.
func (a *Archive) checkCommands() error {
	for _, bin := range []string{a.engine.BinaryName(), "tar"} {
		if !runner.Available(bin) {
			return status.ErrCommandNotFound.Wrapf("required command %q not found in PATH", bin)
		}
	}
	return nil
}

// ArchivePath returns the bound archive file, empty when the Archive
// operates directly on a repository directory.
func (a *Archive) ArchivePath() string {
	return a.archivePath
}

// RepoPath returns the repository directory currently in use. For
// archive-bound operations this is only meaningful inside a session.
func (a *Archive) RepoPath() string {
	return a.repoPath
}

// IsTemporary reports whether the current repository lives in session
// scratch space and will be discarded on Close.
func (a *Archive) IsTemporary() bool {
	return a.repoIsTemp
}

// Mounted reports whether a snapshot mounted through this Archive is
// still attached.
func (a *Archive) Mounted() bool {
	return a.mounted
}

func (a *Archive) requireSession() error {
	if a.scratch == "" {
		return status.ErrArchive.WrapMessage("no active session, Acquire must be called first")
	}
	return nil
}

// expandIntoRepo decompresses the bound archive into the scratch
// repository. Operations on archive-bound state call it before touching
// the repository; within a session the expansion happens at most once.
func (a *Archive) expandIntoRepo() error {
	if a.repoExpanded {
		return nil
	}
	a.l.Debug("expanding archive into scratch repository",
		zap.String("archive", a.archivePath),
		zap.String("repo", a.repoPath),
	)
	if err := a.packer.Decompress(a.archivePath, a.repoPath); err != nil {
		return err
	}
	a.repoExpanded = true
	return nil
}

func (a *Archive) reportArchiveSize() {
	fi, err := a.fs.Stat(a.archivePath)
	if err != nil {
		return
	}
	a.l.Info("archive written",
		zap.String("archive", a.archivePath),
		zap.String("size", units.HumanSize(float64(fi.Size()))),
	)
}

// unmountSquashfs detaches a squashfs loop mount left on a repository
// directory. It is a no-op when nothing is mounted there.
func (a *Archive) unmountSquashfs(dir string) {
	res, err := runner.Run("umount", []string{"-t", "squashfs", dir},
		runner.WithCapture(),
		runner.WithNoCheck(),
		runner.WithLogger(a.l),
	)
	if err != nil || res.ExitCode != 0 {
		a.l.Debug("no squashfs mount detached", zap.String("dir", dir), zap.Error(err))
	}
	a.sqfsMounted = false
}

// ownScratchDir widens a repository path recorded in a sidecar file to
// its enclosing scratch directory when the parent was created by
// Acquire, so that removal leaves nothing behind.
func ownScratchDir(repoPath string) string {
	parent := filepath.Dir(repoPath)
	if strings.HasPrefix(filepath.Base(parent), scratchPrefix) {
		return parent
	}
	return repoPath
}
