package core

import (
	"os"
	"path/filepath"

	"github.com/baletools/bale/internal/rand"
	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Session scopes the scratch space of an Archive. Operations must run
// between Acquire and Close. Close is safe to call more than once.
type Session struct {
	a      *Archive
	closed bool
}

// Acquire creates the session scratch directory and resolves the
// repository the operations will work on: either the persistent
// repository the Archive was bound to, after validating it, or a
// temporary repository inside the scratch directory.
func (a *Archive) Acquire() (*Session, error) {
	if a.scratch != "" {
		return nil, status.ErrArchive.WrapMessage("a session is already active on this archive")
	}

	var scratch string
	if a.scratchRoot != "" {
		scratch = a.scratchRoot
		if err := a.fs.MkdirAll(scratch, 0700); err != nil {
			return nil, status.ErrArchive.Wrap(err)
		}
	} else {
		scratch = filepath.Join(os.TempDir(), scratchPrefix+rand.LetterString(10))
		if err := a.fs.MkdirAll(scratch, 0700); err != nil {
			return nil, status.ErrArchive.Wrap(err)
		}
	}

	if a.repoPath != "" {
		if !a.engine.IsRepo(a.repoPath) {
			_ = a.fs.RemoveAll(scratch)
			return nil, status.ErrRepo.Wrapf("invalid repository path supplied: %q", a.repoPath)
		}
		a.repoIsTemp = false
	} else {
		// not created here: borg init and unsquashfs both insist on
		// creating the directory themselves
		a.repoPath = filepath.Join(scratch, "borg-repo")
		a.repoIsTemp = true
	}

	a.scratch = scratch
	a.repoExpanded = false
	a.l.Debug("session acquired",
		zap.String("scratch", scratch),
		zap.String("repo", a.repoPath),
		zap.Bool("temporary", a.repoIsTemp),
	)
	return &Session{a: a}, nil
}

// Close tears down the session scratch space. When a snapshot mounted
// during the session is still attached, teardown is skipped entirely:
// the mounted FUSE process needs the repository, and Unmount removes
// the leftovers through the sidecar record.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	a := s.a

	if a.mounted {
		a.l.Debug("snapshot still mounted, leaving scratch space in place",
			zap.String("scratch", a.scratch),
		)
		a.scratch = ""
		return nil
	}

	if a.sqfsMounted {
		a.unmountSquashfs(a.repoPath)
	}
	if a.repoIsTemp {
		a.engine.PurgeSideFiles(a.repoPath)
		a.engine.DeleteRepo(a.repoPath)
	}

	scratch := a.scratch
	a.scratch = ""
	if err := a.fs.RemoveAll(scratch); err != nil {
		a.l.Warn("could not remove scratch directory", zap.String("scratch", scratch), zap.Error(err))
		return status.ErrArchive.Wrap(err)
	}
	return nil
}
