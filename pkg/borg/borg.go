// Package borg wraps the Borg Backup command-line interface.
//
// Everything here is a thin contract over one external binary: exit
// codes and stderr text are part of that contract. The engine never
// mutates the ambient process environment; the prompt-suppression
// variables borg needs are threaded into each invocation.
package borg

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/baletools/bale/pkg/model"
	"github.com/baletools/bale/pkg/runner"
	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// suppressionEnv answers the interactive prompts borg would otherwise
// raise about relocated or unencrypted repositories
func suppressionEnv() []string {
	return []string{
		"BORG_RELOCATED_REPO_ACCESS_IS_OK=yes",
		"BORG_UNKNOWN_UNENCRYPTED_REPO_ACCESS_IS_OK=yes",
	}
}

func (e *Engine) run(args []string, opts ...runner.Option) (runner.Result, error) {
	opts = append([]runner.Option{
		runner.WithEnv(suppressionEnv()...),
		runner.WithLogger(e.l),
	}, opts...)
	return runner.Run(e.bin, args, opts...)
}

func snapshotSpec(repo, tag string) string {
	return repo + "::" + tag
}

// Init creates a fresh repository at repo. Extra options are passed to
// borg init verbatim.
func (e *Engine) Init(repo, encryption string, extra ...string) error {
	args := []string{"init", "--error", "--encryption", encryption}
	args = append(args, extra...)
	args = append(args, repo)
	_, err := e.run(args)
	return err
}

// CreateSnapshot records the current contents of sourceDir as a new
// snapshot named tag. Borg archives the path it is given, so the command
// runs from sourceDir's parent and archives its base name: extracted
// snapshots then carry a single leading directory component.
func (e *Engine) CreateSnapshot(repo, tag, sourceDir string) error {
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return err
	}
	_, err = e.run(
		[]string{"create", "--compression", "zstd,9", "--error", "--progress",
			snapshotSpec(repo, tag), filepath.Base(sourceDir)},
		runner.WithDir(filepath.Dir(sourceDir)),
	)
	return err
}

// ListTags reports the snapshot names in repo, in the engine's own
// insertion order, most recent last
func (e *Engine) ListTags(repo string) ([]string, error) {
	res, err := e.run(
		[]string{"list", "--error", "--format", "{archive}{NL}", repo},
		runner.WithCapture(), runner.WithSuppressStderr(),
	)
	if err != nil {
		return nil, err
	}
	return splitLines(res.Stdout), nil
}

// ListTagInfo is ListTags with each tag paired with its creation timestamp
func (e *Engine) ListTagInfo(repo string) ([]model.TagInfo, error) {
	res, err := e.run(
		[]string{"list", "--error", "--format", "{archive:<36} {time}{NL}", repo},
		runner.WithCapture(), runner.WithSuppressStderr(),
	)
	if err != nil {
		return nil, err
	}
	lines := splitLines(res.Stdout)
	infos := make([]model.TagInfo, 0, len(lines))
	for _, line := range lines {
		infos = append(infos, model.ParseTagLine(line))
	}
	return infos, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ExtractSnapshot unpacks the snapshot named tag into destDir
func (e *Engine) ExtractSnapshot(repo, tag, destDir string) error {
	_, err := e.run(
		[]string{"extract", "--error", "--progress", snapshotSpec(repo, tag)},
		runner.WithDir(destDir), runner.WithSuppressStderr(),
	)
	return err
}

// Mount exposes the snapshot named tag read-only at mountDir through
// borg's native FUSE mount
func (e *Engine) Mount(repo, tag, mountDir string) error {
	_, err := e.run([]string{"mount", "--error", snapshotSpec(repo, tag), mountDir})
	return err
}

// Umount releases a mount produced by Mount
func (e *Engine) Umount(mountDir string) error {
	_, err := e.run([]string{"umount", "--error", mountDir})
	return err
}

// DeleteRepo destroys the repository. Best effort: failures are
// reported in logs only, deletion runs on cleanup paths that must not
// block the primary operation.
func (e *Engine) DeleteRepo(repo string) {
	res, err := e.run(
		[]string{"delete", "--error", "--force", repo},
		runner.WithNoCheck(), runner.WithSuppressStderr(),
	)
	if err != nil || res.ExitCode != 0 {
		e.l.Debug("repository delete failed", zap.String("repo", repo), zap.Int("exit", res.ExitCode), zap.Error(err))
	}
}

// RepoInfo carries the side-file locations borg maintains for a repository
type RepoInfo struct {
	CachePath   string
	SecurityDir string
}

// Info queries the engine for repository metadata
func (e *Engine) Info(repo string) (RepoInfo, error) {
	res, err := e.run(
		[]string{"info", "--error", "--json", repo},
		runner.WithCapture(), runner.WithSuppressStderr(),
	)
	if err != nil {
		return RepoInfo{}, err
	}
	var payload struct {
		Cache struct {
			Path string `json:"path"`
		} `json:"cache"`
		SecurityDir string `json:"security_dir"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &payload); err != nil {
		return RepoInfo{}, status.ErrCommand.Wrapf("parse borg info output: %v", err)
	}
	return RepoInfo{CachePath: payload.Cache.Path, SecurityDir: payload.SecurityDir}, nil
}

// PurgeSideFiles removes the cache and security directories borg keeps
// outside the repository. Best effort: a failure here must never block
// the operation that triggered the cleanup.
func (e *Engine) PurgeSideFiles(repo string) {
	info, err := e.Info(repo)
	if err != nil {
		e.l.Debug("skipping side-file purge, no repository info", zap.String("repo", repo), zap.Error(err))
		return
	}
	for _, dir := range []string{info.CachePath, info.SecurityDir} {
		if dir == "" {
			continue
		}
		if err := e.fs.RemoveAll(dir); err != nil {
			e.l.Debug("side-file purge failed", zap.String("path", dir), zap.Error(err))
		}
	}
}

// Locked reports whether the repository carries borg's lock file, which
// usually means a mounted snapshot. This is a fast, friendlier pre-check:
// the engine itself still enforces locking.
func (e *Engine) Locked(repo string) bool {
	ok, err := e.fs.Exists(filepath.Join(repo, "lock.roster"))
	return err == nil && ok
}
