package borg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baletools/bale/pkg/errors"
	"github.com/baletools/bale/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// borgStub is a shell double for the borg CLI implementing just enough of
// the wire contract: init refuses existing repositories with exit 2 and
// the documented diagnostic, list honors both format strings, info emits
// the side-file JSON. It also asserts that the prompt-suppression
// environment is threaded into every invocation.
const borgStub = `#!/bin/sh
[ "$BORG_RELOCATED_REPO_ACCESS_IS_OK" = yes ] || { echo "missing suppression env" >&2; exit 99; }
[ "$BORG_UNKNOWN_UNENCRYPTED_REPO_ACCESS_IS_OK" = yes ] || { echo "missing suppression env" >&2; exit 99; }
cmd="$1"; shift

last() { for a; do l="$a"; done; printf '%s' "$l"; }

case "$cmd" in
init)
  repo=$(last "$@")
  if [ -e "$repo/README" ]; then
    echo "A repository already exists at $repo." >&2
    exit 2
  fi
  mkdir -p "$repo" || exit 1
  echo "this is a borg repository" > "$repo/README"
  : > "$repo/tags"
  ;;
create)
  spec=""
  for a; do case "$a" in *::*) spec="$a";; esac; done
  repo=${spec%%::*}; tag=${spec#*::}
  [ -e "$repo/README" ] || { echo "Repository $repo does not exist." >&2; exit 2; }
  printf '%s\n' "$tag" >> "$repo/tags"
  ;;
list)
  fmt=""; repo=""
  while [ $# -gt 0 ]; do
    case "$1" in
      --format) fmt="$2"; shift;;
      --*) ;;
      *) repo="$1";;
    esac
    shift
  done
  [ -f "$repo/tags" ] || { echo "Repository $repo does not exist." >&2; exit 2; }
  while IFS= read -r tag; do
    case "$fmt" in
      *"{time}"*) printf '%-36s %s\n' "$tag" "Mon, 2026-08-24 10:11:12";;
      *) printf '%s\n' "$tag";;
    esac
  done < "$repo/tags"
  ;;
extract)
  spec=""
  for a; do case "$a" in *::*) spec="$a";; esac; done
  tag=${spec#*::}
  echo "$tag" > "extracted-$tag"
  ;;
mount)
  spec=""; dir=""
  for a; do case "$a" in *::*) spec="$a";; --*) ;; *) dir="$a";; esac; done
  touch "$dir/.stub-mounted"
  ;;
umount)
  dir=$(last "$@")
  rm -f "$dir/.stub-mounted"
  ;;
delete)
  repo=""
  for a; do case "$a" in --*) ;; *) repo="$a";; esac; done
  rm -f "$repo/README" "$repo/tags"
  ;;
info)
  repo=""
  for a; do case "$a" in --*) ;; *) repo="$a";; esac; done
  [ -e "$repo/README" ] || { echo "Repository $repo does not exist." >&2; exit 2; }
  printf '{"cache":{"path":"%s"},"security_dir":"%s"}\n' "$repo.cache" "$repo.security"
  ;;
*)
  echo "unknown command $cmd" >&2
  exit 64
  ;;
esac
`

// installStub puts the borg double first on PATH, keeping the system
// PATH behind it for the shell utilities the stub itself needs
func installStub(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "borg"), []byte(borgStub), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestInitAndIsRepo(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")

	require.NoError(t, e.Init(repo, "none"))
	assert.True(t, e.IsRepo(repo))

	// the probe refuses anything that is not already a repository...
	other := filepath.Join(t.TempDir(), "other")
	require.NoError(t, os.MkdirAll(other, 0755))
	assert.False(t, e.IsRepo(other))
	// ...but initializes it as a side effect, as the engine's init does
	assert.True(t, e.IsRepo(other))
}

func TestInitRefusesExistingRepo(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")

	require.NoError(t, e.Init(repo, "none"))
	err := e.Init(repo, "none")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommand))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateSnapshotAndListTags(t *testing.T) {
	installStub(t)
	e := New()
	work := t.TempDir()
	repo := filepath.Join(work, "repo")
	source := filepath.Join(work, "data")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, e.Init(repo, "none"))

	require.NoError(t, e.CreateSnapshot(repo, "1", source))
	require.NoError(t, e.CreateSnapshot(repo, "2", source))

	tags, err := e.ListTags(repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tags)

	infos, err := e.ListTagInfo(repo)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "1", infos[0].Name)
	assert.Equal(t, "2", infos[1].Name)
	assert.NotEmpty(t, infos[0].Time)
}

func TestListTagsOnMissingRepo(t *testing.T) {
	installStub(t)
	e := New()
	_, err := e.ListTags(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommand))
}

func TestExtractSnapshot(t *testing.T) {
	installStub(t)
	e := New()
	work := t.TempDir()
	repo := filepath.Join(work, "repo")
	out := filepath.Join(work, "out")
	require.NoError(t, os.MkdirAll(out, 0755))
	require.NoError(t, e.Init(repo, "none"))

	require.NoError(t, e.ExtractSnapshot(repo, "7", out))
	assert.FileExists(t, filepath.Join(out, "extracted-7"))
}

func TestMountUmount(t *testing.T) {
	installStub(t)
	e := New()
	work := t.TempDir()
	repo := filepath.Join(work, "repo")
	mnt := filepath.Join(work, "mnt")
	require.NoError(t, os.MkdirAll(mnt, 0755))
	require.NoError(t, e.Init(repo, "none"))

	require.NoError(t, e.Mount(repo, "1", mnt))
	assert.FileExists(t, filepath.Join(mnt, ".stub-mounted"))

	require.NoError(t, e.Umount(mnt))
	assert.NoFileExists(t, filepath.Join(mnt, ".stub-mounted"))
}

func TestDeleteRepo(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, e.Init(repo, "none"))

	e.DeleteRepo(repo)
	assert.NoFileExists(t, filepath.Join(repo, "README"))
}

func TestInfoAndPurgeSideFiles(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, e.Init(repo, "none"))

	info, err := e.Info(repo)
	require.NoError(t, err)
	assert.Equal(t, repo+".cache", info.CachePath)
	assert.Equal(t, repo+".security", info.SecurityDir)

	require.NoError(t, os.MkdirAll(info.CachePath, 0755))
	require.NoError(t, os.MkdirAll(info.SecurityDir, 0755))
	e.PurgeSideFiles(repo)
	assert.NoDirExists(t, info.CachePath)
	assert.NoDirExists(t, info.SecurityDir)

	// purging a missing repository is a silent no-op
	e.PurgeSideFiles(filepath.Join(t.TempDir(), "gone"))
}

func TestLocked(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, e.Init(repo, "none"))

	assert.False(t, e.Locked(repo))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "lock.roster"), []byte("{}"), 0644))
	assert.True(t, e.Locked(repo))
}
