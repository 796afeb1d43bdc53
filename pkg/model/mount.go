package model

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// MountRecordFile is the name of the sidecar file written inside a mount
// directory when mounting from a temporary, archive-backed repository.
//
// A later unmount invocation runs with no in-memory state, so the sidecar
// is how it locates the scratch repository to clean up. The schema is one
// UTF-8 absolute path, no trailing metadata. The name is fixed by the
// on-disk format and must not change across versions.
const MountRecordFile = ".borg-repo"

// MountRecord links a mount directory to the temporary repository backing it
type MountRecord struct {
	RepoPath string
}

func mountRecordPath(mountDir string) string {
	return filepath.Join(mountDir, MountRecordFile)
}

// WriteMountRecord persists the record as a sidecar inside mountDir
func WriteMountRecord(fs afero.Afero, mountDir string, rec MountRecord) error {
	return fs.WriteFile(mountRecordPath(mountDir), []byte(rec.RepoPath), 0600)
}

// ReadMountRecord loads the sidecar from mountDir
func ReadMountRecord(fs afero.Afero, mountDir string) (MountRecord, error) {
	data, err := fs.ReadFile(mountRecordPath(mountDir))
	if err != nil {
		return MountRecord{}, err
	}
	return MountRecord{RepoPath: strings.TrimSpace(string(data))}, nil
}

// HasMountRecord reports whether mountDir carries a sidecar
func HasMountRecord(fs afero.Afero, mountDir string) bool {
	ok, err := fs.Exists(mountRecordPath(mountDir))
	return err == nil && ok
}

// RemoveMountRecord deletes the sidecar from mountDir
func RemoveMountRecord(fs afero.Afero, mountDir string) error {
	return fs.Remove(mountRecordPath(mountDir))
}
