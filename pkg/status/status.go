// Package status exports the errors produced by bale packages.
//
// Every failure domain has one sentinel. Operations wrap low-level
// diagnostics into the matching sentinel, so callers may test broadly
// with IsArchiveError or specifically with errors.Is.
package status

import (
	"github.com/baletools/bale/pkg/errors"
)

var (
	// ErrArchive indicates a generic failure while compressing or
	// decompressing the single-file archive container
	ErrArchive = errors.New("archive operation failed")

	// ErrValidation indicates a bad input path or argument
	ErrValidation = errors.New("invalid argument")

	// ErrCreation indicates a failure while creating a new archive or repository
	ErrCreation = errors.New("failed to create archive")

	// ErrExpand indicates a failure while expanding an archive file into a repository directory
	ErrExpand = errors.New("failed to expand archive")

	// ErrExtract indicates a failure while extracting snapshot contents
	ErrExtract = errors.New("failed to extract archive")

	// ErrCollapse indicates a failure while collapsing a repository into an archive file
	ErrCollapse = errors.New("failed to collapse repository")

	// ErrMount indicates a failure while mounting or unmounting an archive
	ErrMount = errors.New("mount operation failed")

	// ErrUpdate indicates a failure while adding a snapshot or syncing an archive
	ErrUpdate = errors.New("failed to update archive")

	// ErrRepo indicates that a path does not hold a valid repository
	ErrRepo = errors.New("invalid repository path")

	// ErrDuplicateTag indicates that a user-supplied tag already exists in the repository
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrNoTags indicates an empty repository where at least one snapshot was expected
	ErrNoTags = errors.New("repository has no tags")

	// ErrCommand indicates a non-zero exit from an external command
	ErrCommand = errors.New("command execution failed")

	// ErrCommandNotFound indicates a required external tool missing from PATH
	ErrCommandNotFound = errors.New("required command not found")

	// ErrConfig indicates an invalid CLI configuration
	ErrConfig = errors.New("invalid configuration")
)

var all = []*errors.Error{
	ErrArchive,
	ErrValidation,
	ErrCreation,
	ErrExpand,
	ErrExtract,
	ErrCollapse,
	ErrMount,
	ErrUpdate,
	ErrRepo,
	ErrDuplicateTag,
	ErrNoTags,
	ErrCommand,
	ErrCommandNotFound,
	ErrConfig,
}

// IsArchiveError reports whether err belongs to the bale error taxonomy
func IsArchiveError(err error) bool {
	for _, sentinel := range all {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
