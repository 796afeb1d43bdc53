// Package core implements the archive lifecycle: creating, updating,
// expanding, collapsing, extracting, listing and mounting single-file
// archives backed by a borg repository.
//
// An Archive binds an archive file and/or a repository directory to a
// borg engine and a packer. Operations run inside a Session obtained
// from Acquire, which owns the scratch space and tears it down on
// Close unless a snapshot was left mounted.
package core
