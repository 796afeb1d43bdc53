// Package model describes the state bale persists on disk and the
// engine output it parses: the mount-record sidecar linking a mount
// point to its temporary repository, and tag listings.
package model
