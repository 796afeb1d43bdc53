/*
Package bale provides CLI tooling to manage directory snapshots as
single-file archives.

Bale builds on the borg backup engine: every archive is a compressed
borg repository holding any number of tagged snapshots of a directory
tree. The bale CLI covers the day-to-day verbs (create, update, list,
extract, mount), while power users can expand an archive into a plain
repository directory, work on it with borg directly, and collapse it
back into a single file.

All heavy lifting (deduplication, compression, chunking, FUSE mounts)
is delegated to external tools: borg, tar, zstd/pigz/gzip, and
optionally mksquashfs/unsquashfs for the squashfs container format.
*/
package bale
