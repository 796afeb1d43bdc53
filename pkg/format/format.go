// Package format negotiates the container format of archive files:
// tar piped through an external compressor, or squashfs.
//
// The two formats are mutually exclusive per archive file. Writing picks
// the best format the host tools support; reading sniffs the file's
// magic bytes, so an archive produced on one host reads on any other.
package format

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/runner"
	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Format identifies the container format of an archive file
type Format int

const (
	// Auto selects the best format supported by the host tools
	Auto Format = iota

	// Tar is a pax tar stream piped through an external compressor
	Tar

	// SquashFS is a flat squashfs image, fully rewritten on each operation
	SquashFS
)

func (f Format) String() string {
	switch f {
	case Tar:
		return "tar"
	case SquashFS:
		return "squashfs"
	default:
		return "auto"
	}
}

// ParseFormat reads a format name from configuration
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "tar":
		return Tar, nil
	case "squashfs":
		return SquashFS, nil
	default:
		return Auto, status.ErrConfig.Wrapf("unknown archive format %q (want auto, tar or squashfs)", s)
	}
}

// squashfs superblock magic, little-endian
const squashfsMagic = "hsqs"

// compressor preference for tar archives, best first
var compressors = []struct {
	name       string
	compress   []string
	decompress []string
}{
	{name: "zstd", compress: []string{"zstd", "-9"}, decompress: []string{"zstd", "-d"}},
	{name: "pigz", compress: []string{"pigz", "-9"}, decompress: []string{"pigz", "-d"}},
	{name: "gzip", compress: []string{"gzip", "-9"}, decompress: []string{"gzip", "-d"}},
}

// WriteFormat picks the container format for a new archive: the configured
// format when one was forced, else squashfs when available, else tar
func (p *Packer) WriteFormat() Format {
	if p.write != Auto {
		return p.write
	}
	if runner.Available("mksquashfs") {
		return SquashFS
	}
	return Tar
}

// ReadFormat sniffs the format of an existing archive file from its first
// four bytes. Anything that does not carry the squashfs magic is tar.
func (p *Packer) ReadFormat(archivePath string) Format {
	f, err := p.fs.Open(archivePath)
	if err != nil {
		return Tar
	}
	defer f.Close()
	head := make([]byte, 4)
	if n, err := f.Read(head); err != nil || n < 4 {
		return Tar
	}
	if string(head) == squashfsMagic {
		return SquashFS
	}
	return Tar
}

// bestCompressor picks the compressor / decompressor command pair for
// tar archives, preferring zstd over pigz over gzip
func bestCompressor() (compress, decompress []string, err error) {
	for _, c := range compressors {
		if runner.Available(c.name) {
			return c.compress, c.decompress, nil
		}
	}
	return nil, nil, status.ErrCommandNotFound.WrapMessage(
		"no supported compression command found (tried: zstd, pigz, gzip)")
}

// Compress writes repoDir into a fresh archive file at archivePath
func (p *Packer) Compress(repoDir, archivePath string) error {
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return status.ErrArchive.Wrap(err)
	}
	switch p.WriteFormat() {
	case SquashFS:
		_, err = runner.Run("mksquashfs",
			[]string{repoDir, archivePath, "-quiet", "-noappend", "-no-xattrs"},
			runner.WithCapture(), runner.WithLogger(p.l))
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
	default:
		compress, _, err := bestCompressor()
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
		out, err := p.fs.Create(archivePath)
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
		defer out.Close()
		// pax keeps the tar stream reproducible across tar implementations
		_, err = runner.Pipeline([]runner.Stage{
			{Name: "tar", Args: []string{"--format=pax", "-cv", filepath.Base(repoDir)}},
			{Name: compress[0], Args: compress[1:]},
		},
			runner.WithDir(filepath.Dir(repoDir)),
			runner.WithStdout(out),
			runner.WithLogger(p.l),
		)
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
	}
	p.l.Debug("archive written", zap.String("path", archivePath), zap.Stringer("format", p.WriteFormat()))
	return nil
}

// Decompress expands the archive file at archivePath into repoDir
func (p *Packer) Decompress(archivePath, repoDir string) error {
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return status.ErrArchive.Wrap(err)
	}
	switch p.ReadFormat(archivePath) {
	case SquashFS:
		// unsquashfs creates the destination and refuses one that
		// already exists
		_, err = runner.Run("unsquashfs",
			[]string{"-no-progress", "-quiet", "-dest", repoDir, archivePath},
			runner.WithCapture(), runner.WithLogger(p.l))
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
	default:
		_, decompress, err := bestCompressor()
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
		if err = p.fs.MkdirAll(repoDir, 0755); err != nil {
			return status.ErrArchive.Wrap(err)
		}
		in, err := p.fs.Open(archivePath)
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
		defer in.Close()
		// the archive wraps the repository directory itself: strip that
		// leading component so repoDir becomes the repository root
		_, err = runner.Pipeline([]runner.Stage{
			{Name: decompress[0], Args: decompress[1:]},
			{Name: "tar", Args: []string{"-xf", "-", "-C", repoDir, "--strip-components=1"}},
		},
			runner.WithStdin(in),
			runner.WithLogger(p.l),
			runner.WithCapture(),
		)
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
	}
	return nil
}
