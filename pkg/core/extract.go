package core

import (
	"path/filepath"

	"github.com/baletools/bale/pkg/status"
	"go.uber.org/zap"
)

// Extract restores the content of a snapshot into outputDir. An empty
// tag selects the most recent snapshot.
func (a *Archive) Extract(outputDir, tag string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return status.ErrValidation.Wrap(err)
	}
	if err := a.fs.MkdirAll(outputDir, 0755); err != nil {
		return status.ErrExtract.Wrap(err)
	}

	if a.repoIsTemp {
		if err := a.expandIntoRepo(); err != nil {
			return status.ErrExtract.Wrap(err)
		}
	}
	if tag == "" {
		tag, err = a.engine.MostRecentTag(a.repoPath)
		if err != nil {
			return status.ErrExtract.Wrap(err)
		}
	}
	if err := a.engine.ExtractSnapshot(a.repoPath, tag, outputDir); err != nil {
		return status.ErrExtract.Wrap(err)
	}
	a.l.Info("snapshot extracted",
		zap.String("tag", tag),
		zap.String("output", outputDir),
	)
	return nil
}
