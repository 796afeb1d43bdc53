package core

import (
	"github.com/baletools/bale/pkg/model"
	"github.com/baletools/bale/pkg/status"
)

// ListTags returns the snapshots held by the archive, oldest first,
// with their creation times.
func (a *Archive) ListTags() ([]model.TagInfo, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	if a.repoIsTemp {
		if err := a.expandIntoRepo(); err != nil {
			return nil, status.ErrArchive.Wrap(err)
		}
	}
	infos, err := a.engine.ListTagInfo(a.repoPath)
	if err != nil {
		return nil, status.ErrArchive.Wrap(err)
	}
	return infos, nil
}
