package borg

import (
	"strconv"

	"github.com/baletools/bale/pkg/status"
)

// MostRecentTag resolves the latest snapshot name in repo
func (e *Engine) MostRecentTag(repo string) (string, error) {
	tags, err := e.ListTags(repo)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", status.ErrNoTags.Wrapf("repository %s", repo)
	}
	return tags[len(tags)-1], nil
}

// NextTag picks the tag for a new snapshot.
//
// An explicit tag is returned as-is unless it already exists. Otherwise
// the tag is the smallest decimal counter starting at count+1 that is
// not in use: users may have set arbitrary tags by hand, so the counter
// skips forward past collisions.
func (e *Engine) NextTag(repo, explicit string) (string, error) {
	tags, err := e.ListTags(repo)
	if err != nil {
		return "", err
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		seen[tag] = struct{}{}
	}
	if explicit != "" {
		if _, ok := seen[explicit]; ok {
			return "", status.ErrDuplicateTag.Wrapf("tag %q already exists", explicit)
		}
		return explicit, nil
	}
	for next := len(seen) + 1; ; next++ {
		candidate := strconv.Itoa(next)
		if _, ok := seen[candidate]; !ok {
			return candidate, nil
		}
	}
}
