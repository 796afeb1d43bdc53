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

// seedTags writes the stub repository's tag journal directly, so tests
// can model repositories with hand-set, non-sequential tags
func seedTags(t *testing.T, e *Engine, repo string, tags ...string) {
	t.Helper()
	require.NoError(t, e.Init(repo, "none"))
	body := ""
	for _, tag := range tags {
		body += tag + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(repo, "tags"), []byte(body), 0644))
}

func TestMostRecentTag(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	seedTags(t, e, repo, "1", "2", "my-release")

	tag, err := e.MostRecentTag(repo)
	require.NoError(t, err)
	assert.Equal(t, "my-release", tag)
}

func TestMostRecentTagEmptyRepo(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	seedTags(t, e, repo)

	_, err := e.MostRecentTag(repo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNoTags))
}

func TestNextTagAutoIncrement(t *testing.T) {
	installStub(t)
	e := New()

	for _, fixture := range []struct {
		name string
		tags []string
		want string
	}{
		{name: "empty repository", tags: nil, want: "1"},
		{name: "sequential", tags: []string{"1", "2"}, want: "3"},
		{name: "hand-set hole", tags: []string{"1", "5"}, want: "3"},
		{name: "counter collision", tags: []string{"4", "5", "6"}, want: "7"},
		{name: "non-numeric tags", tags: []string{"alpha", "beta"}, want: "3"},
	} {
		t.Run(fixture.name, func(t *testing.T) {
			repo := filepath.Join(t.TempDir(), "repo")
			seedTags(t, e, repo, fixture.tags...)

			tag, err := e.NextTag(repo, "")
			require.NoError(t, err)
			assert.Equal(t, fixture.want, tag)
		})
	}
}

func TestNextTagExplicit(t *testing.T) {
	installStub(t)
	e := New()
	repo := filepath.Join(t.TempDir(), "repo")
	seedTags(t, e, repo, "1", "2")

	tag, err := e.NextTag(repo, "golden")
	require.NoError(t, err)
	assert.Equal(t, "golden", tag)

	_, err = e.NextTag(repo, "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrDuplicateTag))

	// the failed attempt must not have changed the tag set
	tags, err := e.ListTags(repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tags)
}
