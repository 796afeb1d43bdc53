package status

import (
	"fmt"
	"testing"

	"github.com/baletools/bale/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsArchiveError(t *testing.T) {
	assert.True(t, IsArchiveError(ErrUpdate.WrapMessage("repository is locked")))
	assert.True(t, IsArchiveError(ErrUpdate.Wrap(ErrDuplicateTag.WrapMessage(`tag "3"`))))
	assert.False(t, IsArchiveError(fmt.Errorf("some unrelated error")))
	assert.False(t, IsArchiveError(nil))
}

func TestSpecificMatchSurvivesRewrapping(t *testing.T) {
	err := ErrUpdate.Wrap(ErrDuplicateTag.WrapMessage(`tag "3"`))
	assert.True(t, errors.Is(err, ErrUpdate))
	assert.True(t, errors.Is(err, ErrDuplicateTag))
	assert.False(t, errors.Is(err, ErrMount))
}
