package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDoesNotMutateSentinel(t *testing.T) {
	sentinel := New("something failed")
	wrapped := sentinel.Wrap(fmt.Errorf("underlying cause"))

	require.NotSame(t, sentinel, wrapped)
	assert.Equal(t, "something failed", sentinel.Error())
	assert.Equal(t, "something failed: underlying cause", wrapped.Error())
	assert.Nil(t, sentinel.Unwrap())
}

func TestIsMatchesSentinelThroughChain(t *testing.T) {
	sentinel := New("op failed")
	other := New("op failed") // same text, different sentinel

	inner := fmt.Errorf("exit status 2")
	wrapped := sentinel.Wrap(inner)
	rewrapped := other.Wrap(wrapped)

	assert.True(t, Is(wrapped, sentinel))
	assert.False(t, Is(wrapped, other))
	// the outer wrap matches its own sentinel and, through Unwrap, the inner one
	assert.True(t, Is(rewrapped, other))
	assert.True(t, Is(rewrapped, sentinel))
	assert.True(t, Is(wrapped, inner))
}

func TestWrapfAndWrapMessage(t *testing.T) {
	sentinel := New("bad input")

	err := sentinel.Wrapf("field %q out of range", "tag")
	assert.Equal(t, `bad input: field "tag" out of range`, err.Error())
	assert.True(t, Is(err, sentinel))

	err = sentinel.WrapMessage("no such directory")
	assert.Equal(t, "bad input: no such directory", err.Error())
}

func TestAs(t *testing.T) {
	sentinel := New("op failed")
	wrapped := sentinel.Wrap(fmt.Errorf("cause"))

	var target *Error
	require.True(t, As(wrapped, &target))
	assert.True(t, target.Is(sentinel))
}
