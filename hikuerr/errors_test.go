package hikuerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hikulang/hiku/hikuerr"
)

func TestIsMatchesOnKindOnly(t *testing.T) {
	err := hikuerr.New(hikuerr.KindMissingObject, "tergate[1]")
	assert.True(t, errors.Is(err, hikuerr.New(hikuerr.KindMissingObject, "")))
	assert.False(t, errors.Is(err, hikuerr.New(hikuerr.KindMissingField, "")))
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	err := hikuerr.Wrap(boom)
	assert.Equal(t, hikuerr.KindResolverError, err.Kind)
	assert.True(t, errors.Is(err, boom))
}

func TestKindOf(t *testing.T) {
	err := hikuerr.New(hikuerr.KindParseError, "bad token")
	kind, ok := hikuerr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, hikuerr.KindParseError, kind)

	_, ok = hikuerr.KindOf(errors.New("plain"))
	assert.False(t, ok)
}
