package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_PreservesCause(t *testing.T) {
	wrapped := Wrap(errSentinel, "outer")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "outer: sentinel", wrapped.Error())
}

func TestWrapf_AddsStack(t *testing.T) {
	wrapped := Wrapf(errSentinel, "user %d", 7)

	assert.Equal(t, "user 7: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapf_AddsStack")
}

func TestJoin(t *testing.T) {
	other := New("other")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}
