package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoRecoversIntoHandler(t *testing.T) {
	got := make(chan any, 1)
	restore := SetCrashHandler(func(r any) { got <- r })
	defer restore()

	Go(func() { panic("boom") })

	select {
	case r := <-got:
		assert.Equal(t, "boom", r)
	case <-time.After(time.Second):
		require.Fail(t, "crash handler not invoked")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	restore := SetCrashHandler(func(any) { called = true })
	defer restore()

	HandleCrash(nil)

	assert.False(t, called)
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "goroutine did not run")
	}
}
