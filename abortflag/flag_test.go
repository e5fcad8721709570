package abortflag

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFlag_InitiallyClear(t *testing.T) {
	f := New()
	require.False(t, f.IsSet())
}

func TestFlag_SetIsMonotonic(t *testing.T) {
	f := New()
	f.Set()
	require.True(t, f.IsSet())
	f.Set()
	require.True(t, f.IsSet())
}

func TestFlag_WatchRaisesOnSIGTERM(t *testing.T) {
	f := New()
	stop := Watch(f)
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
	require.Eventually(t, f.IsSet, time.Second, time.Millisecond)
}
