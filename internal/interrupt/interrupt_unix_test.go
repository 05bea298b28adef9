//go:build unix

package interrupt

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenerForwardsSignal(t *testing.T) {
	l, err := Listen(syscall.SIGUSR1)
	require.NoError(t, err)
	defer l.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case <-l.C():
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not forwarded")
	}
}

func TestListenerStopIsIdempotent(t *testing.T) {
	l, err := Listen(syscall.SIGUSR2)
	require.NoError(t, err)
	l.Stop()
	l.Stop()
}
