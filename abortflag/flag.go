package abortflag

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Flag is a monotonic, world-visible abort signal. The zero value is ready
// to use and reports false until Set is called.
type Flag struct {
	raised atomic.Bool
}

// New returns a Flag in the not-raised state.
func New() *Flag {
	return &Flag{}
}

// Set raises the flag. It is safe to call from a signal-handling goroutine
// and is idempotent.
func (f *Flag) Set() {
	f.raised.Store(true)
}

// IsSet reports whether the flag has been raised. Callers poll this at inner
// loop boundaries; it is never awaited.
func (f *Flag) IsSet() bool {
	return f.raised.Load()
}

// Watch spawns a dedicated goroutine that raises f whenever the process
// receives SIGINT or SIGTERM, and returns a stop function that releases the
// underlying signal.Notify registration. The handler goroutine only ever
// stores into an atomic.Bool: no allocation, no I/O, safe to run for the
// life of the process.
func Watch(f *Flag) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigCh:
				f.Set()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
