// Package abortflag provides a single process-wide cooperative cancellation
// flag for the sifting optimizer.
//
// There is exactly one optimizer goroutine. A dedicated goroutine started by
// Watch translates SIGINT/SIGTERM into an atomic flag; every long-running
// loop in sift, meta, and largesift polls Flag.IsSet at natural loop
// boundaries instead of accepting a context.Context. The flag is monotonic:
// once raised it never clears, and a plain atomic load is all a poll does,
// since the only guarantee callers need is "observed-after-set still yields a
// usable result", not precise ordering with any other memory operation.
package abortflag
