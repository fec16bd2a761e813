package blackboard

import "sync/atomic"

// defaultBoard holds the process-wide default instance. The atomic pointer
// lets IsReady stay a lock-free existence check.
var defaultBoard atomic.Pointer[Board]

// Create initializes the process-wide default board, reporting success.
//
// If a default board already exists it is destroyed first — all of its
// stores, values and callback registrations are released — and a fresh
// empty instance takes its place, so re-creation is always a full reset and
// never an error. Options are applied to the new instance.
//
// Create and [Destroy] are expected to be called from a single coordinating
// goroutine before and after concurrent use of the board, not interleaved
// with it.
func Create(opts ...Option) bool {
	Destroy()

	b, err := New(opts...)
	if err != nil {
		return false
	}
	defaultBoard.Store(b)
	b.logger.Info("board created")
	return true
}

// Destroy tears down the process-wide default board, releasing every typed
// store along with its values and callbacks.
//
// Destroy is idempotent: destroying when no default board exists is a no-op.
func Destroy() {
	if b := defaultBoard.Swap(nil); b != nil {
		b.teardown()
	}
}

// IsReady reports whether the process-wide default board currently exists.
//
// This is a pure pointer check that takes no lock, so it is safe to call at
// any time, including before [Create]. Its answer can be stale by the time
// the caller acts on it if creation or destruction races it; see [Create]
// for the expected lifecycle discipline.
func IsReady() bool {
	return defaultBoard.Load() != nil
}

// Default returns the process-wide default board, or nil if [Create] has
// not been called (or [Destroy] has since run).
//
// Every board operation tolerates a nil board by returning [ErrNotCreated],
// so the result can be passed along without a separate readiness check:
//
//	if err := blackboard.Write(blackboard.Default(), "score", 10); err != nil {
//	    // ErrNotCreated if the board was never created
//	}
func Default() *Board {
	return defaultBoard.Load()
}
