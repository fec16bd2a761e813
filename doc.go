// Package blackboard provides a process-wide, type-heterogeneous key/value
// store with change notification.
//
// A blackboard lets independent parts of a program exchange named values of
// arbitrary types without sharing compile-time type knowledge beyond the
// call site. Values are stored per type: the key "score" can hold an int
// and a float64 at the same time, written and wiped independently. Writers
// can notify interested parties by registering per-key callbacks that fire
// on every write.
//
// # Quick Start
//
// Create the default board, write and read typed values, then tear it down:
//
//	blackboard.Create()
//	defer blackboard.Destroy()
//
//	b := blackboard.Default()
//	_ = blackboard.Write(b, "score", 10)
//
//	score, err := blackboard.Read[int](b, "score")
//	if err != nil {
//	    // blackboard.IsKeyNotFound(err) if nothing was written
//	}
//
// # Subscriptions
//
// Three callback shapes can be registered per key, each holding at most one
// callback. On every write they fire in a fixed order — key-only, then
// value-only, then key+value — with the value just written:
//
//	_ = blackboard.SubscribeValue(b, "score", func(v int) {
//	    fmt.Println("score is now", v)
//	})
//	_ = blackboard.Write(b, "score", 42)           // prints "score is now 42"
//	_ = blackboard.Write(b, "score", 43,
//	    blackboard.WithoutNotify())                // silent
//
// Callbacks run synchronously within the writing call but outside the board
// lock, so a callback may call back into the board. Panics in callbacks are
// recovered and logged; they never fail the write.
//
// # Lifecycle
//
// The package manages one default instance with an explicit lifecycle:
// [Create] builds it (destroying any predecessor first), [Destroy] releases
// every store and is idempotent, and [IsReady] is a lock-free existence
// check. Operations against a missing board return [ErrNotCreated].
// [New] constructs an independent board for explicit-handle use and test
// isolation.
//
// # Architecture
//
// The board keeps one homogeneous store per value type, indexed by the
// type's reflect identity and created lazily on first use
// (internal/store). A single lock serializes all access; notification
// happens after the critical section from a snapshot of the key's
// callbacks. The cmd/blackboard CLI is a thin consumer of this public API
// driven by YAML scenarios (config package).
package blackboard
