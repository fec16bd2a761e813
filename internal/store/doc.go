// Package store provides the per-type storage backing the blackboard.
//
// This package is internal to the blackboard and manages one homogeneous
// key/value map per stored value type, together with the change callbacks
// registered against individual keys.
//
// The main components are:
//
//   - [Typed]: Generic value map for a single type with per-key callback slots
//   - [Store]: Type-agnostic view of a Typed used for board-wide operations
//   - [Callbacks]: Snapshot of a key's registered callbacks, taken under the
//     board lock so notification can happen outside it
//
// Typed performs no locking of its own. All synchronization is owned by the
// board, which holds its lock across every call into this package.
//
// Users of the blackboard library should not need to interact with this
// package directly. Storage is managed internally by the Board.
package store
