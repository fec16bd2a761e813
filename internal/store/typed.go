package store

// Store is the type-agnostic view of a [Typed] held by the board.
//
// It exposes only the operations that do not depend on the element type, so
// the board can keep stores of different concrete types in one map and fan
// board-wide maintenance out across all of them. The type-specific operations
// (Set, Get, callback registration) are reachable only after the board
// downcasts the handle back to *Typed[T] at a call site that knows T.
type Store interface {
	// WipeKey removes the value entry for key. No-op if absent.
	// Callback registrations for the key are untouched.
	WipeKey(key string)

	// WipeAll removes every value entry. Callback registrations survive.
	WipeAll()

	// Unsubscribe removes all three callback slots for key, if present.
	Unsubscribe(key string)

	// ClearCallbacks removes every callback of every shape for all keys.
	ClearCallbacks()
}

// Callbacks is a snapshot of the callback slots registered for one key.
//
// The board takes the snapshot while holding its lock and invokes the
// callbacks after releasing it, so a callback that re-enters the board from
// the same goroutine does not deadlock. Nil fields mean no callback of that
// shape is registered.
type Callbacks[T any] struct {
	Key   func(key string)
	Value func(value T)
	Pair  func(key string, value T)
}

// Empty reports whether no callback of any shape is registered.
func (c Callbacks[T]) Empty() bool {
	return c.Key == nil && c.Value == nil && c.Pair == nil
}

// Typed is the homogeneous store for a single value type.
//
// It holds the value map and the three per-key callback maps. At most one
// callback of each shape exists per key; registering a new one silently
// replaces the previous.
//
// Typed is not safe for concurrent use on its own; the owning board
// serializes access.
type Typed[T any] struct {
	values map[string]T

	keyFuncs   map[string]func(string)
	valueFuncs map[string]func(T)
	pairFuncs  map[string]func(string, T)
}

// Compile-time check that Typed satisfies the type-agnostic interface.
var _ Store = (*Typed[int])(nil)

// NewTyped creates an empty store for type T.
func NewTyped[T any]() *Typed[T] {
	return &Typed[T]{
		values:     make(map[string]T),
		keyFuncs:   make(map[string]func(string)),
		valueFuncs: make(map[string]func(T)),
		pairFuncs:  make(map[string]func(string, T)),
	}
}

// Set inserts or overwrites the value for key.
func (s *Typed[T]) Set(key string, value T) {
	s.values[key] = value
}

// Get returns the value for key and whether it exists.
func (s *Typed[T]) Get(key string) (T, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of value entries.
func (s *Typed[T]) Len() int {
	return len(s.values)
}

// WipeKey removes the value entry for key. No-op if absent.
func (s *Typed[T]) WipeKey(key string) {
	delete(s.values, key)
}

// WipeAll removes all value entries, leaving callbacks registered.
func (s *Typed[T]) WipeAll() {
	clear(s.values)
}

// SetKeyFunc registers the key-only callback for key, replacing any previous.
// A nil callback clears the slot.
func (s *Typed[T]) SetKeyFunc(key string, fn func(string)) {
	if fn == nil {
		delete(s.keyFuncs, key)
		return
	}
	s.keyFuncs[key] = fn
}

// SetValueFunc registers the value-only callback for key, replacing any
// previous. A nil callback clears the slot.
func (s *Typed[T]) SetValueFunc(key string, fn func(T)) {
	if fn == nil {
		delete(s.valueFuncs, key)
		return
	}
	s.valueFuncs[key] = fn
}

// SetPairFunc registers the key+value callback for key, replacing any
// previous. A nil callback clears the slot.
func (s *Typed[T]) SetPairFunc(key string, fn func(string, T)) {
	if fn == nil {
		delete(s.pairFuncs, key)
		return
	}
	s.pairFuncs[key] = fn
}

// Unsubscribe removes all three callback slots for key.
func (s *Typed[T]) Unsubscribe(key string) {
	delete(s.keyFuncs, key)
	delete(s.valueFuncs, key)
	delete(s.pairFuncs, key)
}

// ClearCallbacks removes every callback of every shape for all keys.
func (s *Typed[T]) ClearCallbacks() {
	clear(s.keyFuncs)
	clear(s.valueFuncs)
	clear(s.pairFuncs)
}

// Callbacks returns a snapshot of the callback slots registered for key.
func (s *Typed[T]) Callbacks(key string) Callbacks[T] {
	return Callbacks[T]{
		Key:   s.keyFuncs[key],
		Value: s.valueFuncs[key],
		Pair:  s.pairFuncs[key],
	}
}
