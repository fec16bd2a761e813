package blackboard

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"github.com/jpalmerr/blackboard/internal/store"
)

// KeyCallback is invoked with the key that was written.
type KeyCallback func(key string)

// ValueCallback is invoked with the value that was written.
type ValueCallback[T any] func(value T)

// PairCallback is invoked with both the key and the value that was written.
type PairCallback[T any] func(key string, value T)

// Board is a type-heterogeneous key/value store.
//
// A Board owns one homogeneous store per value type that has ever been
// written or subscribed to, created lazily on first use. Keys are scoped
// within a type's store: "score" may simultaneously hold an int and a
// float64, and wiping one leaves the other intact.
//
// All operations on a Board are safe for concurrent use. A single lock
// covers the type-to-store map and every store reached through it, so no
// operation can observe a partially updated board. Callbacks registered via
// the Subscribe functions fire synchronously within the writing call, after
// the store update is committed; a callback may freely call back into the
// board.
//
// Because Go methods cannot be generic, the type-parameterized operations
// ([Write], [Read], [WipeTypeKey], [SubscribeKey], [SubscribeValue],
// [SubscribePair], [Unsubscribe]) are package-level functions taking the
// board as their first argument. Board-wide operations that do not depend
// on a value type are ordinary methods.
//
// Most programs use the process-wide default board via [Create], [Destroy]
// and [Default]; [New] exists for explicit-handle use and test isolation.
type Board struct {
	id     string
	logger *slog.Logger

	mu     sync.Mutex
	stores map[reflect.Type]store.Store
}

// New creates an empty [Board] with the given options.
//
// The returned board is independent of the process-wide default instance
// managed by [Create] and [Destroy]. Prefer an explicit board handed to
// collaborators where the program structure allows it; the default instance
// exists for callers that need ambient access.
//
// Example:
//
//	b, err := blackboard.New(blackboard.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	err = blackboard.Write(b, "score", 10)
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	id := uuid.NewString()
	return &Board{
		id:     id,
		logger: cfg.logger.With("board_id", id),
		stores: make(map[reflect.Type]store.Store),
	}, nil
}

// ID returns the board's unique instance identifier.
func (b *Board) ID() string {
	return b.id
}

// storeFor returns the typed store for T, creating it on first use.
//
// This is the single place the opaque store handle is cast back to its
// concrete type; the call site just resolved T's key, so the assertion
// cannot fail. Caller must hold b.mu.
func storeFor[T any](b *Board) *store.Typed[T] {
	tk := typeKey[T]()
	if s, ok := b.stores[tk]; ok {
		return s.(*store.Typed[T])
	}
	s := store.NewTyped[T]()
	b.stores[tk] = s
	return s
}

// Write stores value under key in T's store, creating the store if needed.
//
// Writing to an existing key overwrites its value. After the update is
// committed, the callbacks registered for the key fire in a fixed order:
// key-only, then value-only, then key+value, each at most once, carrying
// the value just written. Pass [WithoutNotify] to suppress them for this
// write.
//
// Callbacks run outside the board lock, so they may call back into the
// board without deadlocking. A panicking callback is recovered and logged;
// it does not fail the write.
func Write[T any](b *Board, key string, value T, opts ...WriteOption) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	cfg := writeConfig{notify: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	b.mu.Lock()
	s := storeFor[T](b)
	s.Set(key, value)
	var cbs store.Callbacks[T]
	if cfg.notify {
		cbs = s.Callbacks(key)
	}
	b.mu.Unlock()

	b.logger.Debug("value written",
		"key", key,
		"type", typeKey[T]().String(),
		"notify", cfg.notify,
	)

	if !cbs.Empty() {
		fireCallbacks(b, key, value, cbs)
	}
	return nil
}

// Read returns the value stored under key in T's store.
//
// Reading a type that has never been written is allowed and creates its
// (empty) store; the lookup then fails with a [KeyNotFoundError], the same
// as reading any absent key. Absence is an explicit error, never a silently
// fabricated zero value: callers expecting absence should test with
// [IsKeyNotFound].
func Read[T any](b *Board, key string) (T, error) {
	var zero T
	if b == nil {
		return zero, ErrNotCreated
	}
	if key == "" {
		return zero, ErrEmptyKey
	}

	b.mu.Lock()
	v, ok := storeFor[T](b).Get(key)
	b.mu.Unlock()

	if !ok {
		return zero, &KeyNotFoundError{Type: typeKey[T]().String(), Key: key}
	}
	return v, nil
}

// WipeTypeKey removes the value stored under key in T's store only.
//
// Entries under the same key string in other types' stores are untouched,
// as are the key's callback registrations. Wiping an absent key is a no-op.
func WipeTypeKey[T any](b *Board, key string) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	storeFor[T](b).WipeKey(key)
	b.mu.Unlock()

	b.logger.Debug("key wiped", "key", key, "type", typeKey[T]().String())
	return nil
}

// SubscribeKey registers cb as the key-only callback for key in T's store.
//
// At most one callback of each shape exists per key; registering replaces
// any previous key-only callback silently. A nil cb removes the
// registration.
func SubscribeKey[T any](b *Board, key string, cb KeyCallback) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	storeFor[T](b).SetKeyFunc(key, cb)
	b.mu.Unlock()
	return nil
}

// SubscribeValue registers cb as the value-only callback for key in T's
// store, replacing any previous value-only callback. A nil cb removes the
// registration.
func SubscribeValue[T any](b *Board, key string, cb ValueCallback[T]) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	storeFor[T](b).SetValueFunc(key, cb)
	b.mu.Unlock()
	return nil
}

// SubscribePair registers cb as the key+value callback for key in T's
// store, replacing any previous key+value callback. A nil cb removes the
// registration.
func SubscribePair[T any](b *Board, key string, cb PairCallback[T]) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	storeFor[T](b).SetPairFunc(key, cb)
	b.mu.Unlock()
	return nil
}

// Unsubscribe removes all three callback shapes for key in T's store only.
// Stored values are untouched.
func Unsubscribe[T any](b *Board, key string) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	storeFor[T](b).Unsubscribe(key)
	b.mu.Unlock()
	return nil
}

// WipeKey removes the value stored under key from every type's store.
//
// Callback registrations for the key are not removed; a later write to the
// key still fires them.
func (b *Board) WipeKey(key string) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	for _, s := range b.stores {
		s.WipeKey(key)
	}
	b.mu.Unlock()

	b.logger.Debug("key wiped from all stores", "key", key)
	return nil
}

// WipeBoard clears every value entry in every type's store.
//
// The stores themselves survive, as do callback registrations unless
// wipeCallbacks is true, in which case every callback of every shape is
// removed as well.
func (b *Board) WipeBoard(wipeCallbacks bool) error {
	if b == nil {
		return ErrNotCreated
	}

	b.mu.Lock()
	for _, s := range b.stores {
		s.WipeAll()
		if wipeCallbacks {
			s.ClearCallbacks()
		}
	}
	b.mu.Unlock()

	b.logger.Debug("board wiped", "wipe_callbacks", wipeCallbacks)
	return nil
}

// UnsubscribeAll removes all three callback shapes for key across every
// type's store. Stored values are untouched.
func (b *Board) UnsubscribeAll(key string) error {
	if b == nil {
		return ErrNotCreated
	}
	if key == "" {
		return ErrEmptyKey
	}

	b.mu.Lock()
	for _, s := range b.stores {
		s.Unsubscribe(key)
	}
	b.mu.Unlock()
	return nil
}

// teardown releases every store's values and callbacks. The board must not
// be used afterwards.
func (b *Board) teardown() {
	b.mu.Lock()
	for _, s := range b.stores {
		s.WipeAll()
		s.ClearCallbacks()
	}
	clear(b.stores)
	b.mu.Unlock()

	b.logger.Info("board destroyed")
}

// fireCallbacks invokes the snapshotted callbacks for one write in the
// fixed key, value, pair order.
func fireCallbacks[T any](b *Board, key string, value T, cbs store.Callbacks[T]) {
	if cbs.Key != nil {
		b.invoke("key", key, func() { cbs.Key(key) })
	}
	if cbs.Value != nil {
		b.invoke("value", key, func() { cbs.Value(value) })
	}
	if cbs.Pair != nil {
		b.invoke("pair", key, func() { cbs.Pair(key, value) })
	}
}

// invoke runs a single user callback within a panic recovery boundary.
//
// If the callback panics, the panic is logged with a correlation ID and
// swallowed so a misbehaving subscriber cannot take down the writer. The
// full stack trace is logged for debugging.
func (b *Board) invoke(shape, key string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			b.logger.Error("callback panic",
				"correlation_id", correlationID,
				"shape", shape,
				"key", key,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
