package blackboard

import (
	"errors"
	"fmt"
)

// Common sentinel errors returned by board operations.
var (
	// ErrNotCreated is returned when an operation is invoked against a nil
	// board, typically because [Default] was called before [Create] or after
	// [Destroy]. This signals a caller bug, not a retryable condition.
	ErrNotCreated = errors.New("blackboard not created")

	// ErrKeyNotFound is returned by [Read] when no value has been written
	// for the key under the requested type. Use [errors.Is] or [IsKeyNotFound]
	// to test for it.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when an operation is given an empty key.
	// Keys are arbitrary non-empty strings scoped within a value type.
	ErrEmptyKey = errors.New("key must not be empty")
)

// KeyNotFoundError reports a read of a key that holds no value for the
// requested type. The same key string may still hold values under other
// types; Type names the store that was consulted.
type KeyNotFoundError struct {
	Type string
	Key  string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no %s value stored for key %q", e.Type, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// IsKeyNotFound reports whether err indicates a read of an absent key.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
