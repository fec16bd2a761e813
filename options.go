package blackboard

import (
	"errors"
	"log/slog"
)

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
	logger *slog.Logger
}

// Option is a function that configures a [Board] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] or [Create] in a type-safe, extensible
// way. Options return an error if validation fails.
//
// Built-in options: [WithLogger].
type Option func(*boardConfig) error

// WithLogger sets a custom [slog.Logger] for the board.
//
// This allows consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used. The board adds a
// board_id attribute to every record it emits.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	b, err := blackboard.New(blackboard.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// writeConfig holds mutable state for a single [Write] call.
type writeConfig struct {
	notify bool
}

// WriteOption configures a single [Write] call.
//
// By default a write fires the callbacks registered for its key. Built-in
// options: [WithoutNotify].
type WriteOption func(*writeConfig)

// WithoutNotify suppresses callback notification for one write.
//
// The value is stored normally; any callbacks registered for the key stay
// registered and will fire on the next unsuppressed write.
//
// Example:
//
//	err := blackboard.Write(b, "score", 42, blackboard.WithoutNotify())
func WithoutNotify() WriteOption {
	return func(cfg *writeConfig) {
		cfg.notify = false
	}
}
