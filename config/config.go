// Package config provides YAML scenario parsing for the blackboard CLI.
//
// This package enables driving a blackboard from a declarative script, as an
// alternative to the programmatic SDK approach. A scenario is an ordered list
// of typed operations applied against a fresh board.
//
// Example scenario:
//
//	name: smoke test
//	steps:
//	  - op: write
//	    key: score
//	    type: int
//	    value: 10
//	  - op: subscribe
//	    key: score
//	    type: int
//	    shape: value
//	  - op: write
//	    key: score
//	    type: int
//	    value: 42
//	  - op: read
//	    key: score
//	    type: int
//	  - op: wipe-key
//	    key: score
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in a scenario step.
const (
	OpWrite          = "write"
	OpRead           = "read"
	OpWipeKey        = "wipe-key"
	OpWipeTypeKey    = "wipe-type-key"
	OpWipeBoard      = "wipe-board"
	OpSubscribe      = "subscribe"
	OpUnsubscribe    = "unsubscribe"
	OpUnsubscribeAll = "unsubscribe-all"
)

// Type tags accepted in a scenario step. Each tag selects which of the
// board's typed stores the step addresses.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "string"
	TypeBool   = "bool"
)

// Callback shapes accepted by subscribe steps.
const (
	ShapeKey   = "key"
	ShapeValue = "value"
	ShapePair  = "pair"
)

// Scenario is the root structure of a scenario file.
//
// It maps directly to the YAML file structure. Use [Load] or [Parse] to
// create a Scenario from YAML.
type Scenario struct {
	// Name is the scenario's display name. Defaults to "scenario".
	Name string `yaml:"name"`

	// Steps are the operations applied in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single operation in a scenario.
//
// Which fields are required depends on Op:
//
//   - write: key, type, value; notify optional (default true)
//   - read, wipe-type-key, subscribe, unsubscribe: key, type
//   - subscribe additionally takes shape (key, value, pair; default pair)
//   - wipe-key, unsubscribe-all: key
//   - wipe-board: callbacks optional (default false)
type Step struct {
	// Op is the operation name. See the Op constants.
	Op string `yaml:"op"`

	// Key is the value key the operation addresses.
	Key string `yaml:"key"`

	// Type selects the typed store: int, float, string or bool.
	Type string `yaml:"type"`

	// Value is the scalar to write. Its YAML type must match Type
	// (an integer literal is accepted for type float).
	Value any `yaml:"value"`

	// Shape is the callback shape for subscribe steps.
	Shape string `yaml:"shape"`

	// Notify controls callback firing for write steps. Defaults to true.
	Notify *bool `yaml:"notify"`

	// Callbacks extends wipe-board to also drop callback registrations.
	Callbacks bool `yaml:"callbacks"`
}

// RaiseCallbacks reports whether a write step should fire callbacks.
func (s *Step) RaiseCallbacks() bool {
	return s.Notify == nil || *s.Notify
}

// IntValue returns the step value as an int. Valid only after [Parse] for a
// write step of type int.
func (s *Step) IntValue() int {
	v, _ := s.Value.(int)
	return v
}

// FloatValue returns the step value as a float64. Valid only after [Parse] for a
// write step of type float.
func (s *Step) FloatValue() float64 {
	v, _ := s.Value.(float64)
	return v
}

// StringValue returns the step value as a string. Valid only after [Parse] for a
// write step of type string.
func (s *Step) StringValue() string {
	v, _ := s.Value.(string)
	return v
}

// BoolValue returns the step value as a bool. Valid only after [Parse] for a
// write step of type bool.
func (s *Step) BoolValue() bool {
	v, _ := s.Value.(bool)
	return v
}

// Load reads and parses a YAML scenario file.
//
// Returns an error if the file cannot be read or the scenario is invalid.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML scenario data.
//
// Defaults are applied (scenario name, subscribe shape, notify flag
// semantics) and every step is validated: known op, known type tag where one
// is needed, non-empty key where one is needed, and a write value whose YAML
// type matches the declared type tag.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if sc.Name == "" {
		sc.Name = "scenario"
	}

	if err := sc.applyDefaultsAndValidate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// typedOps are the operations that address a single typed store.
var typedOps = map[string]bool{
	OpWrite:       true,
	OpRead:        true,
	OpWipeTypeKey: true,
	OpSubscribe:   true,
	OpUnsubscribe: true,
}

// keyedOps are the operations that require a key.
var keyedOps = map[string]bool{
	OpWrite:          true,
	OpRead:           true,
	OpWipeKey:        true,
	OpWipeTypeKey:    true,
	OpSubscribe:      true,
	OpUnsubscribe:    true,
	OpUnsubscribeAll: true,
}

var knownOps = map[string]bool{
	OpWrite:          true,
	OpRead:           true,
	OpWipeKey:        true,
	OpWipeTypeKey:    true,
	OpWipeBoard:      true,
	OpSubscribe:      true,
	OpUnsubscribe:    true,
	OpUnsubscribeAll: true,
}

var knownTypes = map[string]bool{
	TypeInt:    true,
	TypeFloat:  true,
	TypeString: true,
	TypeBool:   true,
}

// applyDefaultsAndValidate normalizes and validates every step.
func (sc *Scenario) applyDefaultsAndValidate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}

	for i := range sc.Steps {
		st := &sc.Steps[i]

		if !knownOps[st.Op] {
			return fmt.Errorf("steps[%d]: unknown op %q", i, st.Op)
		}

		if keyedOps[st.Op] && st.Key == "" {
			return fmt.Errorf("steps[%d] (%s): key is required", i, st.Op)
		}

		if typedOps[st.Op] {
			if st.Type == "" {
				return fmt.Errorf("steps[%d] (%s): type is required", i, st.Op)
			}
			if !knownTypes[st.Type] {
				return fmt.Errorf("steps[%d] (%s): unknown type %q (expected int, float, string or bool)", i, st.Op, st.Type)
			}
		}

		if st.Op == OpSubscribe {
			if st.Shape == "" {
				st.Shape = ShapePair
			}
			switch st.Shape {
			case ShapeKey, ShapeValue, ShapePair:
			default:
				return fmt.Errorf("steps[%d] (subscribe): unknown shape %q (expected key, value or pair)", i, st.Shape)
			}
		}

		if st.Op == OpWrite {
			if err := st.coerceValue(); err != nil {
				return fmt.Errorf("steps[%d] (write %q): %w", i, st.Key, err)
			}
		}
	}
	return nil
}

// coerceValue checks that the write value matches the declared type tag.
// YAML integer literals are widened for type float.
func (s *Step) coerceValue() error {
	if s.Value == nil {
		return fmt.Errorf("value is required")
	}

	switch s.Type {
	case TypeInt:
		if _, ok := s.Value.(int); !ok {
			return fmt.Errorf("value %v is not an int", s.Value)
		}
	case TypeFloat:
		switch v := s.Value.(type) {
		case float64:
		case int:
			s.Value = float64(v)
		default:
			return fmt.Errorf("value %v is not a float", s.Value)
		}
	case TypeString:
		if _, ok := s.Value.(string); !ok {
			return fmt.Errorf("value %v is not a string", s.Value)
		}
	case TypeBool:
		if _, ok := s.Value.(bool); !ok {
			return fmt.Errorf("value %v is not a bool", s.Value)
		}
	}
	return nil
}
