package store

import "testing"

func TestNewTyped(t *testing.T) {
	s := NewTyped[int]()
	if s == nil {
		t.Fatal("NewTyped() = nil")
	}

	// should start empty
	if s.Len() != 0 {
		t.Errorf("Len() = %v, want 0", s.Len())
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get() on empty store reported a value")
	}
}

func TestTyped_SetGet(t *testing.T) {
	s := NewTyped[string]()

	s.Set("greeting", "hello")

	got, ok := s.Get("greeting")
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got != "hello" {
		t.Errorf("Get() = %q, want %q", got, "hello")
	}
}

func TestTyped_SetOverwrites(t *testing.T) {
	s := NewTyped[int]()

	s.Set("count", 1)
	s.Set("count", 2)

	got, _ := s.Get("count")
	if got != 2 {
		t.Errorf("Get() = %v, want 2", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %v, want 1", s.Len())
	}
}

func TestTyped_WipeKey(t *testing.T) {
	s := NewTyped[int]()
	s.Set("a", 1)
	s.Set("b", 2)

	s.WipeKey("a")

	if _, ok := s.Get("a"); ok {
		t.Error("Get(a) ok = true after WipeKey, want false")
	}
	if _, ok := s.Get("b"); !ok {
		t.Error("Get(b) ok = false, want true")
	}

	// wiping an absent key is a no-op
	s.WipeKey("missing")
	if s.Len() != 1 {
		t.Errorf("Len() = %v, want 1", s.Len())
	}
}

func TestTyped_WipeAllKeepsCallbacks(t *testing.T) {
	s := NewTyped[int]()
	s.Set("a", 1)
	s.SetKeyFunc("a", func(string) {})

	s.WipeAll()

	if s.Len() != 0 {
		t.Errorf("Len() = %v, want 0", s.Len())
	}
	if s.Callbacks("a").Key == nil {
		t.Error("WipeAll removed a callback registration")
	}
}

func TestTyped_CallbackSlotsReplace(t *testing.T) {
	s := NewTyped[int]()

	var hits []string
	s.SetKeyFunc("k", func(string) { hits = append(hits, "first") })
	s.SetKeyFunc("k", func(string) { hits = append(hits, "second") })

	cbs := s.Callbacks("k")
	cbs.Key("k")

	if len(hits) != 1 || hits[0] != "second" {
		t.Errorf("hits = %v, want [second]", hits)
	}
}

func TestTyped_SetNilCallbackClearsSlot(t *testing.T) {
	s := NewTyped[int]()
	s.SetValueFunc("k", func(int) {})
	s.SetValueFunc("k", nil)

	if s.Callbacks("k").Value != nil {
		t.Error("nil registration should clear the slot")
	}
}

func TestTyped_Unsubscribe(t *testing.T) {
	s := NewTyped[float64]()
	s.SetKeyFunc("k", func(string) {})
	s.SetValueFunc("k", func(float64) {})
	s.SetPairFunc("k", func(string, float64) {})
	s.SetKeyFunc("other", func(string) {})

	s.Unsubscribe("k")

	if !s.Callbacks("k").Empty() {
		t.Error("Callbacks(k) not empty after Unsubscribe")
	}
	if s.Callbacks("other").Key == nil {
		t.Error("Unsubscribe(k) removed callbacks for another key")
	}
}

func TestTyped_ClearCallbacks(t *testing.T) {
	s := NewTyped[int]()
	s.Set("k", 7)
	s.SetKeyFunc("k", func(string) {})
	s.SetValueFunc("k", func(int) {})
	s.SetPairFunc("other", func(string, int) {})

	s.ClearCallbacks()

	if !s.Callbacks("k").Empty() || !s.Callbacks("other").Empty() {
		t.Error("callbacks remain after ClearCallbacks")
	}

	// values are untouched
	if got, _ := s.Get("k"); got != 7 {
		t.Errorf("Get(k) = %v, want 7", got)
	}
}

func TestCallbacks_Empty(t *testing.T) {
	var c Callbacks[int]
	if !c.Empty() {
		t.Error("zero Callbacks should be Empty")
	}

	c.Pair = func(string, int) {}
	if c.Empty() {
		t.Error("Callbacks with a pair slot should not be Empty")
	}
}
