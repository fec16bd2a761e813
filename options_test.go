package blackboard

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	b, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_ = Write(b, "k", 1)

	out := buf.String()
	if !strings.Contains(out, "value written") {
		t.Errorf("log output missing write record: %q", out)
	}
	if !strings.Contains(out, "board_id="+b.ID()) {
		t.Errorf("log output missing board_id attribute: %q", out)
	}
}

func TestWithLogger_Nil(t *testing.T) {
	if _, err := New(WithLogger(nil)); err == nil {
		t.Error("New(WithLogger(nil)) error = nil, want validation error")
	}

	// Create surfaces option failure as an unsuccessful creation
	t.Cleanup(Destroy)
	if Create(WithLogger(nil)) {
		t.Error("Create(WithLogger(nil)) = true, want false")
	}
	if IsReady() {
		t.Error("IsReady() = true after failed Create")
	}
}

func TestWithoutNotify_OnlyAffectsOneWrite(t *testing.T) {
	b := newTestBoard(t)

	var fired int
	_ = SubscribeKey[int](b, "k", func(string) { fired++ })

	_ = Write(b, "k", 1, WithoutNotify())
	_ = Write(b, "k", 2)
	_ = Write(b, "k", 3, WithoutNotify())

	if fired != 1 {
		t.Errorf("callback fired %v times, want 1", fired)
	}
}
