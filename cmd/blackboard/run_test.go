package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jpalmerr/blackboard"
	"github.com/jpalmerr/blackboard/config"
)

func newRunTestBoard(t *testing.T) *blackboard.Board {
	t.Helper()
	b, err := blackboard.New(blackboard.WithLogger(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b
}

func parseScenario(t *testing.T, yaml string) *config.Scenario {
	t.Helper()
	sc, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return sc
}

func TestApplyScenario_WriteReadWipe(t *testing.T) {
	sc := parseScenario(t, `
name: basics
steps:
  - op: write
    key: score
    type: int
    value: 10
  - op: write
    key: score
    type: float
    value: 2.5
  - op: read
    key: score
    type: int
  - op: wipe-type-key
    key: score
    type: int
  - op: read
    key: score
    type: int
  - op: read
    key: score
    type: float
`)

	var buf bytes.Buffer
	if err := applyScenario(newRunTestBoard(t), sc, &buf); err != nil {
		t.Fatalf("applyScenario() error = %v", err)
	}

	output := buf.String()
	expectedPhrases := []string{
		`applying scenario "basics" (6 steps)`,
		`read int "score" = 10`,
		`wipe int key "score"`,
		`no int value stored for key "score"`, // absent key reported, not fatal
		`read float "score" = 2.5`,
		"scenario complete",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestApplyScenario_CallbacksFire(t *testing.T) {
	sc := parseScenario(t, `
steps:
  - op: subscribe
    key: score
    type: int
    shape: pair
  - op: write
    key: score
    type: int
    value: 42
  - op: write
    key: score
    type: int
    value: 7
    notify: false
`)

	var buf bytes.Buffer
	if err := applyScenario(newRunTestBoard(t), sc, &buf); err != nil {
		t.Fatalf("applyScenario() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `[callback] "score" = 42`) {
		t.Errorf("output missing pair callback for 42\nGot: %s", output)
	}
	if strings.Contains(output, `[callback] "score" = 7`) {
		t.Errorf("suppressed write fired a callback\nGot: %s", output)
	}
}

func TestApplyScenario_UnsubscribeAndWipeBoard(t *testing.T) {
	sc := parseScenario(t, `
steps:
  - op: subscribe
    key: a
    type: string
    shape: value
  - op: unsubscribe
    key: a
    type: string
  - op: write
    key: a
    type: string
    value: quiet
  - op: subscribe
    key: b
    type: bool
    shape: key
  - op: wipe-board
    callbacks: true
  - op: write
    key: b
    type: bool
    value: true
`)

	var buf bytes.Buffer
	if err := applyScenario(newRunTestBoard(t), sc, &buf); err != nil {
		t.Fatalf("applyScenario() error = %v", err)
	}

	if strings.Contains(buf.String(), "[callback]") {
		t.Errorf("no callback should fire after unsubscribe and wipe-board\nGot: %s", buf.String())
	}
}

func TestRunCommand_EndToEnd(t *testing.T) {
	path := writeScenario(t, `
name: end to end
steps:
  - op: write
    key: greeting
    type: string
    value: hello
  - op: read
    key: greeting
    type: string
  - op: unsubscribe-all
    key: greeting
  - op: wipe-key
    key: greeting
  - op: read
    key: greeting
    type: string
`)

	output, err := executeCmd(t, "run", "-c", path)
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	expectedPhrases := []string{
		`applying scenario "end to end" (5 steps)`,
		`read string "greeting" = hello`,
		`wipe key "greeting" in every store`,
		`no string value stored for key "greeting"`,
		"scenario complete",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := executeCmd(t, "run", "-c", "/nonexistent/scenario.yaml")
	if err == nil {
		t.Fatal("run command expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to load scenario") {
		t.Errorf("error should mention 'failed to load scenario', got: %v", err)
	}
}
