package qc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := runID()
		if len(id) != 12 {
			t.Fatalf("runID() = %q, want 12 characters", id)
		}
		for _, c := range id {
			if !strings.ContainsRune(runIDAlphabet, c) {
				t.Fatalf("runID() = %q contains %q outside the alphabet", id, c)
			}
		}
		if seen[id] {
			t.Fatalf("runID() repeated %q within 100 draws", id)
		}
		seen[id] = true
	}
}

func TestLogReporterCounterexample(t *testing.T) {
	var buf bytes.Buffer
	rep := NewLogReporter(&buf)
	rep.Counterexample("run1", Args{"n": int64(-3)}, errors.New("property violated"))

	out := buf.String()
	for _, want := range []string{"counterexample", "run1", "property violated", "-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("counterexample log missing %q:\n%s", want, out)
		}
	}
}

func TestLogReporterTrial(t *testing.T) {
	var buf bytes.Buffer
	rep := NewLogReporter(&buf)
	rep.Trial("run2", Args{"s": "hello"})

	out := buf.String()
	if !strings.Contains(out, "trial") || !strings.Contains(out, "hello") {
		t.Errorf("trial log incomplete:\n%s", out)
	}
}
