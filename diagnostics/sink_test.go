package diagnostics

import (
	"bytes"
	"strings"
	"testing"
)

func TestSinkWritesLeveledMessages(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	s.Infof("cleaned %d components", 5)
	s.Warnf("fit degraded: %v", "residual increased")
	s.Errorf("beam center is zero")

	out := buf.String()
	for _, want := range []string{"cleaned 5 components", "fit degraded", "beam center is zero"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestDiscardSinkDoesNothing(t *testing.T) {
	Discard.Infof("ignored")
	Discard.Warnf("ignored")
	Discard.Errorf("ignored")
}
