package main

import (
	"testing"

	"github.com/sabourke/difmap-sub005/diagnostics"
)

func TestRunEndToEnd(t *testing.T) {
	if err := run(64, 0.5, 100, 8e4, 50, 0.1, 0, 0, diagnostics.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestSyntheticVisibilitiesAreConjugateSymmetric(t *testing.T) {
	vis := syntheticVisibilities(10, 1e6)
	if len(vis) != 20 {
		t.Fatalf("len(vis) = %d, want 20", len(vis))
	}
	for i := 0; i < len(vis); i += 2 {
		a, b := vis[i], vis[i+1]
		if a.U != -b.U || a.V != -b.V {
			t.Fatalf("pair %d is not conjugate-symmetric: %+v, %+v", i, a, b)
		}
	}
}
