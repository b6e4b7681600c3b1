// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package generator

import "testing"

// TestSourceDeterminism verifies that two sources with the same seed yield
// identical draw sequences.
func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 1000; i++ {
		va, vb := a.IntBetween(0, 1000), b.IntBetween(0, 1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

// TestSourceSeedSensitivity verifies that different seeds yield different
// sequences.
func TestSourceSeedSensitivity(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := true
	for i := 0; i < 100; i++ {
		if a.IntBetween(0, 1<<30) != b.IntBetween(0, 1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Error("sources with different seeds produced identical sequences")
	}
}

// TestIntBetween verifies inclusive bounds.
func TestIntBetween(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{name: "narrow range", lo: 1, hi: 4},
		{name: "single value", lo: 7, hi: 7},
		{name: "zero based", lo: 0, hi: 255},
		{name: "offset range", lo: 1000, hi: 9999},
	}

	src := NewSource(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[int]bool{}
			for i := 0; i < 2000; i++ {
				v := src.IntBetween(tt.lo, tt.hi)
				if v < tt.lo || v > tt.hi {
					t.Fatalf("IntBetween(%d, %d) = %d, out of range", tt.lo, tt.hi, v)
				}
				seen[v] = true
			}
			if tt.hi-tt.lo < 10 && len(seen) != tt.hi-tt.lo+1 {
				t.Errorf("IntBetween(%d, %d) covered %d values, want %d", tt.lo, tt.hi, len(seen), tt.hi-tt.lo+1)
			}
		})
	}
}

// TestIntnZeroCollapses verifies the zero-window guard: Intn(0) returns 0
// instead of panicking, so a days=0 event window degenerates cleanly.
func TestIntnZeroCollapses(t *testing.T) {
	src := NewSource(42)
	if v := src.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
	if v := src.Intn(-5); v != 0 {
		t.Errorf("Intn(-5) = %d, want 0", v)
	}
}

// TestSample verifies distinctness, clamping and input immutability.
func TestSample(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name    string
		k       int
		wantLen int
	}{
		{name: "subset", k: 3, wantLen: 3},
		{name: "full set", k: 5, wantLen: 5},
		{name: "clamped above len", k: 10, wantLen: 5},
		{name: "single", k: 1, wantLen: 1},
		{name: "zero", k: 0, wantLen: 0},
	}

	src := NewSource(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.Sample(items, tt.k)
			if len(got) != tt.wantLen {
				t.Fatalf("Sample len = %d, want %d", len(got), tt.wantLen)
			}
			seen := map[string]bool{}
			for _, v := range got {
				if seen[v] {
					t.Errorf("Sample returned duplicate %q", v)
				}
				seen[v] = true
			}
		})
	}

	if items[0] != "a" || items[4] != "e" {
		t.Error("Sample modified its input slice")
	}
}

// TestPoisson verifies non-negative draws with a plausible mean.
func TestPoisson(t *testing.T) {
	src := NewSource(42)

	const n = 20000
	sum := 0
	for i := 0; i < n; i++ {
		v := src.Poisson(1.8)
		if v < 0 {
			t.Fatalf("Poisson returned negative draw %d", v)
		}
		sum += v
	}

	mean := float64(sum) / n
	if mean < 1.6 || mean > 2.0 {
		t.Errorf("Poisson(1.8) sample mean = %.3f, want ~1.8", mean)
	}
}

// TestExponential verifies positive draws with a plausible mean.
func TestExponential(t *testing.T) {
	src := NewSource(42)

	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := src.Exponential(12.0)
		if v < 0 {
			t.Fatalf("Exponential returned negative draw %f", v)
		}
		sum += v
	}

	mean := sum / n
	if mean < 11.0 || mean > 13.0 {
		t.Errorf("Exponential(12) sample mean = %.3f, want ~12", mean)
	}
}
