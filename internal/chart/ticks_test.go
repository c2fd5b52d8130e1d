package chart

import (
	"math"
	"sort"
	"testing"
)

func TestTicksCoverRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"redshift", 0, 2.5},
		{"cutoff", 0, 10},
		{"eos band", -1.04, -0.96},
		{"unit", -0.05, 1.05},
		{"variance", 0.01, 0.27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ticks(tt.lo, tt.hi, 6)
			if len(ts) < 2 {
				t.Fatalf("ticks(%g, %g) = %v, want at least 2", tt.lo, tt.hi, ts)
			}
			if len(ts) > 8 {
				t.Errorf("ticks(%g, %g) produced %d ticks", tt.lo, tt.hi, len(ts))
			}
			if !sort.Float64sAreSorted(ts) {
				t.Errorf("ticks not sorted: %v", ts)
			}
			for _, v := range ts {
				if v < tt.lo-1e-9 || v > tt.hi+1e-9 {
					t.Errorf("tick %g outside [%g, %g]", v, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestTicksDegenerate(t *testing.T) {
	if ts := ticks(1, 1, 6); ts != nil {
		t.Errorf("ticks on empty range = %v, want nil", ts)
	}
	if ts := ticks(2, 1, 6); ts != nil {
		t.Errorf("ticks on inverted range = %v, want nil", ts)
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0.09, 0.1},
		{0.11, 0.2},
		{0.21, 0.25},
		{0.3, 0.5},
		{0.7, 1},
		{1.4, 2},
		{3, 5},
		{7, 10},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("niceStep(%g) = %g, want %g", tt.raw, got, tt.want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{2.5, "2.5"},
		{-1, "-1"},
		{0.05, "0.05"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%g) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestColormapEndpoints(t *testing.T) {
	m := Viridis()
	lo := nrgba(m.At(0))
	hi := nrgba(m.At(1))
	if lo.B <= lo.G {
		t.Errorf("viridis start %+v should be blue-dominant", lo)
	}
	if hi.G <= hi.B {
		t.Errorf("viridis end %+v should be yellow", hi)
	}

	r := m.Reversed()
	if nrgba(r.At(0)) != hi || nrgba(r.At(1)) != lo {
		t.Error("Reversed did not flip endpoints")
	}

	// Out-of-range values clamp.
	if nrgba(m.At(-3)) != lo || nrgba(m.At(7)) != hi {
		t.Error("At did not clamp out-of-range input")
	}
}
