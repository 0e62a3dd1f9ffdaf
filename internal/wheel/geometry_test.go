package wheel

import (
	"math"
	"testing"
)

func TestPartitionCoversCircle(t *testing.T) {
	arcs := Partition(SliceCount)
	if len(arcs) != SliceCount {
		t.Fatalf("partition returned %d arcs, want %d", len(arcs), SliceCount)
	}
	for i, arc := range arcs {
		if got := arc.End - arc.Start; got != SliceWidth {
			t.Errorf("arc %d width = %v, want %v", i, got, SliceWidth)
		}
		if i > 0 && arcs[i-1].End != arc.Start {
			t.Errorf("gap between arc %d and %d: %v != %v", i-1, i, arcs[i-1].End, arc.Start)
		}
	}
	if arcs[0].Start != 0 {
		t.Errorf("first arc starts at %v, want 0", arcs[0].Start)
	}
	if arcs[len(arcs)-1].End != 360 {
		t.Errorf("last arc ends at %v, want 360", arcs[len(arcs)-1].End)
	}
}

func TestPartitionInvariantAcrossSpins(t *testing.T) {
	before := Partition(SliceCount)

	cfg := DefaultConfig()
	s := &State{Phase: Spinning, Velocity: 20}
	for s.Phase == Spinning {
		Step(s, cfg)
	}

	after := Partition(SliceCount)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("arc %d changed across a spin: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestNormalize360(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{185, 185},
		{365, 5},
		{-185, 175},
		{-1, 359},
		{1234.5, 154.5},
	}
	for _, tc := range cases {
		if got := Normalize360(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveWinner(t *testing.T) {
	cases := []struct {
		name     string
		rotation float64
		want     int
	}{
		{"zero rotation", 0, 0},
		{"mid slice", 185, 2},   // offset 175 -> slice 2
		{"boundary", 120, 4},    // offset exactly 240 belongs to slice 4
		{"boundary one", 300, 1}, // offset exactly 60
		{"just before boundary", 120.0001, 3},
		{"full turn", 360, 0},
	}
	for _, tc := range cases {
		if got := ResolveWinner(tc.rotation, PointerAngle, SliceWidth); got != tc.want {
			t.Errorf("%s: ResolveWinner(%v) = %d, want %d", tc.name, tc.rotation, got, tc.want)
		}
	}
}

func TestResolveWinnerIsPure(t *testing.T) {
	for i := 0; i < 100; i++ {
		rotation := float64(i) * 3.7
		first := ResolveWinner(rotation, PointerAngle, SliceWidth)
		second := ResolveWinner(rotation, PointerAngle, SliceWidth)
		if first != second {
			t.Fatalf("ResolveWinner(%v) not deterministic: %d then %d", rotation, first, second)
		}
	}
}
