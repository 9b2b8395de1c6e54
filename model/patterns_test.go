package model

import "testing"

func TestPatternByName(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		if err != nil || len(p) == 0 {
			t.Fatalf("PatternByName(%q) = %v, %v", name, p, err)
		}
	}
	if _, err := PatternByName("spaceship"); err == nil {
		t.Fatalf("expected error for unknown pattern")
	}
}

func TestSeedAppliesOrigin(t *testing.T) {
	b := newWiredBoard(t, 10, 10)
	p, _ := PatternByName("blinker")
	if err := Seed(b, Point{1, 0}, p); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, b, Point{1, 0}, Point{1, 1}, Point{1, 2})
	checkCounts(t, b)
}

func TestSeedStrictReportsClippedCells(t *testing.T) {
	b := newWiredBoard(t, 3, 3, WithStrictBounds(true))
	p, _ := PatternByName("block")
	if err := Seed(b, Point{2, 2}, p); err == nil {
		t.Fatalf("expected out-of-range error for a clipped pattern")
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := newWiredBoard(t, 16, 16)
	b := newWiredBoard(t, 16, 16)
	if err := Randomize(a, 0.3, 42); err != nil {
		t.Fatal(err)
	}
	if err := Randomize(b, 0.3, 42); err != nil {
		t.Fatal(err)
	}
	if !a.Equals(b) {
		t.Fatalf("same seed produced different boards")
	}
	if a.LiveCount() == 0 || a.LiveCount() == 16*16 {
		t.Fatalf("density 0.3 produced %d live cells", a.LiveCount())
	}
	checkCounts(t, a)
}

func TestRandomizeDensityBounds(t *testing.T) {
	b := newWiredBoard(t, 6, 6)
	if err := Randomize(b, 1, 1); err != nil {
		t.Fatal(err)
	}
	if b.LiveCount() != 36 {
		t.Fatalf("density 1 produced %d live cells", b.LiveCount())
	}
	if err := Randomize(b, 0, 1); err != nil {
		t.Fatal(err)
	}
	if b.LiveCount() != 0 {
		t.Fatalf("density 0 produced %d live cells", b.LiveCount())
	}
	checkCounts(t, b)
}
