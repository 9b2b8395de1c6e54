package model

import "testing"

func TestHistoryRecord(t *testing.T) {
	h := NewHistory(3)
	seq := []struct {
		hash   string
		period int
	}{
		{"a", 0},
		{"b", 0},
		{"a", 2},
		{"a", 1},
		{"c", 0},
		{"d", 0},
		// "b" has been pushed out of the window
		{"b", 0},
	}
	for i, s := range seq {
		if got := h.Record(s.hash); got != s.period {
			t.Fatalf("step %d: Record(%q) = %d, expected %d", i, s.hash, got, s.period)
		}
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, expected 3", h.Len())
	}
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("Len after Reset = %d", h.Len())
	}
}

func TestHistoryDetectsBlinkerPeriod(t *testing.T) {
	b := newWiredBoard(t, 10, 10)
	mustSet(t, b, true, Point{1, 0}, Point{1, 1}, Point{1, 2})
	h := NewHistory(0)
	h.Record(b.Hash())

	var period int
	for range 2 {
		if err := b.AdvanceGeneration(); err != nil {
			t.Fatal(err)
		}
		period = h.Record(b.Hash())
	}
	if period != 2 {
		t.Fatalf("period = %d, expected 2", period)
	}
}
