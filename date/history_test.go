package date

import (
	"testing"
	"time"
)

func day(d int) Date { return New(2025, time.January, d) }

func TestHistory_AppendKeepsChronologicalOrder(t *testing.T) {
	var h History[float64]
	h.Append(day(3), 3)
	h.Append(day(1), 1)
	h.Append(day(2), 2)

	want := 1.0
	for on, v := range h.Values() {
		if v != want {
			t.Errorf("on %v got %v, want %v", on, v, want)
		}
		want++
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	var h History[float64]
	h.Append(day(1), 1)
	h.Append(day(1), 42)
	if v, ok := h.Get(day(1)); !ok || v != 42 {
		t.Errorf("Get = %v, %v; want 42, true", v, ok)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(day(10), 10)
	h.Append(day(20), 20)

	if _, ok := h.ValueAsOf(day(9)); ok {
		t.Error("ValueAsOf before first day should be false")
	}
	if v, ok := h.ValueAsOf(day(10)); !ok || v != 10 {
		t.Errorf("ValueAsOf(10) = %v, %v", v, ok)
	}
	if v, ok := h.ValueAsOf(day(15)); !ok || v != 10 {
		t.Errorf("ValueAsOf(15) = %v, %v; want last value before", v, ok)
	}
	if v, ok := h.ValueAsOf(day(25)); !ok || v != 20 {
		t.Errorf("ValueAsOf(25) = %v, %v", v, ok)
	}
}

func TestHistory_Nearest(t *testing.T) {
	var h History[float64]
	if _, _, ok := h.Nearest(day(1)); ok {
		t.Error("Nearest on empty history should be false")
	}
	h.Append(day(10), 10)
	h.Append(day(20), 20)

	if on, v, _ := h.Nearest(day(12)); on != day(10) || v != 10 {
		t.Errorf("Nearest(12) = %v, %v", on, v)
	}
	if on, v, _ := h.Nearest(day(19)); on != day(20) || v != 20 {
		t.Errorf("Nearest(19) = %v, %v", on, v)
	}
	// Equidistant resolves to the earlier date.
	if on, _, _ := h.Nearest(day(15)); on != day(10) {
		t.Errorf("Nearest(15) = %v, want %v", on, day(10))
	}
}

func TestHistory_FirstLatest(t *testing.T) {
	var h History[float64]
	if on, v := h.Latest(); !on.IsZero() || v != 0 {
		t.Errorf("Latest on empty = %v, %v", on, v)
	}
	h.Append(day(2), 2)
	h.Append(day(1), 1)
	if on, v := h.First(); on != day(1) || v != 1 {
		t.Errorf("First = %v, %v", on, v)
	}
	if on, v := h.Latest(); on != day(2) || v != 2 {
		t.Errorf("Latest = %v, %v", on, v)
	}
}
