package lhe

import "testing"

func TestFieldReaderTokens(t *testing.T) {
	f := fieldReader{rest: "  12 \t -7\nabc 3.5e2  "}

	if v, ok := f.nextInt(); !ok || v != 12 {
		t.Errorf("Expected 12, got %d (ok=%v)", v, ok)
	}
	if v, ok := f.nextInt(); !ok || v != -7 {
		t.Errorf("Expected -7, got %d (ok=%v)", v, ok)
	}
	// malformed token is consumed, not retried
	if _, ok := f.nextInt(); ok {
		t.Error("Expected nextInt to fail on 'abc'")
	}
	if v, ok := f.nextFloat(); !ok || v != 350.0 {
		t.Errorf("Expected 350.0, got %v (ok=%v)", v, ok)
	}
	if _, ok := f.next(); ok {
		t.Error("Expected exhausted reader")
	}
}

func TestExtractEventBounds(t *testing.T) {
	tab := newTable(dims{events: 1, weights: 1, particles: 1})

	// header claims 2 particles, scan only sized for 1
	_, err := extractEvent(tab, "2 1 1.0 2.0 3.0 4.0", 0, 0)
	if _, ok := err.(*BoundsError); !ok {
		t.Fatalf("Expected BoundsError, got %v", err)
	}
}

func TestExtractEventMissingCount(t *testing.T) {
	tab := newTable(dims{events: 1, weights: 1, particles: 1})

	_, err := extractEvent(tab, "junk 1 1.0", 0, 0)
	if _, ok := err.(*HeaderError); !ok {
		t.Fatalf("Expected HeaderError, got %v", err)
	}
}

func TestExtractWeightMalformedLeavesZero(t *testing.T) {
	tab := newTable(dims{events: 1, weights: 2, particles: 1})

	if err := extractWeight(tab, " not-a-number ", 0, 0); err != nil {
		t.Fatalf("extractWeight failed: %v", err)
	}
	if got := tab.EvtFloatRow(0)[evtBase]; got != 0.0 {
		t.Errorf("Expected 0.0 for malformed weight, got %v", got)
	}

	if err := extractWeight(tab, "0.25", 0, 1); err != nil {
		t.Fatalf("extractWeight failed: %v", err)
	}
	if got := tab.EvtFloatRow(0)[evtBase+1]; got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
}
