package data

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/hepstack/lhevec/lhe"
)

const sampleLHE = `<LesHouchesEvents version="3.0">
<event>
2 1 1.0 2.0 3.0 4.0
11 -1 0 0 0 0 0.1 0.2 0.3 0.4 0.5 0.6 0.7
-11 1 1 1 0 0 1.1 1.2 1.3 1.4 1.5 1.6 1.7
<wgt id="w0">0.5</wgt>
</event>
</LesHouchesEvents>
`

func TestTableToRecords(t *testing.T) {
	tab, err := lhe.ParseBytes([]byte(sampleLHE))
	if err != nil {
		t.Fatalf("Failed to parse sample: %v", err)
	}

	set, err := NewConverter().TableToRecords(tab)
	if err != nil {
		t.Fatalf("TableToRecords failed: %v", err)
	}
	defer set.Release()

	if got := set.EventInts.NumRows(); got != 1 {
		t.Errorf("Expected 1 event row, got %d", got)
	}
	if got := set.EventFloats.NumCols(); got != 5 {
		t.Errorf("Expected 5 event float columns, got %d", got)
	}
	if got := set.ParticleInts.NumRows(); got != 2 {
		t.Errorf("Expected 2 particle rows, got %d", got)
	}
	if got := set.ParticleFloats.NumRows(); got != 2 {
		t.Errorf("Expected 2 particle rows, got %d", got)
	}

	nup := set.EventInts.Column(0).(*array.Int32)
	if nup.Value(0) != 2 {
		t.Errorf("Expected nup 2, got %d", nup.Value(0))
	}

	wgt := set.EventFloats.Column(4).(*array.Float64)
	if wgt.Value(0) != 0.5 {
		t.Errorf("Expected wgt_0 0.5, got %v", wgt.Value(0))
	}

	owner := set.ParticleInts.Column(0).(*array.Int32)
	for i := 0; i < 2; i++ {
		if owner.Value(i) != 0 {
			t.Errorf("Particle %d: expected owner 0, got %d", i, owner.Value(i))
		}
	}

	energy := set.ParticleFloats.Column(3).(*array.Float64)
	if energy.Value(1) != 1.4 {
		t.Errorf("Expected pup4 1.4, got %v", energy.Value(1))
	}
}

func TestTableToRecordsEmpty(t *testing.T) {
	if _, err := NewConverter().TableToRecords(nil); err == nil {
		t.Error("Expected error for nil table")
	}
	if _, err := NewConverter().TableToRecords(&lhe.Table{}); err == nil {
		t.Error("Expected error for empty table")
	}
}
