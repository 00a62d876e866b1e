package arrow

import (
	"path/filepath"
	"testing"

	"github.com/hepstack/lhevec/data"
	"github.com/hepstack/lhevec/lhe"
)

const sampleLHE = `<LesHouchesEvents version="3.0">
<event>
1 1 1.0 2.0 3.0 4.0
22 1 0 0 0 0 0.1 0.2 0.3 0.4 0.0 0.0 0.0
<wgt id="w0">0.5</wgt>
</event>
</LesHouchesEvents>
`

func sampleRecordSet(t *testing.T) *data.RecordSet {
	t.Helper()

	tab, err := lhe.ParseBytes([]byte(sampleLHE))
	if err != nil {
		t.Fatalf("Failed to parse sample: %v", err)
	}
	set, err := data.NewConverter().TableToRecords(tab)
	if err != nil {
		t.Fatalf("Failed to convert sample: %v", err)
	}
	return set
}

func TestSerializeRoundTrip(t *testing.T) {
	set := sampleRecordSet(t)
	defer set.Release()

	w := NewIPCWriter()

	for i, rec := range set.Records() {
		payload, err := w.SerializeToIPC(rec)
		if err != nil {
			t.Fatalf("Record %d: serialize failed: %v", i, err)
		}
		back, err := w.DeserializeFromIPC(payload)
		if err != nil {
			t.Fatalf("Record %d: deserialize failed: %v", i, err)
		}
		if back.NumRows() != rec.NumRows() || back.NumCols() != rec.NumCols() {
			t.Errorf("Record %d: expected %dx%d, got %dx%d", i,
				rec.NumRows(), rec.NumCols(), back.NumRows(), back.NumCols())
		}
		back.Release()
	}
}

func TestRecordFileRoundTrip(t *testing.T) {
	set := sampleRecordSet(t)
	defer set.Release()

	w := NewIPCWriter()
	path := filepath.Join(t.TempDir(), "i_evt.arrows")

	if err := w.WriteRecordFile(path, set.EventInts); err != nil {
		t.Fatalf("WriteRecordFile failed: %v", err)
	}

	back, err := w.ReadRecordFile(path)
	if err != nil {
		t.Fatalf("ReadRecordFile failed: %v", err)
	}
	defer back.Release()

	if back.NumRows() != 1 || back.NumCols() != 2 {
		t.Errorf("Expected 1x2 record, got %dx%d", back.NumRows(), back.NumCols())
	}
}

func TestDeserializeGarbage(t *testing.T) {
	w := NewIPCWriter()
	if _, err := w.DeserializeFromIPC([]byte("not an ipc stream")); err == nil {
		t.Error("Expected error for garbage input")
	}
}
