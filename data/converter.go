package data

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hepstack/lhevec/lhe"
)

// RecordSet bundles the four Arrow records of one parsed file, in the
// canonical order: event ints, event floats, particle ints, particle floats.
type RecordSet struct {
	EventInts      arrow.Record
	EventFloats    arrow.Record
	ParticleInts   arrow.Record
	ParticleFloats arrow.Record
}

// Records returns the four records in canonical order.
func (s *RecordSet) Records() []arrow.Record {
	return []arrow.Record{s.EventInts, s.EventFloats, s.ParticleInts, s.ParticleFloats}
}

// Release releases all records in the set.
func (s *RecordSet) Release() {
	for _, rec := range s.Records() {
		if rec != nil {
			rec.Release()
		}
	}
}

// Converter handles flat table to Arrow conversion.
type Converter struct {
	allocator memory.Allocator
}

// NewConverter creates a new Converter with the default memory allocator.
func NewConverter() *Converter {
	return &Converter{allocator: memory.DefaultAllocator}
}

// TableToRecords converts a parsed table to the four Arrow record batches.
// The caller owns the returned set and must Release it.
func (c *Converter) TableToRecords(t *lhe.Table) (*RecordSet, error) {
	if t == nil {
		return nil, errors.New("nil table")
	}
	if t.NumEvents == 0 || t.NumParticles == 0 {
		return nil, errors.New("empty table")
	}

	set := &RecordSet{}
	var err error

	set.EventInts, err = c.buildIntRecord(EventIntSchema(), t.EvtInt, t.NumEvents, 2)
	if err == nil {
		set.EventFloats, err = c.buildFloatRecord(EventFloatSchema(t.NumWeights), t.EvtFloat, t.NumEvents, t.EvtFloatWidth())
	}
	if err == nil {
		set.ParticleInts, err = c.buildIntRecord(ParticleIntSchema(), t.PtcInt, t.NumParticles, 7)
	}
	if err == nil {
		set.ParticleFloats, err = c.buildFloatRecord(ParticleFloatSchema(), t.PtcFloat, t.NumParticles, 7)
	}
	if err != nil {
		set.Release()
		return nil, err
	}

	return set, nil
}

// buildIntRecord gathers a row-major int32 buffer into per-column arrays.
func (c *Converter) buildIntRecord(schema *arrow.Schema, flat []int32, rows, cols int) (arrow.Record, error) {
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("flat buffer length %d does not match %dx%d", len(flat), rows, cols)
	}

	builder := array.NewRecordBuilder(c.allocator, schema)
	defer builder.Release()

	vals := make([]int32, rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			vals[row] = flat[row*cols+col]
		}
		builder.Field(col).(*array.Int32Builder).AppendValues(vals, nil)
	}

	return builder.NewRecord(), nil
}

// buildFloatRecord gathers a row-major float64 buffer into per-column arrays.
func (c *Converter) buildFloatRecord(schema *arrow.Schema, flat []float64, rows, cols int) (arrow.Record, error) {
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("flat buffer length %d does not match %dx%d", len(flat), rows, cols)
	}

	builder := array.NewRecordBuilder(c.allocator, schema)
	defer builder.Release()

	vals := make([]float64, rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			vals[row] = flat[row*cols+col]
		}
		builder.Field(col).(*array.Float64Builder).AppendValues(vals, nil)
	}

	return builder.NewRecord(), nil
}
