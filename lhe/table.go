package lhe

// Widths of the fixed-width output rows.
const (
	evtIntCols = 2 // nup, idprup
	evtBase    = 4 // xwgtup, scalup, aqedup, aqcdup; weights follow
	ptcCols    = 7 // both the integer and the float particle rows
)

// Table holds the four flat, row-major output arrays of one parsed file.
//
// Layout:
//   - EvtInt:   NumEvents x 2            [nup, idprup]
//   - EvtFloat: NumEvents x (4+NumWeights) [xwgtup, scalup, aqedup, aqcdup, wgt_0..]
//   - PtcInt:   NumParticles x 7         [event_idx, idup, istup, mothup1, mothup2, icolup1, icolup2]
//   - PtcFloat: NumParticles x 7         [pup1..pup5, vtimup, spinup]
//
// Particle rows are contiguous per event in document order, and column 0 of
// PtcInt carries the owning event's row index. All four arrays are allocated
// once, zero-filled, and populated with strictly increasing row cursors.
type Table struct {
	NumEvents    int
	NumWeights   int
	NumParticles int

	EvtInt   []int32
	EvtFloat []float64
	PtcInt   []int32
	PtcFloat []float64
}

func newTable(d dims) *Table {
	return &Table{
		NumEvents:    d.events,
		NumWeights:   d.weights,
		NumParticles: d.particles,
		EvtInt:       make([]int32, d.events*evtIntCols),
		EvtFloat:     make([]float64, d.events*(evtBase+d.weights)),
		PtcInt:       make([]int32, d.particles*ptcCols),
		PtcFloat:     make([]float64, d.particles*ptcCols),
	}
}

// EvtFloatWidth returns the number of columns in EvtFloat.
func (t *Table) EvtFloatWidth() int { return evtBase + t.NumWeights }

// EvtIntRow returns the integer event row at index i.
func (t *Table) EvtIntRow(i int) []int32 {
	return t.EvtInt[i*evtIntCols : (i+1)*evtIntCols : (i+1)*evtIntCols]
}

// EvtFloatRow returns the float event row at index i.
func (t *Table) EvtFloatRow(i int) []float64 {
	w := t.EvtFloatWidth()
	return t.EvtFloat[i*w : (i+1)*w : (i+1)*w]
}

// PtcIntRow returns the integer particle row at index i.
func (t *Table) PtcIntRow(i int) []int32 {
	return t.PtcInt[i*ptcCols : (i+1)*ptcCols : (i+1)*ptcCols]
}

// PtcFloatRow returns the float particle row at index i.
func (t *Table) PtcFloatRow(i int) []float64 {
	return t.PtcFloat[i*ptcCols : (i+1)*ptcCols : (i+1)*ptcCols]
}
