package data

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// EventIntSchema returns the Arrow schema for the integer event array.
//
// Fields:
//   - nup: int32 - number of particles in the event
//   - idprup: int32 - process id
func EventIntSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "nup", Type: arrow.PrimitiveTypes.Int32},
			{Name: "idprup", Type: arrow.PrimitiveTypes.Int32},
		},
		nil,
	)
}

// EventFloatSchema returns the Arrow schema for the float event array.
// The first four columns are fixed; one wgt_i column follows per weight.
//
// Fields:
//   - xwgtup: float64 - event weight
//   - scalup: float64 - factorization scale
//   - aqedup: float64 - QED coupling
//   - aqcdup: float64 - QCD coupling
//   - wgt_0..wgt_{n-1}: float64 - alternative weights
func EventFloatSchema(nWeights int) *arrow.Schema {
	fields := []arrow.Field{
		{Name: "xwgtup", Type: arrow.PrimitiveTypes.Float64},
		{Name: "scalup", Type: arrow.PrimitiveTypes.Float64},
		{Name: "aqedup", Type: arrow.PrimitiveTypes.Float64},
		{Name: "aqcdup", Type: arrow.PrimitiveTypes.Float64},
	}
	for i := 0; i < nWeights; i++ {
		fields = append(fields, arrow.Field{
			Name: fmt.Sprintf("wgt_%d", i),
			Type: arrow.PrimitiveTypes.Float64,
		})
	}
	return arrow.NewSchema(fields, nil)
}

// ParticleIntSchema returns the Arrow schema for the integer particle array.
//
// Fields:
//   - event_idx: int32 - row index of the owning event
//   - idup: int32 - PDG id
//   - istup: int32 - status code
//   - mothup1, mothup2: int32 - mother indices
//   - icolup1, icolup2: int32 - color flow tags
func ParticleIntSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "event_idx", Type: arrow.PrimitiveTypes.Int32},
			{Name: "idup", Type: arrow.PrimitiveTypes.Int32},
			{Name: "istup", Type: arrow.PrimitiveTypes.Int32},
			{Name: "mothup1", Type: arrow.PrimitiveTypes.Int32},
			{Name: "mothup2", Type: arrow.PrimitiveTypes.Int32},
			{Name: "icolup1", Type: arrow.PrimitiveTypes.Int32},
			{Name: "icolup2", Type: arrow.PrimitiveTypes.Int32},
		},
		nil,
	)
}

// ParticleFloatSchema returns the Arrow schema for the float particle array.
//
// Fields:
//   - pup1..pup3: float64 - momentum components
//   - pup4: float64 - energy
//   - pup5: float64 - mass
//   - vtimup: float64 - proper lifetime
//   - spinup: float64 - spin projection
func ParticleFloatSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "pup1", Type: arrow.PrimitiveTypes.Float64},
			{Name: "pup2", Type: arrow.PrimitiveTypes.Float64},
			{Name: "pup3", Type: arrow.PrimitiveTypes.Float64},
			{Name: "pup4", Type: arrow.PrimitiveTypes.Float64},
			{Name: "pup5", Type: arrow.PrimitiveTypes.Float64},
			{Name: "vtimup", Type: arrow.PrimitiveTypes.Float64},
			{Name: "spinup", Type: arrow.PrimitiveTypes.Float64},
		},
		nil,
	)
}
