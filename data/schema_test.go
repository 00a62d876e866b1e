package data

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
)

func TestEventIntSchema(t *testing.T) {
	schema := EventIntSchema()

	if schema.NumFields() != 2 {
		t.Errorf("Expected 2 fields, got %d", schema.NumFields())
	}

	expectedNames := []string{"nup", "idprup"}
	for i, name := range expectedNames {
		field := schema.Field(i)
		if field.Name != name {
			t.Errorf("Field %d: expected name %s, got %s", i, name, field.Name)
		}
		if !arrow.TypeEqual(field.Type, arrow.PrimitiveTypes.Int32) {
			t.Errorf("Field %s: expected int32, got %s", name, field.Type)
		}
	}
}

func TestEventFloatSchema(t *testing.T) {
	schema := EventFloatSchema(3)

	if schema.NumFields() != 7 {
		t.Errorf("Expected 7 fields, got %d", schema.NumFields())
	}

	expectedNames := []string{"xwgtup", "scalup", "aqedup", "aqcdup", "wgt_0", "wgt_1", "wgt_2"}
	for i, name := range expectedNames {
		field := schema.Field(i)
		if field.Name != name {
			t.Errorf("Field %d: expected name %s, got %s", i, name, field.Name)
		}
		if !arrow.TypeEqual(field.Type, arrow.PrimitiveTypes.Float64) {
			t.Errorf("Field %s: expected float64, got %s", name, field.Type)
		}
	}
}

func TestParticleSchemas(t *testing.T) {
	ints := ParticleIntSchema()
	if ints.NumFields() != 7 {
		t.Errorf("Expected 7 integer fields, got %d", ints.NumFields())
	}
	if ints.Field(0).Name != "event_idx" {
		t.Errorf("Expected field 0 to be event_idx, got %s", ints.Field(0).Name)
	}

	floats := ParticleFloatSchema()
	if floats.NumFields() != 7 {
		t.Errorf("Expected 7 float fields, got %d", floats.NumFields())
	}
	expectedNames := []string{"pup1", "pup2", "pup3", "pup4", "pup5", "vtimup", "spinup"}
	for i, name := range expectedNames {
		if floats.Field(i).Name != name {
			t.Errorf("Field %d: expected %s, got %s", i, name, floats.Field(i).Name)
		}
	}
}
