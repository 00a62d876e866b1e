// Package data provides Arrow schemas and conversion for parsed LHE tables.
// This package implements:
// - Arrow schema definitions for the four output arrays
// - Flat table to Arrow RecordBatch conversion
package data
