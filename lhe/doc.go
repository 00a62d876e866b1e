// Package lhe implements a two-pass streaming parser for Les Houches Event
// (LHE) files.
// This package implements:
// - Dimension scan: a forward line pass counting events, weights and particles
// - Capture state machine driven by the XML token stream
// - Extraction of event headers, particle records and weight values into
//   pre-sized flat arrays
package lhe
