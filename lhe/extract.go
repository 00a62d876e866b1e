package lhe

import (
	"strconv"
	"strings"
)

// fieldSeps are the delimiters between numeric tokens in event text.
const fieldSeps = " \t\n\r"

// fieldReader walks whitespace-delimited tokens in buffered event text.
// Numeric conversions are best-effort: a malformed token is consumed and
// reported via the bool, leaving the destination slot at its zero default.
type fieldReader struct {
	rest string
}

func (f *fieldReader) next() (string, bool) {
	f.rest = strings.TrimLeft(f.rest, fieldSeps)
	if f.rest == "" {
		return "", false
	}
	end := strings.IndexAny(f.rest, fieldSeps)
	if end < 0 {
		tok := f.rest
		f.rest = ""
		return tok, true
	}
	tok := f.rest[:end]
	f.rest = f.rest[end:]
	return tok, true
}

func (f *fieldReader) nextInt() (int32, bool) {
	tok, ok := f.next()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func (f *fieldReader) nextFloat() (float64, bool) {
	tok, ok := f.next()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractEvent parses one event's buffered text (header line plus particle
// lines) into the event row at evtRow and the next nup particle rows
// starting at ptcRow. It returns the new particle cursor.
//
// The particle count is the only mandatory field. Every other field keeps
// its zero default when its token is malformed or missing.
func extractEvent(tab *Table, text string, evtRow, ptcRow int) (int, error) {
	f := fieldReader{rest: text}

	nup, ok := f.nextInt()
	if !ok {
		return ptcRow, &HeaderError{Event: evtRow}
	}

	if evtRow >= tab.NumEvents {
		return ptcRow, &BoundsError{Array: "event", Row: evtRow, Limit: tab.NumEvents}
	}
	if ptcRow+int(nup) > tab.NumParticles {
		return ptcRow, &BoundsError{Array: "particle", Row: ptcRow + int(nup), Limit: tab.NumParticles}
	}

	ie := tab.EvtIntRow(evtRow)
	ie[0] = nup
	if v, ok := f.nextInt(); ok {
		ie[1] = v // idprup
	}

	fe := tab.EvtFloatRow(evtRow)
	for i := 0; i < evtBase; i++ { // xwgtup, scalup, aqedup, aqcdup
		if v, ok := f.nextFloat(); ok {
			fe[i] = v
		}
	}

	for p := 0; p < int(nup); p++ {
		ip := tab.PtcIntRow(ptcRow)
		fp := tab.PtcFloatRow(ptcRow)
		ip[0] = int32(evtRow)
		for i := 1; i <= 6; i++ { // idup, istup, mothup1/2, icolup1/2
			if v, ok := f.nextInt(); ok {
				ip[i] = v
			}
		}
		for i := 0; i < ptcCols; i++ { // pup1..pup5, vtimup, spinup
			if v, ok := f.nextFloat(); ok {
				fp[i] = v
			}
		}
		ptcRow++
	}

	return ptcRow, nil
}

// extractWeight parses one buffered weight value into the event row's
// weight column. A malformed value leaves the slot at 0.0.
func extractWeight(tab *Table, text string, evtRow, wgtCol int) error {
	if evtRow >= tab.NumEvents {
		return &BoundsError{Array: "event", Row: evtRow, Limit: tab.NumEvents}
	}
	if wgtCol >= tab.NumWeights {
		return &BoundsError{Array: "weight", Row: wgtCol, Limit: tab.NumWeights}
	}
	f := fieldReader{rest: text}
	if v, ok := f.nextFloat(); ok {
		tab.EvtFloatRow(evtRow)[evtBase+wgtCol] = v
	}
	return nil
}
