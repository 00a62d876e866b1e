package lhe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dims is the result of the first pass: the shapes of the output arrays.
type dims struct {
	events    int
	weights   int
	particles int
}

func (d dims) empty() bool {
	return d.events == 0 || d.weights == 0 || d.particles == 0
}

// scanDims runs the first pass over the raw input: a line scan that counts
// event blocks and weight tags, and accumulates the per-event particle
// counts. The line immediately after an event-open marker must start with
// an integer particle count; anything else is a ScanError.
func scanDims(r io.Reader) (dims, error) {
	var d dims

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, chunkSize), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()

		if strings.Contains(text, "<event>") {
			d.events++
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return dims{}, fmt.Errorf("read line %d: %w", line+1, err)
				}
				return dims{}, &ScanError{Line: line + 1, Msg: "missing event header line"}
			}
			line++
			n, err := leadingInt(sc.Text())
			if err != nil {
				return dims{}, &ScanError{Line: line, Msg: "event header does not start with a particle count"}
			}
			d.particles += n
		}

		if strings.Contains(text, "<wgt") {
			d.weights++
		}
	}
	if err := sc.Err(); err != nil {
		return dims{}, fmt.Errorf("read line %d: %w", line+1, err)
	}

	return d, nil
}

// leadingInt parses the first whitespace-delimited token of s as an integer.
func leadingInt(s string) (int, error) {
	tok := strings.TrimLeft(s, fieldSeps)
	if i := strings.IndexAny(tok, fieldSeps); i >= 0 {
		tok = tok[:i]
	}
	if tok == "" {
		return 0, fmt.Errorf("empty line")
	}
	return strconv.Atoi(tok)
}
