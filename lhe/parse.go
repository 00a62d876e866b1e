package lhe

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// chunkSize is the read buffer size for the second pass.
	chunkSize = 64 * 1024

	// maxLineSize bounds a single input line during the dimension scan.
	maxLineSize = 1024 * 1024
)

// Parse reads the LHE file at filename and returns its contents as four
// flat numeric arrays. It makes two sequential passes: a dimension scan
// that sizes the arrays, then a streaming tokenize-and-extract pass that
// fills them. On any failure no Table is returned.
//
// Each call is independent; concurrent calls are safe as long as they
// operate on separate files.
func Parse(filename string) (*Table, error) {
	d, err := scanFile(filename)
	if err != nil {
		return nil, err
	}
	if d.empty() {
		return nil, ErrEmptyInput
	}

	tab := newTable(d)

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	if err := fill(bufio.NewReaderSize(f, chunkSize), tab); err != nil {
		return nil, err
	}
	return tab, nil
}

// ParseBytes parses an in-memory LHE payload. Both passes run over the
// same byte slice.
func ParseBytes(data []byte) (*Table, error) {
	d, err := scanDims(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if d.empty() {
		return nil, ErrEmptyInput
	}

	tab := newTable(d)
	if err := fill(bytes.NewReader(data), tab); err != nil {
		return nil, err
	}
	return tab, nil
}

func scanFile(filename string) (dims, error) {
	f, err := os.Open(filename)
	if err != nil {
		return dims{}, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()
	return scanDims(f)
}

// fill drives the second pass: the XML token stream feeds the capture
// state machine until the input is exhausted. A tokenizer syntax error
// aborts the whole parse.
func fill(r io.Reader, tab *Table) error {
	dec := xml.NewDecoder(r)
	c := newCapture(tab)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var syn *xml.SyntaxError
			if errors.As(err, &syn) {
				return &MarkupError{Line: syn.Line, Msg: syn.Msg, err: syn}
			}
			return fmt.Errorf("tokenize: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := c.startElement(t.Name.Local); err != nil {
				return err
			}
		case xml.EndElement:
			if err := c.endElement(t.Name.Local); err != nil {
				return err
			}
		case xml.CharData:
			c.charData(t)
		}
	}
}
