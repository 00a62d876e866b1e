package lhe

import "bytes"

// captureState says what the state machine is currently buffering.
type captureState int

const (
	captureNone captureState = iota
	captureHeader
	captureWeight
)

// capture is the second-pass state machine. It consumes start/end/char-data
// tokens and dispatches buffered text to the extractors at tag boundaries.
//
// The header and particle lines inside <event> carry no markup of their own;
// they are raw character data terminated by the next child tag. Seeing any
// start tag while buffering the header therefore flushes the event. When
// that tag is itself a weight tag, both the flush and the weight capture
// fire for it.
type capture struct {
	tab *Table

	state  captureState
	buf    bytes.Buffer
	evtRow int
	wgtCol int
	ptcRow int
}

func newCapture(tab *Table) *capture {
	return &capture{tab: tab}
}

func (c *capture) startElement(name string) error {
	if name == "event" {
		c.state = captureHeader
		c.wgtCol = 0
		c.buf.Reset()
	} else if c.state == captureHeader {
		ptcRow, err := extractEvent(c.tab, c.buf.String(), c.evtRow, c.ptcRow)
		if err != nil {
			return err
		}
		c.ptcRow = ptcRow
		c.buf.Reset()
		c.state = captureNone
	}

	if name == "wgt" {
		c.state = captureWeight
	}
	return nil
}

func (c *capture) endElement(name string) error {
	switch name {
	case "event":
		c.evtRow++
	case "wgt":
		if c.state == captureWeight {
			if err := extractWeight(c.tab, c.buf.String(), c.evtRow, c.wgtCol); err != nil {
				return err
			}
			c.buf.Reset()
			c.wgtCol++
			c.state = captureNone
		}
	}
	return nil
}

func (c *capture) charData(b []byte) {
	if c.state != captureNone {
		c.buf.Write(b)
	}
}
