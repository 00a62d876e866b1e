package api

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// MaxMessageSize is the maximum allowed message size (256MB). LHE payloads
// and their Arrow responses can be large, but not unbounded.
const MaxMessageSize = 256 * 1024 * 1024

// ErrMessageTooLarge is returned when a message exceeds MaxMessageSize.
var ErrMessageTooLarge = errors.New("message size exceeds maximum allowed size")

const statusOK = "OK"

// ReadMessage reads a length-prefixed message from the reader.
// Format: [4 bytes length (BigEndian)] [N bytes payload]
func ReadMessage(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}

	if length > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrMessageTooLarge, length, MaxMessageSize)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}

	return buf, nil
}

// WriteMessage writes a length-prefixed message to the writer.
// Format: [4 bytes length (BigEndian)] [N bytes payload]
func WriteMessage(w io.Writer, data []byte) error {
	if len(data) > math.MaxUint32 || len(data) > MaxMessageSize {
		return fmt.Errorf("%w: %d bytes (max: %d)", ErrMessageTooLarge, len(data), MaxMessageSize)
	}

	length := uint32(len(data))
	if err := binary.Write(w, binary.BigEndian, length); err != nil {
		return fmt.Errorf("failed to write message length: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}

	return nil
}

// WriteStatus writes the status frame that opens every response. A nil err
// writes "OK"; anything else carries the error text to the client.
func WriteStatus(w io.Writer, err error) error {
	if err != nil {
		return WriteMessage(w, []byte("ERR "+err.Error()))
	}
	return WriteMessage(w, []byte(statusOK))
}

// ReadStatus reads a response status frame. A non-OK status is returned
// as an error carrying the server's diagnostic text.
func ReadStatus(r io.Reader) error {
	frame, err := ReadMessage(r)
	if err != nil {
		return err
	}
	s := string(frame)
	if s == statusOK {
		return nil
	}
	return errors.New(strings.TrimPrefix(s, "ERR "))
}
