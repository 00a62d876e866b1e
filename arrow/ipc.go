// Package arrow provides Arrow IPC serialization for parsed event batches.
package arrow

import (
	"bytes"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// IPCWriter writes Arrow RecordBatches to IPC format. Each record carries
// its own schema, so records are serialized to separate streams.
type IPCWriter struct {
	allocator memory.Allocator
}

// NewIPCWriter creates a new IPCWriter.
func NewIPCWriter() *IPCWriter {
	return &IPCWriter{
		allocator: memory.DefaultAllocator,
	}
}

// SerializeToIPC serializes an Arrow Record to IPC stream bytes.
func (w *IPCWriter) SerializeToIPC(record arrow.Record) ([]byte, error) {
	var buf bytes.Buffer

	writer := ipc.NewWriter(&buf, ipc.WithSchema(record.Schema()), ipc.WithAllocator(w.allocator))

	if err := writer.Write(record); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	return buf.Bytes(), nil
}

// DeserializeFromIPC deserializes IPC stream bytes to an Arrow Record.
func (w *IPCWriter) DeserializeFromIPC(data []byte) (arrow.Record, error) {
	reader, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(w.allocator))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Release()

	if !reader.Next() {
		if reader.Err() != nil {
			return nil, reader.Err()
		}
		return nil, fmt.Errorf("no records in IPC data")
	}

	record := reader.Record()
	record.Retain() // keep the record alive past the reader

	return record, nil
}

// WriteRecordFile writes a single record to path as an IPC stream.
func (w *IPCWriter) WriteRecordFile(path string, record arrow.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := ipc.NewWriter(f, ipc.WithSchema(record.Schema()), ipc.WithAllocator(w.allocator))

	if err := writer.Write(record); err != nil {
		writer.Close()
		f.Close()
		return fmt.Errorf("failed to write record to %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close writer for %s: %w", path, err)
	}

	return f.Close()
}

// ReadRecordFile reads the first record from an IPC stream file.
// The caller must Release the returned record.
func (w *IPCWriter) ReadRecordFile(path string) (arrow.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return w.DeserializeFromIPC(data)
}
