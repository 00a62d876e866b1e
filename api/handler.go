package api

import (
	"fmt"
	"time"

	lhearrow "github.com/hepstack/lhevec/arrow"
	"github.com/hepstack/lhevec/data"
	"github.com/hepstack/lhevec/lhe"
	"github.com/hepstack/lhevec/network"
)

// Handler turns a raw LHE payload into the four Arrow IPC response frames,
// in the canonical order: event ints, event floats, particle ints,
// particle floats.
type Handler struct {
	conv      *data.Converter
	ipc       *lhearrow.IPCWriter
	metrics   *Metrics
	publisher *network.Publisher
}

// NewHandler creates a new Handler. metrics may be nil.
func NewHandler(metrics *Metrics) *Handler {
	return &Handler{
		conv:    data.NewConverter(),
		ipc:     lhearrow.NewIPCWriter(),
		metrics: metrics,
	}
}

// SetPublisher attaches a publisher that receives every successfully
// converted record set.
func (h *Handler) SetPublisher(p *network.Publisher) {
	h.publisher = p
}

// ProcessPayload parses the payload and serializes the result.
func (h *Handler) ProcessPayload(payload []byte) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("received empty payload")
	}

	start := time.Now()

	tab, err := lhe.ParseBytes(payload)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordFailure()
		}
		return nil, err
	}

	set, err := h.conv.TableToRecords(tab)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordFailure()
		}
		return nil, err
	}
	defer set.Release()

	frames := make([][]byte, 0, 4)
	for _, rec := range set.Records() {
		frame, err := h.ipc.SerializeToIPC(rec)
		if err != nil {
			if h.metrics != nil {
				h.metrics.RecordFailure()
			}
			return nil, fmt.Errorf("serialize record: %w", err)
		}
		frames = append(frames, frame)
	}

	if h.metrics != nil {
		h.metrics.RecordParse(tab.NumEvents, tab.NumParticles, len(payload), time.Since(start))
	}

	if h.publisher != nil {
		// Best effort: a slow or absent subscriber never fails the request
		_ = h.publisher.Publish(network.TopicEventBatches, frames)
	}

	return frames, nil
}
