package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-zeromq/zmq4"
)

// Common errors for publisher operations
var (
	ErrNotRunning = errors.New("publisher is not running")
)

// TopicEventBatches is the topic frame for converted LHE record sets.
const TopicEventBatches = "lhe.batches"

// Publisher broadcasts converted record sets on a ZeroMQ PUB socket.
// Each message is multipart: a topic frame followed by the four Arrow IPC
// frames in canonical order. Subscribers that cannot keep up miss messages;
// delivery is never guaranteed.
type Publisher struct {
	addr string

	ctx    context.Context
	cancel context.CancelFunc

	pub     zmq4.Socket
	running bool
	mu      sync.Mutex
}

// NewPublisher creates a publisher that will bind to addr
// (e.g. "tcp://127.0.0.1:5557").
func NewPublisher(addr string) *Publisher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Publisher{
		addr:   addr,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start binds the PUB socket.
func (p *Publisher) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errors.New("publisher already running")
	}

	pub := zmq4.NewPub(p.ctx)
	if err := pub.Listen(p.addr); err != nil {
		return fmt.Errorf("failed to bind publisher to %s: %w", p.addr, err)
	}

	p.pub = pub
	p.running = true
	return nil
}

// Stop closes the socket.
func (p *Publisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.running = false

	p.cancel()
	if p.pub != nil {
		_ = p.pub.Close()
	}
}

// Publish sends one multipart message: the topic frame followed by the
// data frames.
func (p *Publisher) Publish(topic string, frames [][]byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return ErrNotRunning
	}

	parts := make([][]byte, 0, len(frames)+1)
	parts = append(parts, []byte(topic))
	parts = append(parts, frames...)

	if err := p.pub.Send(zmq4.NewMsgFrom(parts...)); err != nil {
		return fmt.Errorf("failed to publish on %s: %w", topic, err)
	}
	return nil
}

// Addr returns the configured bind address.
func (p *Publisher) Addr() string {
	return p.addr
}
