package api

import (
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/rs/zerolog"
)

// Server is a TCP server that accepts LHE payloads and answers with Arrow
// IPC frames. Each request is one length-prefixed message; each response is
// a status frame followed, on success, by four IPC frames.
type Server struct {
	listener net.Listener
	handler  *Handler
	log      zerolog.Logger
	running  bool
	mu       sync.Mutex
	quit     chan struct{}
}

// NewServer creates a new Server instance.
func NewServer(handler *Handler, log zerolog.Logger) *Server {
	return &Server{
		handler: handler,
		log:     log,
		quit:    make(chan struct{}),
	}
}

// Start starts the server on the specified address.
// This method blocks until the server is stopped or fails.
func (s *Server) Start(address string) error {
	if err := s.listen(address); err != nil {
		return err
	}
	defer s.Stop()
	s.acceptLoop()
	return nil
}

// StartAsync starts the server in a background goroutine.
func (s *Server) StartAsync(address string) error {
	if err := s.listen(address); err != nil {
		return err
	}
	go s.acceptLoop()
	return nil
}

func (s *Server) listen(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s.listener = lis
	s.running = true
	s.log.Info().Str("addr", lis.Addr().String()).Msg("parse service listening")
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return
			default:
				continue
			}
		}
		go s.handleConnection(conn)
	}
}

// Addr returns the listener address, or empty before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop stops the server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	close(s.quit)
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Warn().Err(err).Msg("listener close failed")
		}
	}
}

// handleConnection serves requests from a single client connection.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	for {
		payload, err := ReadMessage(conn)
		if err != nil {
			if err != io.EOF {
				s.log.Debug().Err(err).Msg("read request failed")
			}
			return
		}

		frames, err := s.handler.ProcessPayload(payload)
		if err != nil {
			s.log.Warn().Err(err).Int("payload_bytes", len(payload)).Msg("parse request failed")
			if werr := WriteStatus(conn, err); werr != nil {
				return
			}
			continue
		}

		if err := WriteStatus(conn, nil); err != nil {
			return
		}
		for _, frame := range frames {
			if err := WriteMessage(conn, frame); err != nil {
				s.log.Debug().Err(err).Msg("write response failed")
				return
			}
		}
	}
}
