// Package ctl implements the control socket: a unix domain socket
// accepting newline-delimited Lua chunks. Every chunk runs on the
// session goroutine against the live VM and is answered with "ok" or
// "err <message>", so shell scripts can drive a running panel.
package ctl

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Executor runs one control chunk and reports the result through
// reply. Implemented by the session.
type Executor interface {
	ExecuteControl(code string, reply func(error))
}

// Stats holds control socket statistics for monitoring.
type Stats struct {
	ConnsAccepted uint64
	LinesExecuted uint64
}

// Server owns the listening socket and one goroutine per client
// connection. Execution itself happens on the session goroutine; the
// connection goroutine only shuttles lines and replies.
type Server struct {
	path     string
	executor Executor

	mu       sync.Mutex
	listener net.Listener

	connsAccepted atomic.Uint64
	linesExecuted atomic.Uint64

	done      chan struct{}
	closeOnce sync.Once
}

// NewServer creates a server for the given socket path. It is passive
// until Start.
func NewServer(path string, executor Executor) *Server {
	return &Server{
		path:     path,
		executor: executor,
		done:     make(chan struct{}),
	}
}

// Start listens on the socket and begins accepting connections. A
// stale socket file left by a dead process is removed; a live one is
// an error so two panels never fight over the same path.
func (s *Server) Start() error {
	if _, err := os.Stat(s.path); err == nil {
		if conn, err := net.DialTimeout("unix", s.path, 250*time.Millisecond); err == nil {
			conn.Close()
			return fmt.Errorf("control socket %s is in use", s.path)
		}
		os.Remove(s.path)
	}

	ln, err := net.Listen("unix", s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	go s.acceptLoop(ln)
	return nil
}

// Path returns the socket path the server listens on.
func (s *Server) Path() string { return s.path }

// Stats returns current socket statistics.
func (s *Server) Stats() Stats {
	return Stats{
		ConnsAccepted: s.connsAccepted.Load(),
		LinesExecuted: s.linesExecuted.Load(),
	}
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			// Close() closed the listener, or it is otherwise dead.
			return
		}
		s.connsAccepted.Add(1)
		go s.serveConn(conn)
	}
}

// serveConn processes one client: a line in, a verdict out, strictly
// in order.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result := make(chan error, 1)
		s.executor.ExecuteControl(line, func(err error) {
			result <- err
		})

		var err error
		select {
		case err = <-result:
		case <-s.done:
			return
		}
		s.linesExecuted.Add(1)

		if err != nil {
			fmt.Fprintf(conn, "err %s\n", firstLine(err.Error()))
		} else {
			fmt.Fprintln(conn, "ok")
		}
	}
}

// Close stops accepting and removes the socket file. Connections that
// are mid-line finish their current reply and then hit EOF.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.listener != nil {
			s.listener.Close()
		}
		s.mu.Unlock()
		os.Remove(s.path)
	})
}

// firstLine keeps the reply protocol line-based: a Lua runtime error
// carries its traceback on the lines after the first.
func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
