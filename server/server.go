// Package server serves a live HTML preview of a layout and pushes reload
// notifications to connected browsers over WebSocket.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/preview"
	"github.com/teranos/widgetgen/widget"
	"go.uber.org/zap"
)

// shutdownTimeout bounds graceful HTTP shutdown
const shutdownTimeout = 5 * time.Second

// Options configures a PreviewServer
type Options struct {
	Shape          export.Shape      // shape served by /export when no ?shape= is given
	Renderer       *preview.Renderer // nil = preview.NewRenderer()
	AllowedOrigins []string          // WebSocket origin prefixes; empty allows any
	Verbosity      int
	Session        string // logged with every entry
}

// PreviewServer holds the current layout snapshot and its live-reload clients.
type PreviewServer struct {
	opts     Options
	renderer *preview.Renderer
	logger   *zap.SugaredLogger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	source   string
	layout   *widget.Layout
	revision int
	clients  map[*Client]bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a server for layout, loaded from source.
func New(layout *widget.Layout, source string, opts Options) *PreviewServer {
	if opts.Shape == "" {
		opts.Shape = export.DefaultShape
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = preview.NewRenderer()
	}
	if layout == nil {
		layout = &widget.Layout{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &PreviewServer{
		opts:     opts,
		renderer: renderer,
		logger:   logger.ComponentLogger("serve").With(logger.FieldSession, opts.Session),
		source:   source,
		layout:   layout,
		revision: 1,
		clients:  make(map[*Client]bool),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(opts.AllowedOrigins),
	}
	return s
}

// Snapshot returns the current layout and its revision.
func (s *PreviewServer) Snapshot() (*widget.Layout, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout, s.revision
}

// ClientCount returns the number of connected live-reload clients.
func (s *PreviewServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Update swaps in a new layout and notifies every client. It matches
// watcher.ReloadCallback.
func (s *PreviewServer) Update(layout *widget.Layout) error {
	if layout == nil {
		return errors.New("nil layout")
	}

	s.mu.Lock()
	s.layout = layout
	s.revision++
	revision := s.revision
	s.mu.Unlock()

	sent := s.broadcast(ReloadMessage{
		Type:      "reload",
		Revision:  revision,
		Elements:  layout.Len(),
		Timestamp: time.Now().Unix(),
	})

	if logger.ShouldOutput(s.opts.Verbosity, logger.OutputReloads) {
		s.logger.Infow("Preview updated",
			"revision", revision,
			logger.FieldCount, layout.Len(),
			logger.FieldClients, sent)
	}
	return nil
}

// Handler returns the HTTP routes of the preview server.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/preview", s.handlePreview)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully and disconnects every client.
func (s *PreviewServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	if logger.ShouldOutput(s.opts.Verbosity, logger.OutputStartup) {
		s.logger.Infow("Preview server listening",
			logger.FieldAddr, addr,
			logger.FieldLayout, s.source)
	}

	select {
	case err := <-errChan:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "failed to listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}
	s.logger.Infow("Preview server stopped")
	return nil
}

// Close disconnects all clients and waits for their pumps to exit.
func (s *PreviewServer) Close() {
	s.cancel()

	s.mu.Lock()
	for client := range s.clients {
		client.close()
		delete(s.clients, client)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// register adds c unless the server is shutting down. The shutdown check,
// the registration and the pump accounting happen under one lock so Close
// either sees the client or rejects it.
func (s *PreviewServer) register(c *Client) bool {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}
	s.clients[c] = true
	s.wg.Add(2)
	count := len(s.clients)
	s.mu.Unlock()

	if logger.ShouldOutput(s.opts.Verbosity, logger.OutputClients) {
		s.logger.Infow("Client connected", "client_id", c.id, logger.FieldClients, count)
	}
	return true
}

func (s *PreviewServer) unregister(c *Client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	if ok {
		delete(s.clients, c)
		c.close()
	}
	count := len(s.clients)
	s.mu.Unlock()

	if ok && logger.ShouldOutput(s.opts.Verbosity, logger.OutputClients) {
		s.logger.Infow("Client disconnected", "client_id", c.id, logger.FieldClients, count)
	}
}

// broadcast sends msg to every client and returns how many accepted it.
// Clients with a full send buffer are skipped. Sends happen under the read
// lock so no client channel is closed mid-send.
func (s *PreviewServer) broadcast(msg ReloadMessage) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sent := 0
	for client := range s.clients {
		if client.enqueue(msg) {
			sent++
		}
	}
	return sent
}
