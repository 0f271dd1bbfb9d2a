package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/preview"
)

// liveReloadScript re-fetches the preview body whenever the server announces
// a new revision, and reconnects after the server restarts.
const liveReloadScript = `(function () {
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type !== "reload") return;
      fetch("/preview").then(function (r) { return r.text(); }).then(function (html) {
        document.getElementById("preview").innerHTML = html;
      });
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();`

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	layout, _ := s.Snapshot()
	title := "widgetgen preview"
	if s.source != "" {
		title += " - " + filepath.Base(s.source)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, preview.WrapPage(title, s.renderer.Render(layout.Elements), liveReloadScript))
}

func (s *PreviewServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	layout, revision := s.Snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Layout-Revision", fmt.Sprint(revision))
	fmt.Fprint(w, s.renderer.Render(layout.Elements))
}

func (s *PreviewServer) handleExport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	shape := s.opts.Shape
	if name := r.URL.Query().Get("shape"); name != "" {
		parsed, err := export.ParseShape(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		shape = parsed
	}

	layout, revision := s.Snapshot()
	start := time.Now()
	code := export.Generate(layout.Elements, shape)

	if logger.ShouldOutput(s.opts.Verbosity, logger.OutputTiming) {
		s.logger.Debugw("Generated export",
			logger.FieldShape, shape,
			logger.FieldBytes, len(code),
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}

	w.Header().Set("Content-Type", "text/x-lua; charset=utf-8")
	w.Header().Set("X-Layout-Revision", fmt.Sprint(revision))
	if r.URL.Query().Get("download") != "" {
		name := export.Filename(r.URL.Query().Get("prefix"), shape, time.Now())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	fmt.Fprint(w, code)
}

// HealthResponse reports server state.
type HealthResponse struct {
	Status   string `json:"status"`
	Session  string `json:"session_id,omitempty"`
	Layout   string `json:"layout,omitempty"`
	Revision int    `json:"revision"`
	Elements int    `json:"elements"`
	Clients  int    `json:"clients"`
}

func (s *PreviewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	layout, revision := s.Snapshot()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Session:  s.opts.Session,
		Layout:   s.source,
		Revision: revision,
		Elements: layout.Len(),
		Clients:  s.ClientCount(),
	})
}

func (s *PreviewServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Early rejection only; register makes the authoritative check
	if s.ctx.Err() != nil {
		writeError(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		s.logger.Warnw("WebSocket upgrade failed",
			logger.FieldRemote, r.RemoteAddr,
			"origin", r.Header.Get("Origin"),
			"error", err)
		return
	}

	client := newClient(s, conn, shortID(uuid.NewString()))
	if !s.register(client) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is shutting down"))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// logRequests logs each request at -vv.
func (s *PreviewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if logger.ShouldOutput(s.opts.Verbosity, logger.OutputHTTPCalls) && !strings.HasPrefix(r.URL.Path, "/ws") {
			s.logger.Debugw("HTTP request",
				"method", r.Method,
				logger.FieldPath, r.URL.Path,
				logger.FieldRemote, r.RemoteAddr)
		}
		next.ServeHTTP(w, r)
	})
}
