package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/internal/util"
	"github.com/teranos/widgetgen/widget"
)

func testLayout(text string) *widget.Layout {
	return &widget.Layout{Elements: []widget.Element{
		{
			ID: "button_1", Kind: widget.KindButton,
			X: 1, Y: 1, Width: 10, Height: 3,
			Props: &widget.Button{Text: text, Enabled: util.Ptr(true)},
		},
	}}
}

func newTestServer(t *testing.T, opts Options) (*PreviewServer, *httptest.Server) {
	t.Helper()
	s := New(testLayout("Go"), "layout.json", opts)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndexServesLiveReloadPage(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>widgetgen preview - layout.json</title>")
	assert.Contains(t, body, `data-id="button_1"`)
	assert.Contains(t, body, `new WebSocket`)

	resp, _ = get(t, ts.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportUsesDefaultAndRequestedShape(t *testing.T) {
	s, ts := newTestServer(t, Options{Shape: export.ShapeWidgets})
	layout, _ := s.Snapshot()

	_, body := get(t, ts.URL+"/export")
	assert.Equal(t, export.Generate(layout.Elements, export.ShapeWidgets), body)

	resp, body := get(t, ts.URL+"/export?shape=function")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Layout-Revision"))
	assert.Equal(t, export.Generate(layout.Elements, export.ShapeFunction), body)

	resp, body = get(t, ts.URL+"/export?shape=xml")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "unknown export shape")
}

func TestExportDownloadSetsFilename(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, _ := get(t, ts.URL+"/export?download=1&prefix=ui")
	disposition := resp.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="ui_full_`), disposition)
	assert.True(t, strings.HasSuffix(disposition, `.lua"`), disposition)
}

func TestMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, err := http.Post(ts.URL+"/export", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, Options{Session: "abc"})

	resp, body := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "abc", health.Session)
	assert.Equal(t, 1, health.Revision)
	assert.Equal(t, 1, health.Elements)
	assert.Equal(t, 0, health.Clients)
}

func TestUpdateBroadcastsReload(t *testing.T) {
	s, ts := newTestServer(t, Options{})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, s.Update(testLayout("Stop")))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "reload", msg.Type)
	assert.Equal(t, 2, msg.Revision)
	assert.Equal(t, 1, msg.Elements)

	_, body := get(t, ts.URL+"/preview")
	assert.Contains(t, body, "Stop")
	assert.NotContains(t, body, ">Go<")
}

func TestUpdateRejectsNil(t *testing.T) {
	s := New(nil, "", Options{})
	defer s.Close()

	assert.Error(t, s.Update(nil))
	layout, revision := s.Snapshot()
	assert.Equal(t, 0, layout.Len())
	assert.Equal(t, 1, revision)
}

func TestCloseDisconnectsClients(t *testing.T) {
	s, ts := newTestServer(t, Options{})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	s.Close()
	assert.Equal(t, 0, s.ClientCount())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

// Run with -race: broadcasting must not overlap a client's channel close.
func TestUpdateConcurrentWithUnregister(t *testing.T) {
	s := New(testLayout("Go"), "layout.json", Options{})
	defer s.Close()

	for i := 0; i < 200; i++ {
		// Registered without pumps, so no connection is needed
		c := newClient(s, nil, "c")
		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Update(testLayout("Go")))
		}()
		go func() {
			defer wg.Done()
			s.unregister(c)
		}()
		wg.Wait()
	}
	assert.Equal(t, 0, s.ClientCount())
}

func TestRegisterAfterClose(t *testing.T) {
	s := New(testLayout("Go"), "layout.json", Options{})
	s.Close()

	assert.False(t, s.register(newClient(s, nil, "late")))
	assert.Equal(t, 0, s.ClientCount())
}

func TestOriginChecker(t *testing.T) {
	allowed := []string{"http://localhost", "http://127.0.0.1"}

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"no origin header", allowed, "", true},
		{"localhost any port", allowed, "http://localhost:5173", true},
		{"loopback", allowed, "http://127.0.0.1:8877", true},
		{"foreign origin", allowed, "https://evil.example", false},
		{"https localhost not listed", allowed, "https://localhost", false},
		{"empty allow list", nil, "https://evil.example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(r))
		})
	}
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	_, ts := newTestServer(t, Options{AllowedOrigins: []string{"http://localhost"}})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefgh", shortID("abcdefghijkl"))
	assert.Equal(t, "abc", shortID("abc"))
}
