package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket timeouts, following the gorilla chat example
const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 54 * time.Second

	// Browsers only send control frames
	maxMessageSize = 512

	sendBuffer = 8
)

// ReloadMessage tells a browser the layout changed.
type ReloadMessage struct {
	Type      string `json:"type"`
	Revision  int    `json:"revision"`
	Elements  int    `json:"elements"`
	Timestamp int64  `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	server    *PreviewServer
	conn      *websocket.Conn
	send      chan ReloadMessage
	id        string
	closeOnce sync.Once
}

func newClient(s *PreviewServer, conn *websocket.Conn, id string) *Client {
	return &Client{
		server: s,
		conn:   conn,
		send:   make(chan ReloadMessage, sendBuffer),
		id:     id,
	}
}

// enqueue queues msg without blocking. It reports false when the buffer is
// full. The caller holds the server lock, which keeps close from running
// concurrently.
func (c *Client) enqueue(msg ReloadMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close closes the send channel. The caller holds the server write lock.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump drains incoming frames so pongs and close frames are processed.
func (c *Client) readPump() {
	defer func() {
		c.server.unregister(c)
		c.conn.Close()
		c.server.wg.Done()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNoStatusReceived,
			) {
				c.server.logger.Warnw("WebSocket read error", "client_id", c.id, "error", err)
			}
			return
		}
	}
}

// writePump sends queued reload messages and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.server.wg.Done()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.server.logger.Debugw("Reload write error", "client_id", c.id, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
