package web

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("web: connection closed")

// MessageHandler receives decoded client messages.
type MessageHandler interface {
	HandleMessage(msg InboundMessage)
}

// Connection wraps a WebSocket with a buffered outbound queue drained by
// WritePump. A slow client whose queue fills up is disconnected.
type Connection struct {
	ws     *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	logger *log.Logger
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn, logger *log.Logger) *Connection {
	return &Connection{
		ws:     ws,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// ReadPump reads messages until the socket fails or closes.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.Close()

	c.ws.SetReadLimit(maxMessageSize)
	//nolint:errcheck // A failed deadline surfaces as a read error
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("read failed", "error", err)
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			//nolint:errcheck // Best-effort reply
			c.SendMessage(MessageTypeError, ErrorMessage{Code: "bad_message", Message: "malformed JSON"})
			continue
		}
		h.HandleMessage(msg)
	}
}

// WritePump sends queued messages and keepalive pings until Close.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message := <-c.send:
			//nolint:errcheck // A failed deadline surfaces as a write error
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Close()
				return
			}

		case <-ticker.C:
			//nolint:errcheck // A failed deadline surfaces as a write error
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}

		case <-c.done:
			//nolint:errcheck // Peer may already be gone
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// SendMessage queues a message for the client without blocking.
func (c *Connection) SendMessage(t MessageType, payload any) error {
	data, err := json.Marshal(Envelope{Type: t, Payload: payload})
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrConnectionClosed
	default:
		c.logger.Warn("send queue full, dropping client")
		c.Close()
		return ErrConnectionClosed
	}
}

// Done is closed once the connection shuts down.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Close stops both pumps. Safe to call more than once.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}
