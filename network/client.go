package network

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	ErrSendBufferFull = errors.New("send buffer full")
	ErrClosed         = errors.New("connection closed")
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 12
)

// client adapts a websocket to room.Conn. Frames queue on send and a single
// writePump goroutine owns all writes to the socket.
type client struct {
	conn        *websocket.Conn
	send        chan []byte
	messageType int
	done        chan struct{}
	closeOnce   sync.Once
}

func newClient(conn *websocket.Conn, buffer int, binary bool) *client {
	mt := websocket.TextMessage
	if binary {
		mt = websocket.BinaryMessage
	}
	return &client{
		conn:        conn,
		send:        make(chan []byte, buffer),
		messageType: mt,
		done:        make(chan struct{}),
	}
}

// Send queues a frame without waiting. A full queue drops the frame.
func (c *client) Send(b []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.send <- b:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close stops the write pump. The read loop owns closing the socket itself.
func (c *client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(c.messageType, msg); err != nil {
				log.Println("network: write:", err)
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
