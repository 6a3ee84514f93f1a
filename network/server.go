package network

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"circlesim/protocol"
	"circlesim/room"
)

const defaultSendBuffer = 4

// Server bridges websocket viewers and a running room.
type Server struct {
	room       *room.Room
	upgrader   websocket.Upgrader
	sendBuffer int
}

func NewServer(r *room.Room, sendBuffer int) *Server {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	return &Server{
		room: r,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sendBuffer: sendBuffer,
	}
}

// Handler serves /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("/healthz", s.HandleHealth)
	return mux
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	stats, ok := s.room.Stats()
	if !ok {
		http.Error(w, "room stopped", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	codec, err := protocol.CodecByName(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Upgrade HTTP -> WebSocket
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("network: upgrade:", err)
		return
	}
	defer conn.Close()

	// Basic timeouts + pong handling (keeps connections healthy)
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	c := newClient(conn, s.sendBuffer, codec.Binary())
	reply := make(chan room.JoinResult, 1)
	if !s.room.Post(room.Join{Conn: c, Codec: codec, Reply: reply}) {
		return
	}
	var viewerID string
	select {
	case res := <-reply:
		viewerID = res.ViewerID
	case <-s.room.Done():
		return
	}
	log.Printf("network: viewer %s connected from %s", viewerID, r.RemoteAddr)

	go c.writePump()
	defer func() {
		s.room.Post(room.Leave{ViewerID: viewerID})
		c.Close()
		log.Printf("network: viewer %s disconnected", viewerID)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("network: viewer %s read: %v", viewerID, err)
			}
			return
		}

		cmd, err := protocol.DecodeCommand(msg)
		if err != nil {
			if !errors.Is(err, protocol.ErrMissingID) {
				log.Printf("network: viewer %s: discarding frame: %v", viewerID, err)
			}
			continue
		}
		if !s.room.Post(room.Command{ViewerID: viewerID, Cmd: cmd}) {
			return
		}
	}
}
