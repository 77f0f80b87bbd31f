package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"microgrid-twin/internal/sim"
)

var upgrader = websocket.Upgrader{
	// The API already gates cross-origin HTTP via CORS middleware; the
	// socket accepts any origin so local dev ports work out of the box.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades connections and routes control messages to the player.
type Handler struct {
	hub    *Hub
	player *Player
}

func NewHandler(hub *Hub, player *Player) *Handler {
	return &Handler{hub: hub, player: player}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	client := &Client{hub: h.hub, conn: conn, send: make(chan []byte, sendBuffer)}
	h.hub.Register(client)
	go client.writePump()

	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read failed: %v", err)
			}
			return
		}
		h.handleMessage(msg)
	}
}

func (h *Handler) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		log.Printf("ws: bad envelope: %v", err)
		return
	}

	switch env.Type {
	case TypeSimRun:
		var p RunPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Printf("ws: bad %s payload: %v", env.Type, err)
			return
		}
		engine, err := sim.New(p.Config.ToConfig())
		if err != nil {
			h.sendError("INVALID_CONFIG", err.Error())
			return
		}
		h.player.Play(engine.Run())

	case TypeSimStop:
		h.player.Stop()

	case TypeSimSetSpeed:
		var p SetSpeedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Printf("ws: bad %s payload: %v", env.Type, err)
			return
		}
		h.player.SetSpeed(p.HoursPerSecond)

	default:
		log.Printf("ws: unknown message type %q", env.Type)
	}
}

func (h *Handler) sendError(code, message string) {
	msg, err := NewEnvelope(TypeSimError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		log.Printf("ws: encoding %s: %v", TypeSimError, err)
		return
	}
	h.hub.Broadcast(msg)
}
