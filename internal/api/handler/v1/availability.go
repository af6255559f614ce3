package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type subscriber struct {
	conn     *websocket.Conn
	send     chan []byte
	templeID uint
}

// AvailabilityHub pushes seat changes to websocket subscribers of a temple.
type AvailabilityHub struct {
	upgrader    websocket.Upgrader
	subscribers map[uint]map[*subscriber]struct{}
	broadcast   chan domain.SlotAvailability
	register    chan *subscriber
	unregister  chan *subscriber
	done        chan struct{}
}

func NewAvailabilityHub(allowedOrigins []string) *AvailabilityHub {
	return &AvailabilityHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, origin)
			},
		},
		subscribers: make(map[uint]map[*subscriber]struct{}),
		broadcast:   make(chan domain.SlotAvailability, 256),
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
		done:        make(chan struct{}),
	}
}

// Run owns the subscriber map until ctx is done.
func (h *AvailabilityHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for _, subs := range h.subscribers {
				for sub := range subs {
					close(sub.send)
				}
			}
			h.subscribers = make(map[uint]map[*subscriber]struct{})
			return
		case sub := <-h.register:
			if h.subscribers[sub.templeID] == nil {
				h.subscribers[sub.templeID] = make(map[*subscriber]struct{})
			}
			h.subscribers[sub.templeID][sub] = struct{}{}
		case sub := <-h.unregister:
			h.remove(sub)
		case availability := <-h.broadcast:
			message, err := json.Marshal(availability)
			if err != nil {
				continue
			}
			for sub := range h.subscribers[availability.TempleID] {
				select {
				case sub.send <- message:
				default:
					h.remove(sub)
				}
			}
		}
	}
}

func (h *AvailabilityHub) remove(sub *subscriber) {
	subs, ok := h.subscribers[sub.templeID]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.templeID)
	}
}

// Publish never blocks; updates are dropped when the hub falls behind.
func (h *AvailabilityHub) Publish(availability domain.SlotAvailability) {
	select {
	case h.broadcast <- availability:
	default:
		zap.L().Warn("availability update dropped", zap.Uint("slot_id", availability.SlotID))
	}
}

// HandleSubscribe godoc
// @Summary      Live seat availability of a temple
// @Description  Upgrades to a websocket that receives a message whenever a slot of the temple changes.
// @Tags         slots
// @Param        templeID  path      int  true  "Temple ID"
// @Success      101      {object}   domain.SlotAvailability
// @Failure      400      {object}   response.Err
// @Router       /slots/live/{templeID} [get]
func (h *AvailabilityHub) HandleSubscribe(ctx *gin.Context) {
	templeID, err := pathID(ctx, "templeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{
		conn:     conn,
		send:     make(chan []byte, 16),
		templeID: templeID,
	}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go sub.writePump()
	go sub.readPump(h)
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the close; subscribers send nothing.
func (s *subscriber) readPump(h *AvailabilityHub) {
	defer func() {
		select {
		case h.unregister <- s:
		case <-h.done:
		}
		s.conn.Close()
	}()

	s.conn.SetReadLimit(512)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("websocket closed", zap.Error(err))
			}
			return
		}
	}
}
