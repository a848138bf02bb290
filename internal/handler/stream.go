package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Origin is not checked: the stream requires a bearer token, which a
// cross-site page cannot attach on its own.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamStoreEvents pushes booking events of a store to its owner over a WebSocket.
func (h *Handler) StreamStoreEvents(c *ginext.Context) {
	storeID := c.Param("id")

	ok, err := h.pendingService.CanManage(c.Request.Context(), middleware.Actor(c), storeID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !ok {
		c.Set("error", domain.ErrForbidden.Error())
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error(), Code: codeForbidden})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		c.Set("error", err.Error())
		return
	}
	defer conn.Close()

	events, unsubscribe := h.events.Subscribe(storeID)
	defer unsubscribe()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(toStreamEvent(event)); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are processed.
func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

type streamEvent struct {
	Type       string              `json:"type"`
	StoreID    string              `json:"store_id"`
	Booking    dto.BookingResponse `json:"booking"`
	OccurredAt string              `json:"occurred_at"`
}

func toStreamEvent(e domain.BookingEvent) streamEvent {
	return streamEvent{
		Type:       string(e.Type),
		StoreID:    e.StoreID,
		Booking:    dto.ToBookingResponse(e.Booking),
		OccurredAt: e.OccurredAt.Format(time.RFC3339),
	}
}
