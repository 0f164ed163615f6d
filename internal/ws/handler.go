package ws

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Notifications carry no sensitive payload; origin checks stay at the
	// auth middleware in front of the route.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades /ws/events connections and attaches them to the hub.
func Handler(hub *Hub, logger *zap.Logger) fiber.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if logger != nil {
				logger.Warn("ws upgrade failed", zap.Error(err))
			}
			return
		}

		client := newClient(hub, conn)
		hub.register(client)

		go client.writePump()
		go client.readPump()
	})
	return adaptor.HTTPHandler(h)
}
