package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes exposes the pipeline status feed. A client subscribes to
// its session at /ws/:session and receives the JSON StatusEvents the snap
// and elevation services publish while they work.
func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:session", websocket.New(func(c *websocket.Conn) {
		client := hub.Register(c.Params("session"))
		defer hub.Unregister(client)

		done := make(chan struct{})
		go func() {
			for event := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, event); err != nil {
					break
				}
			}
			close(done)
		}()

		// Inbound frames are ignored; reading only detects the close.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		<-done
	}))
}
