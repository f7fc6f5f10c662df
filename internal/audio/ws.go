package audio

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleEvents streams playback state transitions to the UI over a
// websocket, including the natural-end signal the immersive reader overlay
// dismisses itself on.
func handleEvents(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("playback: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		events, cancel := c.Subscribe()
		defer cancel()

		// Drain reads so client closes are noticed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						log.Printf("playback: websocket write: %v", err)
					}
					return
				}
			}
		}
	}
}
