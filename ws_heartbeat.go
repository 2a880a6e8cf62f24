package main

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsKeepAliveInterval = 25 * time.Second
	wsWriteTimeout      = 10 * time.Second
)

// pumpClientFrames drains the client's send channel onto the socket and
// keeps idle connections alive with JSON ping frames the frontend can
// answer. Returns when the channel closes or a write fails.
func pumpClientFrames(conn *websocket.Conn, send <-chan []byte) error {
	keepAlive := time.NewTicker(wsKeepAliveInterval)
	defer keepAlive.Stop()

	ping := mustMarshal(wsMessage{Type: "ping"})
	idleSince := time.Now()

	write := func(payload []byte) error {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return err
		}
		idleSince = time.Now()
		return nil
	}

	for {
		select {
		case msg, open := <-send:
			if !open {
				return nil
			}
			if err := write(msg); err != nil {
				return err
			}
		case <-keepAlive.C:
			if time.Since(idleSince) < wsKeepAliveInterval {
				continue
			}
			if err := write(ping); err != nil {
				return err
			}
		}
	}
}
