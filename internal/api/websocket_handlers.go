package api

import (
	"log"
	"net/http"

	"serwer-mediow/internal/websocket"
)

// ServeWsHandler upgrades the connection and subscribes the client to the
// public event feed (new accounts, new uploads). The feed carries only data
// that is already visible through the read endpoints, so no credentials are
// required to listen.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
