package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket() *WebSocket {
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			// the solver has no credentials to protect; any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
