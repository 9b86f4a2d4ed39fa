package main

import (
	"cluewave/room"
)

// Server holds the process-wide state handed to the HTTP layer. It is built once in main.
type Server struct {
	Rooms    *room.Registry
	Hub      *Hub
	Identity *IdentityJWT
}

func NewServer(cfg *Config, extra ...room.Notifier) *Server {
	hub := NewHub()
	notifiers := append(Notifiers{hub}, extra...)
	return &Server{
		Rooms: room.NewRegistry(
			room.WithCapacity(cfg.MaxPlayers),
			room.WithNotifier(notifiers),
		),
		Hub:      hub,
		Identity: NewIdentityJWT(cfg.JwtSecret),
	}
}
