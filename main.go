package main

import (
	"net/http"

	"cluewave/room"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := MustLoadConfig()
	SetLogLevel(cfg.LogLevel)

	var notifiers []room.Notifier
	if cfg.NatsURL != "" {
		natsNotifier, err := ConnectNats(cfg.NatsURL)
		if err != nil {
			log.Fatal().Err(err).Msg("NATS unavailable")
		}
		defer natsNotifier.Close()
		notifiers = append(notifiers, natsNotifier)
	}

	server := NewServer(cfg, notifiers...)
	handler := NewHTTPServer(server, cfg)
	LogStartedServer(cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
