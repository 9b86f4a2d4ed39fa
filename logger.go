package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

type RoomIPLogger struct {
	zerolog zerolog.Logger
}

func GetRoomIPLogger(ip string, roomCode string) RoomIPLogger {
	return RoomIPLogger{log.With().Str("ip", ip).Str("room-code", roomCode).Logger()}
}

func (l RoomIPLogger) Subscribed(transport string) {
	l.zerolog.Info().Str("transport", transport).Msg("Subscribed to room")
}

func (l RoomIPLogger) Unsubscribed(transport string) {
	l.zerolog.Info().Str("transport", transport).Msg("Unsubscribed from room")
}

func LogCreatedRoom(roomCode string, hostEmail string) {
	log.Info().Str("room-code", roomCode).Str("host-email", hostEmail).Msg("Created")
}

func LogJoinedRoom(roomCode string, playerID string) {
	log.Info().Str("room-code", roomCode).Str("player-id", playerID).Msg("Joined")
}

func LogStartedRound(roomCode string) {
	log.Info().Str("room-code", roomCode).Msg("Started round")
}

func LogAdjustedScore(roomCode string, playerID string, delta int) {
	log.Info().Str("room-code", roomCode).Str("player-id", playerID).Int("delta", delta).Msg("Adjusted score")
}

func LogRequestFailed(path string, status int, err error) {
	log.Warn().Err(err).Str("path", path).Int("status", status).Msg("Request failed")
}

func LogRejectedIdentity(ip string, err error) {
	log.Warn().Err(err).Str("ip", ip).Msg("Rejected identity token")
}

func LogDroppedNotification(topic string) {
	log.Warn().Str("topic", topic).Msg("Subscriber too slow, dropped notification")
}

func LogNatsPublishFailed(topic string, err error) {
	log.Error().Err(err).Str("topic", topic).Msg("Error while publishing to NATS")
}

func LogConnectedToNats(url string) {
	log.Info().Str("url", url).Msg("Connected to NATS")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
