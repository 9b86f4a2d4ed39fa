package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"cluewave/room"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
)

type HTTPHandler struct {
	Server *Server
}

type JoinRequest struct {
	PlayerName string `json:"playerName"`
}

type JoinByEmailRequest struct {
	Email      string `json:"email"`
	PlayerName string `json:"playerName"`
}

type ScoreRequest struct {
	Delta int `json:"delta"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// identifiedHandler receives the caller's identity as an explicit argument.
type identifiedHandler func(w http.ResponseWriter, r *http.Request, identity room.VerifiedIdentity)

func NewHTTPServer(server *Server, cfg *Config) http.Handler {
	httpHandler := HTTPHandler{server}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(cfg.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", httpHandler.authenticated(httpHandler.createRoom()))
		r.Post("/join-by-email", httpHandler.authenticated(httpHandler.joinRoomByEmail()))
		r.Get("/{roomCode}", httpHandler.authenticated(httpHandler.getRoom()))
		r.Post("/{roomCode}/join", httpHandler.authenticated(httpHandler.joinRoom()))
		r.Post("/{roomCode}/start-round", httpHandler.authenticated(httpHandler.startRound()))
		r.Post("/{roomCode}/players/{playerID}/score", httpHandler.authenticated(httpHandler.adjustScore()))
		r.Get("/{roomCode}/events", httpHandler.getRoomEventStream())
	})
	r.Get("/ws/rooms/{roomCode}", httpHandler.websocket())
	return r
}

func (h HTTPHandler) authenticated(next identifiedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.Server.Identity.VerifyRequest(r)
		if err != nil {
			LogRejectedIdentity(r.RemoteAddr, err)
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{"unauthorized"})
			return
		}
		next(w, r, identity)
	}
}

// playerName falls back to the caller's username when the request leaves the name blank.
func playerName(requested string, identity room.VerifiedIdentity) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	return identity.Name
}

func (h HTTPHandler) createRoom() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity room.VerifiedIdentity) {
		snapshot, err := h.Server.Rooms.CreateRoom(identity.Name, identity.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		LogCreatedRoom(snapshot.Code, identity.Email)
		writeJSON(w, http.StatusCreated, snapshot)
	}
}

func (h HTTPHandler) joinRoom() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity room.VerifiedIdentity) {
		req, err := DecodeJSON[JoinRequest](r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{err.Error()})
			return
		}
		code := chi.URLParam(r, "roomCode")
		player, err := h.Server.Rooms.JoinRoom(code, playerName(req.PlayerName, identity))
		if err != nil {
			writeError(w, r, err)
			return
		}
		LogJoinedRoom(code, player.ID)
		writeJSON(w, http.StatusOK, player)
	}
}

func (h HTTPHandler) joinRoomByEmail() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity room.VerifiedIdentity) {
		req, err := DecodeJSON[JoinByEmailRequest](r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{err.Error()})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{"email is required"})
			return
		}
		snapshot, err := h.Server.Rooms.JoinRoomByEmail(req.Email, playerName(req.PlayerName, identity))
		if err != nil {
			writeError(w, r, err)
			return
		}
		LogJoinedRoom(snapshot.Code, snapshot.Players[len(snapshot.Players)-1].ID)
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (h HTTPHandler) getRoom() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, _ room.VerifiedIdentity) {
		snapshot, err := h.Server.Rooms.GetRoomState(chi.URLParam(r, "roomCode"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (h HTTPHandler) startRound() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, _ room.VerifiedIdentity) {
		code := chi.URLParam(r, "roomCode")
		round, err := h.Server.Rooms.StartRound(code)
		if err != nil {
			writeError(w, r, err)
			return
		}
		LogStartedRound(code)
		writeJSON(w, http.StatusOK, round)
	}
}

func (h HTTPHandler) adjustScore() identifiedHandler {
	return func(w http.ResponseWriter, r *http.Request, _ room.VerifiedIdentity) {
		req, err := DecodeJSON[ScoreRequest](r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{err.Error()})
			return
		}
		code := chi.URLParam(r, "roomCode")
		playerID := chi.URLParam(r, "playerID")
		player, err := h.Server.Rooms.AdjustScore(code, playerID, req.Delta)
		if err != nil {
			writeError(w, r, err)
			return
		}
		LogAdjustedScore(code, playerID, req.Delta)
		writeJSON(w, http.StatusOK, player)
	}
}

func (h HTTPHandler) getRoomEventStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "HTTP Streaming not supported!", http.StatusBadRequest)
			return
		}
		code := chi.URLParam(r, "roomCode")
		topic := room.TopicKey(code)
		// Subscribe before reading the state so no update falls between the two.
		sendChannel := h.Server.Hub.Subscribe(topic)
		defer h.Server.Hub.Unsubscribe(topic, sendChannel)
		snapshot, err := h.Server.Rooms.GetRoomState(code)
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		receiverSSE := NewReceiverSSE(w, flusher)
		receiverSSE.SendRoomMessage(snapshot)
		logger := GetRoomIPLogger(r.RemoteAddr, code)
		logger.Subscribed("sse")
		for {
			select {
			case msg := <-sendChannel:
				receiverSSE.SendByteSlice(msg)
			case <-r.Context().Done():
				logger.Unsubscribed("sse")
				return
			}
		}
	}
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "roomCode")
		topic := room.TopicKey(code)
		sendChannel := h.Server.Hub.Subscribe(topic)
		defer h.Server.Hub.Unsubscribe(topic, sendChannel)
		snapshot, err := h.Server.Rooms.GetRoomState(code)
		if err != nil {
			writeError(w, r, err)
			return
		}
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		defer conn.Close()
		subscriber := NewSubscriberWebsocket(conn)
		logger := GetRoomIPLogger(r.RemoteAddr, code)
		if err := subscriber.SendRoomMessage(snapshot); err != nil {
			return
		}
		logger.Subscribed("websocket")

		closed := make(chan struct{})
		go func() {
			subscriber.WaitClosed()
			close(closed)
		}()
		for {
			select {
			case msg := <-sendChannel:
				if err := subscriber.SendByteSlice(msg); err != nil {
					logger.Unsubscribed("websocket")
					return
				}
			case <-closed:
				logger.Unsubscribed("websocket")
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, room.ErrRoomFull):
		status = http.StatusConflict
	case errors.Is(err, room.ErrCodeSpaceExhausted):
		status = http.StatusServiceUnavailable
	}
	LogRequestFailed(r.URL.Path, status, err)
	writeJSON(w, status, ErrorResponse{err.Error()})
}
