package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cluewave/room"
)

type ReceiverSSE struct {
	w http.ResponseWriter
	f http.Flusher
}

func NewReceiverSSE(w http.ResponseWriter, f http.Flusher) *ReceiverSSE {
	return &ReceiverSSE{w, f}
}

func (r ReceiverSSE) SendByteSlice(msg []byte) {
	fmt.Fprintf(r.w, "data: %v\n\n", string(msg))
	r.f.Flush()
}

func (r ReceiverSSE) sendJSON(msg any) {
	data, _ := json.Marshal(msg)
	r.SendByteSlice(data)
}

func (r ReceiverSSE) SendRoomMessage(snapshot room.RoomSnapshot) {
	r.sendJSON(RoomMessage{Type: "room", Room: snapshot})
}
