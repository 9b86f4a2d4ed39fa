package main

import (
	"encoding/json"
	"net"

	"cluewave/room"

	"github.com/gobwas/ws/wsutil"
)

// SubscriberWebsocket pushes room snapshots to a websocket client. Clients never send commands on it.
type SubscriberWebsocket struct {
	conn net.Conn
}

func NewSubscriberWebsocket(conn net.Conn) *SubscriberWebsocket {
	return &SubscriberWebsocket{conn}
}

func (s SubscriberWebsocket) SendByteSlice(msg []byte) error {
	return wsutil.WriteServerText(s.conn, msg)
}

func (s SubscriberWebsocket) SendRoomMessage(snapshot room.RoomSnapshot) error {
	encoded, _ := json.Marshal(RoomMessage{Type: "room", Room: snapshot})
	return s.SendByteSlice(encoded)
}

// WaitClosed drains client frames until the connection fails or closes.
func (s SubscriberWebsocket) WaitClosed() {
	for {
		if _, err := wsutil.ReadClientText(s.conn); err != nil {
			return
		}
	}
}
