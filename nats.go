package main

import (
	"encoding/json"
	"fmt"

	"cluewave/room"

	"github.com/nats-io/nats.go"
)

// NatsNotifier mirrors every room snapshot onto the NATS subject named by the room topic.
type NatsNotifier struct {
	conn *nats.Conn
}

func ConnectNats(url string) (*NatsNotifier, error) {
	conn, err := nats.Connect(url, nats.Name("cluewave"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	LogConnectedToNats(url)
	return &NatsNotifier{conn}, nil
}

// Publish hands the message to the client's buffer; it does not wait for the server.
func (n *NatsNotifier) Publish(topic string, snapshot room.RoomSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		LogNatsPublishFailed(topic, err)
		return
	}
	if err := n.conn.Publish(topic, data); err != nil {
		LogNatsPublishFailed(topic, err)
	}
}

func (n *NatsNotifier) Close() {
	n.conn.Close()
}
