package main

import (
	"encoding/json"
	"slices"
	"sync"

	"cluewave/room"
)

const subscriberBuffer = 16

// Hub fans published room snapshots out to the SSE and websocket subscribers of each topic.
type Hub struct {
	receivers map[string][]chan []byte
	lock      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{receivers: make(map[string][]chan []byte)}
}

func (h *Hub) Subscribe(topic string) chan []byte {
	h.lock.Lock()
	defer h.lock.Unlock()
	ch := make(chan []byte, subscriberBuffer)
	h.receivers[topic] = append(h.receivers[topic], ch)
	return ch
}

func (h *Hub) Unsubscribe(topic string, channel chan []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()
	receivers := h.receivers[topic]
	for i, receiver := range receivers {
		if receiver == channel {
			receivers = slices.Delete(receivers, i, i+1)
			break
		}
	}
	if len(receivers) == 0 {
		delete(h.receivers, topic)
		return
	}
	h.receivers[topic] = receivers
}

func (h *Hub) Subscribers(topic string) int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.receivers[topic])
}

// Publish never blocks: a subscriber whose buffer is full misses the message.
func (h *Hub) Publish(topic string, snapshot room.RoomSnapshot) {
	message, err := json.Marshal(RoomMessage{Type: "room", Room: snapshot})
	if err != nil {
		return
	}
	h.lock.RLock()
	defer h.lock.RUnlock()
	for _, receiver := range h.receivers[topic] {
		select {
		case receiver <- message:
		default:
			LogDroppedNotification(topic)
		}
	}
}

type RoomMessage struct {
	Type string            `json:"type"`
	Room room.RoomSnapshot `json:"room"`
}

// Notifiers publishes to each notifier in order.
type Notifiers []room.Notifier

func (n Notifiers) Publish(topic string, snapshot room.RoomSnapshot) {
	for _, notifier := range n {
		notifier.Publish(topic, snapshot)
	}
}
