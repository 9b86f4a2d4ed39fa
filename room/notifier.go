package room

// Notifier receives room snapshots after a mutation has committed.
// Publish must not block; delivery failures are the notifier's concern.
type Notifier interface {
	Publish(topic string, snapshot RoomSnapshot)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, RoomSnapshot) {}

// TopicKey is the topic every snapshot of the room is published on.
func TopicKey(code string) string {
	return "room." + code
}
