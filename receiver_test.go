package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"cluewave/room"
)

func TestReceiver(t *testing.T) {
	t.Run("test sse", func(t *testing.T) {
		res := httptest.NewRecorder()

		receiver := NewReceiverSSE(res, res)
		receiver.SendRoomMessage(room.RoomSnapshot{Code: "ABCD", State: room.StateLobby})

		body := res.Body.String()
		if !strings.HasPrefix(body, "data: ") || !strings.HasSuffix(body, "\n\n") {
			t.Fatalf("not an sse frame: %q", body)
		}
		var parsed RoomMessage
		if err := json.Unmarshal([]byte(strings.TrimSpace(strings.TrimPrefix(body, "data: "))), &parsed); err != nil {
			t.Fatalf("incorrect json sent: %v", err)
		}
		if parsed.Room.Code != "ABCD" {
			t.Errorf("wrong code expected: %v got: %v", "ABCD", parsed.Room.Code)
		}
		if !res.Flushed {
			t.Errorf("expected the frame to be flushed")
		}
	})
}
