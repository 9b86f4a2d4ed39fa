package room

// Snapshots are copies taken under the room lock; they share no memory with live state.

type PlayerSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type RoundSnapshot struct {
	PromptLeft  string `json:"promptLeft"`
	PromptRight string `json:"promptRight"`
	Revealed    bool   `json:"revealed"`
}

type RoomSnapshot struct {
	Code         string           `json:"code"`
	Players      []PlayerSnapshot `json:"players"`
	CurrentRound *RoundSnapshot   `json:"currentRound"`
	State        State            `json:"state"`
	HostName     string           `json:"hostName"`
	HostEmail    string           `json:"hostEmail"`
}

func (p *Player) snapshot() PlayerSnapshot {
	return PlayerSnapshot{ID: p.ID, Name: p.Name, Score: p.Score}
}

func (rd *Round) snapshot() RoundSnapshot {
	return RoundSnapshot{PromptLeft: rd.PromptLeft, PromptRight: rd.PromptRight, Revealed: rd.Revealed}
}

// snapshotLocked must be called with r.lock held. Players come out in join order, host first.
func (r *Room) snapshotLocked() RoomSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, r.players[id].snapshot())
	}
	var round *RoundSnapshot
	if r.round != nil {
		rs := r.round.snapshot()
		round = &rs
	}
	return RoomSnapshot{
		Code:         r.code,
		Players:      players,
		CurrentRound: round,
		State:        r.state,
		HostName:     r.host.Name,
		HostEmail:    r.host.Email,
	}
}
