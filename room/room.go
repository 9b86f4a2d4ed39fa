package room

import (
	"sync"

	"github.com/google/uuid"
)

type State string

const (
	StateLobby   State = "lobby"
	StateInRound State = "in_round"
)

type Player struct {
	ID    string
	Name  string
	Score int
}

type Room struct {
	code     string
	host     VerifiedIdentity
	seq      uint64
	capacity int

	lock    sync.RWMutex
	players map[string]*Player
	order   []string
	round   *Round
	state   State
}

func newRoom(code string, host VerifiedIdentity, seq uint64, capacity int) *Room {
	return &Room{
		code:     code,
		host:     host,
		seq:      seq,
		capacity: capacity,
		players:  make(map[string]*Player, capacity),
		state:    StateLobby,
	}
}

func (r *Room) Code() string {
	return r.code
}

// addPlayer checks capacity and inserts under one lock acquisition.
func (r *Room) addPlayer(name string) (PlayerSnapshot, RoomSnapshot, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.players) >= r.capacity {
		return PlayerSnapshot{}, RoomSnapshot{}, ErrRoomFull
	}
	p := &Player{ID: uuid.NewString(), Name: name}
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return p.snapshot(), r.snapshotLocked(), nil
}

func (r *Room) adjustScore(playerID string, delta int) (PlayerSnapshot, RoomSnapshot, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.players[playerID]
	if !ok {
		return PlayerSnapshot{}, RoomSnapshot{}, ErrPlayerNotFound
	}
	p.Score += delta
	return p.snapshot(), r.snapshotLocked(), nil
}

// installRound swaps the round and the state together so readers never see one without the other.
func (r *Room) installRound(round *Round) RoomSnapshot {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.round = round
	r.state = StateInRound
	return r.snapshotLocked()
}

func (r *Room) Snapshot() RoomSnapshot {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.snapshotLocked()
}
