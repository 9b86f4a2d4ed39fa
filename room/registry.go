package room

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"cluewave/code"
)

const (
	DefaultCapacity        = 2
	DefaultMaxCodeAttempts = 100
)

// Registry owns every live room. Rooms are never removed.
type Registry struct {
	rooms sync.Map // code -> *Room
	seq   atomic.Uint64

	capacity        int
	maxCodeAttempts int
	notifier        Notifier
	generateCode    func() string
	target          func() float64
}

type Option func(*Registry)

// WithCapacity sets how many players a room holds. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(rg *Registry) {
		if n >= 1 {
			rg.capacity = n
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(rg *Registry) {
		if n != nil {
			rg.notifier = n
		}
	}
}

func WithCodeGenerator(gen func() string) Option {
	return func(rg *Registry) {
		rg.generateCode = gen
	}
}

func WithMaxCodeAttempts(n int) Option {
	return func(rg *Registry) {
		if n >= 1 {
			rg.maxCodeAttempts = n
		}
	}
}

// WithTargetSource replaces the draw of round targets; it must return values in [0, 1).
func WithTargetSource(src func() float64) Option {
	return func(rg *Registry) {
		rg.target = src
	}
}

func NewRegistry(opts ...Option) *Registry {
	rg := &Registry{
		capacity:        DefaultCapacity,
		maxCodeAttempts: DefaultMaxCodeAttempts,
		notifier:        nopNotifier{},
		generateCode:    code.GenerateRandom,
		target:          defaultTarget,
	}
	for _, opt := range opts {
		opt(rg)
	}
	return rg
}

func (rg *Registry) Capacity() int {
	return rg.capacity
}

// CreateRoom registers a new room in StateLobby with the host as its only player.
func (rg *Registry) CreateRoom(hostName, hostEmail string) (RoomSnapshot, error) {
	host := VerifiedIdentity{Name: hostName, Email: hostEmail}
	for attempt := 0; attempt < rg.maxCodeAttempts; attempt++ {
		c := rg.generateCode()
		if _, exists := rg.rooms.Load(c); exists {
			continue
		}
		r := newRoom(c, host, rg.seq.Add(1), rg.capacity)
		// The host is seated before the room becomes visible to other requests.
		if _, _, err := r.addPlayer(hostName); err != nil {
			return RoomSnapshot{}, err
		}
		if _, loaded := rg.rooms.LoadOrStore(c, r); loaded {
			continue
		}
		snapshot := r.Snapshot()
		rg.notifier.Publish(TopicKey(c), snapshot)
		return snapshot, nil
	}
	return RoomSnapshot{}, fmt.Errorf("after %d attempts: %w", rg.maxCodeAttempts, ErrCodeSpaceExhausted)
}

// JoinRoom seats a new player. Two joins racing for the last seat never both succeed.
func (rg *Registry) JoinRoom(code, playerName string) (PlayerSnapshot, error) {
	r, err := rg.lookup(code)
	if err != nil {
		return PlayerSnapshot{}, err
	}
	player, snapshot, err := r.addPlayer(playerName)
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("join %s: %w", code, err)
	}
	rg.notifier.Publish(TopicKey(code), snapshot)
	return player, nil
}

// JoinRoomByEmail joins the room hosted by hostEmail, compared case-insensitively.
// When one host owns several rooms the oldest one wins.
func (rg *Registry) JoinRoomByEmail(hostEmail, playerName string) (RoomSnapshot, error) {
	r := rg.findByHostEmail(strings.TrimSpace(hostEmail))
	if r == nil {
		return RoomSnapshot{}, fmt.Errorf("%w for host email: %s", ErrRoomNotFound, hostEmail)
	}
	_, snapshot, err := r.addPlayer(playerName)
	if err != nil {
		return RoomSnapshot{}, fmt.Errorf("join %s: %w", r.code, err)
	}
	rg.notifier.Publish(TopicKey(r.code), snapshot)
	return snapshot, nil
}

func (rg *Registry) GetRoomState(code string) (RoomSnapshot, error) {
	r, err := rg.lookup(code)
	if err != nil {
		return RoomSnapshot{}, err
	}
	return r.Snapshot(), nil
}

// AdjustScore adds delta, which may be negative, to a player's score.
func (rg *Registry) AdjustScore(code, playerID string, delta int) (PlayerSnapshot, error) {
	r, err := rg.lookup(code)
	if err != nil {
		return PlayerSnapshot{}, err
	}
	player, snapshot, err := r.adjustScore(playerID, delta)
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("%w: %s in room %s", err, playerID, code)
	}
	rg.notifier.Publish(TopicKey(code), snapshot)
	return player, nil
}

func (rg *Registry) lookup(code string) (*Room, error) {
	v, ok := rg.rooms.Load(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return v.(*Room), nil
}

func (rg *Registry) findByHostEmail(email string) *Room {
	var found *Room
	rg.rooms.Range(func(_, v any) bool {
		r := v.(*Room)
		if strings.EqualFold(r.host.Email, email) && (found == nil || r.seq < found.seq) {
			found = r
		}
		return true
	})
	return found
}
