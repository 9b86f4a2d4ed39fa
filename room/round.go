package room

import (
	"fmt"
	"math/rand/v2"
)

// Placeholder prompts until real round content exists.
const (
	PromptLeft  = "Froid"
	PromptRight = "Chaud"
)

// Round is one guess on the spectrum between two prompts.
// TargetPosition is in [0, 1) and never leaves the server through a snapshot.
type Round struct {
	PromptLeft     string
	PromptRight    string
	TargetPosition float64
	Revealed       bool
}

func newRound(target float64) *Round {
	return &Round{
		PromptLeft:     PromptLeft,
		PromptRight:    PromptRight,
		TargetPosition: target,
	}
}

// StartRound replaces the room's current round with a fresh one and moves the room to StateInRound.
// The number of players present is not checked.
func (rg *Registry) StartRound(code string) (RoundSnapshot, error) {
	r, err := rg.lookup(code)
	if err != nil {
		return RoundSnapshot{}, err
	}
	target := rg.target()
	if target < 0 || target >= 1 {
		return RoundSnapshot{}, fmt.Errorf("target position %v out of range", target)
	}
	round := newRound(target)
	snapshot := r.installRound(round)
	rg.notifier.Publish(TopicKey(code), snapshot)
	return *snapshot.CurrentRound, nil
}

func defaultTarget() float64 {
	return rand.Float64()
}
