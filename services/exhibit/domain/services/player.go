package services

import "sync"

// PlayerAction is the transition a Toggle call asks the audio element to make.
type PlayerAction int

const (
	// ActionPlay starts playback of the toggled item from the beginning.
	ActionPlay PlayerAction = iota
	// ActionPause pauses the currently playing item, keeping its position.
	ActionPause
	// ActionResume resumes the paused item from its current position.
	ActionResume
)

// Transition describes the outcome of a Toggle call. When Stopped is
// non-empty, that item must be stopped and rewound to position zero before
// Action is applied to the toggled item.
type Transition struct {
	Action  PlayerAction
	Stopped string
}

// Player enforces the one-at-a-time playback policy: at most one item's
// audio plays at any moment. Starting item B while item A is playing stops
// and rewinds A before B starts. Toggling the active item pauses or resumes
// it in place.
//
// Player is safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	current string
	paused  bool
}

// Toggle switches playback for the item identified by number and returns the
// transition the caller must apply.
func (p *Player) Toggle(number string) Transition {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == number {
		p.paused = !p.paused
		if p.paused {
			return Transition{Action: ActionPause}
		}
		return Transition{Action: ActionResume}
	}

	stopped := ""
	if p.current != "" {
		stopped = p.current
	}
	p.current = number
	p.paused = false
	return Transition{Action: ActionPlay, Stopped: stopped}
}

// Finished clears the player state when the item's audio reaches its end.
// A finished notification for a non-active item is ignored.
func (p *Player) Finished(number string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == number {
		p.current = ""
		p.paused = false
	}
}

// Playing returns the active item number and whether it is audibly playing
// (false while paused). The number is "" when nothing is active.
func (p *Player) Playing() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.current != "" && !p.paused
}
