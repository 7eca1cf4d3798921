// Package audio plays named cues on whatever sound surface the host has.
// The terminal build maps cues onto the bell; the cue IDs themselves come
// from the embedded cue definitions so richer hosts can remap them.
package audio

import (
	"time"

	"github.com/samdwyer/broadside/internal/gamedata"
)

// Beeper is anything that can ring a bell. The terminal screen implements
// it; tests pass a recorder.
type Beeper interface {
	Beep()
}

// Terminal plays cues through the terminal bell and tracks nominal cue
// durations so callers can ask whether a cue is still sounding.
type Terminal struct {
	beeper  Beeper
	cues    map[string]gamedata.CueDef
	started map[string]time.Time
	now     func() time.Time
}

// NewTerminal creates a terminal cue player over the given definitions.
// A nil beeper silences the player without disabling duration tracking.
func NewTerminal(beeper Beeper, cues []gamedata.CueDef) *Terminal {
	byID := make(map[string]gamedata.CueDef, len(cues))
	for _, c := range cues {
		byID[c.ID] = c
	}
	return &Terminal{
		beeper:  beeper,
		cues:    byID,
		started: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Play starts the named cue. Unknown cues are ignored.
func (t *Terminal) Play(cue string) {
	def, ok := t.cues[cue]
	if !ok {
		return
	}
	if def.Bell && t.beeper != nil {
		t.beeper.Beep()
	}
	t.started[cue] = t.now()
}

// IsPlaying reports whether the named cue's nominal duration has not yet
// elapsed since it last started.
func (t *Terminal) IsPlaying(cue string) bool {
	def, ok := t.cues[cue]
	if !ok {
		return false
	}
	started, ok := t.started[cue]
	if !ok {
		return false
	}
	return t.now().Sub(started) < time.Duration(def.DurationMS)*time.Millisecond
}
