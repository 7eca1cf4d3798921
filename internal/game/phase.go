// Package game provides the control core: the phase state machine, the
// game session, and the controller that resolves turns and attacks.
package game

// Phase represents where the player currently is in the application.
type Phase int

const (
	// PhaseMainMenu is the opening menu.
	PhaseMainMenu Phase = iota
	// PhaseGameMenu is the in-match menu opened from the battle screen.
	PhaseGameMenu
	// PhaseSettings is the difficulty settings screen.
	PhaseSettings
	// PhaseDeploying is fleet placement before battle.
	PhaseDeploying
	// PhaseDiscovering is the battle itself.
	PhaseDiscovering
	// PhaseEndingGame shows the match result.
	PhaseEndingGame
	// PhaseHighScores shows the score table.
	PhaseHighScores
	// PhaseQuitting is the stack sentinel; reaching it ends the application.
	PhaseQuitting
)

// String returns a machine-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhaseGameMenu:
		return "game_menu"
	case PhaseSettings:
		return "settings"
	case PhaseDeploying:
		return "deploying"
	case PhaseDiscovering:
		return "discovering"
	case PhaseEndingGame:
		return "ending_game"
	case PhaseHighScores:
		return "high_scores"
	case PhaseQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// PhaseStack is the ordered history of phases; the top element is where
// the player is now. The stack lets transient phases (Settings opened from
// the game menu) return to the exact prior phase without the controller
// tracking history itself.
//
// The bottom element is always PhaseQuitting: popping the main menu off
// the stack is how "the game is over" becomes observable to the host loop.
type PhaseStack struct {
	phases []Phase
}

// NewPhaseStack creates a stack with the initial [Quitting, MainMenu]
// contents.
func NewPhaseStack() *PhaseStack {
	return &PhaseStack{phases: []Phase{PhaseQuitting, PhaseMainMenu}}
}

// Current returns the top of the stack.
func (s *PhaseStack) Current() Phase {
	return s.phases[len(s.phases)-1]
}

// Push places a phase on top without touching the phases beneath.
func (s *PhaseStack) Push(p Phase) {
	s.phases = append(s.phases, p)
}

// Pop removes the top phase, revealing the one beneath. Popping the last
// remaining element is a programmer error: every component depends on a
// well-defined current phase, so it fails loudly rather than corrupt the
// stack.
func (s *PhaseStack) Pop() Phase {
	if len(s.phases) <= 1 {
		panic("game: phase stack underflow")
	}
	top := s.Current()
	s.phases = s.phases[:len(s.phases)-1]
	return top
}

// Switch atomically replaces the current phase with p, used when a phase
// concludes into the next one.
func (s *PhaseStack) Switch(p Phase) {
	s.Pop()
	s.Push(p)
}

// Depth returns the number of phases on the stack.
func (s *PhaseStack) Depth() int {
	return len(s.phases)
}
