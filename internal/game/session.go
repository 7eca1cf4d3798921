package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/broadside/internal/board"
	"github.com/samdwyer/broadside/internal/entity"
)

// AttackListener is notified after every resolved shot, successful or
// rejected, with the player the shot belonged to.
type AttackListener func(attacker *entity.Player, result board.AttackResult)

// GridListener is notified whenever either player's grid mutates.
type GridListener func()

// Handle identifies a registered listener so it can be revoked.
type Handle int

// Session is one live match: the two deployed players, the shot dispatch
// path, and win detection. At most one session is live at a time; starting
// a new match closes the previous session so its listeners can never fire
// into replaced state.
type Session struct {
	ID string

	human    *entity.Player
	computer *entity.Player
	attacker *entity.Player // whose shot is dispatched next

	deployed map[string]bool // player ID -> placements locked in

	closed          bool
	nextHandle      Handle
	attackListeners map[Handle]AttackListener
	gridListeners   map[Handle]GridListener
}

// NewSession creates a session for the given players. The human shoots
// first.
func NewSession(human, computer *entity.Player) *Session {
	return &Session{
		ID:              uuid.NewString(),
		human:           human,
		computer:        computer,
		attacker:        human,
		deployed:        make(map[string]bool),
		attackListeners: make(map[Handle]AttackListener),
		gridListeners:   make(map[Handle]GridListener),
	}
}

// Human returns the human player.
func (s *Session) Human() *entity.Player { return s.human }

// Computer returns the computer player.
func (s *Session) Computer() *entity.Player { return s.computer }

// Attacker returns the player whose shot is dispatched next. The
// controller never tracks the turn itself; this is the single source of
// truth for whose move it is.
func (s *Session) Attacker() *entity.Player { return s.attacker }

// Opponent returns the other player.
func (s *Session) Opponent(p *entity.Player) *entity.Player {
	if p == s.human {
		return s.computer
	}
	return s.human
}

// OnAttackCompleted registers an attack listener and returns its handle.
func (s *Session) OnAttackCompleted(fn AttackListener) Handle {
	h := s.nextHandle
	s.nextHandle++
	s.attackListeners[h] = fn
	return h
}

// OnGridChanged registers a grid listener and returns its handle.
func (s *Session) OnGridChanged(fn GridListener) Handle {
	h := s.nextHandle
	s.nextHandle++
	s.gridListeners[h] = fn
	return h
}

// RemoveListener revokes a listener by handle. Unknown handles are ignored.
func (s *Session) RemoveListener(h Handle) {
	delete(s.attackListeners, h)
	delete(s.gridListeners, h)
}

// Close tears down every listener registration. A closed session delivers
// no further notifications; closing twice is safe.
func (s *Session) Close() {
	s.closed = true
	s.attackListeners = make(map[Handle]AttackListener)
	s.gridListeners = make(map[Handle]GridListener)
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool { return s.closed }

// AddDeployedPlayer locks in a player's placements for this session.
func (s *Session) AddDeployedPlayer(p *entity.Player) {
	s.deployed[p.ID] = true
	s.notifyGridChanged()
}

// Deployed reports whether the player's placements are locked in.
func (s *Session) Deployed(p *entity.Player) bool {
	return s.deployed[p.ID]
}

// Redeploy re-places a player's fleet at random. Valid until the player
// is registered as deployed.
func (s *Session) Redeploy(p *entity.Player, rng *rand.Rand, fleet []board.ShipSpec) error {
	if s.Deployed(p) {
		return nil
	}
	if err := p.Grid.PlaceFleet(rng, fleet); err != nil {
		return err
	}
	s.notifyGridChanged()
	return nil
}

// Shoot resolves one shot by the current attacker against the opponent's
// grid and notifies listeners. Sinking the opponent's last ship upgrades
// the result to OutcomeGameOver.
//
// Turn rule: after a miss the computer shoots next; after a hit the human
// shoots next. Each side keeps the turn on its driving outcome - the human
// goes again when it hits, the computer goes again when it misses - which
// is what lets the resolution policy fire the whole AI salvo from miss
// results alone. Rejected shots and game over never move the turn.
func (s *Session) Shoot(row, col int) board.AttackResult {
	attacker := s.attacker
	target := s.Opponent(attacker)

	result := target.Grid.Shoot(row, col)
	if result.Outcome != board.OutcomeShotAlready {
		attacker.ShotCount++
		if target.IsDestroyed() {
			result.Outcome = board.OutcomeGameOver
		}
	}

	switch result.Outcome {
	case board.OutcomeMiss:
		s.attacker = s.computer
	case board.OutcomeHit, board.OutcomeDestroyed:
		s.attacker = s.human
	}

	if result.Outcome != board.OutcomeShotAlready {
		s.notifyGridChanged()
	}
	s.notifyAttackCompleted(attacker, result)
	return result
}

func (s *Session) notifyAttackCompleted(attacker *entity.Player, result board.AttackResult) {
	if s.closed {
		return
	}
	for _, fn := range s.attackListeners {
		fn(attacker, result)
	}
}

func (s *Session) notifyGridChanged() {
	if s.closed {
		return
	}
	for _, fn := range s.gridListeners {
		fn()
	}
}
