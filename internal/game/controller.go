package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/broadside/internal/ai"
	"github.com/samdwyer/broadside/internal/board"
	"github.com/samdwyer/broadside/internal/entity"
	"github.com/samdwyer/broadside/internal/telemetry"
)

// Audio cue IDs the controller fires. The audio collaborator resolves
// them against its cue definitions.
const (
	CueHit   = "hit"
	CueMiss  = "miss"
	CueSink  = "sink"
	CueError = "error"
	CueWin   = "win"
	CueLose  = "lose"
)

// Presenter is the narrow rendering surface the core delegates to. Calls
// are fire-and-forget; a presenter failure must never corrupt core state.
type Presenter interface {
	// DrawBackground paints the frame backdrop before phase drawing.
	DrawBackground()
	// AddExplosion queues an impact animation at a grid cell.
	AddExplosion(row, col int)
	// AddSplash queues a splash animation at a grid cell.
	AddSplash(row, col int)
	// UpdateAnimations advances in-flight animations by one tick.
	UpdateAnimations()
	// DrawAnimations draws in-flight animations over the phase content.
	DrawAnimations()
	// Present flushes the composed frame to the host surface.
	Present()
	// Invalidate marks the surface stale after a grid mutation.
	Invalidate()
}

// Audio is the narrow sound surface the core delegates to.
type Audio interface {
	Play(cue string)
	IsPlaying(cue string) bool
}

// InputHandler consumes pending input for one phase.
type InputHandler interface {
	HandleInput(ctx context.Context)
}

// Drawer renders one phase.
type Drawer interface {
	Draw()
}

// Controller is the control core of the game: it owns the phase stack,
// the live session, and the difficulty setting, and it is the single
// entry point the host loop drives once per tick.
//
// One Controller exists for the application's lifetime. Peer phase
// controllers receive it at construction and call back into it; it never
// reaches out to rendering or audio except through the injected surfaces.
type Controller struct {
	cfg        Config
	stack      *PhaseStack
	session    *Session
	difficulty Difficulty
	presenter  Presenter
	audio      Audio

	handlers map[Phase]InputHandler
	drawers  map[Phase]Drawer

	fleet   []board.ShipSpec
	message string
	rng     *rand.Rand
	tracer  trace.Tracer
}

// NewController creates the orchestrator. The fleet defines the ships
// placed for both players each match.
func NewController(cfg Config, fleet []board.ShipSpec, presenter Presenter, audio Audio) *Controller {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = board.DefaultSize
	}
	return &Controller{
		cfg:       cfg,
		stack:     NewPhaseStack(),
		presenter: presenter,
		audio:     audio,
		handlers:  make(map[Phase]InputHandler),
		drawers:   make(map[Phase]Drawer),
		fleet:     fleet,
		rng:       rand.New(rand.NewSource(seed)),
		tracer:    telemetry.Tracer("game"),
	}
}

// Register wires the input handler and drawer for a phase. Every phase
// except Quitting must be registered before the host loop starts.
func (c *Controller) Register(phase Phase, handler InputHandler, drawer Drawer) {
	c.handlers[phase] = handler
	c.drawers[phase] = drawer
}

// Session returns the live session, or nil before the first StartGame.
func (c *Controller) Session() *Session { return c.session }

// HumanPlayer returns the human participant of the live session.
func (c *Controller) HumanPlayer() *entity.Player {
	if c.session == nil {
		return nil
	}
	return c.session.Human()
}

// ComputerPlayer returns the computer participant of the live session.
func (c *Controller) ComputerPlayer() *entity.Player {
	if c.session == nil {
		return nil
	}
	return c.session.Computer()
}

// Difficulty returns the current difficulty setting.
func (c *Controller) Difficulty() Difficulty { return c.difficulty }

// SetDifficulty records the difficulty for the next StartGame. It never
// affects a session already in progress.
func (c *Controller) SetDifficulty(d Difficulty) {
	c.difficulty = d
}

// Message returns the transient status message.
func (c *Controller) Message() string { return c.message }

// SetMessage replaces the transient status message.
func (c *Controller) SetMessage(msg string) { c.message = msg }

// StartGame discards any previous match and begins a fresh one: it closes
// the old session, builds both players (the computer with the strategy the
// current difficulty selects), places both fleets, subscribes the
// controller to session events, and pushes the Deploying phase. Safe to
// call at any time, including mid-match.
func (c *Controller) StartGame(ctx context.Context) error {
	_, span := c.tracer.Start(ctx, "game.start")
	defer span.End()

	if c.session != nil {
		c.session.Close()
	}

	human := entity.NewPlayer("Player", c.cfg.GridSize)
	computer := entity.NewComputer("Enemy Fleet", c.cfg.GridSize, c.newStrategy())

	if err := human.Grid.PlaceFleet(c.rng, c.fleet); err != nil {
		return fmt.Errorf("deploying human fleet: %w", err)
	}
	if err := computer.Grid.PlaceFleet(c.rng, c.fleet); err != nil {
		return fmt.Errorf("deploying computer fleet: %w", err)
	}

	s := NewSession(human, computer)
	s.OnGridChanged(func() { c.presenter.Invalidate() })
	s.OnAttackCompleted(func(attacker *entity.Player, result board.AttackResult) {
		c.attackCompleted(ctx, attacker, result)
	})
	c.session = s

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("difficulty", c.difficulty.String()),
		attribute.String("strategy", computer.Strategy.Name()),
		attribute.Int("grid_size", c.cfg.GridSize),
	)

	c.AddNewState(PhaseDeploying)
	return nil
}

// newStrategy selects the computer targeting strategy for the current
// difficulty: Medium maps to the medium strategy, everything else to hard.
func (c *Controller) newStrategy() ai.Strategy {
	if c.difficulty == DifficultyMedium {
		return ai.NewMedium(c.rng)
	}
	return ai.NewHard(c.rng)
}

// RandomizeDeployment re-rolls the human fleet placement. Only meaningful
// during the Deploying phase.
func (c *Controller) RandomizeDeployment() error {
	if c.session == nil || c.stack.Current() != PhaseDeploying {
		return nil
	}
	return c.session.Redeploy(c.session.Human(), c.rng, c.fleet)
}

// EndDeployment locks in both players' placements and moves Deploying to
// Discovering. A no-op unless the current phase is Deploying.
func (c *Controller) EndDeployment() {
	if c.session == nil || c.stack.Current() != PhaseDeploying {
		return
	}
	c.session.AddDeployedPlayer(c.session.Human())
	c.session.AddDeployedPlayer(c.session.Computer())
	c.SwitchState(PhaseDiscovering)
}

// Attack is the human-initiated shot path: it dispatches the coordinate
// through the session, which attributes the shot and notifies the
// resolution policy. Valid only while the phase is Discovering and the
// session designates the human as the next attacker.
func (c *Controller) Attack(ctx context.Context, row, col int) {
	if c.session == nil || c.stack.Current() != PhaseDiscovering {
		return
	}
	if c.session.Attacker() != c.session.Human() {
		return
	}

	_, span := c.tracer.Start(ctx, "game.attack")
	defer span.End()

	result := c.session.Shoot(row, col)

	span.SetAttributes(
		attribute.String("attacker", "human"),
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.String("outcome", result.Outcome.String()),
	)
}

// aiAttack has the computer fire one shot chosen by its strategy. It is
// only ever invoked from the resolution step, never by external input.
func (c *Controller) aiAttack(ctx context.Context) {
	computer := c.session.Computer()
	row, col := computer.Strategy.ChooseShot(c.session.Human().Grid)

	_, span := c.tracer.Start(ctx, "game.attack")
	defer span.End()

	result := c.session.Shoot(row, col)

	span.SetAttributes(
		attribute.String("attacker", "computer"),
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.String("outcome", result.Outcome.String()),
	)
}

// attackCompleted is the session's attack-completed listener: it fires the
// presentation side effects for the result, then applies the resolution
// policy. Both run synchronously before the shot that raised the event
// returns to its caller.
func (c *Controller) attackCompleted(ctx context.Context, attacker *entity.Player, result board.AttackResult) {
	isHuman := attacker == c.session.Human()
	c.message = attackMessage(attacker, result)

	switch result.Outcome {
	case board.OutcomeHit:
		c.playHitSequence(result, isHuman, false)
	case board.OutcomeDestroyed:
		c.playHitSequence(result, isHuman, true)
	case board.OutcomeGameOver:
		c.playHitSequence(result, isHuman, true)
		if c.session.Human().IsDestroyed() {
			c.audio.Play(CueLose)
		} else {
			c.audio.Play(CueWin)
		}
	case board.OutcomeMiss:
		c.playMissSequence(result, isHuman)
	case board.OutcomeShotAlready:
		c.audio.Play(CueError)
	}

	// Resolution step, uniform regardless of attacker.
	switch result.Outcome {
	case board.OutcomeMiss:
		// A resolved miss leaves the next shot with the computer; fire it
		// now, on this same call stack, so the AI salvo runs through its
		// own misses without waiting for input.
		if c.session.Attacker() == c.session.Computer() {
			c.aiAttack(ctx)
		}
	case board.OutcomeGameOver:
		c.endSession(ctx)
		c.SwitchState(PhaseEndingGame)
	}
}

// endSession records the match outcome span when the last ship goes down.
func (c *Controller) endSession(ctx context.Context) {
	winner := "human"
	if c.session.Human().IsDestroyed() {
		winner = "computer"
	}
	_, span := c.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("session.id", c.session.ID),
		attribute.String("winner", winner),
		attribute.Int("human_shots", c.session.Human().ShotCount),
		attribute.Int("computer_shots", c.session.Computer().ShotCount),
	)
	span.End()
}

// playHitSequence fires the impact presentation: the explosion animation
// only when the human is watching their own shot land, the hit cue, and
// the sink cue when a ship went down.
func (c *Controller) playHitSequence(result board.AttackResult, isHuman, sank bool) {
	if isHuman {
		c.presenter.AddExplosion(result.Row, result.Col)
	}
	c.audio.Play(CueHit)
	if sank {
		c.audio.Play(CueSink)
	}
}

// playMissSequence fires the splash presentation.
func (c *Controller) playMissSequence(result board.AttackResult, isHuman bool) {
	if isHuman {
		c.presenter.AddSplash(result.Row, result.Col)
	}
	c.audio.Play(CueMiss)
}

// attackMessage composes the status line describing attacker and outcome.
func attackMessage(attacker *entity.Player, result board.AttackResult) string {
	who := attacker.Name
	switch result.Outcome {
	case board.OutcomeMiss:
		return fmt.Sprintf("%s fired at %s and missed.", who, result.Cell())
	case board.OutcomeHit:
		return fmt.Sprintf("%s hit a ship at %s!", who, result.Cell())
	case board.OutcomeDestroyed:
		return fmt.Sprintf("%s sank the %s at %s!", who, result.Ship, result.Cell())
	case board.OutcomeShotAlready:
		return fmt.Sprintf("%s already fired at %s.", who, result.Cell())
	case board.OutcomeGameOver:
		return fmt.Sprintf("%s sank the last ship, the %s. The battle is over.", who, result.Ship)
	default:
		return ""
	}
}

// AddNewState pushes a phase and clears the transient status message.
func (c *Controller) AddNewState(p Phase) {
	c.stack.Push(p)
	c.message = ""
}

// SwitchState replaces the current phase with p (pop then push) and
// clears the transient status message.
func (c *Controller) SwitchState(p Phase) {
	c.stack.Switch(p)
	c.message = ""
}

// EndCurrentState pops the current phase, revealing the one beneath.
func (c *Controller) EndCurrentState() {
	c.stack.Pop()
}

// CurrentState returns the current phase.
func (c *Controller) CurrentState() Phase {
	return c.stack.Current()
}

// Quit unwinds the phase stack to the Quitting sentinel, ending the
// application on the next tick.
func (c *Controller) Quit() {
	for c.stack.Current() != PhaseQuitting {
		c.stack.Pop()
	}
}

// Running reports whether the host loop should keep ticking.
func (c *Controller) Running() bool {
	return c.stack.Current() != PhaseQuitting
}

// HandleInput is the per-tick input entry point: it dispatches to the
// current phase's input handler and then advances in-flight animations.
// An unregistered non-Quitting phase is an exhaustiveness bug and panics.
func (c *Controller) HandleInput(ctx context.Context) {
	phase := c.stack.Current()
	if phase == PhaseQuitting {
		return
	}
	handler, ok := c.handlers[phase]
	if !ok {
		panic(fmt.Sprintf("game: no input handler registered for phase %s", phase))
	}
	handler.HandleInput(ctx)
	c.presenter.UpdateAnimations()
}

// Draw is the per-tick render entry point: background, the current
// phase's drawer, in-flight animations, then frame present.
func (c *Controller) Draw() {
	phase := c.stack.Current()
	if phase == PhaseQuitting {
		return
	}
	drawer, ok := c.drawers[phase]
	if !ok {
		panic(fmt.Sprintf("game: no drawer registered for phase %s", phase))
	}
	c.presenter.DrawBackground()
	drawer.Draw()
	c.presenter.DrawAnimations()
	c.presenter.Present()
}
