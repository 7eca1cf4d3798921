package game

import (
	"context"
	"testing"

	"github.com/samdwyer/broadside/internal/board"
)

// stubPresenter counts calls so tests can assert on presentation side
// effects without a terminal.
type stubPresenter struct {
	explosions  int
	splashes    int
	invalidated int
	backgrounds int
	presents    int
	updates     int
	animations  int
}

func (p *stubPresenter) DrawBackground()       { p.backgrounds++ }
func (p *stubPresenter) AddExplosion(_, _ int) { p.explosions++ }
func (p *stubPresenter) AddSplash(_, _ int)    { p.splashes++ }
func (p *stubPresenter) UpdateAnimations()     { p.updates++ }
func (p *stubPresenter) DrawAnimations()       { p.animations++ }
func (p *stubPresenter) Present()              { p.presents++ }
func (p *stubPresenter) Invalidate()           { p.invalidated++ }

// stubAudio records every cue in order.
type stubAudio struct {
	played []string
}

func (a *stubAudio) Play(cue string)       { a.played = append(a.played, cue) }
func (a *stubAudio) IsPlaying(string) bool { return false }

// scriptedStrategy replays a fixed shot sequence and counts how often it
// was consulted.
type scriptedStrategy struct {
	shots [][2]int
	calls int
}

func (s *scriptedStrategy) Name() string { return "scripted" }

func (s *scriptedStrategy) ChooseShot(_ *board.Grid) (int, int) {
	shot := s.shots[s.calls]
	s.calls++
	return shot[0], shot[1]
}

// phaseStub satisfies both InputHandler and Drawer for phases a test
// never exercises.
type phaseStub struct {
	inputs int
	draws  int
}

func (s *phaseStub) HandleInput(context.Context) { s.inputs++ }
func (s *phaseStub) Draw()                       { s.draws++ }

var testFleet = []board.ShipSpec{{Name: "sloop", Length: 2}}

// newTestController builds a controller on 5x5 grids with stub
// collaborators and every phase registered.
func newTestController(t *testing.T) (*Controller, *stubPresenter, *stubAudio) {
	t.Helper()

	presenter := &stubPresenter{}
	audio := &stubAudio{}
	c := NewController(Config{Seed: 1, GridSize: 5}, testFleet, presenter, audio)

	stub := &phaseStub{}
	for _, p := range []Phase{PhaseMainMenu, PhaseGameMenu, PhaseSettings, PhaseDeploying, PhaseDiscovering, PhaseEndingGame, PhaseHighScores} {
		c.Register(p, stub, stub)
	}
	return c, presenter, audio
}

// rigMatch starts a game, locks in deployment, and replaces both grids
// with known single-ship placements: the human's sloop at (0,0)-(0,1),
// the computer's at (4,0)-(4,1). The computer is given the scripted
// strategy.
func rigMatch(t *testing.T, c *Controller, script *scriptedStrategy) {
	t.Helper()

	if err := c.StartGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.EndDeployment()

	humanGrid := board.NewGrid(5)
	if err := humanGrid.PlaceShip(testFleet[0], 0, 0, true); err != nil {
		t.Fatal(err)
	}
	computerGrid := board.NewGrid(5)
	if err := computerGrid.PlaceShip(testFleet[0], 4, 0, true); err != nil {
		t.Fatal(err)
	}

	c.HumanPlayer().Grid = humanGrid
	c.ComputerPlayer().Grid = computerGrid
	c.ComputerPlayer().Strategy = script
}

func TestStartGamePushesDeploying(t *testing.T) {
	c, _, _ := newTestController(t)

	if err := c.StartGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := c.CurrentState(); got != PhaseDeploying {
		t.Errorf("phase after StartGame = %v, want PhaseDeploying", got)
	}
	if c.Session() == nil {
		t.Fatal("Session() = nil after StartGame")
	}
	if got := len(c.HumanPlayer().Grid.Ships()); got != len(testFleet) {
		t.Errorf("human ships = %d, want %d", got, len(testFleet))
	}
	if got := len(c.ComputerPlayer().Grid.Ships()); got != len(testFleet) {
		t.Errorf("computer ships = %d, want %d", got, len(testFleet))
	}
}

func TestStartGameClosesPreviousSession(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()

	if err := c.StartGame(ctx); err != nil {
		t.Fatal(err)
	}
	old := c.Session()
	if err := c.StartGame(ctx); err != nil {
		t.Fatal(err)
	}

	if !old.Closed() {
		t.Error("previous session should be closed by StartGame")
	}
	if c.Session() == old {
		t.Error("StartGame should build a fresh session")
	}
	if c.Session().ID == old.ID {
		t.Error("fresh session should carry a fresh ID")
	}
}

func TestDifficultySelectsStrategy(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		strategy   string
	}{
		{DifficultyEasy, "hard"},
		{DifficultyMedium, "medium"},
		{DifficultyHard, "hard"},
	}

	for _, tt := range tests {
		c, _, _ := newTestController(t)
		c.SetDifficulty(tt.difficulty)
		if err := c.StartGame(context.Background()); err != nil {
			t.Fatal(err)
		}
		if got := c.ComputerPlayer().Strategy.Name(); got != tt.strategy {
			t.Errorf("difficulty %v: strategy = %q, want %q", tt.difficulty, got, tt.strategy)
		}
	}
}

func TestSetDifficultyLastWins(t *testing.T) {
	c, _, _ := newTestController(t)
	c.SetDifficulty(DifficultyMedium)
	c.SetDifficulty(DifficultyHard)
	if got := c.Difficulty(); got != DifficultyHard {
		t.Errorf("Difficulty() = %v, want DifficultyHard", got)
	}
}

func TestEndDeploymentOutsideDeployingIsNoop(t *testing.T) {
	c, _, _ := newTestController(t)

	// Before any game exists.
	c.EndDeployment()
	if got := c.CurrentState(); got != PhaseMainMenu {
		t.Errorf("phase = %v, want PhaseMainMenu", got)
	}

	// During Discovering.
	if err := c.StartGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.EndDeployment()
	c.EndDeployment()
	if got := c.CurrentState(); got != PhaseDiscovering {
		t.Errorf("phase after double EndDeployment = %v, want PhaseDiscovering", got)
	}
}

func TestMissHandsTurnToComputerSalvo(t *testing.T) {
	// A human miss starts the computer salvo: for a script of N misses
	// followed by a hit, the strategy is consulted exactly N+1 times with
	// no further input, and the turn comes back to the human.
	script := &scriptedStrategy{shots: [][2]int{{2, 2}, {2, 3}, {2, 4}, {0, 0}}}
	c, presenter, audio := newTestController(t)
	rigMatch(t, c, script)

	c.Attack(context.Background(), 3, 3) // human miss

	if script.calls != 4 {
		t.Errorf("strategy consulted %d times, want 4", script.calls)
	}
	if c.Session().Attacker() != c.Session().Human() {
		t.Error("turn should return to the human after the computer hit")
	}
	if got := c.ComputerPlayer().ShotCount; got != 4 {
		t.Errorf("computer ShotCount = %d, want 4", got)
	}

	// Presentation: only the human's own splash animates; cues fire for
	// every resolved shot.
	if presenter.splashes != 1 {
		t.Errorf("splashes = %d, want 1 (computer misses not animated)", presenter.splashes)
	}
	if presenter.explosions != 0 {
		t.Errorf("explosions = %d, want 0 (computer hit not animated)", presenter.explosions)
	}
	wantCues := []string{CueMiss, CueMiss, CueMiss, CueMiss, CueHit}
	if len(audio.played) != len(wantCues) {
		t.Fatalf("cues = %v, want %v", audio.played, wantCues)
	}
	for i, cue := range wantCues {
		if audio.played[i] != cue {
			t.Errorf("cue[%d] = %q, want %q", i, audio.played[i], cue)
		}
	}
}

func TestHumanHitKeepsTurn(t *testing.T) {
	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	c, presenter, audio := newTestController(t)
	rigMatch(t, c, script)

	c.Attack(context.Background(), 4, 0) // human hit

	if script.calls != 0 {
		t.Errorf("strategy consulted %d times after a human hit, want 0", script.calls)
	}
	if c.Session().Attacker() != c.Session().Human() {
		t.Error("human should keep the turn after a hit")
	}
	if presenter.explosions != 1 {
		t.Errorf("explosions = %d, want 1", presenter.explosions)
	}
	if len(audio.played) != 1 || audio.played[0] != CueHit {
		t.Errorf("cues = %v, want [%s]", audio.played, CueHit)
	}
}

func TestRepeatedShotRejected(t *testing.T) {
	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	c, _, audio := newTestController(t)
	rigMatch(t, c, script)
	ctx := context.Background()

	c.Attack(ctx, 4, 0) // hit
	c.Attack(ctx, 4, 0) // same cell: rejected

	if got := c.CurrentState(); got != PhaseDiscovering {
		t.Errorf("phase after rejected shot = %v, want PhaseDiscovering", got)
	}
	if c.Session().Attacker() != c.Session().Human() {
		t.Error("rejected shot must not move the turn")
	}
	if script.calls != 0 {
		t.Error("rejected shot must not trigger the computer")
	}
	want := []string{CueHit, CueError}
	if len(audio.played) != 2 || audio.played[1] != CueError {
		t.Errorf("cues = %v, want %v", audio.played, want)
	}
}

func TestAttackGuards(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()

	// No session yet.
	c.Attack(ctx, 0, 0)

	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	rigMatch(t, c, script)

	// Wrong phase: a pushed menu blocks shots.
	c.AddNewState(PhaseGameMenu)
	c.Attack(ctx, 4, 0)
	if c.ComputerPlayer().Grid.Tried(4, 0) {
		t.Error("Attack outside Discovering should be ignored")
	}
	c.EndCurrentState()
}

func TestHumanWinEndsGame(t *testing.T) {
	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	c, _, audio := newTestController(t)
	rigMatch(t, c, script)
	ctx := context.Background()

	c.Attack(ctx, 4, 0)
	c.Attack(ctx, 4, 1) // sinks the computer's last ship

	if got := c.CurrentState(); got != PhaseEndingGame {
		t.Errorf("phase after win = %v, want PhaseEndingGame", got)
	}
	if c.HumanPlayer().IsDestroyed() {
		t.Error("human should not be destroyed")
	}
	last := audio.played[len(audio.played)-1]
	if last != CueWin {
		t.Errorf("last cue = %q, want %q", last, CueWin)
	}
	if script.calls != 0 {
		t.Error("the computer never got a turn")
	}
}

func TestComputerWinEndsGame(t *testing.T) {
	// Two human misses each hand the turn to the computer; the computer's
	// first hit returns the turn, its second sinks the human fleet.
	script := &scriptedStrategy{shots: [][2]int{{0, 0}, {0, 1}}}
	c, _, audio := newTestController(t)
	rigMatch(t, c, script)
	ctx := context.Background()

	c.Attack(ctx, 2, 2) // miss -> computer hits (0,0), turn back to human
	c.Attack(ctx, 2, 3) // miss -> computer sinks (0,1)

	if got := c.CurrentState(); got != PhaseEndingGame {
		t.Errorf("phase after loss = %v, want PhaseEndingGame", got)
	}
	if !c.HumanPlayer().IsDestroyed() {
		t.Error("human fleet should be destroyed")
	}
	last := audio.played[len(audio.played)-1]
	if last != CueLose {
		t.Errorf("last cue = %q, want %q", last, CueLose)
	}
}

func TestAttackMessageSetAndCleared(t *testing.T) {
	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	c, _, _ := newTestController(t)
	rigMatch(t, c, script)

	c.Attack(context.Background(), 4, 0)
	if c.Message() == "" {
		t.Error("a resolved shot should set the status message")
	}

	c.AddNewState(PhaseGameMenu)
	if c.Message() != "" {
		t.Error("AddNewState should clear the status message")
	}
	c.EndCurrentState()

	c.Attack(context.Background(), 4, 1)
	if c.Message() == "" {
		t.Error("a resolved shot should set the status message")
	}
	c.SwitchState(PhaseDiscovering)
	if c.Message() != "" {
		t.Error("SwitchState should clear the status message")
	}
}

func TestGridChangesInvalidatePresenter(t *testing.T) {
	script := &scriptedStrategy{shots: [][2]int{{2, 2}}}
	c, presenter, _ := newTestController(t)
	rigMatch(t, c, script)

	before := presenter.invalidated
	c.Attack(context.Background(), 4, 0)
	if presenter.invalidated <= before {
		t.Error("a resolved shot should invalidate the presenter")
	}
}

func TestHandleInputAndDrawDispatch(t *testing.T) {
	presenter := &stubPresenter{}
	c := NewController(Config{Seed: 1, GridSize: 5}, testFleet, presenter, &stubAudio{})

	menu := &phaseStub{}
	c.Register(PhaseMainMenu, menu, menu)

	c.HandleInput(context.Background())
	c.Draw()

	if menu.inputs != 1 {
		t.Errorf("handler inputs = %d, want 1", menu.inputs)
	}
	if menu.draws != 1 {
		t.Errorf("drawer draws = %d, want 1", menu.draws)
	}
	if presenter.updates != 1 {
		t.Errorf("UpdateAnimations calls = %d, want 1", presenter.updates)
	}
	if presenter.backgrounds != 1 || presenter.animations != 1 || presenter.presents != 1 {
		t.Errorf("frame composition = (%d bg, %d anim, %d present), want (1, 1, 1)",
			presenter.backgrounds, presenter.animations, presenter.presents)
	}
}

func TestHandleInputPanicsOnUnregisteredPhase(t *testing.T) {
	c := NewController(Config{Seed: 1, GridSize: 5}, testFleet, &stubPresenter{}, &stubAudio{})

	defer func() {
		if recover() == nil {
			t.Error("HandleInput with no handler registered should panic")
		}
	}()
	c.HandleInput(context.Background())
}

func TestDrawPanicsOnUnregisteredPhase(t *testing.T) {
	c := NewController(Config{Seed: 1, GridSize: 5}, testFleet, &stubPresenter{}, &stubAudio{})

	defer func() {
		if recover() == nil {
			t.Error("Draw with no drawer registered should panic")
		}
	}()
	c.Draw()
}

func TestQuitUnwindsStack(t *testing.T) {
	c, _, _ := newTestController(t)
	if err := c.StartGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.AddNewState(PhaseGameMenu)

	c.Quit()
	if c.Running() {
		t.Error("Running() = true after Quit")
	}
	if got := c.CurrentState(); got != PhaseQuitting {
		t.Errorf("CurrentState() = %v, want PhaseQuitting", got)
	}

	// Quitting phases are skipped, not dispatched.
	c.HandleInput(context.Background())
	c.Draw()
}

func TestRandomizeDeployment(t *testing.T) {
	c, _, _ := newTestController(t)

	// No session: no-op, no error.
	if err := c.RandomizeDeployment(); err != nil {
		t.Fatal(err)
	}

	if err := c.StartGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.RandomizeDeployment(); err != nil {
		t.Fatal(err)
	}
	if got := len(c.HumanPlayer().Grid.Ships()); got != len(testFleet) {
		t.Errorf("ships after randomize = %d, want %d", got, len(testFleet))
	}
}
