// Package main is the entry point for Broadside.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/broadside/internal/audio"
	"github.com/samdwyer/broadside/internal/board"
	"github.com/samdwyer/broadside/internal/game"
	"github.com/samdwyer/broadside/internal/gamedata"
	"github.com/samdwyer/broadside/internal/highscore"
	"github.com/samdwyer/broadside/internal/telemetry"
	"github.com/samdwyer/broadside/internal/ui"
)

// tickRate is how often the host loop drives the controller.
const tickRate = time.Second / 30

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// run wires the collaborators and drives the tick loop until the phase
// stack unwinds to Quitting.
func run(ctx context.Context) error {
	cfg := loadConfig()

	fleetDefs := gamedata.MustLoadShips()
	fleet := make([]board.ShipSpec, len(fleetDefs))
	for i, def := range fleetDefs {
		fleet[i] = board.ShipSpec{Name: def.Name, Length: def.Length}
	}

	scorePath := highscore.DefaultPath()
	scores, err := highscore.Open(scorePath)
	if err != nil {
		// A corrupt score file should not block playing; start fresh and
		// let the next Save overwrite it.
		log.Printf("Warning: %v; starting with an empty score table", err)
		scores = highscore.New(scorePath)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Close()

	gridSize := cfg.GridSize
	if gridSize <= 0 {
		gridSize = board.DefaultSize
	}
	renderer := ui.NewRenderer(screen, gamedata.MustLoadTheme(), gridSize)
	sounds := audio.NewTerminal(screen, gamedata.MustLoadCues())

	ctrl := game.NewController(cfg, fleet, renderer, sounds)
	mainMenu := ui.NewMainMenu(ctrl, screen, renderer)
	ctrl.Register(game.PhaseMainMenu, mainMenu, mainMenu)
	gameMenu := ui.NewGameMenu(ctrl, screen, renderer)
	ctrl.Register(game.PhaseGameMenu, gameMenu, gameMenu)
	settings := ui.NewSettings(ctrl, screen, renderer)
	ctrl.Register(game.PhaseSettings, settings, settings)
	deployment := ui.NewDeployment(ctrl, screen, renderer)
	ctrl.Register(game.PhaseDeploying, deployment, deployment)
	discovery := ui.NewDiscovery(ctrl, screen, renderer)
	ctrl.Register(game.PhaseDiscovering, discovery, discovery)
	endGame := ui.NewEndGame(ctrl, screen, renderer, scores)
	ctrl.Register(game.PhaseEndingGame, endGame, endGame)
	scoreTable := ui.NewHighScores(ctrl, screen, renderer, scores)
	ctrl.Register(game.PhaseHighScores, scoreTable, scoreTable)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	for ctrl.Running() {
		ctrl.HandleInput(ctx)
		ctrl.Draw()
		<-ticker.C
	}
	return nil
}

// loadConfig reads game configuration from the environment.
func loadConfig() game.Config {
	var cfg game.Config
	if v := os.Getenv("BROADSIDE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("BROADSIDE_GRID_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.GridSize = size
		}
	}
	return cfg
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers here: the .env file may carry an unexpanded
	// variable reference that does not work.
	apiKey := os.Getenv("HONEYCOMB_BROADSIDE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BROADSIDE_DATASET")
	if dataset == "" {
		dataset = "broadside"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
