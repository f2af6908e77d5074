package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/quiztasy/internal/audio"
	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/game"
	"chosenoffset.com/quiztasy/internal/quiz"
	"chosenoffset.com/quiztasy/internal/term"
	"chosenoffset.com/quiztasy/internal/world/level"
)

func main() {
	cfg := config.FromEnvironment()

	// The terminal owns stdout; keep logs out of the way
	logFile, err := os.OpenFile("quiztasy-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	registry, err := level.Load(level.FixedSizer{Width: cfg.Map.MarkerWidth, Height: cfg.Map.MarkerHeight})
	if err != nil {
		log.Fatalf("Failed to load level catalog: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bank := quiz.LoadOrDefault(cfg.Assets.QuestionBank, rng)

	player := audio.Open(cfg)
	defer player.Close()

	mapSize := geom.Size{W: cfg.Map.Width, H: cfg.Map.Height}
	session := game.NewSession(cfg, registry, mapSize, bank, player)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	app, err := term.New(screen, session)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Terminal session failed: %v", err)
	}
	log.Println(session.Summary())
}
