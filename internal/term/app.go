// Package term is a text front end for the game. It drives the same session
// as the window, drawing the map as a grid of cells and the battle as text.
package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/quiztasy/internal/game"
	"chosenoffset.com/quiztasy/internal/render"
)

// App runs a session on a terminal screen.
type App struct {
	screen  tcell.Screen
	session *game.Session
	keys    *Keys
}

// New initializes screen and wraps the session.
func New(screen tcell.Screen, session *game.Session) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.HideCursor()
	return &App{screen: screen, session: session, keys: NewKeys()}, nil
}

// HandleEvent feeds one terminal event to the key tracker.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.Handle(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// Tick steps the session once and redraws. It returns render.ErrQuit when
// the player leaves.
func (a *App) Tick() error {
	if a.keys.Quit() {
		return render.ErrQuit
	}
	if err := a.session.Step(a.keys.Snapshot()); err != nil {
		return err
	}
	Draw(a.screen, a.session)
	return nil
}

// Run ticks at the configured rate until the player quits or ctx is done.
// The screen is finalized on return.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	fps := a.session.Config.Screen.FPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev)
		case <-ticker.C:
			if err := a.Tick(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					log.Println("Terminal session ended")
					return nil
				}
				return err
			}
		}
	}
}
