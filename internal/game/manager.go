package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/quiztasy/internal/assets"
	"chosenoffset.com/quiztasy/internal/audio"
	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/input"
	"chosenoffset.com/quiztasy/internal/quiz"
	"chosenoffset.com/quiztasy/internal/render"
	"chosenoffset.com/quiztasy/internal/world/level"
)

// Manager is the windowed front end. It implements render.Game by polling
// input, stepping the session and drawing whichever mode is active.
type Manager struct {
	*Session

	Renderer render.Renderer
	InputMgr render.InputManager
	Assets   *assets.Provider
}

// NewManager loads the level catalog and question bank and creates the
// session. Missing assets fall back to placeholders; only a broken level
// catalog is fatal.
func NewManager(cfg config.Config, r render.Renderer, in render.InputManager, loader render.ResourceLoader, svc audio.Service) (*Manager, error) {
	provider := assets.NewProvider(cfg, loader, r)

	registry, err := level.Load(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to load level catalog: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bank := quiz.LoadOrDefault(cfg.Assets.QuestionBank, rng)

	w, h := provider.MapSize()
	log.Printf("Map %dx%d with %d locations", w, h, registry.Len())

	return &Manager{
		Session:  NewSession(cfg, registry, geom.Size{W: w, H: h}, bank, svc),
		Renderer: r,
		InputMgr: in,
		Assets:   provider,
	}, nil
}

// Update implements render.Game.
func (m *Manager) Update() error {
	return m.Step(input.FromManager(m.InputMgr))
}

// Draw implements render.Game.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if m.Mode == ModeBattle && m.Battle != nil {
		m.drawBattle(screen)
	} else {
		m.drawMap(screen)
	}

	m.drawMessages(screen)
}

// Layout implements render.Game. The logical screen is fixed so camera math
// does not depend on the window size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Config.Screen.Width, m.Config.Screen.Height
}

// Close releases images and stops audio.
func (m *Manager) Close() {
	m.Assets.Dispose()
	m.Audio.Close()
}
