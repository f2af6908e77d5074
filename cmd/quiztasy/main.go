package main

import (
	"log"

	"chosenoffset.com/quiztasy/internal/audio"
	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/game"
	ebitenrender "chosenoffset.com/quiztasy/internal/render/ebiten"
)

func main() {
	cfg := config.FromEnvironment()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	player := audio.Open(cfg)

	gameManager, err := game.NewManager(cfg, renderer, inputMgr, loader, player)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer gameManager.Close()

	// Set up the window
	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetFullscreen(cfg.Screen.Fullscreen)
	engine.SetTPS(cfg.Screen.FPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
