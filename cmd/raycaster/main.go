package main

import (
	"flag"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/scene"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to the JSON config file")
	mapsDir := flag.String("maps", "", "Directory of JSON maps; the first two become maps A and B")
	fov := flag.Int("fov", 0, "Field of view in degrees (overrides the config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *fov != 0 {
		cfg.Viewer.FOV = *fov
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -fov: %v", err)
		}
	}

	mapA, mapB := scene.BuiltinA(), scene.BuiltinB()
	if *mapsDir != "" {
		log.Printf("Loading maps from %s...", *mapsDir)
		mapA, mapB, err = scene.LoadMapDirectory(*mapsDir)
		if err != nil {
			log.Fatalf("Failed to load maps: %v", err)
		}
	}

	// Boundary walls are laid out for the initial window size
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)
	maps := scene.NewMapSet(mapA, mapB, width, height)
	log.Printf("Map A: %s (%d walls), map B: %s (%d walls)",
		maps.NameA, len(maps.A), maps.NameB, len(maps.B))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, maps, renderer, inputMgr)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting with a %d degree field of view...", cfg.Viewer.FOV)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
