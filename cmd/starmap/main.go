package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/starmap/internal/application/game"
	"github.com/younwookim/starmap/internal/application/replay"
	"github.com/younwookim/starmap/internal/application/scene/starmap"
	"github.com/younwookim/starmap/internal/domain/entity"
	"github.com/younwookim/starmap/internal/infrastructure/config"
	"github.com/younwookim/starmap/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session before live input")
	configFlag := flag.String("config", "", "Load worlds from this file instead of the built-in worlds.json")
	flag.Parse()

	cfg, cfgName := loadConfig(*configFlag)

	var replayData *replay.ReplayData
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayData = data
	}

	vp := entity.Viewport{Width: cfg.Display.Width, Height: cfg.Display.Height}
	surface, err := render.New(os.DirFS(cfg.AssetsDir), vp, log.Default())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	scene, err := starmap.New(cfg, surface, starmap.Options{
		RecordPath: *recordFlag,
		ConfigName: cfgName,
		Replay:     replayData,
	})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	g := game.New(scene, vp.Width, vp.Height)

	// Set up ebiten
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.TPS)
	g.SetDT(1.0 / float64(cfg.Display.TPS))

	if err := runGame(g, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// runGame runs g and closes it afterwards, so a recording is saved even when
// the loop fails
func runGame(g *game.Game, run func(ebiten.Game) error) error {
	defer g.Close()
	return run(g)
}

// loadConfig loads the named config file, or the embedded worlds.json when
// path is empty
func loadConfig(path string) (*config.NavConfig, string) {
	if path != "" {
		cfg, err := config.NewLoader(filepath.Dir(path)).LoadNamed(filepath.Base(path))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return cfg, path
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadNav()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg, config.DefaultFile
}
