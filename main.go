package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/redfox/tatakai/assets"
	"github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/fonts"
	"github.com/redfox/tatakai/scenes"
	"github.com/redfox/tatakai/systems"
)

type Game struct {
	director *scenes.Director
}

func NewGame(arenaIndex int) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		director: scenes.NewDirector(assets.NewArenaLoader(), arenaIndex),
	}
	if err := g.director.Request(scenes.StateGame); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		quit, err := g.director.HandleEscape()
		if err != nil {
			return err
		}
		if quit {
			return ebiten.Termination
		}
	}
	g.director.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func setupLogger(path, level string) (io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, err
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          config.C.Title,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	log.SetDefault(logger)
	return closer, nil
}

func main() {
	arenaFlag := flag.Int("arena", 0, "arena index to fight in (0 uses the saved setting)")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", config.Debug.ShowColliders, "draw collision shapes")
	flag.StringVar(&config.Debug.LogFile, "log", config.Debug.LogFile, "write the log to this file instead of stderr")
	flag.StringVar(&config.Debug.LogLevel, "loglevel", config.Debug.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	closer, err := setupLogger(config.Debug.LogFile, config.Debug.LogLevel)
	if err != nil {
		log.Fatal("could not open log file", "path", config.Debug.LogFile, "err", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Info("starting", "app", config.C.Title, "company", config.C.Company, "version", config.C.Version)

	if err := systems.InitPersistence(config.C.Title); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil {
		log.Warn("could not load settings", "err", err)
	}
	if *arenaFlag != 0 {
		settings.ArenaIndex = *arenaFlag
		settings.Normalize()
	}
	if !config.Debug.ShowColliders {
		config.Debug.ShowColliders = settings.ShowColliders
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame(settings.ArenaIndex)
	if err != nil {
		log.Fatal("could not start game", "err", err)
	}

	runErr := ebiten.RunGame(game)

	settings.ShowColliders = config.Debug.ShowColliders
	if err := systems.SaveSettings(settings); err != nil {
		log.Warn("could not save settings", "err", err)
	}

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal("game exited", "err", runErr)
	}
}
