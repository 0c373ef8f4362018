package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/assets"
	"github.com/spacehole-rogue/lunarlander/internal/audio"
	"github.com/spacehole-rogue/lunarlander/internal/config"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/logging"
	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/spacehole-rogue/lunarlander/internal/render"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/ui"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

const title = "Lunar Lander"

var tierKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *ui.CellBuffer
	session  *game.Session
	logger   zerolog.Logger
}

func NewGame(session *game.Session, logger zerolog.Logger) *Game {
	atlas := render.NewFontAtlas()
	g := &Game{
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas, ui.CellW, ui.CellH),
		buffer:   ui.NewCellBuffer(ui.Cols, ui.Rows),
		session:  session,
		logger:   logger,
	}
	g.drawScreen()
	return g
}

func continuePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (g *Game) Update() error {
	s := g.session
	ctl := game.Controls{}

	switch s.Phase {
	case game.PhaseTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if continuePressed() {
			s.Continue()
		}

	case game.PhaseSelect:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.Back()
		}
		for i, k := range tierKeys {
			if inpututil.IsKeyJustPressed(k) && i < len(s.Tiers()) {
				s.Start(s.Tiers()[i].ID)
				break
			}
		}

	case game.PhaseFlying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		ctl = game.Controls{
			Main:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp),
			Left:  ebiten.IsKeyPressed(ebiten.KeyLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyRight),
			TogglePrecision: inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) ||
				inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		}

	case game.PhaseResult:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if continuePressed() {
			s.Continue()
		}
	}

	s.Tick(ctl)
	g.drawScreen()
	return nil
}

// drawScreen composes the text layer for the current phase.
func (g *Game) drawScreen() {
	buf := g.buffer
	s := g.session

	switch s.Phase {
	case game.PhaseTitle:
		ui.DrawTitle(buf)
	case game.PhaseSelect:
		ui.DrawSelect(buf, s.Tiers())
	case game.PhaseFlying:
		buf.Clear()
		ui.DrawHUD(buf, s.Flight)
	case game.PhaseResult:
		ui.DrawResult(buf, s.Flight)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch s.Phase {
	case game.PhaseFlying:
		render.DrawScene(screen, s.Flight)
	case game.PhaseResult:
		render.DrawScene(screen, s.Flight)
		render.DrawOverlay(screen)
	}
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return world.ScreenWidth, world.ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	tiers, err := world.LoadTiers(assets.Tiers)
	if err != nil {
		log.Fatalf("parse tiers: %v", err)
	}

	store, err := records.Open(cfg.Records.Backend, cfg.Records.AppName, cfg.Records.Path)
	if err != nil {
		logger.Warn().Err(err).Str("backend", cfg.Records.Backend).Msg("leaderboard falls back to memory")
		store = records.NewMemory()
	}
	defer store.Close()

	session := game.NewSession(game.Deps{
		Source:   rng.New(cfg.Seed),
		Notifier: audio.Open(cfg.Audio, logger),
		Records:  store,
		Logger:   logger,
		Tiers:    tiers,
	})

	ebiten.SetWindowSize(int(world.ScreenWidth*cfg.Window.Scale), int(world.ScreenHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.TicksPerSecond)

	logger.Info().Str("backend", cfg.Records.Backend).Msg("starting")
	if err := ebiten.RunGame(NewGame(session, logger)); err != nil {
		log.Fatal(err)
	}
}
