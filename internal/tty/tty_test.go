package tty

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/ui"
)

func newSession() *game.Session {
	return game.NewSession(game.Deps{
		Source:  rng.New(3),
		Records: records.NewMemory(),
		Logger:  zerolog.Nop(),
	})
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInput_MenuFlow(t *testing.T) {
	s := newSession()
	in := NewInput(8)

	assert.False(t, in.Key(key(tcell.KeyEnter), s))
	require.Equal(t, game.PhaseSelect, s.Phase)

	in.Key(runeKey('7'), s)
	assert.Equal(t, game.PhaseSelect, s.Phase, "no tier 7")

	in.Key(key(tcell.KeyEscape), s)
	require.Equal(t, game.PhaseTitle, s.Phase)

	in.Key(runeKey(' '), s)
	in.Key(runeKey('2'), s)
	require.Equal(t, game.PhaseFlying, s.Phase)
	assert.Equal(t, 2, s.Flight.Tier.ID)

	assert.True(t, in.Key(key(tcell.KeyEscape), s))
}

func TestInput_QuitFromTitle(t *testing.T) {
	s := newSession()
	in := NewInput(8)
	assert.True(t, in.Key(runeKey('q'), s))
	assert.True(t, in.Key(key(tcell.KeyCtrlC), s))
}

func TestInput_ThrustHold(t *testing.T) {
	s := newSession()
	s.Continue()
	s.Start(1)
	in := NewInput(3)

	in.Key(runeKey(' '), s)
	in.Key(key(tcell.KeyLeft), s)
	for i := 0; i < 3; i++ {
		ctl := in.Controls()
		assert.True(t, ctl.Main, "tick %d", i)
		assert.True(t, ctl.Left, "tick %d", i)
		assert.False(t, ctl.Right)
	}
	ctl := in.Controls()
	assert.False(t, ctl.Main)
	assert.False(t, ctl.Left)

	// A repeat press renews the hold.
	in.Key(key(tcell.KeyRight), s)
	assert.True(t, in.Controls().Right)
}

func TestInput_PrecisionToggleIsOneShot(t *testing.T) {
	s := newSession()
	s.Continue()
	s.Start(1)
	in := NewInput(8)

	in.Key(key(tcell.KeyTab), s)
	assert.True(t, in.Controls().TogglePrecision)
	assert.False(t, in.Controls().TogglePrecision)

	in.Key(runeKey('p'), s)
	assert.True(t, in.Controls().TogglePrecision)
}

func TestNewInput_MinimumHold(t *testing.T) {
	s := newSession()
	s.Continue()
	s.Start(1)
	in := NewInput(0)

	in.Key(runeKey(' '), s)
	assert.True(t, in.Controls().Main)
	assert.False(t, in.Controls().Main)
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(ui.Cols, ui.Rows)

	buf := ui.NewCellBuffer(ui.Cols, ui.Rows)
	buf.WriteString(0, 0, "FUEL", ui.ColorYellow, ui.ColorBlack)
	buf.Set(5, 0, 219, ui.ColorLightGreen, ui.ColorBlue)
	Blit(screen, buf)

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'F', r)
	assert.Equal(t, Style(ui.Cell{FG: ui.ColorYellow, BG: ui.ColorBlack}), style)

	r, _, style, _ = screen.GetContent(5, 0)
	assert.Equal(t, '█', r)
	assert.Equal(t, tcell.StyleDefault.Foreground(palette[ui.ColorLightGreen]).Background(palette[ui.ColorBlue]), style)
}

func TestBlit_SmallScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	buf := ui.NewCellBuffer(ui.Cols, ui.Rows)
	buf.WriteString(0, 0, "L U N A R", ui.ColorWhite, ui.ColorBlack)
	assert.NotPanics(t, func() { Blit(screen, buf) })

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'L', r)
}

func TestCompose(t *testing.T) {
	s := newSession()
	buf := ui.NewCellBuffer(ui.Cols, ui.Rows)

	Compose(buf, s)
	assert.Contains(t, buf.Text(8), "L U N A R")

	s.Continue()
	Compose(buf, s)
	assert.Contains(t, buf.Text(4), "SELECT TIER")

	s.Start(1)
	s.Tick(game.Controls{})
	Compose(buf, s)
	assert.Contains(t, buf.Text(0), "V-SPEED")
	assert.Equal(t, byte(220), buf.Get(0, 27).Glyph)
}

func runAsync(ctx context.Context, screen tcell.Screen, s *game.Session) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		Run(ctx, screen, s, NewInput(1), zerolog.Nop())
		close(done)
	}()
	return done
}

func TestRun_StopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, screen, newSession())
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_QuitFromTitle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(ui.Cols, ui.Rows)

	s := newSession()
	done := runAsync(context.Background(), screen, s)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Esc")
	}
	assert.Equal(t, game.PhaseTitle, s.Phase)
}
