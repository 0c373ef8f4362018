package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/ui"
)

// Run drives s on screen at game.TicksPerSecond until the player quits or
// ctx is cancelled. The caller owns screen's Init and Fini.
func Run(ctx context.Context, screen tcell.Screen, s *game.Session, in *Input, logger zerolog.Logger) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(time.Second / game.TicksPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	buf := ui.NewCellBuffer(ui.Cols, ui.Rows)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in.Key(ev, s) {
					logger.Info().Int("flights", s.Count).Msg("quit")
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			s.Tick(in.Controls())
			screen.Clear()
			Compose(buf, s)
			Blit(screen, buf)
			screen.Show()
		}
	}
}
