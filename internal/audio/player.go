package audio

import (
	"bytes"
	"fmt"
	"os"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	ebwav "github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/config"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
)

// voice is the part of *ebaudio.Player a cue needs.
type voice interface {
	IsPlaying() bool
	Rewind() error
	Play()
}

// Player plays cues through ebiten. It implements game.Notifier.
type Player struct {
	voices map[game.Sound]voice
	logger zerolog.Logger
}

var _ game.Notifier = (*Player)(nil)

// sustained cues fire every tick while a key is held; they are left to
// finish instead of restarting.
func sustained(s game.Sound) bool {
	return s == game.SoundThrustMain || s == game.SoundThrustLateral
}

// NewPlayer loads one ebiten player per cue from files.
func NewPlayer(ctx *ebaudio.Context, files map[game.Sound]string, volume float64, logger zerolog.Logger) (*Player, error) {
	p := &Player{
		voices: make(map[game.Sound]voice, len(files)),
		logger: logger.With().Str("component", "audio").Logger(),
	}
	for s, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
		}
		stream, err := ebwav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
		}
		pl, err := ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
		}
		pl.SetVolume(volume)
		p.voices[s] = pl
	}
	return p, nil
}

// Notify starts cue s. It never blocks.
func (p *Player) Notify(s game.Sound) {
	v, ok := p.voices[s]
	if !ok {
		return
	}
	if sustained(s) && v.IsPlaying() {
		return
	}
	if err := v.Rewind(); err != nil {
		p.logger.Warn().Err(err).Stringer("sound", s).Msg("failed to rewind")
	}
	v.Play()
}

// Open builds the notifier described by cfg. Any failure is logged and
// yields a silent notifier so the game still runs.
func Open(cfg config.AudioConfig, logger zerolog.Logger) game.Notifier {
	if !cfg.Enabled {
		return game.NopNotifier{}
	}

	dir := cfg.CacheDir
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
			return game.NopNotifier{}
		}
		dir = d
	}

	files, err := EnsureCache(dir, rng.New(0))
	if err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
		return game.NopNotifier{}
	}

	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(SampleRate))
	}

	p, err := NewPlayer(ctx, files, cfg.Volume, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
		return game.NopNotifier{}
	}
	logger.Debug().Str("dir", dir).Msg("audio ready")
	return p
}
