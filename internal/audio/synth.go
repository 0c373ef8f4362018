// Package audio synthesizes the lander's sound effects and plays them
// through ebiten or, for the terminal build, beep's speaker.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"

	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
)

// SampleRate of every synthesized effect and of the playback context.
const SampleRate = beep.SampleRate(44100)

// edgeSamples fades plain tones in and out to avoid clicks.
const edgeSamples = 100

// Recipe describes how one cue is synthesized.
type Recipe struct {
	File     string
	Duration time.Duration
	Volume   float64
}

// Recipes maps each cue to its synthesis parameters.
var Recipes = map[game.Sound]Recipe{
	game.SoundThrustMain:    {File: "thrust_main.wav", Duration: 100 * time.Millisecond, Volume: 0.4},
	game.SoundThrustLateral: {File: "thrust_lateral.wav", Duration: 50 * time.Millisecond, Volume: 0.2},
	game.SoundExplosion:     {File: "explosion.wav", Duration: time.Second, Volume: 0.7},
	game.SoundSuccess:       {File: "success.wav", Duration: time.Second, Volume: 0.5},
	game.SoundStart:         {File: "start.wav", Duration: 500 * time.Millisecond, Volume: 0.5},
	game.SoundPrecision:     {File: "precision.wav", Duration: 200 * time.Millisecond, Volume: 0.3},
}

// generator streams total mono samples produced by fn.
type generator struct {
	pos   int
	total int
	fn    func(i, total int) float64
}

func newGenerator(d time.Duration, fn func(i, total int) float64) *generator {
	return &generator{total: SampleRate.N(d), fn: fn}
}

func (g *generator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		v := g.fn(g.pos, g.total)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *generator) Err() error { return nil }

func noise(d time.Duration, src rng.Source) *generator {
	return newGenerator(d, func(int, int) float64 {
		return rng.Uniform(src, -1, 1)
	})
}

// decayingNoise falls off as exp(-3t) over its length.
func decayingNoise(d time.Duration, src rng.Source) *generator {
	return newGenerator(d, func(i, total int) float64 {
		return rng.Uniform(src, -1, 1) * math.Exp(-3*float64(i)/float64(total))
	})
}

func tone(freq float64, d time.Duration) *generator {
	return newGenerator(d, func(i, total int) float64 {
		env := 1.0
		if i < edgeSamples || i > total-edgeSamples {
			env = math.Min(float64(i), float64(total-i)) / edgeSamples
		}
		return math.Sin(2*math.Pi*freq*float64(i)/float64(SampleRate)) * env
	})
}

// melody plays base, a major third and a fifth, each note swelling and
// fading over its third of the clip.
func melody(base float64, d time.Duration) *generator {
	notes := [3]float64{base, base * 1.25, base * 1.5}
	return newGenerator(d, func(i, total int) float64 {
		per := max(1, total/3)
		note := min(i/per, 2)
		env := math.Sin(math.Pi * float64(i%per) / float64(per))
		return math.Sin(2*math.Pi*notes[note]*float64(i)/float64(SampleRate)) * env
	})
}

// sweep rises from start to 2.5x start under a half-sine envelope.
func sweep(start float64, d time.Duration) *generator {
	phase := 0.0
	return newGenerator(d, func(i, total int) float64 {
		t := float64(i) / float64(total)
		freq := start + start*1.5*t
		v := math.Sin(2*math.Pi*phase) * math.Sin(math.Pi*t)
		phase += freq / float64(SampleRate)
		phase -= math.Floor(phase)
		return v
	})
}

// newVolume scales s linearly by vol; effects.Volume works in log2 steps.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesize builds the streamer for cue s.
func Synthesize(s game.Sound, src rng.Source) (beep.Streamer, error) {
	r, ok := Recipes[s]
	if !ok {
		return nil, fmt.Errorf("no recipe for sound %v", s)
	}

	var g *generator
	switch s {
	case game.SoundThrustMain, game.SoundThrustLateral:
		g = noise(r.Duration, src)
	case game.SoundExplosion:
		g = decayingNoise(r.Duration, src)
	case game.SoundSuccess:
		g = melody(440, r.Duration)
	case game.SoundStart:
		g = sweep(330, r.Duration)
	case game.SoundPrecision:
		g = tone(660, r.Duration)
	}
	return newVolume(g, r.Volume), nil
}

// DefaultCacheDir is the per-user directory the WAV files are written to.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(dir, "lunarlander", "sounds"), nil
}

// EnsureCache writes any missing effect WAVs into dir and returns the
// path of every cue. Existing files are left alone.
func EnsureCache(dir string, src rng.Source) (map[game.Sound]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sound cache: %w", err)
	}

	paths := make(map[game.Sound]string, len(Recipes))
	for _, s := range game.Sounds() {
		path := filepath.Join(dir, Recipes[s].File)
		paths[s] = path

		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := writeWAV(path, s, src); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func writeWAV(path string, s game.Sound, src rng.Source) error {
	stream, err := Synthesize(s, src)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, stream, format); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
