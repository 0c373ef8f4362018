package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/config"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
)

// Speaker plays cues through beep's speaker, for front-ends that do not
// run an ebiten audio context. It implements game.Notifier.
type Speaker struct {
	buffers map[game.Sound]*beep.Buffer
	busy    map[game.Sound]*atomic.Bool
	add     func(beep.Streamer)
}

var _ game.Notifier = (*Speaker)(nil)

// newSpeaker renders every cue into memory at volume. add hands a
// streamer to the output mixer.
func newSpeaker(volume float64, src rng.Source, add func(beep.Streamer)) (*Speaker, error) {
	format := beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: 2}
	sp := &Speaker{
		buffers: make(map[game.Sound]*beep.Buffer, len(Recipes)),
		busy:    make(map[game.Sound]*atomic.Bool, len(Recipes)),
		add:     add,
	}
	for _, s := range game.Sounds() {
		stream, err := Synthesize(s, src)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(format)
		buf.Append(newVolume(stream, volume))
		sp.buffers[s] = buf
		sp.busy[s] = new(atomic.Bool)
	}
	return sp, nil
}

// Notify mixes in cue s. Sustained cues are not restarted while playing.
func (sp *Speaker) Notify(s game.Sound) {
	buf, ok := sp.buffers[s]
	if !ok {
		return
	}
	stream := buf.Streamer(0, buf.Len())
	if sustained(s) {
		busy := sp.busy[s]
		if !busy.CompareAndSwap(false, true) {
			return
		}
		sp.add(beep.Seq(stream, beep.Callback(func() { busy.Store(false) })))
		return
	}
	sp.add(stream)
}

// OpenSpeaker initializes the speaker and returns a notifier with a
// cleanup func. Failures are logged and yield a silent notifier.
func OpenSpeaker(cfg config.AudioConfig, logger zerolog.Logger) (game.Notifier, func()) {
	nop := func() {}
	if !cfg.Enabled {
		return game.NopNotifier{}, nop
	}
	logger = logger.With().Str("component", "audio").Logger()

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		logger.Warn().Err(fmt.Errorf("init speaker: %w", err)).Msg("audio disabled")
		return game.NopNotifier{}, nop
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	sp, err := newSpeaker(cfg.Volume, rng.New(0), func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	})
	if err != nil {
		speaker.Close()
		logger.Warn().Err(err).Msg("audio disabled")
		return game.NopNotifier{}, nop
	}
	logger.Debug().Msg("speaker ready")
	return sp, speaker.Close
}
