package game

// Sound is a fire-and-forget audio cue raised by a flight.
type Sound uint8

const (
	SoundThrustMain Sound = iota
	SoundThrustLateral
	SoundSuccess
	SoundExplosion
	SoundStart
	SoundPrecision
	soundCount
)

var soundNames = [soundCount]string{
	"thrust-main",
	"thrust-lateral",
	"success",
	"explosion",
	"start",
	"precision-toggle",
}

func (s Sound) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sounds lists every cue, in declaration order.
func Sounds() []Sound {
	out := make([]Sound, soundCount)
	for i := range out {
		out[i] = Sound(i)
	}
	return out
}

// Notifier receives sound cues. Notify must not block.
type Notifier interface {
	Notify(s Sound)
}

// NopNotifier drops every cue.
type NopNotifier struct{}

func (NopNotifier) Notify(Sound) {}
