package game

import (
	"testing"

	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Phases(t *testing.T) {
	s := NewSession(testDeps(nil, records.NewMemory()))
	assert.Equal(t, PhaseTitle, s.Phase)
	assert.Len(t, s.Tiers(), 3)

	s.Start(1)
	assert.Equal(t, PhaseTitle, s.Phase, "start is ignored outside selection")

	s.Continue()
	assert.Equal(t, PhaseSelect, s.Phase)
	s.Back()
	assert.Equal(t, PhaseTitle, s.Phase)
	s.Continue()

	s.Start(3)
	require.Equal(t, PhaseFlying, s.Phase)
	require.NotNil(t, s.Flight)
	assert.Equal(t, 3, s.Flight.Tier.ID)
	assert.Equal(t, 1, s.Count)

	s.Continue()
	assert.Equal(t, PhaseFlying, s.Phase, "no skipping a flight")

	aboutToTouch(s.Flight.Vessel, 0, 0, 2)
	s.Tick(Controls{})
	assert.Equal(t, PhaseResult, s.Phase)

	s.Tick(Controls{})
	assert.Equal(t, PhaseResult, s.Phase)

	s.Continue()
	assert.Equal(t, PhaseTitle, s.Phase)
	assert.Nil(t, s.Flight)
}

func TestSession_LandingWaitsBeforeResult(t *testing.T) {
	s := NewSession(testDeps(nil, nil))
	s.Continue()
	s.Start(1)
	aboutToTouch(s.Flight.Vessel, s.Flight.Pad.X, 0, 0.5)

	ticks := 0
	for s.Phase == PhaseFlying {
		s.Tick(Controls{})
		ticks++
		require.Less(t, ticks, 200)
	}
	// touchdown tick plus the delay
	assert.Equal(t, resultDelay+1, ticks)
	assert.Equal(t, Landed, s.Flight.Vessel.State)
}

func TestSession_TickWithoutFlight(t *testing.T) {
	s := NewSession(testDeps(nil, nil))
	s.Tick(Controls{Main: true})
	assert.Equal(t, PhaseTitle, s.Phase)
}

func TestMessageLog_WrapsAndEvicts(t *testing.T) {
	l := NewMessageLog(3, 10)
	l.Add(1, "short", MsgInfo)
	l.Add(2, "one two three four", MsgWarning)
	require.Len(t, l.Messages, 3)
	assert.Equal(t, "short", l.Messages[0].Text)
	assert.Equal(t, "one two", l.Messages[1].Text)
	assert.Equal(t, "three four", l.Messages[2].Text)
	assert.Equal(t, MsgWarning, l.Messages[2].Priority)

	l.Add(3, "last", MsgCritical)
	assert.Equal(t, []Message{
		{Text: "one two", Priority: MsgWarning, Tick: 2},
		{Text: "three four", Priority: MsgWarning, Tick: 2},
		{Text: "last", Priority: MsgCritical, Tick: 3},
	}, l.Messages)

	assert.Len(t, l.Recent(2), 2)
	assert.Len(t, l.Recent(10), 3)
}

func TestSound_String(t *testing.T) {
	names := []string{}
	for _, s := range Sounds() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"thrust-main", "thrust-lateral", "success", "explosion", "start", "precision-toggle"}, names)
}
