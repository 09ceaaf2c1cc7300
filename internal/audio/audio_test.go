package audio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellPlaysKnownSounds(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	require.True(t, b.Init())

	assert.True(t, b.Play(SoundSuccess))
	assert.True(t, b.Play(SoundLevelUp))
	assert.Equal(t, "\a\a", buf.String())

	assert.False(t, b.Play("explosion"))
	assert.Equal(t, "\a\a", buf.String())
}

func TestBellRespectsEnabledAndVolume(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	require.True(t, b.Init())

	b.SetEnabled(false)
	assert.False(t, b.Play(SoundClick))

	b.SetEnabled(true)
	b.SetVolume(0)
	assert.False(t, b.Play(SoundClick))

	b.SetVolume(0.5)
	assert.True(t, b.Play(SoundClick))
	assert.Equal(t, "\a", buf.String())
}

func TestBellVolumeClamps(t *testing.T) {
	b := NewBell(&bytes.Buffer{})
	b.SetVolume(1.7)
	assert.Equal(t, 1.0, b.Volume())
	b.SetVolume(-0.3)
	assert.Equal(t, 0.0, b.Volume())
}

func TestBellWithoutOutputRefusesInit(t *testing.T) {
	b := NewBell(nil)
	assert.False(t, b.Init())
	assert.False(t, b.Play(SoundSuccess))
}

func TestNopNeverPlays(t *testing.T) {
	var p Player = Nop{}
	assert.True(t, p.Init())
	assert.False(t, p.Play(SoundSuccess))
}
