// Package audio provides the fire-and-forget sound effect collaborator.
// Playback failures never interrupt gameplay; Play simply reports
// whether a sound was emitted.
package audio

import "io"

// Sound identifiers recognized by Play.
const (
	SoundSuccess  = "success"
	SoundError    = "error"
	SoundClick    = "click"
	SoundLevelUp  = "levelUp"
	SoundTimeOut  = "timeOut"
	SoundGameOver = "gameOver"
)

// Player is the audio capability the game engine depends on.
type Player interface {
	// Init prepares the player. Returns false when audio is unavailable.
	Init() bool

	// Play emits the named sound. Returns false if disabled,
	// uninitialized, or the sound id is unknown.
	Play(sound string) bool

	SetEnabled(enabled bool)
	IsEnabled() bool

	// SetVolume clamps to [0, 1].
	SetVolume(v float64)
	Volume() float64
}

// Bell plays sounds as terminal bell pulses. The terminal decides what
// a bell sounds like; volume only gates whether anything is emitted.
type Bell struct {
	out         io.Writer
	enabled     bool
	volume      float64
	initialized bool
}

var knownSounds = map[string]bool{
	SoundSuccess:  true,
	SoundError:    true,
	SoundClick:    true,
	SoundLevelUp:  true,
	SoundTimeOut:  true,
	SoundGameOver: true,
}

// NewBell creates a Bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{
		out:     out,
		enabled: true,
		volume:  0.8,
	}
}

func (b *Bell) Init() bool {
	if b.out == nil {
		return false
	}
	b.initialized = true
	return true
}

func (b *Bell) Play(sound string) bool {
	if !b.enabled || !b.initialized || b.volume == 0 {
		return false
	}
	if !knownSounds[sound] {
		return false
	}
	_, err := b.out.Write([]byte("\a"))
	return err == nil
}

func (b *Bell) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func (b *Bell) IsEnabled() bool {
	return b.enabled
}

func (b *Bell) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.volume = v
}

func (b *Bell) Volume() float64 {
	return b.volume
}

// Nop is a Player that never plays anything. Used in tests and when
// audio is unavailable.
type Nop struct{}

func (Nop) Init() bool            { return true }
func (Nop) Play(string) bool      { return false }
func (Nop) SetEnabled(bool)       {}
func (Nop) IsEnabled() bool       { return false }
func (Nop) SetVolume(float64)     {}
func (Nop) Volume() float64       { return 0 }
