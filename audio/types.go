package audio

import "errors"

// Cue is a discrete sound triggered by level and screen transitions
type Cue int

const (
	CueBegin      Cue = iota // Run starts
	CueGameOver              // Forward collision
	CueMenuChoose            // Menu carousel moved
	CueStartup               // Title screen jingle
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueBegin:
		return "begin"
	case CueGameOver:
		return "gameover"
	case CueMenuChoose:
		return "menuchoose"
	case CueStartup:
		return "startup"
	default:
		return "unknown"
	}
}

// Player is the audio surface used by levels and screens
// Every method must be safe to call when no device is available
type Player interface {
	Play(c Cue)
	PlayMusic()
	PauseMusic()
	StopMusic()
}

// Nop discards every request
type Nop struct{}

func (Nop) Play(Cue)    {}
func (Nop) PlayMusic()  {}
func (Nop) PauseMusic() {}
func (Nop) StopMusic()  {}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
