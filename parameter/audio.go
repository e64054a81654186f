package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Begin Cue
const (
	BeginSoundDuration = 350 * time.Millisecond
	BeginSoundAttack   = 5 * time.Millisecond
	BeginSoundRelease  = 120 * time.Millisecond
)

// Game Over Cue
const (
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)

// Menu Choose Cue
const (
	MenuSoundDuration = 60 * time.Millisecond
	MenuSoundAttack   = 2 * time.Millisecond
	MenuSoundRelease  = 30 * time.Millisecond
)

// Startup Jingle
const (
	StartupNoteDuration = 180 * time.Millisecond
	StartupNoteAttack   = 5 * time.Millisecond
	StartupNoteRelease  = 90 * time.Millisecond
)

// Level Music
const (
	// MusicBeatPeriod is one beat of the level loop (~140 BPM)
	MusicBeatPeriod = 428 * time.Millisecond

	// MusicKickLength is the decaying kick at the start of each beat
	MusicKickLength = 90 * time.Millisecond

	MusicVolume = 0.35
	CueVolume   = 0.6
)
