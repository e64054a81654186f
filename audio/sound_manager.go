package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/parameter"
)

// SoundManager plays cues and the level loop through the speaker
// It stays muted when the device cannot be opened
type SoundManager struct {
	mu    sync.Mutex
	cfg   *AudioConfig
	log   zerolog.Logger
	mixer *beep.Mixer

	music      *beep.Ctrl
	musicGen   *MusicGenerator
	musicState bool // requested playing, independent of mute

	initialized bool
	muted       bool

	// lock guards mixer mutation against the speaker goroutine
	lock   func()
	unlock func()
}

// NewSoundManager creates a sound manager; call Initialize to open the device
func NewSoundManager(cfg *AudioConfig, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		log:    log,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// InitializeOrMute opens the speaker and degrades to silence on failure
func (sm *SoundManager) InitializeOrMute() bool {
	if err := sm.Initialize(); err != nil {
		sm.log.Warn().Err(err).Msg("audio unavailable, continuing muted")
		return false
	}
	return true
}

// Enabled reports whether the device is open and not muted
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// Cleanup stops all sounds
// beep has no speaker close; clearing the mixer silences output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	sm.music = nil
	sm.musicGen = nil
	sm.musicState = false
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.music != nil {
		sm.lock()
		sm.music.Paused = sm.muted || !sm.musicState
		sm.unlock()
	}
	return sm.muted
}

// Play mixes a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetCue(c, sm.cfg)
	if s == nil {
		return
	}
	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// PlayMusic starts or resumes the level loop
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicState = true
	if !sm.initialized {
		return
	}

	sm.lock()
	defer sm.unlock()
	if sm.music == nil {
		sm.musicGen = NewMusicGenerator(beep.SampleRate(sm.cfg.SampleRate))
		sm.music = &beep.Ctrl{
			Streamer: newVolume(sm.musicGen, sm.cfg.MusicVolume*sm.cfg.MasterVolume),
			Paused:   sm.muted,
		}
		sm.mixer.Add(sm.music)
		return
	}
	sm.music.Paused = sm.muted
}

// PauseMusic holds the loop at its current beat
func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicState = false
	if sm.music == nil {
		return
	}
	sm.lock()
	sm.music.Paused = true
	sm.unlock()
}

// StopMusic pauses the loop and rewinds it
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicState = false
	if sm.music == nil {
		return
	}
	sm.lock()
	sm.music.Paused = true
	sm.musicGen.Rewind()
	sm.unlock()
}

// MusicPlaying reports whether the loop is audible
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}
