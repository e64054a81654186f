// Package persistence keeps best times and player settings in a YAML file
package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// LevelCount is the number of best time slots
const LevelCount = 6

// Sentinel errors
var (
	ErrLevelRange = errors.New("level index out of range")
)

// Store is the persisted save data
// Values are strings so unknown keys from newer versions round-trip untouched
type Store struct {
	Version   string            `yaml:"version"`
	Variables map[string]string `yaml:"variables"`
	Settings  map[string]string `yaml:"settings"`

	mu sync.Mutex
}

// InitialVariables returns the progress defaults
func InitialVariables() map[string]string {
	v := map[string]string{"tutorialflag": "0"}
	for i := range LevelCount {
		v[bestTimeKey(i)] = "0"
	}
	for i := range 3 {
		v[fmt.Sprintf("unlockedhyper%d", i)] = "0"
		v[fmt.Sprintf("finishedhyper%d", i)] = "0"
	}
	return v
}

// InitialSettings returns the settings defaults
func InitialSettings() map[string]string {
	return map[string]string{
		"fullscreen":   "0",
		"soundenabled": "1",
		"vsync":        "0",
		"vcrash":       "0",
		"arcademode":   "0",
		"username":     "PLAYER",
		"usejoypad":    "1",
		"profile":      "0",
	}
}

// New returns a store holding initial values
func New(version string) *Store {
	return &Store{
		Version:   version,
		Variables: InitialVariables(),
		Settings:  InitialSettings(),
	}
}

// Load reads path; a missing file yields initial values
func Load(path, version string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(version), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save data: %w", err)
	}

	s := New(version)
	loaded := &Store{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parse save data %s: %w", path, err)
	}
	for k, v := range loaded.Variables {
		s.Variables[k] = v
	}
	for k, v := range loaded.Settings {
		s.Settings[k] = v
	}
	if loaded.Version != "" {
		s.Version = loaded.Version
	}
	return s, nil
}

// Save writes the store to path through a temporary file
func (s *Store) Save(path string) error {
	s.mu.Lock()
	data, err := yaml.Marshal(s)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save data: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace save data: %w", err)
	}
	return nil
}

// Variable returns a progress value
func (s *Store) Variable(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Variables[name]
	return v, ok
}

// SetVariable stores a progress value
func (s *Store) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Variables[name] = value
}

// Setting returns a player setting
func (s *Store) Setting(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Settings[name]
	return v, ok
}

// SetSetting stores a player setting
func (s *Store) SetSetting(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settings[name] = value
}

// SoundEnabled reads the soundenabled setting, defaulting to on
func (s *Store) SoundEnabled() bool {
	v, ok := s.Setting("soundenabled")
	return !ok || v != "0"
}

// SetSoundEnabled writes the soundenabled setting
func (s *Store) SetSoundEnabled(on bool) {
	v := "0"
	if on {
		v = "1"
	}
	s.SetSetting("soundenabled", v)
}

// BestTime returns the record for level, zero when unset or unparsable
func (s *Store) BestTime(level int) time.Duration {
	if CheckLevel(level) != nil {
		return 0
	}
	v, _ := s.Variable(bestTimeKey(level))
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// RecordTime stores d if it beats the level's record and reports whether it did
func (s *Store) RecordTime(level int, d time.Duration) bool {
	if CheckLevel(level) != nil {
		return false
	}
	if d.Milliseconds() <= s.BestTime(level).Milliseconds() {
		return false
	}
	s.SetVariable(bestTimeKey(level), strconv.FormatInt(d.Milliseconds(), 10))
	return true
}

// ClearRecords resets every best time
func (s *Store) ClearRecords() {
	for i := range LevelCount {
		s.SetVariable(bestTimeKey(i), "0")
	}
}

// CheckLevel validates a level index
func CheckLevel(level int) error {
	if level < 0 || level >= LevelCount {
		return fmt.Errorf("%w: %d", ErrLevelRange, level)
	}
	return nil
}

func bestTimeKey(level int) string {
	return "besttime" + strconv.Itoa(level)
}
