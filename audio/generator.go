package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hexagon/parameter"
)

// bassLine is the root of each beat of the four-bar loop
var bassLine = []float64{55, 55, 65.41, 49}

// MusicGenerator is an endless kick and bass loop for the level
type MusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int
	kickLen  int
	barBeats int
}

// NewMusicGenerator creates a music generator at sr
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:       sr,
		beat:     sr.N(parameter.MusicBeatPeriod),
		kickLen:  sr.N(parameter.MusicKickLength),
		barBeats: 4,
	}
}

// Rewind restarts the loop from the first beat
func (g *MusicGenerator) Rewind() {
	g.pos = 0
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		beatIdx := (g.pos / g.beat) % (g.barBeats * len(bassLine))
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1 - float64(beatPos)/float64(g.kickLen)
			kick = 0.5 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		root := bassLine[beatIdx/g.barBeats]
		// Off-beat pulse on the octave
		bass := 0.2 * math.Sin(2*math.Pi*root*t)
		if beatPos > g.beat/2 {
			bass += 0.1 * math.Sin(2*math.Pi*root*2*t)
		}

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
