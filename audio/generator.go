package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// envelope fades a streamer in over attack samples and exponentially out over the rest
type envelope struct {
	s      beep.Streamer
	pos    int
	attack int
	total  int
	gain   float64
}

func newEnvelope(s beep.Streamer, attack, total int, gain float64) *envelope {
	return &envelope{s: s, attack: attack, total: total, gain: gain}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain * math.Exp(-4*float64(e.pos)/float64(e.total))
		if e.pos < e.attack && e.attack > 0 {
			vol *= float64(e.pos) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

// noiseGenerator produces a deterministic crackle from a linear congruential sequence
type noiseGenerator struct {
	seed int64
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		v := float64(g.seed)/float64(0x7fffffff)*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error {
	return nil
}
