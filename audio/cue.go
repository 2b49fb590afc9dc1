package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ant-colony/parameter"
)

// cueGain attenuates the sine below full scale
const cueGain = -0.7

// Cue plays a short tone each time food reaches the nest
// Plays before Initialize, or while muted, are dropped
type Cue struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	frequency   float64
	duration    time.Duration
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

func NewCue() *Cue {
	return &Cue{
		sampleRate: beep.SampleRate(parameter.CueSampleRate),
		frequency:  parameter.CueFrequency,
		duration:   parameter.CueDurationMs * time.Millisecond,
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending tones and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func (c *Cue) SetMuted(muted bool) { c.muted.Store(muted) }
func (c *Cue) IsMuted() bool       { return c.muted.Load() }

// Played counts tones actually queued on the speaker
func (c *Cue) Played() int64 { return c.played.Load() }

// Tone builds one cue streamer
func (c *Cue) Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(c.sampleRate, c.frequency)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(c.sampleRate.N(c.duration), sine),
		Gain:     cueGain,
	}, nil
}

// Play queues one tone; deliveries arriving in the same frame share it
func (c *Cue) Play() {
	if c.muted.Load() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}

	tone, err := c.Tone()
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	c.played.Add(1)
}
