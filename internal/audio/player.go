// Package audio plays the start and game-over cues through the system
// speaker. Sound is optional: when no audio device is available the player
// stays silent and the game continues.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
)

// ErrUnavailable is returned when the speaker cannot be initialized.
var ErrUnavailable = errors.New("audio: unavailable")

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player holds decoded cues and plays them fire-and-forget.
type Player struct {
	mu      sync.Mutex
	cues    map[core.Cue]*beep.Buffer
	ready   bool
	playing atomic.Int32
	logger  *log.Logger
}

// NewPlayer prepares the cues described by cfg. Cue files that cannot be
// loaded are replaced by the built-in tones with a logged warning.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		cues:   make(map[core.Cue]*beep.Buffer),
		logger: logger,
	}
	p.cues[core.CueStart] = p.prepare(core.CueStart, cfg.StartCue, startJingle)
	p.cues[core.CueGameOver] = p.prepare(core.CueGameOver, cfg.GameOverCue, gameOverJingle)
	return p
}

func (p *Player) prepare(cue core.Cue, path string, fallback func() beep.Streamer) *beep.Buffer {
	if path != "" {
		buf, err := LoadWAV(path)
		if err == nil {
			return buf
		}
		p.logger.Warn("cannot load cue, using built-in tone", "cue", cue, "path", path, "error", err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(fallback())
	return buf
}

// Init opens the speaker. On failure the player stays silent and the error
// wraps ErrUnavailable.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	p.ready = true
	return nil
}

// Play starts cue and returns immediately. A player without a speaker
// silently ignores the call.
func (p *Player) Play(cue core.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.cues[cue]
	if !ok {
		return fmt.Errorf("audio: no sound for cue %v", cue)
	}
	if !p.ready {
		return nil
	}

	p.playing.Add(1)
	speaker.Play(beep.Seq(
		buf.Streamer(0, buf.Len()),
		beep.Callback(func() { p.playing.Add(-1) }),
	))
	return nil
}

// Playing returns the number of cues still sounding.
func (p *Player) Playing() int {
	return int(p.playing.Load())
}

// Close stops all sounds and releases the speaker. Safe to call repeatedly.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.playing.Store(0)
	p.ready = false
}

// LoadWAV decodes a WAV file into a buffer at the player's sample rate.
func LoadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	stream, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s contains no samples", path)
	}
	return buf, nil
}
