package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typefall/internal/clock"
	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/words"
)

// CuePlayer plays lifecycle sounds. Play must not block.
type CuePlayer interface {
	Play(cue core.Cue) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithCues sets the sound player. Without it the game is silent.
func WithCues(p CuePlayer) Option {
	return func(c *Controller) {
		c.cues = p
	}
}

// WithLogger sets the logger for warnings and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds the time limit draw of timed sessions. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		if seed != 0 {
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// Controller runs one game: it applies Machine transitions and performs
// their effects. It owns every timer it arms; Close cancels all of them.
//
// A Controller is not safe for concurrent use. The Scheduler must deliver
// callbacks on the goroutine that calls the Controller's methods.
type Controller struct {
	machine Machine
	cfg     config.Config
	session Session
	notice  Notice

	words  words.Source
	sched  clock.Scheduler
	cues   CuePlayer
	logger *log.Logger
	rng    *rand.Rand

	fall      clock.Timer
	countdown clock.Timer
	flashes   map[uint64]clock.Timer
	closed    bool
}

// NewController creates an idle game using cfg's rules.
func NewController(cfg config.Config, src words.Source, sched clock.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		machine: Machine{Rules: RulesFromConfig(cfg)},
		cfg:     cfg,
		words:   src,
		sched:   sched,
		logger:  log.New(io.Discard),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		flashes: make(map[uint64]clock.Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the current game state.
func (c *Controller) Session() Session {
	return c.session
}

// Notice returns the banner message, if any.
func (c *Controller) Notice() Notice {
	return c.notice
}

// LaneHeight returns the lane height the session runs with.
func (c *Controller) LaneHeight() float64 {
	return c.machine.Rules.LaneHeight
}

// Start begins a new session. Allowed from Idle and GameOver.
func (c *Controller) Start() {
	if c.closed {
		return
	}
	c.notice = Notice{}
	c.apply(c.machine.Start(c.session, c.timeLimit()))
	if c.session.Playing() {
		c.logger.Info("session started", "target", c.session.Target, "time_limit", c.session.TimeLeft)
	}
}

// Pause freezes a running session.
func (c *Controller) Pause() {
	if c.closed {
		return
	}
	c.apply(c.machine.Pause(c.session))
}

// Resume continues a paused session.
func (c *Controller) Resume() {
	if c.closed {
		return
	}
	c.apply(c.machine.Resume(c.session))
}

// TogglePause pauses a running session or resumes a paused one.
func (c *Controller) TogglePause() {
	switch c.session.Status {
	case StatusRunning:
		c.Pause()
	case StatusPaused:
		c.Resume()
	}
}

// Stop ends a running or paused session.
func (c *Controller) Stop() {
	if c.closed {
		return
	}
	c.apply(c.machine.Stop(c.session))
}

// Type evaluates the current contents of the input field.
func (c *Controller) Type(raw string) {
	if c.closed {
		return
	}
	c.apply(c.machine.Type(c.session, raw))
}

// Dismiss hides the banner.
func (c *Controller) Dismiss() {
	c.notice = Notice{}
}

// Close cancels every timer. Callbacks that still arrive are ignored.
// Close is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.stopFall()
	c.stopCountdown()
	c.stopFlashes()
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

func (c *Controller) timeLimit() int {
	tl := c.cfg.Rules.TimeLimit
	if !tl.Enabled {
		return 0
	}
	return tl.MinSeconds + c.rng.Intn(tl.MaxSeconds-tl.MinSeconds+1)
}

// apply installs a transition result and performs its effects in order.
// Effects produced while performing are queued behind the remaining ones.
func (c *Controller) apply(next Session, fx []Effect) {
	prev := c.session.Status
	c.session = next

	for len(fx) > 0 {
		e := fx[0]
		fx = append(fx[1:], c.perform(e)...)
	}

	if prev != StatusOver && c.session.Status == StatusOver {
		c.logger.Info("session over", "score", c.session.Score, "words", c.session.WordsCompleted)
	}
}

func (c *Controller) perform(e Effect) []Effect {
	switch e.Kind {
	case EffectDrawWord:
		word, err := c.words.Word()
		if err != nil {
			c.logger.Error("word source failed", "error", err)
		}
		next, fx := c.machine.Drawn(c.session, word, err)
		c.session = next
		return fx

	case EffectArmFall:
		c.stopFall()
		c.fall = c.sched.Every(c.cfg.Timing.FallInterval, c.onFall)

	case EffectCancelFall:
		c.stopFall()

	case EffectArmCountdown:
		c.stopCountdown()
		c.countdown = c.sched.Every(time.Second, c.onSecond)

	case EffectCancelCountdown:
		c.stopCountdown()

	case EffectFlash:
		seq := e.Seq
		if t, ok := c.flashes[seq]; ok {
			t.Stop()
		}
		c.flashes[seq] = c.sched.AfterFunc(c.cfg.Timing.FlashDuration, func() {
			c.onFlashExpired(seq)
		})

	case EffectCancelFlashes:
		c.stopFlashes()

	case EffectCue:
		c.playCue(e.Cue)

	case EffectNotice:
		c.notice = e.Notice
		if e.Notice.Level == NoticeError {
			c.logger.Error(e.Notice.Text)
		} else {
			c.logger.Warn(e.Notice.Text)
		}
	}
	return nil
}

// playCue plays a sound best-effort. Failures become a warning banner.
func (c *Controller) playCue(cue core.Cue) {
	if c.cues == nil {
		return
	}
	if err := c.cues.Play(cue); err != nil {
		c.logger.Warn("cannot play cue", "cue", cue, "error", err)
		c.notice = Notice{Level: NoticeWarn, Text: "Sound unavailable: " + err.Error()}
	}
}

func (c *Controller) onFall() {
	if c.closed {
		return
	}
	c.apply(c.machine.Tick(c.session))
}

func (c *Controller) onSecond() {
	if c.closed {
		return
	}
	c.apply(c.machine.Countdown(c.session))
}

func (c *Controller) onFlashExpired(seq uint64) {
	if c.closed {
		return
	}
	delete(c.flashes, seq)
	c.apply(c.machine.ExpireFlash(c.session, seq))
}

func (c *Controller) stopFall() {
	if c.fall != nil {
		c.fall.Stop()
		c.fall = nil
	}
}

func (c *Controller) stopCountdown() {
	if c.countdown != nil {
		c.countdown.Stop()
		c.countdown = nil
	}
}

func (c *Controller) stopFlashes() {
	for seq, t := range c.flashes {
		t.Stop()
		delete(c.flashes, seq)
	}
}
