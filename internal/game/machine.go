package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/words"
)

// Machine holds the pure transition functions of the game.
// Disallowed transitions return the session unchanged and no effects.
type Machine struct {
	Rules Rules
}

// Start begins a new session from Idle or GameOver. A positive timeLimit
// enables the countdown, in seconds.
func (m Machine) Start(s Session, timeLimit int) (Session, []Effect) {
	if s.Status != StatusIdle && s.Status != StatusOver {
		return s, nil
	}

	next := Session{
		Status:   StatusRunning,
		Target:   m.Rules.TargetWords,
		FlashSeq: s.FlashSeq,
		Timed:    timeLimit > 0,
		TimeLeft: timeLimit,
	}

	// The word is drawn last so a failing source can still stop the session cleanly.
	fx := []Effect{
		{Kind: EffectCancelFlashes},
		{Kind: EffectCue, Cue: core.CueStart},
		{Kind: EffectArmFall},
	}
	if next.Timed {
		fx = append(fx, Effect{Kind: EffectArmCountdown})
	}
	fx = append(fx, Effect{Kind: EffectDrawWord})
	return next, fx
}

// Pause freezes a running session.
func (m Machine) Pause(s Session) (Session, []Effect) {
	if s.Status != StatusRunning {
		return s, nil
	}
	s.Status = StatusPaused
	return s, []Effect{
		{Kind: EffectCancelFall},
		{Kind: EffectCancelCountdown},
		{Kind: EffectCancelFlashes},
	}
}

// Resume continues a paused session from where it stopped.
func (m Machine) Resume(s Session) (Session, []Effect) {
	if s.Status != StatusPaused {
		return s, nil
	}
	s.Status = StatusRunning

	fx := []Effect{{Kind: EffectArmFall}}
	if s.Timed {
		fx = append(fx, Effect{Kind: EffectArmCountdown})
	}
	if s.Delta != 0 {
		fx = append(fx, Effect{Kind: EffectFlash, Seq: s.FlashSeq})
	}
	return s, fx
}

// Stop ends a running or paused session.
func (m Machine) Stop(s Session) (Session, []Effect) {
	if s.Status != StatusRunning && s.Status != StatusPaused {
		return s, nil
	}
	s.Status = StatusOver
	s.Word = ""
	s.Position = 0
	s.Input = ""
	s.Delta = 0
	return s, []Effect{
		{Kind: EffectCancelFall},
		{Kind: EffectCancelCountdown},
		{Kind: EffectCancelFlashes},
		{Kind: EffectCue, Cue: core.CueGameOver},
	}
}

// Tick advances the falling word by one step. A word reaching the bottom of
// the lane is a miss: the score flashes negative and a new word is drawn.
func (m Machine) Tick(s Session) (Session, []Effect) {
	if !s.Playing() || s.Word == "" {
		return s, nil
	}

	s.Position += m.Rules.Step
	if s.Position < m.Rules.LaneHeight {
		return s, nil
	}

	s.Position = 0
	s.Input = ""
	s.Delta = -wordLen(s.Word)
	s.FlashSeq++
	return s, []Effect{
		{Kind: EffectFlash, Seq: s.FlashSeq},
		{Kind: EffectDrawWord},
	}
}

// Drawn installs a word produced by the word source. An error or an empty
// word ends the session.
func (m Machine) Drawn(s Session, word string, err error) (Session, []Effect) {
	if !s.Playing() {
		return s, nil
	}

	if err == nil && strings.TrimSpace(word) == "" {
		err = words.ErrEmptyWord
	}
	if err != nil {
		next, fx := m.Stop(s)
		return next, append(fx, Effect{
			Kind:   EffectNotice,
			Notice: Notice{Level: NoticeError, Text: fmt.Sprintf("Could not get a word: %v", err)},
		})
	}

	s.Word = word
	s.Position = 0
	s.Input = ""
	return s, nil
}

// Type evaluates the full contents of the input field after a keystroke.
func (m Machine) Type(s Session, raw string) (Session, []Effect) {
	if !s.Playing() || s.Word == "" {
		return s, nil
	}

	if err := m.Rules.ValidateInput(raw, s.Word); err != nil {
		s.Input = ""
		return s, []Effect{{
			Kind:   EffectNotice,
			Notice: Notice{Level: NoticeWarn, Text: fmt.Sprintf("Input cleared: %v", err)},
		}}
	}

	s.Input = raw
	if !strings.EqualFold(raw, s.Word) {
		return s, nil
	}

	points := wordLen(s.Word)
	s.Score += points
	s.WordsCompleted++
	s.Input = ""

	if s.WordsCompleted >= s.Target {
		// The last word's points stay on the game-over HUD until the next Start.
		s, fx := m.Stop(s)
		s.Delta = points
		return s, fx
	}

	s.Delta = points
	s.FlashSeq++
	return s, []Effect{
		{Kind: EffectFlash, Seq: s.FlashSeq},
		{Kind: EffectDrawWord},
	}
}

// ExpireFlash clears the score delta if seq still identifies the current flash.
func (m Machine) ExpireFlash(s Session, seq uint64) (Session, []Effect) {
	if !s.Playing() || s.FlashSeq != seq {
		return s, nil
	}
	s.Delta = 0
	return s, nil
}

// Countdown consumes one second of a timed session and ends it at zero.
func (m Machine) Countdown(s Session) (Session, []Effect) {
	if !s.Playing() || !s.Timed {
		return s, nil
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return s, nil
	}
	s.TimeLeft = 0
	return m.Stop(s)
}
