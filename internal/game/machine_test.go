package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
)

func testMachine() Machine {
	return Machine{Rules: RulesFromConfig(config.DefaultConfig())}
}

// running returns a session in play with the given word.
func running(m Machine, word string) Session {
	s, _ := m.Start(Session{}, 0)
	s, _ = m.Drawn(s, word, nil)
	return s
}

func hasEffect(fx []Effect, kind EffectKind) bool {
	for _, e := range fx {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestDisallowedTransitionsAreNoOps(t *testing.T) {
	m := testMachine()
	idle := Session{}
	over := Session{Status: StatusOver, Score: 7}
	run := running(m, "Wand")
	paused, _ := m.Pause(run)

	tests := []struct {
		name string
		fn   func(Session) (Session, []Effect)
		in   Session
	}{
		{"pause idle", m.Pause, idle},
		{"pause paused", m.Pause, paused},
		{"pause over", m.Pause, over},
		{"resume idle", m.Resume, idle},
		{"resume running", m.Resume, run},
		{"resume over", m.Resume, over},
		{"stop idle", m.Stop, idle},
		{"stop over", m.Stop, over},
		{"start running", func(s Session) (Session, []Effect) { return m.Start(s, 0) }, run},
		{"start paused", func(s Session) (Session, []Effect) { return m.Start(s, 0) }, paused},
		{"tick paused", m.Tick, paused},
		{"tick over", m.Tick, over},
		{"type paused", func(s Session) (Session, []Effect) { return m.Type(s, "Wand") }, paused},
		{"countdown untimed", m.Countdown, run},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fx := tt.fn(tt.in)
			if got != tt.in {
				t.Errorf("session changed: %+v -> %+v", tt.in, got)
			}
			if len(fx) != 0 {
				t.Errorf("expected no effects, got %v", fx)
			}
		})
	}
}

func TestStartResetsSession(t *testing.T) {
	m := testMachine()
	prev := Session{Status: StatusOver, Score: 30, WordsCompleted: 10, Input: "x", FlashSeq: 5}

	s, fx := m.Start(prev, 0)
	if s.Status != StatusRunning || s.Score != 0 || s.WordsCompleted != 0 || s.Input != "" {
		t.Errorf("Start() = %+v, expected fresh running session", s)
	}
	if s.Target != 10 {
		t.Errorf("Target = %d, expected 10", s.Target)
	}
	if s.FlashSeq != 5 {
		t.Error("FlashSeq must survive restarts so stale flash resets stay stale")
	}
	if fx[len(fx)-1].Kind != EffectDrawWord {
		t.Error("word must be drawn after the other start effects")
	}
	if !hasEffect(fx, EffectArmFall) || hasEffect(fx, EffectArmCountdown) {
		t.Errorf("unexpected start effects: %v", fx)
	}

	s, fx = m.Start(Session{}, 30)
	if !s.Timed || s.TimeLeft != 30 || !hasEffect(fx, EffectArmCountdown) {
		t.Errorf("timed start = %+v, %v", s, fx)
	}
}

func TestTickAdvancesAndMisses(t *testing.T) {
	m := Machine{Rules: Rules{LaneHeight: 3, Step: 1, TargetWords: 10, MaxInputFactor: 2}}
	s := running(m, "Spell")
	s.Input = "Sp"

	s, fx := m.Tick(s)
	if s.Position != 1 || len(fx) != 0 {
		t.Fatalf("after one tick: pos=%v fx=%v", s.Position, fx)
	}
	s, _ = m.Tick(s)
	s, fx = m.Tick(s)

	if s.Position != 0 {
		t.Errorf("Position = %v, expected reset to 0", s.Position)
	}
	if s.Delta != -5 {
		t.Errorf("Delta = %d, expected -5", s.Delta)
	}
	if s.Score != 0 || s.WordsCompleted != 0 {
		t.Errorf("miss changed score/completed: %+v", s)
	}
	if s.Input != "" {
		t.Error("miss should clear the input")
	}
	if !hasEffect(fx, EffectFlash) || !hasEffect(fx, EffectDrawWord) {
		t.Errorf("miss effects = %v", fx)
	}
}

func TestTypeMatch(t *testing.T) {
	m := testMachine()
	s := running(m, "Harry Potter")

	s, fx := m.Type(s, "harry")
	if s.Input != "harry" || len(fx) != 0 {
		t.Fatalf("partial input: %+v %v", s, fx)
	}

	s, fx = m.Type(s, "HARRY POTTER")
	if s.Score != 12 {
		t.Errorf("Score = %d, expected 12 (spaces count)", s.Score)
	}
	if s.Delta != 12 || s.WordsCompleted != 1 || s.Input != "" {
		t.Errorf("after match: %+v", s)
	}
	if !hasEffect(fx, EffectDrawWord) || !hasEffect(fx, EffectFlash) {
		t.Errorf("match effects = %v", fx)
	}
}

func TestTypeFinalWordEndsGame(t *testing.T) {
	m := Machine{Rules: Rules{LaneHeight: 400, Step: 1, TargetWords: 1, MaxInputFactor: 2}}
	s := running(m, "Wand")

	s, fx := m.Type(s, "wand")
	if s.Status != StatusOver {
		t.Fatalf("Status = %v, expected game over", s.Status)
	}
	if s.Score != 4 || s.WordsCompleted != 1 || s.Word != "" {
		t.Errorf("final session = %+v", s)
	}
	if s.Delta != 4 {
		t.Errorf("Delta = %d, expected the final word's +4 to stay visible", s.Delta)
	}
	if hasEffect(fx, EffectFlash) {
		t.Error("no flash timer may be armed after game over")
	}

	next, _ := m.Start(s, 0)
	if next.Delta != 0 {
		t.Errorf("Delta = %d after restart, expected 0", next.Delta)
	}
	if hasEffect(fx, EffectDrawWord) {
		t.Error("no word may be drawn after the target is reached")
	}
	found := false
	for _, e := range fx {
		if e.Kind == EffectCue && e.Cue == core.CueGameOver {
			found = true
		}
	}
	if !found {
		t.Error("expected game over cue")
	}
}

func TestTypeValidation(t *testing.T) {
	m := testMachine()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"too long", "wandwandw", ErrInputTooLong},
		{"bad char", "wa$", ErrInputCharset},
		{"digit ok", "w4", nil},
		{"punctuation ok", "w'-", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Rules.ValidateInput(tt.raw, "Wand"); !errors.Is(err, tt.want) {
				t.Errorf("ValidateInput(%q) = %v, expected %v", tt.raw, err, tt.want)
			}

			s := running(m, "Wand")
			s.Input = "wa"
			got, fx := m.Type(s, tt.raw)
			if tt.want == nil {
				if got.Input != tt.raw || len(fx) != 0 {
					t.Errorf("valid input rejected: %+v %v", got, fx)
				}
				return
			}
			if got.Input != "" || got.Score != 0 {
				t.Errorf("invalid input should clear the buffer only: %+v", got)
			}
			if len(fx) != 1 || fx[0].Notice.Level != NoticeWarn {
				t.Errorf("expected one warning notice, got %v", fx)
			}
		})
	}
}

func TestDrawnFailureStops(t *testing.T) {
	m := testMachine()
	s, _ := m.Start(Session{}, 0)

	for _, tc := range []struct {
		name string
		word string
		err  error
	}{
		{"error", "", errors.New("boom")},
		{"empty", "", nil},
		{"blank", "  ", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, fx := m.Drawn(s, tc.word, tc.err)
			if got.Status != StatusOver {
				t.Errorf("Status = %v, expected game over", got.Status)
			}
			last := fx[len(fx)-1]
			if last.Kind != EffectNotice || last.Notice.Level != NoticeError {
				t.Errorf("expected trailing error notice, got %v", fx)
			}
		})
	}

	got, _ := m.Drawn(s, "", nil)
	if got.Word != "" || got.Position != 0 {
		t.Error("failed draw must not install a word")
	}
	if _, fx := m.Drawn(s, "", nil); !hasEffect(fx, EffectCue) {
		t.Error("forced stop should play the game over cue")
	}
}

func TestExpireFlashIgnoresStaleSeq(t *testing.T) {
	m := testMachine()
	s := running(m, "Wand")
	s.Delta = 4
	s.FlashSeq = 2

	got, _ := m.ExpireFlash(s, 1)
	if got.Delta != 4 {
		t.Error("stale flash reset cleared a newer delta")
	}
	got, _ = m.ExpireFlash(s, 2)
	if got.Delta != 0 {
		t.Error("current flash reset did not clear the delta")
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	m := testMachine()
	s := running(m, "Wand")
	s.Position = 123
	s.Score = 9
	s.WordsCompleted = 2
	s.Delta = -4

	p, fx := m.Pause(s)
	if !hasEffect(fx, EffectCancelFall) || !hasEffect(fx, EffectCancelFlashes) {
		t.Errorf("pause effects = %v", fx)
	}
	r, fx := m.Resume(p)
	if r != s {
		t.Errorf("pause+resume changed session: %+v -> %+v", s, r)
	}
	if !hasEffect(fx, EffectArmFall) || !hasEffect(fx, EffectFlash) {
		t.Errorf("resume effects = %v, expected fall and pending flash re-armed", fx)
	}
}

func TestCountdown(t *testing.T) {
	m := testMachine()
	s, _ := m.Start(Session{}, 2)
	s, _ = m.Drawn(s, "Wand", nil)

	s, _ = m.Countdown(s)
	if s.TimeLeft != 1 || s.Status != StatusRunning {
		t.Fatalf("after 1s: %+v", s)
	}
	s, fx := m.Countdown(s)
	if s.TimeLeft != 0 || s.Status != StatusOver {
		t.Errorf("after 2s: %+v", s)
	}
	if !hasEffect(fx, EffectCancelFall) {
		t.Error("countdown expiry should cancel the fall timer")
	}
}
