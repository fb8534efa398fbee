package game

import "github.com/vovakirdan/typefall/internal/core"

// EffectKind identifies a side effect requested by a transition.
type EffectKind int

const (
	EffectNone            EffectKind = iota
	EffectDrawWord                   // Ask the word source for a word and feed it to Machine.Drawn
	EffectArmFall                    // Create a fresh fall ticker
	EffectCancelFall                 // Stop the fall ticker
	EffectArmCountdown               // Create a fresh one-second countdown ticker
	EffectCancelCountdown            // Stop the countdown ticker
	EffectFlash                      // Schedule Machine.ExpireFlash for Seq
	EffectCancelFlashes              // Stop every pending flash reset
	EffectCue                        // Play Cue, best-effort
	EffectNotice                     // Show Notice in the banner
)

// Effect is a side effect to perform after a transition, in order.
type Effect struct {
	Kind   EffectKind
	Seq    uint64
	Cue    core.Cue
	Notice Notice
}

// NoticeLevel is the severity of a banner message.
type NoticeLevel int

const (
	NoticeNone NoticeLevel = iota
	NoticeWarn
	NoticeError
)

// Notice is a dismissible banner message. The zero value means no banner.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Level == NoticeNone
}
