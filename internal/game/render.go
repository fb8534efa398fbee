package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/typefall/internal/core"
)

// Lane colors
const (
	borderColor = core.ColorGray
	wordColor   = core.ColorBrightYellow
	typedColor  = core.ColorBrightGreen
	titleColor  = core.ColorBrightCyan
	dimColor    = core.ColorGray
)

const title = "TYPEFALL"

// RenderLane draws the lane and its falling word into dst, which it fills
// entirely. The logical laneHeight is scaled to the available rows.
func RenderLane(dst *core.Screen, s Session, laneHeight float64) {
	dst.Clear()

	box := core.NewRect(0, 0, dst.Width(), dst.Height())
	dst.DrawBox(box, borderColor)
	inner := box.Inner()
	if inner.W <= 0 || inner.H <= 0 {
		return
	}
	mid := inner.Y + inner.H/2

	switch s.Status {
	case StatusIdle:
		dst.DrawTextIn(inner, mid-1, title, titleColor)
		w := core.Min(utf8.RuneCountInString(title)+4, inner.W)
		dst.DrawHLine(inner.X+(inner.W-w)/2, mid, w, '─', dimColor)
		dst.DrawTextIn(inner, mid+1, "Press Enter to start", dimColor)

	case StatusRunning, StatusPaused:
		if s.Word != "" {
			drawWord(dst, inner, LaneRow(s.Position, laneHeight, inner.H)+inner.Y, s.Word, s.Input)
		}
		if s.Status == StatusPaused {
			dst.DrawTextIn(inner, mid, " PAUSED - Esc to resume ", titleColor)
		}

	case StatusOver:
		dst.DrawTextIn(inner, mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextIn(inner, mid, fmt.Sprintf("Final score: %d  |  Words: %d/%d", s.Score, s.WordsCompleted, s.Target), core.ColorWhite)
		dst.DrawTextIn(inner, mid+1, "Press Enter to play again", dimColor)
	}
}

// LaneRow maps a logical lane position to a row index in [0, rows).
func LaneRow(position, laneHeight float64, rows int) int {
	if rows <= 0 || laneHeight <= 0 {
		return 0
	}
	return core.Clamp(int(position/laneHeight*float64(rows)), 0, rows-1)
}

// drawWord draws word centered in r at row y. The part already typed
// correctly is highlighted.
func drawWord(dst *core.Screen, r core.Rect, y int, word, input string) {
	typed := 0
	if input != "" && strings.HasPrefix(strings.ToLower(word), strings.ToLower(input)) {
		typed = utf8.RuneCountInString(input)
	}

	n := utf8.RuneCountInString(word)
	x := r.X + core.Max((r.W-n)/2, 0)
	i := 0
	for _, ch := range word {
		color := wordColor
		if i < typed {
			color = typedColor
		}
		if r.Contains(x+i, y) {
			dst.SetColored(x+i, y, ch, color)
		}
		i++
	}
}
