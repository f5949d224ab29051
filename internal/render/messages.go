package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

const (
	msgCapacity   = 8
	msgLifetime   = 60  // frames a feedback line stays up
	msgLossLife   = 120 // the loss banner lingers longer
	msgLineHeight = 18
)

// Message is one timed feedback line.
type Message struct {
	Text string
	Born int // log clock when added
	Life int
}

// MessageLog is a ring buffer of feedback lines shown over the playfield.
// Lines age out on the log's own clock, so they keep fading after the run
// has stopped stepping.
type MessageLog struct {
	entries []Message
	head    int
	count   int
	clock   int
}

// NewMessageLog creates a message log with a fixed capacity.
func NewMessageLog() *MessageLog {
	return &MessageLog{entries: make([]Message, msgCapacity)}
}

// Add appends a line shown for life frames. Empty text is ignored.
func (ml *MessageLog) Add(msg string, life int) {
	if msg == "" {
		return
	}
	ml.entries[ml.head] = Message{Text: msg, Born: ml.clock, Life: life}
	ml.head = (ml.head + 1) % msgCapacity
	if ml.count < msgCapacity {
		ml.count++
	}
}

// AddEvent appends the feedback line for an event kind, if it has one.
func (ml *MessageLog) AddEvent(kind game.EventKind) {
	life := msgLifetime
	if kind == game.EventLost {
		life = msgLossLife
	}
	ml.Add(kind.Message(), life)
}

// Advance moves the log clock on by one frame.
func (ml *MessageLog) Advance() { ml.clock++ }

// Recent returns entries in chronological order (oldest first).
func (ml *MessageLog) Recent() []Message {
	result := make([]Message, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + msgCapacity) % msgCapacity
		result[i] = ml.entries[idx]
	}
	return result
}

// Active returns the entries still on screen, oldest first.
func (ml *MessageLog) Active() []Message {
	var out []Message
	for _, m := range ml.Recent() {
		if ml.clock-m.Born < m.Life {
			out = append(out, m)
		}
	}
	return out
}

// Draw renders the active lines centred on the screen, newest lowest,
// starting at the vertical middle.
func (ml *MessageLog) Draw(dst *ebiten.Image, face text.Face, screenW, screenH int) {
	active := ml.Active()
	if len(active) == 0 {
		return
	}
	y := float64(screenH) / 2
	for _, m := range active {
		w, _ := text.Measure(m.Text, face, msgLineHeight)
		x := (float64(screenW) - w) / 2
		vector.FillRect(dst, float32(x-6), float32(y-2), float32(w+12), msgLineHeight, color.RGBA{A: 140}, false)
		drawText(dst, m.Text, face, x, y, colWhite)
		y += msgLineHeight
	}
}
