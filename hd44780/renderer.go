package hd44780

import (
	"github.com/yanorei32/ch32-jjy-clock/jjy"
)

// textWidth is the number of character positions the clock text (or
// "Sync") occupies before the trailing activity glyph.
const textWidth = 40

// lineWidth is textWidth plus the one activity glyph written after it.
const lineWidth = textWidth + 1

// Renderer owns the LCD bus exclusively and redraws it on every
// StatusUpdate: the most recent TimeBase (or "Sync" until one is
// known) followed by a receiver-activity glyph.
type Renderer struct {
	lcd       *Device
	clock     jjy.Clock
	timeBase  *jjy.TimeBase
	jjyStatus bool
}

// NewRenderer returns a Renderer with no TimeBase known yet and the
// receiver reported inactive.
func NewRenderer(lcd *Device, clock jjy.Clock) *Renderer {
	return &Renderer{lcd: lcd, clock: clock}
}

// Run drains bus forever, applying and redrawing on every update. It
// never returns.
func (r *Renderer) Run(bus jjy.Bus) {
	for {
		r.Apply(bus.Recv())
	}
}

// Apply updates the renderer's state from one StatusUpdate and
// unconditionally redraws the display.
func (r *Renderer) Apply(u jjy.StatusUpdate) {
	switch u.Kind {
	case jjy.JJYStatusUpdate:
		r.jjyStatus = u.JJY
	case jjy.TimeBaseUpdateKind:
		tb := u.TimeBase
		r.timeBase = &tb
	}
	r.redraw()
}

func (r *Renderer) redraw() {
	r.lcd.Clear()
	r.lcd.WriteBytes(RenderLine(r.timeBase, r.jjyStatus, r.clock))
}

// RenderLine builds the lineWidth-byte display buffer for a given
// TimeBase (nil if none has been decoded yet), receiver activity flag,
// and clock source. It is pure and hardware-free so it can be unit
// tested without an LCD attached.
func RenderLine(tb *jjy.TimeBase, jjyStatus bool, clock jjy.Clock) []byte {
	buf := make([]byte, lineWidth)
	for i := range buf {
		buf[i] = ' '
	}

	text := syncText(tb, clock)
	copy(buf, text)

	if jjyStatus {
		buf[textWidth] = Block
	}
	return buf
}

func syncText(tb *jjy.TimeBase, clock jjy.Clock) string {
	if tb == nil {
		return "Sync"
	}
	hour, minute, second := jjy.SplitHMS(tb.At(clock.NowMillis()))
	return twoDigits(hour) + ":" + twoDigits(minute) + ":" + twoDigits(second)
}

// twoDigits renders v (0..99) as two zero-padded decimal ASCII digits.
func twoDigits(v uint8) string {
	return string([]byte{'0' + v/10, '0' + v%10})
}
