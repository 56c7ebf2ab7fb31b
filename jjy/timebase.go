package jjy

// secondsPerDay is the modulus TimeBase.Clock is interpreted under.
const secondsPerDay = 86400

// renderBiasMs compensates for the average latency between the edge
// that stamps a TimeBase's SystemTime and the moment the rendered
// glyphs reach the display.
const renderBiasMs = 25

// TimeBase maps a monotonic millisecond timestamp to a seconds-of-day
// clock value: clock = Clock + (now - SystemTime) / 1000, interpreted
// modulo secondsPerDay.
type TimeBase struct {
	SystemTime uint64 // ms, monotonic
	Clock      uint32 // seconds of day at SystemTime
}

// At extrapolates the clock's seconds-of-day value at time nowMs,
// applying the renderer's latency-compensation bias.
func (tb TimeBase) At(nowMs uint64) uint32 {
	diffMs := nowMs - tb.SystemTime + renderBiasMs
	diffSec := uint32(diffMs / 1000)
	return (tb.Clock + diffSec) % secondsPerDay
}

// SplitHMS decomposes a seconds-of-day value into hour, minute, second.
func SplitHMS(secOfDay uint32) (hour, minute, second uint8) {
	secOfDay %= secondsPerDay
	hour = uint8(secOfDay / 3600)
	minute = uint8((secOfDay % 3600) / 60)
	second = uint8(secOfDay % 60)
	return
}
