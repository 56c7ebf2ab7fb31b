package jjy

// decodeCursor is the buffer cursor at which a frame's minute/hour/day
// prefix is complete and a decode attempt is made, mid-frame, so the
// renderer can resynchronize without waiting for the remaining
// (unconsumed) positions of the frame.
const decodeCursor = 38

// Decoder consumes a stream of classified symbols and their leading-edge
// timestamps, aligns to frame start on two consecutive Markers, and on
// a successful BCD+parity decode of the minute/hour prefix publishes a
// TimeBase on Bus.
type Decoder struct {
	buffer           frameBuffer
	previousIsMarker bool
	bus              Bus
	debug            func(string)
}

// NewDecoder returns a Decoder in its initial (non-recording) state,
// publishing TimeBaseUpdates on bus. debug may be nil to discard
// diagnostics.
func NewDecoder(bus Bus, debug func(string)) *Decoder {
	if debug == nil {
		debug = func(string) {}
	}
	return &Decoder{bus: bus, debug: debug}
}

// Process feeds one classified pulse and the timestamp (ms) of its
// leading (falling) edge into the decoder.
func (d *Decoder) Process(symbol Symbol, upAtMs uint64) {
	if symbol == Unknown {
		d.buffer.reset()
		d.debug("ABORT! Unknown width is comming")
		return
	}

	if symbol == Marker {
		if d.previousIsMarker {
			d.buffer.startRecording()
			d.debug("Start Bit Detected!")
		}
		d.previousIsMarker = true
	} else {
		d.previousIsMarker = false
	}

	if !d.buffer.recording {
		return
	}

	if d.buffer.cursor == decodeCursor {
		minute, hour, day, ok := decodeFrame(&d.buffer.symbols)
		if !ok {
			d.buffer.reset()
			return
		}
		tb := TimeBase{
			SystemTime: upAtMs,
			Clock:      uint32(minute)*60 + uint32(hour)*3600 + decodeCursor,
		}
		d.bus.Send(NewTimeBaseUpdate(tb))
		d.debug(hmLine(hour, minute, day))
	}

	d.buffer.store(symbol)
}

// decodeFrame decodes the minute, hour, and day-of-year fields from the
// first decodeCursor positions of a frame buffer, verifying the even
// parity bits at positions 36 (hour) and 37 (minute). Positions not
// named in the weight tables are ignored.
func decodeFrame(buf *[frameLen]Symbol) (minute, hour, day uint16, ok bool) {
	minuteBits := []weightedPos{
		{1, 40}, {2, 20}, {3, 10}, {5, 8}, {6, 4}, {7, 2}, {8, 1},
	}
	hourBits := []weightedPos{
		{12, 20}, {13, 10}, {15, 8}, {16, 4}, {17, 2}, {18, 1},
	}
	dayBits := []weightedPos{
		{22, 200}, {23, 100}, {25, 80}, {26, 40}, {27, 20}, {28, 10},
		{30, 8}, {31, 4}, {32, 2}, {33, 1},
	}

	minuteVal, minuteParity, ok := sumWeighted(buf, minuteBits)
	if !ok {
		return 0, 0, 0, false
	}
	hourVal, hourParity, ok := sumWeighted(buf, hourBits)
	if !ok {
		return 0, 0, 0, false
	}
	dayVal, _, ok := sumWeighted(buf, dayBits)
	if !ok {
		return 0, 0, 0, false
	}

	minuteParityBit, ok := buf[37].ToBit()
	if !ok || minuteParityBit != minuteParity {
		return 0, 0, 0, false
	}
	hourParityBit, ok := buf[36].ToBit()
	if !ok || hourParityBit != hourParity {
		return 0, 0, 0, false
	}

	return minuteVal, hourVal, dayVal, true
}

// weightedPos pairs a buffer position with the BCD weight its bit
// contributes when set.
type weightedPos struct {
	pos    int
	weight uint16
}

// sumWeighted sums the weights of the positions whose bit is set,
// and returns the even parity (XOR) of those bits. ok is false if any
// named position does not hold a valid Short/Long bit.
func sumWeighted(buf *[frameLen]Symbol, positions []weightedPos) (sum uint16, parity bool, ok bool) {
	for _, wp := range positions {
		bit, valid := buf[wp.pos].ToBit()
		if !valid {
			return 0, false, false
		}
		if bit {
			sum += wp.weight
			parity = !parity
		}
	}
	return sum, parity, true
}

// hmLine formats the "{HH}:{MM} (day: {D})" diagnostic line.
func hmLine(hour, minute, day uint16) string {
	return uintDigits(hour) + ":" + uintDigits(minute) + " (day: " + uintDigits(day) + ")"
}

// uintDigits renders a small non-negative integer in decimal without
// pulling in strconv/fmt, matching the println-only diagnostics used
// throughout this firmware.
func uintDigits(v uint16) string {
	if v == 0 {
		return "0"
	}
	var digits [5]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return string(digits[i:])
}
