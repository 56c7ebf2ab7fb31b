package jjy

// frameLen is the number of one-second symbols in a JJY frame.
const frameLen = 60

// frameBuffer is a fixed-size ordered sequence of frameLen symbols with a
// cursor marking the next write position. While recording is false,
// cursor is 0 and the contents are don't-care; while true, positions
// 0..cursor hold the symbols of the in-progress frame.
type frameBuffer struct {
	symbols   [frameLen]Symbol
	cursor    int
	recording bool
}

// reset returns the buffer to its initial, non-recording state.
func (b *frameBuffer) reset() {
	b.cursor = 0
	b.recording = false
}

// startRecording begins a new frame at cursor 0.
func (b *frameBuffer) startRecording() {
	b.recording = true
	b.cursor = 0
}

// store writes symbol at the current cursor and advances it, wrapping
// modulo frameLen.
func (b *frameBuffer) store(symbol Symbol) {
	b.symbols[b.cursor] = symbol
	b.cursor = (b.cursor + 1) % frameLen
}
