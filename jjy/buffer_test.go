package jjy

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFrameBufferLifecycle(t *testing.T) {
	c := qt.New(t)

	var b frameBuffer
	c.Assert(b.recording, qt.IsFalse)
	c.Assert(b.cursor, qt.Equals, 0)

	b.startRecording()
	c.Assert(b.recording, qt.IsTrue)
	c.Assert(b.cursor, qt.Equals, 0)

	b.store(Marker)
	b.store(Short)
	c.Assert(b.cursor, qt.Equals, 2)
	c.Assert(b.symbols[0], qt.Equals, Marker)
	c.Assert(b.symbols[1], qt.Equals, Short)

	b.reset()
	c.Assert(b.recording, qt.IsFalse)
	c.Assert(b.cursor, qt.Equals, 0)
}

func TestFrameBufferCursorWraps(t *testing.T) {
	c := qt.New(t)

	var b frameBuffer
	b.startRecording()
	for i := 0; i < frameLen; i++ {
		b.store(Short)
	}
	c.Assert(b.cursor, qt.Equals, 0, qt.Commentf("cursor must wrap modulo frameLen"))
}
