// Package hd44780 drives an HD44780-style character LCD over its 8-bit
// parallel bus: RS, RW, Enable, and DB0..DB7.
package hd44780

import (
	"machine"
	"time"
)

// Controller commands used by this driver.
const (
	cmdFunctionSet8Bit2Line5x8    = 0x38
	cmdDisplayOnCursorOffBlinkOff = 0x0C
	cmdClear                      = 0x01
	cmdEntryModeIncrementNoShift  = 0x06
)

// Block is the activity glyph character code (a solid block in the
// controller's built-in CGROM).
const Block byte = 0xFF

const (
	setupDelay   = 5 * time.Microsecond
	enableHigh   = 1 * time.Microsecond
	commandDelay = 1000 * time.Microsecond
	clearDelay   = 530 * time.Microsecond
)

// Config names the 11 output pins of the parallel bus. Data holds
// DB0..DB7 in that order. RW may be left unset if it is hard-wired low
// on the board; when set, Configure drives it low once and never
// toggles it again, since this driver never reads from the controller.
type Config struct {
	RS     machine.Pin
	RW     machine.Pin
	Enable machine.Pin
	Data   [8]machine.Pin
}

// Device is a ready-to-use HD44780 8-bit parallel bus.
type Device struct {
	rs     machine.Pin
	rw     machine.Pin
	hasRW  bool
	enable machine.Pin
	data   [8]machine.Pin
}

// New returns a Device wired per cfg. It does not touch the pins: call
// Configure once they are ready for output.
func New(cfg Config) Device {
	return Device{
		rs:     cfg.RS,
		rw:     cfg.RW,
		hasRW:  cfg.RW != 0,
		enable: cfg.Enable,
		data:   cfg.Data,
	}
}

// Configure sets up the bus pins as outputs and runs the controller's
// power-on initialization sequence: function set, display control,
// clear, entry mode.
func (d *Device) Configure() {
	d.rs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.enable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for _, p := range d.data {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	if d.hasRW {
		d.rw.Configure(machine.PinConfig{Mode: machine.PinOutput})
		d.rw.Low()
	}

	d.Command(cmdFunctionSet8Bit2Line5x8)
	d.Command(cmdDisplayOnCursorOffBlinkOff)
	d.Command(cmdClear)
	d.Command(cmdEntryModeIncrementNoShift)
}

// Clear clears the display and waits out the controller's clear-command
// latency before returning.
func (d *Device) Clear() {
	d.Command(cmdClear)
}

// Command sends b as a controller command (RS low).
func (d *Device) Command(b byte) {
	d.rs.Low()
	d.strobe(b, b == cmdClear)
}

// WriteByte sends b as display data (RS high), e.g. one character or
// the Block activity glyph.
func (d *Device) WriteByte(b byte) {
	d.rs.High()
	d.strobe(b, false)
}

// WriteBytes sends each byte of buf as display data, in order.
func (d *Device) WriteBytes(buf []byte) {
	for _, b := range buf {
		d.WriteByte(b)
	}
}

// strobe latches b onto the data bus and pulses Enable, then waits out
// the execution latency: 530us after the Clear command, ~1000us
// otherwise (long enough to subsume every other command's and every
// data write's execution time).
func (d *Device) strobe(b byte, isClear bool) {
	d.setData(b)
	time.Sleep(setupDelay)
	d.enable.High()
	time.Sleep(enableHigh)
	d.enable.Low()

	if isClear {
		time.Sleep(clearDelay)
	} else {
		time.Sleep(commandDelay)
	}
}

func (d *Device) setData(b byte) {
	for i, p := range d.data {
		if b&(1<<uint(i)) != 0 {
			p.High()
		} else {
			p.Low()
		}
	}
}
