// Command jjyclock receives the JJY longwave time signal on a single
// GPIO input and displays the decoded wall-clock time on an HD44780
// character LCD.
package main

import (
	"machine"
	"time"

	"github.com/yanorei32/ch32-jjy-clock/hd44780"
	"github.com/yanorei32/ch32-jjy-clock/jjy"
)

// Adjust these according to your board's wiring.
const (
	jjyInputPin = machine.GPIO2

	lcdRS     = machine.GPIO10
	lcdRW     = machine.GPIO11
	lcdEnable = machine.GPIO12
)

var lcdData = [8]machine.Pin{
	machine.GPIO13, machine.GPIO14, machine.GPIO15, machine.GPIO16,
	machine.GPIO17, machine.GPIO18, machine.GPIO19, machine.GPIO20,
}

func main() {
	lcd := hd44780.New(hd44780.Config{
		RS:     lcdRS,
		RW:     lcdRW,
		Enable: lcdEnable,
		Data:   lcdData,
	})
	lcd.Configure()

	bus := jjy.NewBus()
	clock := newMonotonicClock()
	edge := newPinEdgeWaiter(jjyInputPin)

	sampler := jjy.NewSampler(edge, clock, bus, debugPrintln)
	decoder := jjy.NewDecoder(bus, debugPrintln)

	go sampler.Run(decoder.Process)

	renderer := hd44780.NewRenderer(&lcd, clock)
	renderer.Run(bus) // never returns
}

func debugPrintln(line string) {
	println(line)
}

// monotonicClock implements jjy.Clock on top of time.Since, which
// TinyGo backs with a free-running hardware tick counter.
type monotonicClock struct {
	start time.Time
}

func newMonotonicClock() monotonicClock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) NowMillis() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// pinEdgeWaiter implements jjy.EdgeWaiter over a single external
// interrupt pin, demultiplexing the combined rising/falling callback
// TinyGo delivers into two channels the sampler can block on in turn.
type pinEdgeWaiter struct {
	falling chan struct{}
	rising  chan struct{}
}

func newPinEdgeWaiter(pin machine.Pin) *pinEdgeWaiter {
	w := &pinEdgeWaiter{
		falling: make(chan struct{}, 1),
		rising:  make(chan struct{}, 1),
	}

	pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	pin.SetInterrupt(machine.PinToggle, func(p machine.Pin) {
		var ch chan struct{}
		if p.Get() {
			ch = w.rising
		} else {
			ch = w.falling
		}
		select {
		case ch <- struct{}{}:
		default: // receiver hasn't caught up; coalesce, never drop on PIN level.
		}
	})

	return w
}

func (w *pinEdgeWaiter) WaitFalling() { <-w.falling }
func (w *pinEdgeWaiter) WaitRising()  { <-w.rising }
