package jjy

// EdgeWaiter is the narrow slice of a GPIO external-interrupt line the
// sampler needs: block until the next falling edge, and block until the
// next rising edge. Concrete implementations wrap machine.Pin's
// interrupt callback with a channel (see cmd/jjyclock).
type EdgeWaiter interface {
	WaitFalling()
	WaitRising()
}

// Clock supplies a free-running millisecond timestamp.
type Clock interface {
	NowMillis() uint64
}

// Sampler waits on falling/rising edges of the JJY input, measures each
// pulse's high duration, classifies it, and reports receiver activity
// on Bus on every edge.
type Sampler struct {
	edge  EdgeWaiter
	clock Clock
	bus   Bus
	debug func(string)
}

// NewSampler builds a Sampler. debug may be nil to discard diagnostics.
func NewSampler(edge EdgeWaiter, clock Clock, bus Bus, debug func(string)) *Sampler {
	if debug == nil {
		debug = func(string) {}
	}
	return &Sampler{edge: edge, clock: clock, bus: bus, debug: debug}
}

// Next blocks for one full pulse (falling edge, then rising edge) and
// returns its classified symbol along with the timestamp of the
// leading (falling) edge. JJYStatus updates are published immediately
// after each edge and never dropped: if Bus is full, Next suspends.
func (s *Sampler) Next() (Symbol, uint64) {
	s.edge.WaitFalling()
	upAt := s.clock.NowMillis()
	s.bus.Send(NewJJYStatus(true))

	s.edge.WaitRising()
	downAt := s.clock.NowMillis()
	s.bus.Send(NewJJYStatus(false))

	elapsed := uint32(downAt - upAt)
	symbol := Classify(elapsed)
	s.debug(elapsedLine(elapsed, symbol))
	return symbol, upAt
}

// Run drives Next forever, feeding each classified pulse and its
// leading-edge timestamp to process. It never returns.
func (s *Sampler) Run(process func(symbol Symbol, upAtMs uint64)) {
	for {
		symbol, upAt := s.Next()
		process(symbol, upAt)
	}
}

// elapsedLine formats the "{ms} ms ({symbol})" diagnostic line.
func elapsedLine(elapsedMs uint32, symbol Symbol) string {
	return uintDigits(uint16(elapsedMs)) + " ms (" + symbol.String() + ")"
}
