package jjy

// busCapacity is the queue depth: the sender suspends, never drops,
// once it is full.
const busCapacity = 4

// Bus is the bounded single-producer/single-consumer queue of
// StatusUpdate values coupling the decoder/sampler to the renderer.
// A Go channel with a fixed buffer already has the right semantics:
// Send blocks once the buffer is full, Recv blocks once it is empty,
// and delivery is FIFO.
type Bus chan StatusUpdate

// NewBus returns a ready-to-use Bus.
func NewBus() Bus {
	return make(Bus, busCapacity)
}

// Send publishes an update, suspending the caller if the bus is full.
func (b Bus) Send(u StatusUpdate) {
	b <- u
}

// Recv waits for and returns the next update, suspending the caller if
// the bus is empty.
func (b Bus) Recv() StatusUpdate {
	return <-b
}
