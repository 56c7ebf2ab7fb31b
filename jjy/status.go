package jjy

// StatusKind discriminates the two StatusUpdate variants.
type StatusKind uint8

const (
	// JJYStatusUpdate reports instantaneous receiver activity.
	JJYStatusUpdate StatusKind = iota
	// TimeBaseUpdateKind carries a freshly decoded TimeBase.
	TimeBaseUpdateKind
)

// StatusUpdate is the message passed from the sampler and decoder to the
// renderer.
// It is a tagged union of a receiver-activity flag and a new TimeBase;
// exactly one of JJY/TimeBase is meaningful, selected by Kind.
type StatusUpdate struct {
	Kind     StatusKind
	JJY      bool
	TimeBase TimeBase
}

// NewJJYStatus builds a StatusUpdate reporting receiver carrier activity.
func NewJJYStatus(active bool) StatusUpdate {
	return StatusUpdate{Kind: JJYStatusUpdate, JJY: active}
}

// NewTimeBaseUpdate builds a StatusUpdate carrying a decoded TimeBase.
func NewTimeBaseUpdate(tb TimeBase) StatusUpdate {
	return StatusUpdate{Kind: TimeBaseUpdateKind, TimeBase: tb}
}
