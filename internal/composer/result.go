package composer

// Result is the verdict of a processing stage for one key event.
type Result uint8

const (
	// Deferred indicates the stage has no opinion; the event passes to
	// the next stage, or to the host's default handling after the last.
	Deferred Result = iota
	// Accepted indicates the event was consumed and fully handled.
	Accepted
	// Rejected indicates the event is punted back to the host
	// unprocessed, to be delivered as-is.
	Rejected
)

// String returns a string representation of the result.
func (r Result) String() string {
	switch r {
	case Deferred:
		return "deferred"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
