package monix

// Ack is the reply an observer gives for every element it is handed.
type Ack int8

const (
	// Continue signals that the element was accepted and more may follow.
	Continue Ack = iota
	// Stop signals that the observer is done and must not be called again.
	Stop
)

func (a Ack) String() string {
	if a == Stop {
		return "Stop"
	}
	return "Continue"
}
