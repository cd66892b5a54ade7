package monix

import "go.uber.org/zap"

// A Scheduler is the collaborator that streams report otherwise
// unhandled failures to. The core needs nothing else from an execution
// context; running work somewhere is the caller's business.
type Scheduler interface {
	ReportFailure(err error)
}

type logScheduler struct {
	log *zap.Logger
}

// NewScheduler builds a scheduler that logs reported failures. A nil
// logger falls back to the process global zap logger.
func NewScheduler(log *zap.Logger) Scheduler {
	if log == nil {
		log = zap.L()
	}
	return logScheduler{log: log}
}

func (s logScheduler) ReportFailure(err error) {
	s.log.Error("unhandled failure in stream", zap.Error(err))
}

// DefaultScheduler reports through the global zap logger.
func DefaultScheduler() Scheduler {
	return NewScheduler(nil)
}
