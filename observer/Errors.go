package observer

import "errors"

var (
	ErrNotStarted       = errors.New("orchestrator has not been started")
	ErrAlreadyStarted   = errors.New("orchestrator is already running")
	ErrNonMonotonicTime = errors.New("schedule time went backwards")
	ErrInvalidTimeScale = errors.New("time scale must be positive")
)
