package metrics

import "errors"

// Configuration errors. These are fatal to a run and are never retried.
var (
	ErrInvalidDecay       = errors.New("decay factor must be in [0, 1)")
	ErrInvalidBucketCount = errors.New("bucket count must be positive")
	ErrInvalidDomain      = errors.New("domain max must be positive and finite")
	ErrNegativeWeight     = errors.New("observation weight must be non-negative")
	ErrInvalidCohortSize  = errors.New("cohort size must be positive")
	ErrDuplicateTrack     = errors.New("cohort track already registered")
	ErrBufferTooSmall     = errors.New("output buffer shorter than cohort count")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrEmptyCurve         = errors.New("reference curve needs at least one point")
	ErrBaselineMismatch   = errors.New("baseline length does not match cohort count")
)
