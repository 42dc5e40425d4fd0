package gameRecorder

import "errors"

var (
	ErrNilSource         = errors.New("observable source is nil")
	ErrUnknownObservable = errors.New("observable does not resolve on its source")
	ErrDuplicateSeries   = errors.New("series name already used in this group")
	ErrDuplicateGroup    = errors.New("recording group title already registered")
	ErrGroupSealed       = errors.New("bindings cannot change after the first tick")
	ErrNonMonotonicTime  = errors.New("tick time went backwards")
)
