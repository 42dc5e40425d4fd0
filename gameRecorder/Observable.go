package gameRecorder

// Accessor reads one numeric observable from its owner. It must not mutate
// the owner.
type Accessor func() float64

// IObservableSource is the capability a model object exposes to be recorded:
// a lookup from observable name to accessor. Sources may stop exposing a
// name at any time; the recorder treats that as a configuration error.
type IObservableSource interface {
	Observable(name string) (Accessor, bool)
}

// ObservableMap is the usual IObservableSource implementation.
type ObservableMap map[string]Accessor

func (m ObservableMap) Observable(name string) (Accessor, bool) {
	fn, ok := m[name]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}
