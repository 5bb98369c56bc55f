package usagestats

// #region noop

// Noop discards every counter and timing observation. It is the default
// Sink for tests and for cmd/convertdemo runs that don't care about
// telemetry.
type Noop struct{}

// NewNoop returns a Sink that discards everything it receives.
func NewNoop() Sink { return Noop{} }

func (Noop) IncrementCount(name string)               {}
func (Noop) IncrementCountBy(name string, delta int64) {}
func (Noop) UpdateTiming(name string, value int64)     {}

// #endregion noop
