// Package unreliable injects synthetic failures into otherwise correct
// operations, so that clients are forced to cope with a backend that
// fails some fraction of the time.
package unreliable

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync/atomic"
)

// ErrSimulated is the injected fault. Callers cannot tell it apart from a
// genuine backend failure; that is the point.
var ErrSimulated = errors.New("simulated failure")

// ErrInvalidRate is returned when a failure rate falls outside [0, 1].
var ErrInvalidRate = errors.New("failure rate must be between 0 and 1")

// Injector fails a configured fraction of calls before the wrapped
// operation runs. Each call draws independently; there is no memory of
// past outcomes and no internal retry.
type Injector struct {
	// rate holds the failure probability as math.Float64bits, so it can
	// be re-tuned while requests are in flight.
	rate atomic.Uint64

	// randFloat returns a uniform value in [0, 1). Replaceable in tests.
	randFloat func() float64
}

// New creates an Injector with the given failure probability.
func New(rate float64) (*Injector, error) {
	in := &Injector{randFloat: rand.Float64}
	if err := in.SetRate(rate); err != nil {
		return nil, err
	}
	return in, nil
}

// Rate returns the current failure probability.
func (in *Injector) Rate() float64 {
	return math.Float64frombits(in.rate.Load())
}

// SetRate changes the failure probability for subsequent calls.
func (in *Injector) SetRate(rate float64) error {
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	in.rate.Store(math.Float64bits(rate))
	return nil
}

// Check performs one failure draw. It returns ErrSimulated with
// probability equal to the configured rate, and nil otherwise.
func (in *Injector) Check() error {
	if in.randFloat() < in.Rate() {
		return ErrSimulated
	}
	return nil
}

// Do decorates op with a failure draw. When the draw fails, op is never
// invoked and no side effects occur; otherwise op's result passes through
// unchanged.
func (in *Injector) Do(op func() error) error {
	if err := in.Check(); err != nil {
		return err
	}
	return op()
}
