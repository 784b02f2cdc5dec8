package pool

import (
	"errors"

	"github.com/katalvlaran/chemnet/chem"
)

// ErrBadPeriod indicates a non-positive feeder period.
var ErrBadPeriod = errors.New("pool: feeder period must be positive")

// Feeder replenishes food molecules on a fixed tick schedule.
type Feeder struct {
	food   []chem.Expression
	period int
}

// NewFeeder creates a Feeder replenishing the given food molecules
// every period ticks. Returns ErrBadPeriod for period < 1.
func NewFeeder(food []chem.Expression, period int) (*Feeder, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	f := &Feeder{
		food:   make([]chem.Expression, len(food)),
		period: period,
	}
	copy(f.food, food)

	return f, nil
}

// OnStep applies the replenishment policy after a simulation step.
// On every positive tick divisible by the period, each food molecule's
// atoms are removed from p (absent atoms are skipped) and the molecule
// itself is re-added. All other ticks are no-ops. Tick 0 never feeds.
func (f *Feeder) OnStep(p *Pool, ticks int) {
	if ticks <= 0 || ticks%f.period != 0 {
		return
	}
	for _, m := range f.food {
		for _, a := range m.Atoms() {
			p.Remove(a)
		}
		p.Add(m)
	}
}
