package config

import (
	"fmt"

	"github.com/katalvlaran/chemnet/chem"
)

// Scenario is the top-level YAML structure driving one analysis run.
type Scenario struct {
	// Name labels the run in logs and reports.
	Name string `yaml:"name"`

	// Food lists the expressions assumed freely available.
	Food []string `yaml:"food"`

	// Reactions is the recorded reaction trace to replay into the graph.
	Reactions []ReactionDef `yaml:"reactions"`

	// Pool is the initial expression population for feeder projection.
	Pool []string `yaml:"pool"`

	// Ticks is how many simulation steps the feeder projection runs.
	Ticks int `yaml:"ticks"`

	Feeder   FeederConf   `yaml:"feeder"`
	Analysis AnalysisConf `yaml:"analysis"`
}

// ReactionDef is one trace entry. Type defaults to "reduce" and
// Substrate to the first reactive.
type ReactionDef struct {
	Type      string   `yaml:"type"`
	Reactives []string `yaml:"reactives"`
	Substrate int      `yaml:"substrate"`
	Products  []string `yaml:"products"`
}

// FeederConf configures the periodic food replenishment projection.
// Period 0 disables the projection.
type FeederConf struct {
	Period int `yaml:"period"`
}

// AnalysisConf holds graph-shaping knobs applied before the RAF solve.
type AnalysisConf struct {
	// MinOccurrences keeps only reactions observed at least this often
	// (defaults to 1: keep everything).
	MinOccurrences int `yaml:"min_occurrences"`

	// TrimMaxLen, when set, deletes expression nodes of size ≤ its
	// value before analysis. Nil disables trimming.
	TrimMaxLen *int `yaml:"trim_max_len"`
}

// FoodSet converts the scenario's food entries to expressions.
func (s *Scenario) FoodSet() []chem.Expression {
	return toExprs(s.Food)
}

// PoolSet converts the scenario's initial pool entries to expressions.
func (s *Scenario) PoolSet() []chem.Expression {
	return toExprs(s.Pool)
}

func toExprs(in []string) []chem.Expression {
	out := make([]chem.Expression, len(in))
	for i, t := range in {
		out[i] = chem.Expression(t)
	}

	return out
}

// Reaction converts d into a validated chem.Reaction.
func (d ReactionDef) Reaction() (chem.Reaction, error) {
	r := chem.Reaction{
		Type:      d.Type,
		Reactives: toExprs(d.Reactives),
		Products:  toExprs(d.Products),
		Substrate: d.Substrate,
	}
	if r.Type == "" {
		r.Type = chem.TypeReduce
	}
	if len(r.Reactives) == 0 {
		r.Substrate = chem.NoSubstrate
	}
	if err := r.Validate(); err != nil {
		return chem.Reaction{}, err
	}

	return r, nil
}

// Validate checks the scenario for structural problems.
func Validate(s *Scenario) error {
	if len(s.Reactions) == 0 {
		return fmt.Errorf("config: scenario %q has no reactions", s.Name)
	}
	for i, d := range s.Reactions {
		if _, err := d.Reaction(); err != nil {
			return fmt.Errorf("config: reaction #%d: %w", i, err)
		}
	}
	if s.Feeder.Period < 0 {
		return fmt.Errorf("config: feeder period must be non-negative, got %d", s.Feeder.Period)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("config: ticks must be non-negative, got %d", s.Ticks)
	}

	return nil
}
