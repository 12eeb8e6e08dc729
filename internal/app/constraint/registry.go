// Package constraint maps constraint ids to evaluators and implements the
// built-in ones. Evaluators are stateless: each evaluation recomputes from
// the full session event log, so re-running with a grown log never
// double-counts.
package constraint

import (
	"errors"

	"bountyverse/internal/domain/bounty"
)

const (
	IDEliminateAllTargets   = "EliminateAllTargets"
	IDEliminateByProjectile = "EliminateAllTargetsViaProjectile"
)

var ErrAlreadyRegistered = errors.New("constraint already registered")

// Context carries everything an evaluator may inspect: the contract under
// evaluation, a snapshot of the session events, the spawner's roster echo for
// this contract, and whether this is the authoritative end-of-session pass.
type Context struct {
	Contract   *bounty.Contract
	Events     []bounty.SessionEvent
	Roster     bounty.SquadRoster
	InPlay     bool
	FinalCheck bool
}

// Evaluator inspects the session and updates the contract's matching
// constraint rows. Implementations must be idempotent and must only set
// Violated during a final check.
type Evaluator interface {
	Evaluate(ctx *Context)
	Describe() string
}

type Factory func() Evaluator

// Registry owns the id→factory table. It is an explicit object handed to
// consumers; there is no process-wide instance.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry preloaded with the built-in evaluators.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	_ = r.Register(IDEliminateAllTargets, func() Evaluator { return eliminateAllTargets{} })
	_ = r.Register(IDEliminateByProjectile, func() Evaluator { return eliminateByProjectile{} })
	return r
}

// Register adds an evaluator factory. A duplicate id keeps the first
// registration and returns ErrAlreadyRegistered; it never overwrites.
func (r *Registry) Register(id string, f Factory) error {
	if _, ok := r.factories[id]; ok {
		return ErrAlreadyRegistered
	}
	r.factories[id] = f
	return nil
}

// Get constructs a fresh evaluator for the id.
func (r *Registry) Get(id string) (Evaluator, bool) {
	f, ok := r.factories[id]
	if !ok {
		return nil, false
	}
	return f(), true
}

func (r *Registry) Has(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// updateRows writes the evaluation verdict into every row carrying the id.
func updateRows(c *bounty.Contract, constraintID string, met, failed bool) {
	for i := range c.Constraints {
		if c.Constraints[i].ConstraintID != constraintID {
			continue
		}
		c.Constraints[i].Success = met
		c.Constraints[i].Violated = failed
	}
}

func hasRow(c *bounty.Contract, constraintID string) bool {
	for i := range c.Constraints {
		if c.Constraints[i].ConstraintID == constraintID {
			return true
		}
	}
	return false
}
