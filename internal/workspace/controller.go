package workspace

import (
	"fmt"

	"go.uber.org/zap"
)

// Oracle performs at most one beta-reduction step on an expression string.
// It must be deterministic and return its input byte-for-byte unchanged
// when no redex exists.
type Oracle interface {
	Reduce(expr string) (string, error)
}

// OutcomeKind classifies the result of one reduction attempt.
type OutcomeKind int

const (
	// NoProgress means the attempt changed nothing; informational, not an
	// error.
	NoProgress OutcomeKind = iota
	// Progressed means a new current expression was produced.
	Progressed
)

// Outcome is the result of a successful reduction attempt.
type Outcome struct {
	Kind OutcomeKind
	From string
	To   string
}

// Controller composes name expansion and the oracle into one reduction
// attempt. It never mutates workspace state itself; callers commit a
// Progressed outcome.
type Controller struct {
	oracle Oracle
	logger *zap.Logger
}

// NewController wires the oracle.
func NewController(oracle Oracle, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{oracle: oracle, logger: logger}
}

// Step expands library names in current, asks the oracle for one reduction
// and compares the candidate against the original, unexpanded text. The
// current expression and the history stay in user-visible name-using form,
// so the comparison is deliberately against the raw input: if a
// substitution alone changed the text and the oracle found nothing to
// reduce, the expanded form is still committed as progress. An oracle
// failure returns an error and no state change anywhere.
func (c *Controller) Step(current string, lib *Library) (Outcome, error) {
	expanded := Expand(current, lib)
	candidate, err := c.oracle.Reduce(expanded)
	if err != nil {
		c.logger.Warn("reduction failed", zap.String("expr", expanded), zap.Error(err))
		return Outcome{}, fmt.Errorf("reduce: %w", err)
	}
	if candidate == current {
		c.logger.Debug("no progress", zap.String("expr", current))
		return Outcome{Kind: NoProgress, From: current, To: candidate}, nil
	}
	c.logger.Debug("reduced", zap.String("from", current), zap.String("to", candidate))
	return Outcome{Kind: Progressed, From: current, To: candidate}, nil
}
