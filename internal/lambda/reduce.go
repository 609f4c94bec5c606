package lambda

// reduceOnce performs at most one beta contraction, leftmost-outermost:
// a redex at the head of an application wins, then the function side, then
// the argument side, then under a binder.
func reduceOnce(t Term) (Term, bool) {
	switch n := t.(type) {
	case App:
		if abs, ok := n.Fn.(Abs); ok {
			return substitute(abs.Body, abs.Param, n.Arg), true
		}
		if fn, reduced := reduceOnce(n.Fn); reduced {
			return App{Fn: fn, Arg: n.Arg}, true
		}
		if arg, reduced := reduceOnce(n.Arg); reduced {
			return App{Fn: n.Fn, Arg: arg}, true
		}
		return n, false
	case Abs:
		if body, reduced := reduceOnce(n.Body); reduced {
			return Abs{Param: n.Param, Body: body}, true
		}
		return n, false
	}
	return t, false
}

// Engine is the production reduction oracle: parse, contract at most one
// redex, print.
type Engine struct{}

// NewEngine returns a reduction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Reduce applies at most one beta-reduction step to expr and returns the
// resulting expression text. When no redex exists the input is returned
// byte-for-byte unchanged. Unparsable input returns an error.
func (e *Engine) Reduce(expr string) (string, error) {
	term, err := Parse(expr)
	if err != nil {
		return "", err
	}
	reduced, ok := reduceOnce(term)
	if !ok {
		return expr, nil
	}
	return reduced.String(), nil
}
