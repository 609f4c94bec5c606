// Package lambda implements a small untyped lambda-calculus engine:
// parsing, capture-avoiding substitution, and single-step beta reduction.
package lambda

import "fmt"

// Term is a lambda-calculus AST node.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Var is a variable reference.
type Var struct {
	Name string
}

// Abs is a lambda abstraction λParam.Body.
type Abs struct {
	Param string
	Body  Term
}

// App is a left-associative application.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string {
	return v.Name
}

func (a Abs) String() string {
	return "λ" + a.Param + "." + a.Body.String()
}

// String parenthesizes a lambda in function position and any non-variable
// argument, so output re-parses to the same tree.
func (a App) String() string {
	left := a.Fn.String()
	if _, ok := a.Fn.(Abs); ok {
		left = "(" + left + ")"
	}
	right := a.Arg.String()
	if _, ok := a.Arg.(Var); !ok {
		right = "(" + right + ")"
	}
	return left + " " + right
}

// freeVars returns the set of free variable names in t.
func freeVars(t Term) map[string]struct{} {
	switch n := t.(type) {
	case Var:
		return map[string]struct{}{n.Name: {}}
	case Abs:
		set := freeVars(n.Body)
		delete(set, n.Param)
		return set
	case App:
		set := freeVars(n.Fn)
		for name := range freeVars(n.Arg) {
			set[name] = struct{}{}
		}
		return set
	}
	return nil
}

// freshName returns base if unused, otherwise base1, base2, ...
func freshName(used map[string]struct{}, base string) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := used[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

// substitute replaces free occurrences of variable in t with replacement,
// alpha-renaming binders that would capture a free variable of replacement.
func substitute(t Term, variable string, replacement Term) Term {
	switch n := t.(type) {
	case Var:
		if n.Name == variable {
			return replacement
		}
		return n
	case App:
		return App{
			Fn:  substitute(n.Fn, variable, replacement),
			Arg: substitute(n.Arg, variable, replacement),
		}
	case Abs:
		if n.Param == variable {
			return n
		}
		replFree := freeVars(replacement)
		if _, captures := replFree[n.Param]; captures {
			all := freeVars(n.Body)
			for name := range replFree {
				all[name] = struct{}{}
			}
			fresh := freshName(all, n.Param)
			renamed := substitute(n.Body, n.Param, Var{Name: fresh})
			return Abs{Param: fresh, Body: substitute(renamed, variable, replacement)}
		}
		return Abs{Param: n.Param, Body: substitute(n.Body, variable, replacement)}
	}
	return t
}
