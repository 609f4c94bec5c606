package lambda

import "fmt"

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

// parseFactor parses a variable, an abstraction, or a parenthesized group.
func (p *parser) parseFactor() (Term, error) {
	tok := p.next()
	if tok == nil {
		return nil, fmt.Errorf("unexpected end of input")
	}
	switch tok.kind {
	case tokIdent:
		return Var{Name: tok.text}, nil
	case tokLambda:
		param := p.next()
		if param == nil || param.kind != tokIdent {
			return nil, fmt.Errorf("expected identifier after lambda")
		}
		dot := p.next()
		if dot == nil || dot.kind != tokDot {
			return nil, fmt.Errorf("expected '.' after lambda parameter")
		}
		body, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		return Abs{Param: param.text, Body: body}, nil
	case tokLParen:
		expr, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		if closing == nil || closing.kind != tokRParen {
			return nil, fmt.Errorf("expected ')'")
		}
		return expr, nil
	case tokRParen:
		return nil, fmt.Errorf("unexpected ')'")
	default:
		return nil, fmt.Errorf("unexpected token")
	}
}

// parseApplication parses a left-associative run of factors.
func (p *parser) parseApplication() (Term, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == nil {
			break
		}
		switch tok.kind {
		case tokIdent, tokLambda, tokLParen:
			arg, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			expr = App{Fn: expr, Arg: arg}
		default:
			return expr, nil
		}
	}
	return expr, nil
}

// Parse builds a Term from lambda-calculus source text. Input must be a
// single complete term; leftover tokens are an error.
func Parse(input string) (Term, error) {
	p := &parser{tokens: tokenize(input)}
	term, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	if p.peek() != nil {
		return nil, fmt.Errorf("unexpected ')'")
	}
	return term, nil
}
