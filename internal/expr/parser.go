package expr

import (
	"fmt"

	"github.com/katahiromz/tristate"
)

// Parser is a recursive-descent parser over the token stream of one source.
//
//	expr    := and ( ("or" | "||") and )*
//	and     := unary ( ("and" | "&&") unary )*
//	unary   := ("not" | "!") unary | primary
//	primary := "true" | "false" | "unknown" | "(" expr ")"
type Parser struct {
	toks []token
	pos  int
}

// NewParser tokenizes src and returns a parser positioned at its start.
func NewParser(src string) (*Parser, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks}, nil
}

// Parse builds the expression tree for src.
func Parse(src string) (Node, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Eval parses and evaluates src.
func Eval(src string) (tristate.Value, error) {
	n, err := Parse(src)
	if err != nil {
		return tristate.Unknown, err
	}
	return n.Eval(), nil
}

// Parse consumes the whole token stream as one expression.
func (p *Parser) Parse() (Node, error) {
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.unexpected(tok)
	}
	return n, nil
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &OrExpr{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &AndExpr{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	if p.peek().kind == tokNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &NotExpr{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokLiteral:
		v, ok := tristate.FromString(tok.text)
		if !ok {
			return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unknown literal %q", tok.text)}
		}
		return &Literal{Value: v}, nil
	case tokLParen:
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "expected ')', got " + describe(closing)}
		}
		return n, nil
	}
	return nil, p.unexpected(tok)
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) unexpected(tok token) error {
	return &SyntaxError{Pos: tok.pos, Msg: "unexpected " + describe(tok)}
}

func describe(tok token) string {
	if tok.kind == tokLiteral {
		return fmt.Sprintf("%q", tok.text)
	}
	return tok.kind.String()
}
