package expr

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLiteral
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLiteral:
		return "literal"
	case tokAnd:
		return "'and'"
	case tokOr:
		return "'or'"
	case tokNot:
		return "'not'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "token"
}

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the source
}

// lex splits src into tokens. Words are runs of letters; anything that is
// neither a word, an operator symbol nor whitespace is a syntax error.
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case r == '!':
			toks = append(toks, token{tokNot, "!", i})
			i++
		case r == '&' || r == '|':
			if i+1 >= len(src) || src[i+1] != src[i] {
				return nil, &SyntaxError{Pos: i, Msg: "expected '" + src[i:i+1] + src[i:i+1] + "'"}
			}
			kind := tokAnd
			if r == '|' {
				kind = tokOr
			}
			toks = append(toks, token{kind, src[i : i+2], i})
			i += 2
		case unicode.IsLetter(r):
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += size
			}
			toks = append(toks, word(src[start:i], start))
		default:
			return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + string(r)}
		}
	}
	return append(toks, token{tokEOF, "", len(src)}), nil
}

func word(text string, pos int) token {
	switch text {
	case "and":
		return token{tokAnd, text, pos}
	case "or":
		return token{tokOr, text, pos}
	case "not":
		return token{tokNot, text, pos}
	}
	return token{tokLiteral, text, pos}
}
