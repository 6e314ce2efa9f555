package arbor

import (
	"fmt"
	"io"
	"strings"
)

// ParseString parses every top-level form in s, in source order.
func ParseString(s string) ([]Value, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads every top-level form from r, in source order. Empty input
// yields an empty, non-nil slice and no error.
//
// The parser does not distinguish code from data: a parsed list is the
// same Pair chain the evaluator walks, and `quote` returns it verbatim.
// This mirrors every Lisp in the reference corpus — the AST the reader
// builds already is the value a running program manipulates.
func Parse(r io.Reader) ([]Value, error) {
	p := &parser{l: newLexer(r)}

	forms := []Value{}
	for {
		form, err := p.parseExpression(0, false)
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}

type parser struct {
	l   *lexer
	tok interface{}
	has bool
}

func (p *parser) peekTok() (interface{}, error) {
	if !p.has {
		t, err := p.l.next()
		if err != nil {
			return nil, err
		}
		p.tok, p.has = t, true
	}
	return p.tok, nil
}

func (p *parser) nextTok() (interface{}, error) {
	if p.has {
		t := p.tok
		p.has = false
		return t, nil
	}
	return p.l.next()
}

func (p *parser) parseExpression(qq int, splice bool) (Value, error) {
	tok, err := p.nextTok()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case Number, Boolean, *String, Character, Symbol:
		if tok == Symbol(".") {
			return nil, &ParseError{Pos: p.l.pos(), Msg: "unexpected '.' outside a dotted list tail"}
		}
		return tok.(Value), nil
	case rune:
		switch tok {
		case '(':
			return p.parseList(qq)
		case '\'':
			el, err := p.parseExpression(qq, false)
			if err != nil {
				return nil, p.unclosed(err)
			}
			return Cons(Symbol("quote"), Cons(el, EmptyList)), nil
		case '`':
			if qq > 0 {
				return nil, &ParseError{Pos: p.l.pos(), Msg: "nested quasiquote is not supported"}
			}
			el, err := p.parseExpression(qq+1, false)
			if err != nil {
				return nil, p.unclosed(err)
			}
			return Cons(Symbol("quasiquote"), Cons(el, EmptyList)), nil
		case ',':
			if qq == 0 {
				return nil, &ParseError{Pos: p.l.pos(), Msg: "unquote outside quasiquote"}
			}
			el, err := p.parseExpression(qq-1, false)
			if err != nil {
				return nil, p.unclosed(err)
			}
			return Cons(Symbol("unquote"), Cons(el, EmptyList)), nil
		case '@':
			if qq == 0 || !splice {
				return nil, &ParseError{Pos: p.l.pos(), Msg: "unquote-splicing outside a quasiquoted list"}
			}
			el, err := p.parseExpression(qq-1, false)
			if err != nil {
				return nil, p.unclosed(err)
			}
			return Cons(Symbol("unquote-splicing"), Cons(el, EmptyList)), nil
		case ')':
			return nil, &ReadError{Pos: p.l.pos(), Msg: "unexpected ')'"}
		default:
			return nil, &ParseError{Pos: p.l.pos(), Msg: fmt.Sprintf("unexpected token %q", tok)}
		}
	default:
		return nil, &ParseError{Pos: p.l.pos(), Msg: fmt.Sprintf("unexpected token %v", tok)}
	}
}

// unclosed turns an end-of-input error encountered while scanning the
// inside of a list, or the datum after a quote prefix, into a diagnostic
// naming the unbalanced paren,
// instead of letting a bare io.EOF escape as the top-level result.
func (p *parser) unclosed(err error) error {
	if err == io.EOF {
		return &ParseError{Pos: p.l.pos(), Msg: "unexpected end of input, unbalanced '('"}
	}
	return err
}

func (p *parser) parseList(qq int) (Value, error) {
	if t, err := p.peekTok(); err == nil && t == rune(')') {
		p.nextTok()
		return EmptyList, nil
	} else if err != nil {
		return nil, p.unclosed(err)
	}

	first, err := p.parseExpression(qq, true)
	if err != nil {
		return nil, p.unclosed(err)
	}
	splice := true
	if first == Symbol("quasiquote") {
		qq++
	} else if qq > 0 {
		if first == Symbol("unquote") {
			qq--
		} else if splice && first == Symbol("unquote-splicing") {
			splice = false
		}
	}

	head := &Pair{car: first, cdr: EmptyList}
	tail := head
	for {
		t, err := p.peekTok()
		if err != nil {
			return nil, p.unclosed(err)
		}
		if t == rune(')') {
			p.nextTok()
			return head, nil
		}
		if sym, ok := t.(Symbol); ok && sym == "." {
			p.nextTok()
			last, err := p.parseExpression(qq, true)
			if err != nil {
				return nil, p.unclosed(err)
			}
			closeTok, err := p.nextTok()
			if err != nil {
				return nil, p.unclosed(err)
			}
			if closeTok != rune(')') {
				return nil, &ParseError{Pos: p.l.pos(), Msg: "expected ')' after dotted tail"}
			}
			tail.cdr = last
			return head, nil
		}

		next, err := p.parseExpression(qq, true)
		if err != nil {
			return nil, p.unclosed(err)
		}
		cell := &Pair{car: next, cdr: EmptyList}
		tail.cdr, tail = cell, cell
	}
}
