package arbor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is the type of every object the evaluator passes around: numbers,
// strings, characters, symbols, booleans, the empty list, pairs,
// procedures, and the unspecified value. It is a closed set of variants;
// dispatch happens by type switch, never by method override.
type Value interface {
	MarshalSExp() SExpression
}

// SExpression is a Value with a known textual representation.
type SExpression interface {
	Value

	write(w io.Writer, quoted bool) error
}

// Display writes v the way the `display` built-in would: strings without
// surrounding quotes, characters without the #\ prefix.
func Display(w io.Writer, v Value) error {
	return encode(w, v, false)
}

// Write writes v with strings and characters in their re-readable
// external representation. It backs the embedding facade's printed
// result; no `write` built-in is bound in the prelude.
func Write(w io.Writer, v Value) error {
	return encode(w, v, true)
}

// DisplayToString is Display rendered to a string.
func DisplayToString(v Value) string {
	var b strings.Builder
	Display(&b, v)
	return b.String()
}

// WriteToString is Write rendered to a string.
func WriteToString(v Value) string {
	var b strings.Builder
	Write(&b, v)
	return b.String()
}

func encode(w io.Writer, v Value, quoted bool) error {
	if v == nil {
		v = EmptyList
	}
	if p, ok := v.(SExpression); ok {
		return p.write(w, quoted)
	}
	return v.MarshalSExp().write(w, quoted)
}

// Number is a double-precision float. There is no bignum or rational
// tower; the integer predicate is satisfied by any value with a zero
// fractional part.
type Number float64

func (n Number) MarshalSExp() SExpression { return n }

func (n Number) write(w io.Writer, quoted bool) error {
	_, err := io.WriteString(w, formatNumber(float64(n)))
	return err
}

func formatNumber(f float64) string {
	if IsInteger(Number(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// IsInteger reports whether n has no fractional part.
func IsInteger(n Number) bool {
	return float64(n) == float64(int64(n))
}

// Boolean is #t or #f. Only Boolean(false) is falsey.
type Boolean bool

func (b Boolean) MarshalSExp() SExpression { return b }

func (b Boolean) write(w io.Writer, quoted bool) error {
	text := "#t"
	if !b {
		text = "#f"
	}
	_, err := io.WriteString(w, text)
	return err
}

// Truthy returns the truth value of v. Any value besides #f is true.
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// emptyList is the unique value terminating proper lists. It is distinct
// from Unspecified: both are "no interesting value", but only EmptyList
// satisfies null? and the proper-list recursion in §3.
type emptyList struct{}

// EmptyList is the singleton '() value.
var EmptyList Value = emptyList{}

func (emptyList) MarshalSExp() SExpression { return emptyList{} }

func (emptyList) write(w io.Writer, quoted bool) error {
	_, err := io.WriteString(w, "()")
	return err
}

// IsNull reports whether v is the empty list.
func IsNull(v Value) bool {
	_, ok := v.(emptyList)
	return ok
}

// unspecifiedValue is returned by mutation forms and whenever there is
// nothing to say. It prints as nothing under display/write; the
// embedding facade suppresses it entirely rather than printing an empty
// line.
type unspecifiedValue struct{}

// Unspecified is the singleton "no value" result.
var Unspecified Value = unspecifiedValue{}

func (unspecifiedValue) MarshalSExp() SExpression { return unspecifiedValue{} }

func (unspecifiedValue) write(w io.Writer, quoted bool) error { return nil }

// IsUnspecified reports whether v is the unspecified value.
func IsUnspecified(v Value) bool {
	_, ok := v.(unspecifiedValue)
	return ok
}

// Pair is a mutable cons cell. Two pairs are eq? iff they are the same
// cell; set-car!/set-cdr! replace a slot in place, visible to every
// other holder of the pair.
type Pair struct {
	car Value
	cdr Value
}

// Cons allocates a new pair.
func Cons(car, cdr Value) *Pair {
	if car == nil {
		car = EmptyList
	}
	if cdr == nil {
		cdr = EmptyList
	}
	return &Pair{car: car, cdr: cdr}
}

func (p *Pair) MarshalSExp() SExpression { return p }

func (p *Pair) write(w io.Writer, quoted bool) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	first := true
	for p != nil {
		if !first {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		first = false

		if err := encode(w, p.car, quoted); err != nil {
			return err
		}
		if IsNull(p.cdr) {
			break
		}
		tail, ok := p.cdr.(*Pair)
		if !ok {
			if _, err := io.WriteString(w, " . "); err != nil {
				return err
			}
			if err := encode(w, p.cdr, quoted); err != nil {
				return err
			}
			break
		}
		p = tail
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Car returns the car field of the pair.
func (p *Pair) Car() Value { return p.car }

// Cdr returns the cdr field of the pair.
func (p *Pair) Cdr() Value { return p.cdr }

// SetCar replaces the car field in place.
func (p *Pair) SetCar(v Value) { p.car = v }

// SetCdr replaces the cdr field in place.
func (p *Pair) SetCdr(v Value) { p.cdr = v }

// ToValues converts a proper list to a slice, in order. The second
// result is false if the list is improper.
func ToValues(v Value) ([]Value, bool) {
	var out []Value
	for {
		if IsNull(v) {
			return out, true
		}
		p, ok := v.(*Pair)
		if !ok {
			return out, false
		}
		out = append(out, p.car)
		v = p.cdr
	}
}

// listFrom builds a proper list from a slice, in order.
func listFrom(vs []Value) Value {
	var head Value = EmptyList
	for i := len(vs) - 1; i >= 0; i-- {
		head = Cons(vs[i], head)
	}
	return head
}

func (p *Pair) len() int {
	if p == nil {
		return 0
	}
	l := 1
	for {
		next, ok := p.cdr.(*Pair)
		if !ok {
			return l
		}
		p, l = next, l+1
	}
}

// Symbol is an interned identifier; two symbols are eq? iff their names
// are equal, so plain string comparison suffices.
type Symbol string

func (s Symbol) MarshalSExp() SExpression { return s }

func (s Symbol) write(w io.Writer, quoted bool) error {
	_, err := io.WriteString(w, string(s))
	return err
}

// Character is a single Unicode scalar value.
type Character rune

func (c Character) MarshalSExp() SExpression { return c }

func (c Character) write(w io.Writer, quoted bool) error {
	if !quoted {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], rune(c))
		_, err := w.Write(buf[:n])
		return err
	}
	if name, ok := namedCharacters[rune(c)]; ok {
		_, err := io.WriteString(w, "#\\"+name)
		return err
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(c))
	if _, err := io.WriteString(w, "#\\"); err != nil {
		return err
	}
	_, err := w.Write(buf[:n])
	return err
}

var namedCharacters = map[rune]string{
	' ':  "space",
	'\n': "newline",
	'\t': "tab",
	'\r': "return",
	0:    "null",
}

// String is immutable UTF-8 text. Unlike Number, Symbol, and Character,
// eq?/eqv? give strings identity rather than value semantics (spec.md:
// "eq? — identity for pairs/procedures/strings"), so String is a
// pointer: two separately allocated strings with identical content
// are eq?-distinct, the same way two separately cons'd pairs are, and
// the generic obj1 == obj2 fallback in eqv compares that pointer, not
// the text. Every string-producing built-in must go through NewString
// rather than share an existing *String.
type String struct {
	s string
}

// NewString allocates a fresh String holding s.
func NewString(s string) *String { return &String{s: s} }

// String returns the string's content, satisfying fmt.Stringer.
func (s *String) String() string { return s.s }

func (s *String) MarshalSExp() SExpression { return s }

func (s *String) write(w io.Writer, quoted bool) error {
	if !quoted {
		_, err := io.WriteString(w, s.s)
		return err
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	_, err := io.WriteString(w, b.String())
	return err
}

// Procedure is either a built-in or a user-defined closure.
type Procedure interface {
	Value

	Apply(args []Value) Value
}

// ProcedureFunc adapts a plain Go function into a built-in Procedure.
type ProcedureFunc func(args []Value) Value

func (f ProcedureFunc) MarshalSExp() SExpression { return Symbol("#<procedure>") }

func (f ProcedureFunc) Apply(args []Value) Value { return f(args) }

// tailCall is the evaluator's trampoline token: applying a closure in
// tail position produces one of these instead of recursing, and the
// top-level caller loops in forceTail until a non-tail value appears.
type tailCall struct {
	p    Procedure
	args []Value
}

func (t *tailCall) MarshalSExp() SExpression { return Symbol("#<tail call>") }

type procedure struct {
	name       Symbol
	closure    *scope
	formals    []Symbol
	isVariadic bool
	body       []Value
}

func makeFormals(declaration Value) (formals []Symbol, isVariadic bool) {
	const invalidFormals = "lambda formals must be a list of symbols, a single symbol, or a dotted list"

	if sym, ok := declaration.(Symbol); ok {
		return []Symbol{sym}, true
	}
	if IsNull(declaration) {
		return nil, false
	}

	pair, ok := declaration.(*Pair)
	if !ok {
		panic(invalidFormals)
	}

	declared := map[Symbol]struct{}{}
	for {
		sym, ok := pair.car.(Symbol)
		if !ok {
			panic(invalidFormals)
		}
		if _, ok := declared[sym]; ok {
			panic(fmt.Errorf("duplicate formal %v", sym))
		}
		declared[sym] = struct{}{}
		formals = append(formals, sym)

		switch cdr := pair.cdr.(type) {
		case Symbol:
			formals, isVariadic = append(formals, cdr), true
			return
		case *Pair:
			pair = cdr
		default:
			if IsNull(cdr) {
				return
			}
			panic(invalidFormals)
		}
	}
}

func (p *procedure) MarshalSExp() SExpression { return Symbol(p.name) }

func (p *procedure) Apply(args []Value) Value {
	return forceTail(p.apply(args))
}

func (p *procedure) apply(args []Value) Value {
	scope := p.closure.push()

	formals, atLeast := p.formals, ""
	if p.isVariadic {
		formals, atLeast = formals[:len(formals)-1], " at least"
	}

	if len(args) < len(formals) {
		panic(newArityError(string(p.name), atLeast != "", len(formals), len(args)))
	}
	if !p.isVariadic && len(args) > len(formals) {
		panic(newArityError(string(p.name), false, len(formals), len(args)))
	}

	for i, sym := range formals {
		scope.define(sym, args[i])
	}
	if p.isVariadic {
		scope.define(p.formals[len(p.formals)-1], listFrom(args[len(formals):]))
	}

	if len(p.body) == 0 {
		return Unspecified
	}
	for _, x := range p.body[:len(p.body)-1] {
		eval(x, scope, false)
	}
	return eval(p.body[len(p.body)-1], scope, true)
}

// forceTail unwinds the trampoline: each bounce off a self-recursive
// user procedure stays in this single loop rather than recursing through
// Apply, which is what keeps deep tail recursion at constant stack depth.
// Only the first call into a builtin (which can never itself produce a
// tailCall) goes through the Procedure interface.
func forceTail(v Value) Value {
	for {
		tail, ok := v.(*tailCall)
		if !ok {
			return v
		}
		if p, ok := tail.p.(*procedure); ok {
			v = p.apply(tail.args)
		} else {
			v = tail.p.Apply(tail.args)
		}
	}
}
