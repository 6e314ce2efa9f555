package arbor

import "fmt"

// formList flattens a form's top-level pair chain into a slice, the same
// way the reader built it: car first, then each cdr's car in order. A
// malformed (dotted) special form simply yields a short slice; the
// special-form handlers below detect that by counting arguments.
func formList(e *Pair) []Value {
	vals, _ := ToValues(e)
	return vals
}

// evalVariable looks up an identifier in the lexical chain.
func evalVariable(sym Symbol, s *scope) Value {
	v, ok := s.lookup(sym)
	if !ok {
		panic(&UnboundError{Name: string(sym)})
	}
	return v
}

// (quote datum) evaluates to datum, verbatim.
func evalQuote(e *Pair) Value {
	return e.cdr.(*Pair).car
}

// evalQuasiquote evaluates a quasiquoted template at nesting depth 1. The
// parser rejects backtick inside backtick, so there is never a nested
// "quasiquote" form to re-enter here.
func evalQuasiquote(v Value, s *scope) Value {
	p, ok := v.(*Pair)
	if !ok {
		return v
	}
	if sym, ok := p.car.(Symbol); ok {
		switch sym {
		case "unquote":
			return eval(p.cdr.(*Pair).car, s, false)
		case "unquote-splicing":
			panic("unquote-splicing is not valid outside a list")
		}
	}
	return evalQuasiquoteList(p, s)
}

func evalQuasiquoteList(p *Pair, s *scope) Value {
	var vals []Value
	var cur Value = p
	for {
		pp, ok := cur.(*Pair)
		if !ok {
			return appendTail(vals, evalQuasiquote(cur, s))
		}

		if sym, ok := pp.car.(Symbol); ok && sym == "unquote" {
			// dotted unquote, e.g. `(a . ,b)
			rest := pp.cdr.(*Pair)
			return appendTail(vals, eval(rest.car, s, false))
		}

		if elem, ok := pp.car.(*Pair); ok {
			if sym, ok := elem.car.(Symbol); ok && sym == "unquote-splicing" {
				spliced, ok := ToValues(eval(elem.cdr.(*Pair).car, s, false))
				if !ok {
					panic(newTypeError("unquote-splicing", "list", elem.cdr.(*Pair).car))
				}
				vals = append(vals, spliced...)
				cur = pp.cdr
				continue
			}
		}

		vals = append(vals, evalQuasiquote(pp.car, s))
		cur = pp.cdr
	}
}

func appendTail(vals []Value, tail Value) Value {
	result := tail
	for i := len(vals) - 1; i >= 0; i-- {
		result = Cons(vals[i], result)
	}
	return result
}

// (lambda formals body...)
func evalLambda(e *Pair, s *scope) Value {
	args := formList(e)
	if len(args) < 3 {
		panic("lambda must be of the form (lambda <formals> <body>)")
	}
	formals, isVariadic := makeFormals(args[1])
	return &procedure{name: "lambda", closure: s, formals: formals, isVariadic: isVariadic, body: args[2:]}
}

// (if test consequent alternate?)
func evalIf(e *Pair, s *scope, tail bool) Value {
	args := formList(e)
	if len(args) < 3 || len(args) > 4 {
		panic("if must be of the form (if <test> <consequent>) or (if <test> <consequent> <alternate>)")
	}
	if Truthy(eval(args[1], s, false)) {
		return eval(args[2], s, tail)
	}
	if len(args) == 3 {
		return Unspecified
	}
	return eval(args[3], s, tail)
}

// (set! name expr)
func evalSet(e *Pair, s *scope) Value {
	args := formList(e)
	if len(args) != 3 {
		panic("set! must be of the form (set! <variable> <expression>)")
	}
	sym, ok := args[1].(Symbol)
	if !ok {
		panic("set! must be of the form (set! <variable> <expression>)")
	}
	if !s.setBound(sym, eval(args[2], s, false)) {
		panic(&UnboundError{Name: string(sym)})
	}
	return Unspecified
}

func isElse(clause *Pair) bool {
	sym, ok := clause.car.(Symbol)
	return ok && sym == "else"
}

func evalClause(arg Value, clause *Pair, s *scope, tail bool) Value {
	body, _ := clause.cdr.(*Pair)
	if body == nil {
		return arg
	}
	if sym, ok := body.car.(Symbol); ok && sym == "=>" {
		if proc, ok := body.cdr.(*Pair); ok {
			call := Cons(proc.car, Cons(&quotedValue{arg}, EmptyList))
			return eval(call, s, tail)
		}
	}
	return evalBegin(clause, s, tail)
}

// (cond (test expr...)... (else expr...))
func evalCond(e *Pair, s *scope, tail bool) Value {
	for rest, _ := e.cdr.(*Pair); rest != nil; rest, _ = rest.cdr.(*Pair) {
		clause, ok := rest.car.(*Pair)
		if !ok {
			panic("cond clause must be of the form (<test> <expression>...), (<test> => <expression>), or (else <expression>...)")
		}
		if IsNull(rest.cdr) && isElse(clause) {
			return evalBegin(clause, s, tail)
		}
		if v := eval(clause.car, s, false); Truthy(v) {
			return evalClause(v, clause, s, tail)
		}
	}
	return Unspecified
}

// (case key ((datum...) expr...)... (else expr...))
func evalCase(e *Pair, s *scope, tail bool) Value {
	keyp, _ := e.cdr.(*Pair)
	if keyp == nil {
		panic("case must be of the form (case <key> <clause>...)")
	}
	key := eval(keyp.car, s, false)

	for clauses, _ := keyp.cdr.(*Pair); clauses != nil; clauses, _ = clauses.cdr.(*Pair) {
		clause, ok := clauses.car.(*Pair)
		if !ok {
			panic("case clause must be of the form ((<datum>...) <expression>...) or (else <expression>...)")
		}
		if IsNull(clauses.cdr) && isElse(clause) {
			return evalClause(key, clause, s, tail)
		}
		for datums, _ := clause.car.(*Pair); datums != nil; datums, _ = datums.cdr.(*Pair) {
			if eqv(key, datums.car) {
				return evalClause(key, clause, s, tail)
			}
		}
	}
	return Unspecified
}

// (and expr...) and (or expr...): short-circuit, tail in the last position.
func evalAnd(e *Pair, s *scope, tail bool) Value {
	rest, _ := e.cdr.(*Pair)
	if rest == nil {
		return Boolean(true)
	}
	for IsNull(rest.cdr) == false {
		if !Truthy(eval(rest.car, s, false)) {
			return Boolean(false)
		}
		rest, _ = rest.cdr.(*Pair)
		if rest == nil {
			return Boolean(true)
		}
	}
	return eval(rest.car, s, tail)
}

func evalOr(e *Pair, s *scope, tail bool) Value {
	rest, _ := e.cdr.(*Pair)
	if rest == nil {
		return Boolean(false)
	}
	for IsNull(rest.cdr) == false {
		if v := eval(rest.car, s, false); Truthy(v) {
			return v
		}
		rest, _ = rest.cdr.(*Pair)
		if rest == nil {
			return Boolean(false)
		}
	}
	return eval(rest.car, s, tail)
}

// evalBinding destructures a single (name init) let-style binding.
func evalBinding(e Value) (Symbol, Value, bool) {
	binding, ok := e.(*Pair)
	if !ok {
		return "", nil, false
	}
	sym, ok := binding.car.(Symbol)
	if !ok {
		return "", nil, false
	}
	init, ok := binding.cdr.(*Pair)
	if !ok || !IsNull(init.cdr) {
		return "", nil, false
	}
	return sym, init.car, true
}

func bindingList(e Value) ([]Symbol, []Value, bool) {
	if IsNull(e) {
		return nil, nil, true
	}
	bindings, ok := e.(*Pair)
	if !ok {
		return nil, nil, false
	}

	var names []Symbol
	var inits []Value
	for {
		sym, init, ok := evalBinding(bindings.car)
		if !ok {
			return nil, nil, false
		}
		names = append(names, sym)
		inits = append(inits, init)

		if IsNull(bindings.cdr) {
			return names, inits, true
		}
		if bindings, ok = bindings.cdr.(*Pair); !ok {
			return nil, nil, false
		}
	}
}

// (let ((n v)...) body...) and named let: (let name ((n v)...) body...)
func evalLet(e *Pair, s *scope, tail bool) Value {
	const invalidLet = "let must be of the form (let ((<variable> <init>)...) <body>)"

	args := formList(e)
	if len(args) < 2 {
		panic(invalidLet)
	}
	args = args[1:]

	sym, isNamedLet := args[0].(Symbol)
	if isNamedLet {
		args = args[1:]
		if len(args) == 0 {
			panic(invalidLet)
		}
	}

	names, inits, ok := bindingList(args[0])
	if !ok {
		panic(invalidLet)
	}
	actuals := make([]Value, len(inits))
	for i, init := range inits {
		actuals[i] = eval(init, s, false)
	}

	inner := s.push()
	proc := &procedure{name: sym, closure: inner, formals: names, body: args[1:]}
	if isNamedLet {
		inner.define(sym, proc)
	}
	if tail {
		return &tailCall{p: proc, args: actuals}
	}
	return forceTail(proc.apply(actuals))
}

// (let* ((n v)...) body...): each init sees the previous bindings.
func evalLetStar(e *Pair, s *scope, tail bool) Value {
	const invalidLetStar = "let* must be of the form (let* ((<variable> <init>)...) <body>)"

	args := formList(e)
	if len(args) < 2 {
		panic(invalidLetStar)
	}

	names, inits, ok := bindingList(args[1])
	if !ok {
		panic(invalidLetStar)
	}

	inner := s.push()
	for i, name := range names {
		inner.define(name, eval(inits[i], inner, false))
	}
	return evalSeqSlice(args[2:], inner, tail)
}

// (letrec ((n v)...) body...): all names are bound before any init runs.
func evalLetrec(e *Pair, s *scope, tail bool) Value {
	const invalidLetrec = "letrec must be of the form (letrec ((<variable> <init>)...) <body>)"

	args := formList(e)
	if len(args) < 2 {
		panic(invalidLetrec)
	}

	names, inits, ok := bindingList(args[1])
	if !ok {
		panic(invalidLetrec)
	}

	inner := s.push()
	for _, name := range names {
		inner.define(name, Unspecified)
	}
	for i, name := range names {
		inner.define(name, eval(inits[i], inner, false))
	}
	return evalSeqSlice(args[2:], inner, tail)
}

// (do ((var init step)...) (test result...) body...)
func evalDo(e *Pair, s *scope, tail bool) Value {
	const invalidDo = "do must be of the form (do ((<variable> <init> <step>)...) (<test> <result>...) <body>...)"

	args := formList(e)
	if len(args) < 3 {
		panic(invalidDo)
	}

	specs, ok := ToValues(args[1])
	if !ok {
		panic(invalidDo)
	}
	names := make([]Symbol, len(specs))
	steps := make([]Value, len(specs))
	inner := s.push()
	for i, spec := range specs {
		parts := formList(spec.(*Pair))
		if len(parts) < 2 || len(parts) > 3 {
			panic(invalidDo)
		}
		name, ok := parts[0].(Symbol)
		if !ok {
			panic(invalidDo)
		}
		names[i] = name
		inner.define(name, eval(parts[1], s, false))
		if len(parts) == 3 {
			steps[i] = parts[2]
		} else {
			steps[i] = name
		}
	}

	termination, ok := args[2].(*Pair)
	if !ok {
		panic(invalidDo)
	}
	test := termination.car
	results, _ := ToValues(termination.cdr)
	body := args[3:]

	for {
		if Truthy(eval(test, inner, false)) {
			if len(results) == 0 {
				return Unspecified
			}
			for _, r := range results[:len(results)-1] {
				eval(r, inner, false)
			}
			return eval(results[len(results)-1], inner, tail)
		}

		for _, b := range body {
			eval(b, inner, false)
		}

		next := make([]Value, len(steps))
		for i, step := range steps {
			next[i] = eval(step, inner, false)
		}
		inner = inner.push()
		for i, name := range names {
			inner.define(name, next[i])
		}
	}
}

func evalSeq(e Value, s *scope, tail bool) Value {
	vals, _ := ToValues(e)
	return evalSeqSlice(vals, s, tail)
}

func evalSeqSlice(vals []Value, s *scope, tail bool) Value {
	if len(vals) == 0 {
		return Unspecified
	}
	for _, v := range vals[:len(vals)-1] {
		eval(v, s, false)
	}
	return eval(vals[len(vals)-1], s, tail)
}

func evalBegin(e *Pair, s *scope, tail bool) Value {
	rest, _ := e.cdr.(*Pair)
	return evalSeq(rest, s, tail)
}

// (define name expr), (define (name formals...) body...), and
// (define (name . formal) body...).
func evalDefine(e *Pair, s *scope) Value {
	const invalidDefine = "define must be of the form (define <variable> <expression>), (define (<variable> <formals>) <body>), or (define (<variable> . <formal>) <body>)"

	args := formList(e)
	if len(args) < 2 {
		panic(invalidDefine)
	}

	switch v := args[1].(type) {
	case Symbol:
		if len(args) != 3 {
			panic(invalidDefine)
		}
		s.define(v, eval(args[2], s, false))
		return Unspecified
	case *Pair:
		sym, ok := v.car.(Symbol)
		if !ok {
			panic(invalidDefine)
		}
		formals, isVariadic := makeFormals(v.cdr)
		s.define(sym, &procedure{name: sym, closure: s, formals: formals, isVariadic: isVariadic, body: args[2:]})
		return Unspecified
	default:
		panic(invalidDefine)
	}
}

// quotedValue wraps an already-evaluated value so it can be spliced back
// into an AST position (cond's => clause) without being re-evaluated.
type quotedValue struct{ v Value }

func (q *quotedValue) MarshalSExp() SExpression { return q.v.MarshalSExp() }

func eval(expression Value, s *scope, tail bool) Value {
	switch e := expression.(type) {
	case Number, Boolean, Character, *String, emptyList, unspecifiedValue:
		return e
	case Symbol:
		return evalVariable(e, s)
	case *quotedValue:
		return e.v
	case *Pair:
		if sym, ok := e.car.(Symbol); ok {
			switch sym {
			case "quote":
				return evalQuote(e)
			case "quasiquote":
				return evalQuasiquote(e.cdr.(*Pair).car, s)
			case "lambda":
				return evalLambda(e, s)
			case "if":
				return forceTailIfNeeded(evalIf(e, s, tail), tail)
			case "set!":
				return evalSet(e, s)
			case "cond":
				return forceTailIfNeeded(evalCond(e, s, tail), tail)
			case "case":
				return forceTailIfNeeded(evalCase(e, s, tail), tail)
			case "and":
				return forceTailIfNeeded(evalAnd(e, s, tail), tail)
			case "or":
				return forceTailIfNeeded(evalOr(e, s, tail), tail)
			case "let":
				return evalLet(e, s, tail)
			case "let*":
				return forceTailIfNeeded(evalLetStar(e, s, tail), tail)
			case "letrec":
				return forceTailIfNeeded(evalLetrec(e, s, tail), tail)
			case "do":
				return forceTailIfNeeded(evalDo(e, s, tail), tail)
			case "begin":
				return forceTailIfNeeded(evalBegin(e, s, tail), tail)
			case "define":
				return evalDefine(e, s)
			}
		}

		p, ok := eval(e.car, s, false).(Procedure)
		if !ok {
			panic(newTypeError("apply", "procedure", e.car))
		}
		args := formList(e)
		actuals := make([]Value, len(args)-1)
		for i, arg := range args[1:] {
			actuals[i] = eval(arg, s, false)
		}
		if tail {
			return &tailCall{p: p, args: actuals}
		}
		return forceTail(p.Apply(actuals))
	case *tailCall:
		if tail {
			return e
		}
		return forceTail(e.p.Apply(e.args))
	default:
		panic(fmt.Sprintf("unknown expression type %T", e))
	}
}

// forceTailIfNeeded resolves a trampoline token immediately when the
// caller is not itself in tail position; tail callers pass the token on
// up so the loop in forceTail unwinds once, at the top.
func forceTailIfNeeded(v Value, tail bool) Value {
	if tail {
		return v
	}
	return forceTail(v)
}
