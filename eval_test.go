package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAll parses source as a sequence of top-level forms and evaluates
// them in order against e, returning the value of the last one.
func evalAll(t *testing.T, e *Env, source string) Value {
	t.Helper()
	forms, err := ParseString(source)
	require.NoError(t, err)
	require.NotEmpty(t, forms)

	var result Value = Unspecified
	for _, form := range forms {
		result = e.Eval(form)
	}
	return result
}

func testExpr(t *testing.T, expr, expectedExpr string) {
	t.Helper()
	defer func() {
		if x := recover(); x != nil {
			t.Fatalf("panic: %v", x)
		}
	}()

	actual := evalAll(t, newTestEnv(), expr)
	expected := evalAll(t, newTestEnv(), expectedExpr)

	if !assert.True(t, Truthy(Equal([]Value{actual, expected}))) {
		assert.Equal(t, WriteToString(expected), WriteToString(actual))
	}
}

func newTestEnv() *Env {
	return NewEnv().With(preludeBindings)
}

func TestSmoke(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{"pair", "'(1 . 2)", "'(1 . 2)"},
		{"identity", "((lambda (x) x) 42)", "42"},
		{"identity-2", "((lambda () ((lambda (x) x) 42)))", "42"},
		{"if-t", "(if #t 42)", "42"},
		{"if-f-no-alt", "(if #f 42)", "(void)"},
		{"if-f-alt", "(if #f 42 43)", "43"},
		{"and-empty", "(and)", "#t"},
		{"and-short-circuit", "(and #f (car '()))", "#f"},
		{"and-last", "(and 1 2 3)", "3"},
		{"or-empty", "(or)", "#f"},
		{"or-first-true", "(or 1 (car '()))", "1"},
		{"cond-else", "(cond (#f 1) (else 2))", "2"},
		{"cond-arrow", "(cond ((assq 'b '((a 1) (b 2))) => (lambda (p) (car (cdr p)))))", "2"},
		{"case", "(case (* 2 3) ((2 3 5 7) 'prime) ((1 4 6 8 9) 'composite) (else 'unknown))", "'composite"},
		{"let", "(let ((x 1) (y 2)) (+ x y))", "3"},
		{"let*", "(let* ((x 1) (y (+ x 1))) (+ x y))", "3"},
		{"letrec", "(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1))))) (odd? (lambda (n) (if (= n 0) #f (even? (- n 1)))))) (even? 10))", "#t"},
		{"named-let", "(let loop ((i 0) (acc 0)) (if (= i 5) acc (loop (+ i 1) (+ acc i))))", "10"},
		{"do-loop", "(do ((i 0 (+ i 1)) (sum 0 (+ sum i))) ((= i 5) sum))", "10"},
		{"quasiquote", "`(1 ,(+ 1 1) ,@(list 3 4) 5)", "'(1 2 3 4 5)"},
		{"define-fn-sugar", "(define (f x) (+ x 1)) (f 41)", "42"},
		{"begin", "(begin 1 2 3)", "3"},
		{"set!", "(define x 1) (set! x 2) x", "2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) { testExpr(t, c.expr, c.expected) })
	}
}

func TestSpecScenarios(t *testing.T) {
	t.Run("S1 recursive sum", func(t *testing.T) {
		testExpr(t,
			"(define (sum-to n) (if (= n 0) 0 (+ n (sum-to (sub1 n))))) (sum-to 5)",
			"15")
	})

	t.Run("S3 set-car! mutates in place", func(t *testing.T) {
		testExpr(t, "(define p (cons 1 2)) (set-car! p 99) p", "(cons 99 2)")
	})

	t.Run("S4 closures capture mutable state", func(t *testing.T) {
		testExpr(t,
			"(define (mk) (let ((x 0)) (lambda () (set! x (+ x 1)) x))) (define c (mk)) (c) (c) (c)",
			"3")
	})

	t.Run("S5 gcd via remainder", func(t *testing.T) {
		testExpr(t,
			"(define (gcd a b) (if (zero? b) a (gcd b (remainder a b)))) (gcd 54 24)",
			"6")
	})

	t.Run("S6 quasiquote splice", func(t *testing.T) {
		testExpr(t, "`(1 ,(+ 1 1) ,@(list 3 4) 5)", "'(1 2 3 4 5)")
	})

	t.Run("invariant: definitional equivalence", func(t *testing.T) {
		testExpr(t,
			"(define (f x) (* x x)) (f 7)",
			"(define f (lambda (x) (* x x))) (f 7)")
	})

	t.Run("invariant: pair identity", func(t *testing.T) {
		testExpr(t, "(let ((p (cons 1 2))) (eq? p p))", "#t")
		testExpr(t, "(eq? (cons 1 2) (cons 1 2))", "#f")
	})

	t.Run("invariant: list operations (reverse inverse, append length)", func(t *testing.T) {
		testExpr(t, "(reverse (reverse '(3 -2 1 6 -5)))", "'(3 -2 1 6 -5)")
		testExpr(t, "(length '(a b c))", "(length (append '(a b c) '()))")
	})
}

func TestTailRecursionDoesNotGrowStack(t *testing.T) {
	e := newTestEnv()
	form, err := ParseString(
		"(define (count-to n acc) (if (= n acc) acc (count-to n (+ acc 1)))) (count-to 200000 0)")
	require.NoError(t, err)

	var result Value
	for _, f := range form {
		result = e.Eval(f)
	}
	assert.Equal(t, Number(200000), result)
}

func TestLexicalScopeNotShadowedByCallerDefine(t *testing.T) {
	e := newTestEnv()
	testExprIn := func(source string) Value {
		forms, err := ParseString(source)
		require.NoError(t, err)
		var result Value
		for _, f := range forms {
			result = e.Eval(f)
		}
		return result
	}

	testExprIn("(define y 10)")
	testExprIn("(define (get-y) y)")
	testExprIn("(define (shadow-and-call) (define y 999) (get-y))")
	assert.Equal(t, Number(10), testExprIn("(shadow-and-call)"))
}

func TestUnboundVariableRaisesUnboundError(t *testing.T) {
	e := newTestEnv()
	form, err := ParseString("totally-undefined-name")
	require.NoError(t, err)

	assert.Equal(t, &UnboundError{Name: "totally-undefined-name"}, recoverPanic(func() {
		e.Eval(form[0])
	}))
}

// recoverPanic runs f and returns the value it panicked with, or nil if it
// returned normally. Unlike PanicsWithValue, comparing its result with
// assert.Equal checks a pointer error value by content, not identity.
func recoverPanic(f func()) (v interface{}) {
	defer func() { v = recover() }()
	f()
	return nil
}

func TestArityErrorOnBadLambdaCall(t *testing.T) {
	e := newTestEnv()
	forms, err := ParseString("(define (f x y) (+ x y)) (f 1)")
	require.NoError(t, err)
	e.Eval(forms[0])

	assert.Panics(t, func() {
		e.Eval(forms[1])
	})
}
