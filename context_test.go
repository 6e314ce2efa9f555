package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRunReturnsPrintedResult(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, "15", ctx.Run(
		"(define (sum-to n) (if (= n 0) 0 (+ n (sum-to (sub1 n))))) (sum-to 5)"))
}

func TestContextRunDisplayIsBufferedSeparately(t *testing.T) {
	ctx := NewContext()
	result := ctx.Run(`(display "hello") (+ 1 2)`)
	assert.Equal(t, "3", result)
	assert.Equal(t, "hello", ctx.Output())
	assert.Equal(t, "", ctx.Output())
}

func TestContextRunUnspecifiedPrintsNothing(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, "", ctx.Run("(define x 5)"))
}

func TestContextRunErrorsAreReportedAsText(t *testing.T) {
	ctx := NewContext()
	result := ctx.Run("(car '())")
	assert.NotEqual(t, "", result)
}

func TestContextRunPreservesPartialSideEffectsAfterError(t *testing.T) {
	ctx := NewContext()
	ctx.Run("(define seen #f) (set! seen #t) (car '())")
	assert.Equal(t, "#t", ctx.Run("seen"))
}

func TestContextsAreIndependent(t *testing.T) {
	a := NewContext()
	b := NewContext()

	a.Run("(define secret 42)")
	result := b.Run("secret")
	assert.NotEqual(t, "", result) // unbound in b, reported as an error string

	a.Run(`(display "from a")`)
	b.Run(`(display "from b")`)
	assert.Equal(t, "from a", a.Output())
	assert.Equal(t, "from b", b.Output())
}

func TestContextParseErrorReported(t *testing.T) {
	ctx := NewContext()
	result := ctx.Run("(+ 1 2")
	assert.NotEqual(t, "", result)
}
