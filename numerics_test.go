package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nums(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Number(v)
	}
	return out
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Number(6), NumberAdd(nums(1, 2, 3)))
	assert.Equal(t, Number(24), NumberMul(nums(2, 3, 4)))
	assert.Equal(t, Number(-5), NumberSub(nums(5)))
	assert.Equal(t, Number(1), NumberSub(nums(5, 2, 2)))
	assert.Equal(t, Number(0.25), NumberDiv(nums(4)))
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, Boolean(true), NumberLt(nums(1, 2, 3)))
	assert.Equal(t, Boolean(false), NumberLt(nums(1, 3, 2)))
	assert.Equal(t, Boolean(true), NumberEq(nums(2, 2, 2)))
}

func TestDivisionByZero(t *testing.T) {
	assert.Equal(t, &DivisionByZeroError{Proc: "/"}, recoverPanic(func() {
		NumberDiv(nums(1, 0))
	}))
	assert.Equal(t, &DivisionByZeroError{Proc: "quotient"}, recoverPanic(func() {
		NumberQuotient(nums(7, 0))
	}))
}

func TestQuotientRemainderModulo(t *testing.T) {
	assert.Equal(t, Number(3), NumberQuotient(nums(7, 2)))
	assert.Equal(t, Number(1), NumberRemainder(nums(7, 2)))
	assert.Equal(t, Number(-1), NumberRemainder(nums(-7, 2)))
	assert.Equal(t, Number(1), NumberModulo(nums(-7, 2)))
}

func TestRoundingFamily(t *testing.T) {
	assert.Equal(t, Number(3), NumberFloor(nums(3.7)))
	assert.Equal(t, Number(4), NumberCeiling(nums(3.2)))
	assert.Equal(t, Number(4), NumberRound(nums(3.5)))
	assert.Equal(t, Number(3), NumberTruncate(nums(3.9)))
}

func TestIntegerPredicate(t *testing.T) {
	assert.True(t, IsInteger(Number(4)))
	assert.False(t, IsInteger(Number(4.5)))
}

func TestAdd1Sub1(t *testing.T) {
	assert.Equal(t, Number(6), NumberAdd1(nums(5)))
	assert.Equal(t, Number(4), NumberSub1(nums(5)))
}
