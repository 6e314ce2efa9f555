package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsCarCdr(t *testing.T) {
	p := PairCons([]Value{Number(1), Number(2)}).(*Pair)
	assert.Equal(t, Number(1), PairCar([]Value{p}))
	assert.Equal(t, Number(2), PairCdr([]Value{p}))
}

func TestSetCarSetCdrMutateInPlace(t *testing.T) {
	p := Cons(Number(1), Number(2))
	PairSetCar([]Value{p, Number(99)})
	PairSetCdr([]Value{p, Number(3)})
	assert.Equal(t, Number(99), p.Car())
	assert.Equal(t, Number(3), p.Cdr())
}

func TestListConstructorAndLength(t *testing.T) {
	l := ListConstructor([]Value{Number(1), Number(2), Number(3)})
	assert.Equal(t, Number(3), ListLength([]Value{l}))
	assert.Equal(t, Boolean(true), ListPred([]Value{l}))
	assert.Equal(t, Boolean(false), ListPred([]Value{Cons(Number(1), Number(2))}))
}

func TestAppend(t *testing.T) {
	a := ListConstructor([]Value{Number(1), Number(2)})
	b := ListConstructor([]Value{Number(3), Number(4)})
	result := ListAppend([]Value{a, b})
	assert.Equal(t, "(1 2 3 4)", WriteToString(result))
}

func TestAppendWithNoArgsIsEmptyList(t *testing.T) {
	assert.True(t, IsNull(ListAppend(nil)))
}

func TestReverse(t *testing.T) {
	l := ListConstructor([]Value{Number(1), Number(2), Number(3)})
	assert.Equal(t, "(3 2 1)", WriteToString(ListReverse([]Value{l})))
}

func TestListRefAndTail(t *testing.T) {
	l := ListConstructor([]Value{Number(10), Number(20), Number(30)})
	assert.Equal(t, Number(20), ListRef([]Value{l, Number(1)}))
	assert.Equal(t, "(20 30)", WriteToString(ListTail([]Value{l, Number(1)})))
}

func TestListRefOutOfRangePanics(t *testing.T) {
	l := ListConstructor([]Value{Number(1)})
	assert.Panics(t, func() { ListRef([]Value{l, Number(5)}) })
}

func TestAssq(t *testing.T) {
	alist := ListConstructor([]Value{
		Cons(Symbol("a"), Number(1)),
		Cons(Symbol("b"), Number(2)),
	})
	result := ListAssq([]Value{Symbol("b"), alist})
	p, ok := result.(*Pair)
	assert.True(t, ok)
	assert.Equal(t, Number(2), p.Cdr())

	assert.Equal(t, Boolean(false), ListAssq([]Value{Symbol("z"), alist}))
}

func TestFilter(t *testing.T) {
	positive := ProcedureFunc(func(args []Value) Value {
		return NumberPositivePred(args)
	})
	l := ListConstructor([]Value{Number(-1), Number(2), Number(-3), Number(4)})
	result := ListFilter([]Value{positive, l})
	assert.Equal(t, "(2 4)", WriteToString(result))
}

func TestForEachVisitsEveryElement(t *testing.T) {
	var seen []Value
	collect := ProcedureFunc(func(args []Value) Value {
		seen = append(seen, args[0])
		return Unspecified
	})
	l := ListConstructor([]Value{Number(1), Number(2), Number(3)})
	ListForEach([]Value{collect, l})
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, seen)
}

func TestMap(t *testing.T) {
	double := ProcedureFunc(func(args []Value) Value {
		return NumberMul([]Value{args[0], Number(2)})
	})
	l := ListConstructor([]Value{Number(1), Number(2), Number(3)})
	result := ProcedureMap([]Value{double, l})
	assert.Equal(t, "(2 4 6)", WriteToString(result))
}

func TestApplySpreadsFinalListArgument(t *testing.T) {
	result := ProcedureApply([]Value{
		ProcedureFunc(NumberAdd),
		Number(1),
		Number(2),
		ListConstructor([]Value{Number(3), Number(4)}),
	})
	assert.Equal(t, Number(10), result)
}
