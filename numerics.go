package arbor

import "math"

func asNumber(proc string, v Value) Number {
	n, ok := v.(Number)
	if !ok {
		panic(newTypeError(proc, "number", v))
	}
	return n
}

func NumberPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Number)
	return Boolean(ok)
}

func IntegerPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	n, ok := args[0].(Number)
	return Boolean(ok && IsInteger(n))
}

func NumberEq(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if asNumber("=", args[i-1]) != asNumber("=", args[i]) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberLt(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asNumber("<", args[i-1]) < asNumber("<", args[i])) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberGt(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asNumber(">", args[i-1]) > asNumber(">", args[i])) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberLte(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asNumber("<=", args[i-1]) <= asNumber("<=", args[i])) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberGte(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asNumber(">=", args[i-1]) >= asNumber(">=", args[i])) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberAdd(args []Value) Value {
	var sum Number
	for _, v := range args {
		sum += asNumber("+", v)
	}
	return sum
}

func NumberMul(args []Value) Value {
	product := Number(1)
	for _, v := range args {
		product *= asNumber("*", v)
	}
	return product
}

func NumberSub(args []Value) Value {
	if len(args) == 0 {
		panic(newArityError("-", true, 1, 0))
	}
	n := asNumber("-", args[0])
	if len(args) == 1 {
		return -n
	}
	for _, v := range args[1:] {
		n -= asNumber("-", v)
	}
	return n
}

func NumberDiv(args []Value) Value {
	if len(args) == 0 {
		panic(newArityError("/", true, 1, 0))
	}
	n := asNumber("/", args[0])
	if len(args) == 1 {
		if n == 0 {
			panic(&DivisionByZeroError{Proc: "/"})
		}
		return 1 / n
	}
	for _, v := range args[1:] {
		d := asNumber("/", v)
		if d == 0 {
			panic(&DivisionByZeroError{Proc: "/"})
		}
		n /= d
	}
	return n
}

func NumberQuotient(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("quotient", false, 2, len(args)))
	}
	n := asNumber("quotient", args[0])
	d := asNumber("quotient", args[1])
	if d == 0 {
		panic(&DivisionByZeroError{Proc: "quotient"})
	}
	return Number(math.Trunc(float64(n) / float64(d)))
}

func NumberRemainder(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("remainder", false, 2, len(args)))
	}
	n := asNumber("remainder", args[0])
	d := asNumber("remainder", args[1])
	if d == 0 {
		panic(&DivisionByZeroError{Proc: "remainder"})
	}
	q := math.Trunc(float64(n) / float64(d))
	return Number(float64(n) - q*float64(d))
}

func NumberModulo(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("modulo", false, 2, len(args)))
	}
	n := float64(asNumber("modulo", args[0]))
	d := float64(asNumber("modulo", args[1]))
	if d == 0 {
		panic(&DivisionByZeroError{Proc: "modulo"})
	}
	m := math.Mod(n, d)
	if m != 0 && (m < 0) != (d < 0) {
		m += d
	}
	return Number(m)
}

func NumberAbs(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("abs", false, 1, len(args)))
	}
	return Number(math.Abs(float64(asNumber("abs", args[0]))))
}

func NumberMin(args []Value) Value {
	if len(args) == 0 {
		panic(newArityError("min", true, 1, 0))
	}
	m := asNumber("min", args[0])
	for _, v := range args[1:] {
		if n := asNumber("min", v); n < m {
			m = n
		}
	}
	return m
}

func NumberMax(args []Value) Value {
	if len(args) == 0 {
		panic(newArityError("max", true, 1, 0))
	}
	m := asNumber("max", args[0])
	for _, v := range args[1:] {
		if n := asNumber("max", v); n > m {
			m = n
		}
	}
	return m
}

func NumberExpt(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("expt", false, 2, len(args)))
	}
	base := asNumber("expt", args[0])
	exp := asNumber("expt", args[1])
	return Number(math.Pow(float64(base), float64(exp)))
}

func NumberSqrt(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("sqrt", false, 1, len(args)))
	}
	return Number(math.Sqrt(float64(asNumber("sqrt", args[0]))))
}

func NumberFloor(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("floor", false, 1, len(args)))
	}
	return Number(math.Floor(float64(asNumber("floor", args[0]))))
}

func NumberCeiling(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("ceiling", false, 1, len(args)))
	}
	return Number(math.Ceil(float64(asNumber("ceiling", args[0]))))
}

func NumberRound(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("round", false, 1, len(args)))
	}
	return Number(math.RoundToEven(float64(asNumber("round", args[0]))))
}

func NumberTruncate(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("truncate", false, 1, len(args)))
	}
	return Number(math.Trunc(float64(asNumber("truncate", args[0]))))
}

func NumberZeroPred(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("zero?", false, 1, len(args)))
	}
	return Boolean(asNumber("zero?", args[0]) == 0)
}

func NumberPositivePred(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("positive?", false, 1, len(args)))
	}
	return Boolean(asNumber("positive?", args[0]) > 0)
}

func NumberNegativePred(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("negative?", false, 1, len(args)))
	}
	return Boolean(asNumber("negative?", args[0]) < 0)
}

func NumberAdd1(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("add1", false, 1, len(args)))
	}
	return asNumber("add1", args[0]) + 1
}

func NumberSub1(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("sub1", false, 1, len(args)))
	}
	return asNumber("sub1", args[0]) - 1
}
