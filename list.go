package arbor

func PairPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(*Pair)
	return Boolean(ok)
}

func PairCons(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("cons", false, 2, len(args)))
	}
	return Cons(args[0], args[1])
}

func PairCar(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("car", false, 1, len(args)))
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic(newTypeError("car", "pair", args[0]))
	}
	return p.Car()
}

func PairCdr(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("cdr", false, 1, len(args)))
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic(newTypeError("cdr", "pair", args[0]))
	}
	return p.Cdr()
}

func PairSetCar(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("set-car!", false, 2, len(args)))
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic(newTypeError("set-car!", "pair", args[0]))
	}
	p.SetCar(args[1])
	return Unspecified
}

func PairSetCdr(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("set-cdr!", false, 2, len(args)))
	}
	p, ok := args[0].(*Pair)
	if !ok {
		panic(newTypeError("set-cdr!", "pair", args[0]))
	}
	p.SetCdr(args[1])
	return Unspecified
}

func NullPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	return Boolean(IsNull(args[0]))
}

// ListPred reports whether v is a proper list, i.e. a chain of pairs
// terminating in the empty list.
func ListPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := ToValues(args[0])
	return Boolean(ok)
}

func ListConstructor(args []Value) Value {
	return listFrom(args)
}

func ListLength(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("length", false, 1, len(args)))
	}
	vals, ok := ToValues(args[0])
	if !ok {
		panic(newTypeError("length", "list", args[0]))
	}
	return Number(len(vals))
}

func ListAppend(args []Value) Value {
	if len(args) == 0 {
		return EmptyList
	}

	var out []Value
	for _, arg := range args[:len(args)-1] {
		vals, ok := ToValues(arg)
		if !ok {
			panic(newTypeError("append", "list", arg))
		}
		out = append(out, vals...)
	}
	return appendTail(out, args[len(args)-1])
}

func ListReverse(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("reverse", false, 1, len(args)))
	}
	vals, ok := ToValues(args[0])
	if !ok {
		panic(newTypeError("reverse", "list", args[0]))
	}
	reversed := make([]Value, len(vals))
	for i, v := range vals {
		reversed[len(vals)-1-i] = v
	}
	return listFrom(reversed)
}

func ListAssq(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("assq", false, 2, len(args)))
	}

	vals, ok := ToValues(args[1])
	if !ok {
		panic(newTypeError("assq", "list of pairs", args[1]))
	}
	for _, v := range vals {
		p, ok := v.(*Pair)
		if !ok {
			panic(newTypeError("assq", "list of pairs", args[1]))
		}
		if eq(args[0], p.car) {
			return p
		}
	}
	return Boolean(false)
}

func indexArg(proc string, v Value) int {
	n, ok := v.(Number)
	if !ok || !IsInteger(n) || n < 0 {
		panic(newTypeError(proc, "non-negative integer", v))
	}
	return int(n)
}

func ListTail(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("list-tail", false, 2, len(args)))
	}
	vals, ok := ToValues(args[0])
	if !ok {
		panic(newTypeError("list-tail", "list", args[0]))
	}
	i := indexArg("list-tail", args[1])
	if i > len(vals) {
		panic(newTypeError("list-tail", "list with enough elements", args[0]))
	}
	return listFrom(vals[i:])
}

func ListRef(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("list-ref", false, 2, len(args)))
	}
	vals, ok := ToValues(args[0])
	if !ok {
		panic(newTypeError("list-ref", "list", args[0]))
	}
	i := indexArg("list-ref", args[1])
	if i >= len(vals) {
		panic(newTypeError("list-ref", "list with enough elements", args[0]))
	}
	return vals[i]
}

func ListFilter(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("filter", false, 2, len(args)))
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic(newTypeError("filter", "procedure", args[0]))
	}
	vals, ok := ToValues(args[1])
	if !ok {
		panic(newTypeError("filter", "list", args[1]))
	}

	var out []Value
	for _, v := range vals {
		if Truthy(proc.Apply([]Value{v})) {
			out = append(out, v)
		}
	}
	return listFrom(out)
}

func ListForEach(args []Value) Value {
	if len(args) < 2 {
		panic(newArityError("for-each", true, 2, len(args)))
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic(newTypeError("for-each", "procedure", args[0]))
	}

	lists := make([][]Value, len(args)-1)
	shortest := -1
	for i, arg := range args[1:] {
		vals, ok := ToValues(arg)
		if !ok {
			panic(newTypeError("for-each", "list", arg))
		}
		lists[i] = vals
		if shortest == -1 || len(vals) < shortest {
			shortest = len(vals)
		}
	}

	actuals := make([]Value, len(lists))
	for i := 0; i < shortest; i++ {
		for j, vals := range lists {
			actuals[j] = vals[i]
		}
		proc.Apply(actuals)
	}
	return Unspecified
}
