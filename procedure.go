package arbor

func ProcedurePred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Procedure)
	return Boolean(ok)
}

// ProcedureApply implements apply: (apply proc arg... list) calls proc
// with the fixed arguments followed by the elements of the final list.
func ProcedureApply(args []Value) Value {
	if len(args) < 1 {
		panic(newArityError("apply", true, 1, len(args)))
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic(newTypeError("apply", "procedure", args[0]))
	}

	var actuals []Value
	if len(args) > 1 {
		rest, ok := ToValues(args[len(args)-1])
		if !ok {
			panic(newTypeError("apply", "list", args[len(args)-1]))
		}
		actuals = append(actuals, args[1:len(args)-1]...)
		actuals = append(actuals, rest...)
	}

	return proc.Apply(actuals)
}

// ProcedureMap implements map over one or more lists in parallel,
// stopping at the shortest.
func ProcedureMap(args []Value) Value {
	if len(args) < 2 {
		panic(newArityError("map", true, 2, len(args)))
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic(newTypeError("map", "procedure", args[0]))
	}

	lists := make([][]Value, len(args)-1)
	shortest := -1
	for i, arg := range args[1:] {
		vals, ok := ToValues(arg)
		if !ok {
			panic(newTypeError("map", "list", arg))
		}
		lists[i] = vals
		if shortest == -1 || len(vals) < shortest {
			shortest = len(vals)
		}
	}

	out := make([]Value, shortest)
	actuals := make([]Value, len(lists))
	for i := 0; i < shortest; i++ {
		for j, vals := range lists {
			actuals[j] = vals[i]
		}
		out[i] = proc.Apply(actuals)
	}
	return listFrom(out)
}
