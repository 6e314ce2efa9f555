package arbor

func BooleanPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Boolean)
	return Boolean(ok)
}

func BooleanNot(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("not", false, 1, len(args)))
	}
	return Boolean(!Truthy(args[0]))
}
