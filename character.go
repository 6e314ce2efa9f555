package arbor

func CharacterPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Character)
	return Boolean(ok)
}

func CharacterToInteger(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("char->integer", false, 1, len(args)))
	}
	c, ok := args[0].(Character)
	if !ok {
		panic(newTypeError("char->integer", "character", args[0]))
	}
	return Number(rune(c))
}

func IntegerToCharacter(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("integer->char", false, 1, len(args)))
	}
	n, ok := args[0].(Number)
	if !ok || !IsInteger(n) {
		panic(newTypeError("integer->char", "integer", args[0]))
	}
	return Character(rune(n))
}
