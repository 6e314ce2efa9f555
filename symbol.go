package arbor

func SymbolPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Symbol)
	return Boolean(ok)
}

func SymbolToString(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("symbol->string", false, 1, len(args)))
	}
	sym, ok := args[0].(Symbol)
	if !ok {
		panic(newTypeError("symbol->string", "symbol", args[0]))
	}
	return NewString(string(sym))
}

func StringToSymbol(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("string->symbol", false, 1, len(args)))
	}
	s, ok := args[0].(*String)
	if !ok {
		panic(newTypeError("string->symbol", "string", args[0]))
	}
	return Symbol(s.s)
}
