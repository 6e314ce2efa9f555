package arbor

import "strings"

func StringPred(args []Value) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(*String)
	return Boolean(ok)
}

func StringLength(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("string-length", false, 1, len(args)))
	}
	s, ok := args[0].(*String)
	if !ok {
		panic(newTypeError("string-length", "string", args[0]))
	}
	return Number(len([]rune(s.s)))
}

func StringRef(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("string-ref", false, 2, len(args)))
	}
	s, ok := args[0].(*String)
	if !ok {
		panic(newTypeError("string-ref", "string", args[0]))
	}
	runes := []rune(s.s)
	i := indexArg("string-ref", args[1])
	if i >= len(runes) {
		panic(newTypeError("string-ref", "index within the string", args[1]))
	}
	return Character(runes[i])
}

func StringLt(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asString("string<?", args[i-1]).s < asString("string<?", args[i]).s) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func StringGt(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asString("string>?", args[i-1]).s > asString("string>?", args[i]).s) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func StringLte(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asString("string<=?", args[i-1]).s <= asString("string<=?", args[i]).s) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func StringGte(args []Value) Value {
	for i := 1; i < len(args); i++ {
		if !(asString("string>=?", args[i-1]).s >= asString("string>=?", args[i]).s) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func asString(proc string, v Value) *String {
	s, ok := v.(*String)
	if !ok {
		panic(newTypeError(proc, "string", v))
	}
	return s
}

func StringSubstring(args []Value) Value {
	if len(args) != 3 {
		panic(newArityError("substring", false, 3, len(args)))
	}
	s := asString("substring", args[0])
	runes := []rune(s.s)
	start := indexArg("substring", args[1])
	end := indexArg("substring", args[2])
	if start > len(runes) || end > len(runes) || start > end {
		panic(newTypeError("substring", "valid start/end within the string", args[0]))
	}
	return NewString(string(runes[start:end]))
}

func StringAppend(args []Value) Value {
	var b strings.Builder
	for _, v := range args {
		b.WriteString(asString("string-append", v).s)
	}
	return NewString(b.String())
}

// StringToList implements string->list: the string's characters, in order.
func StringToList(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("string->list", false, 1, len(args)))
	}
	s := asString("string->list", args[0])
	runes := []rune(s.s)
	out := make([]Value, len(runes))
	for i, r := range runes {
		out[i] = Character(r)
	}
	return listFrom(out)
}

// ListToString implements list->string: the inverse of string->list.
func ListToString(args []Value) Value {
	if len(args) != 1 {
		panic(newArityError("list->string", false, 1, len(args)))
	}
	vals, ok := ToValues(args[0])
	if !ok {
		panic(newTypeError("list->string", "list of characters", args[0]))
	}
	runes := make([]rune, len(vals))
	for i, v := range vals {
		c, ok := v.(Character)
		if !ok {
			panic(newTypeError("list->string", "list of characters", args[0]))
		}
		runes[i] = rune(c)
	}
	return NewString(string(runes))
}
