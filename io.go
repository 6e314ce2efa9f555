package arbor

import "io"

// ioBuiltins returns display, displayln, and newline bound to a
// particular Context's output sink. Each Context gets its own closures
// over its own writer, so output from one Context never reaches another.
func ioBuiltins(out io.Writer) map[Symbol]Value {
	display := func(args []Value) Value {
		if len(args) != 1 {
			panic(newArityError("display", false, 1, len(args)))
		}
		if err := Display(out, args[0]); err != nil {
			panic(err)
		}
		return Unspecified
	}

	displayln := func(args []Value) Value {
		display(args)
		io.WriteString(out, "\n")
		return Unspecified
	}

	newline := func(args []Value) Value {
		if len(args) != 0 {
			panic(newArityError("newline", false, 0, len(args)))
		}
		io.WriteString(out, "\n")
		return Unspecified
	}

	return map[Symbol]Value{
		"display":   ProcedureFunc(display),
		"displayln": ProcedureFunc(displayln),
		"newline":   ProcedureFunc(newline),
	}
}

// Void implements the void built-in, used for its side-effect-free return
// of Unspecified (e.g. the body of a definition that exists only for its
// defines).
func Void(args []Value) Value {
	return Unspecified
}
