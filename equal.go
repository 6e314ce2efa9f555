package arbor

// Eqv implements eq? and eqv? — Scheme grants them separate names but
// permits identical semantics once there is no mutable numeric storage to
// distinguish, which is the case here.
func Eqv(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("eqv?", false, 2, len(args)))
	}
	return Boolean(eqv(args[0], args[1]))
}

func eqv(obj1, obj2 Value) bool {
	if n1, ok := obj1.(Number); ok {
		n2, ok := obj2.(Number)
		return ok && n1 == n2
	}
	if IsNull(obj1) {
		return IsNull(obj2)
	}
	if IsUnspecified(obj1) {
		return IsUnspecified(obj2)
	}
	// obj1 == obj2 here compares interface values: for *Pair and
	// *String that's pointer identity, which is exactly what eq?/eqv?
	// want for those two types. It is also reached for two Procedure
	// values; comparing two ProcedureFunc-backed builtins this way
	// panics, since Go func values are not comparable — an inherited
	// quirk, not something this fallback is meant to paper over.
	return obj1 == obj2
}

func eq(obj1, obj2 Value) bool {
	return eqv(obj1, obj2)
}

func Eq(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("eq?", false, 2, len(args)))
	}
	return Boolean(eq(args[0], args[1]))
}

// Equal implements equal?: structural equality over pairs and strings,
// falling back to eqv? everywhere else. A visited set guards against
// cycles introduced by set-car!/set-cdr!.
func Equal(args []Value) Value {
	if len(args) != 2 {
		panic(newArityError("equal?", false, 2, len(args)))
	}
	return Boolean(equal(args[0], args[1], map[*Pair]struct{}{}))
}

func equal(obj1, obj2 Value, seen map[*Pair]struct{}) bool {
	if eqv(obj1, obj2) {
		return true
	}

	switch obj1 := obj1.(type) {
	case *Pair:
		obj2, ok := obj2.(*Pair)
		if !ok {
			return false
		}
		if _, ok := seen[obj1]; ok {
			return false
		}
		seen[obj1] = struct{}{}
		defer delete(seen, obj1)

		return equal(obj1.car, obj2.car, seen) && equal(obj1.cdr, obj2.cdr, seen)
	case *String:
		obj2, ok := obj2.(*String)
		return ok && obj1.s == obj2.s
	default:
		return false
	}
}
