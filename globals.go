package arbor

// preludeBindings is the read-only template for every built-in except the
// I/O primitives, which are bound per-Context (see ioBuiltins) so that
// independent Contexts never share an output sink. NewContext copies this
// map into a fresh root frame; mutating one Context's root bindings never
// affects another's.
var preludeBindings = map[Symbol]Value{
	// equality predicates
	"eqv?":   ProcedureFunc(Eqv),
	"eq?":    ProcedureFunc(Eq),
	"equal?": ProcedureFunc(Equal),

	// numerics
	"number?":   ProcedureFunc(NumberPred),
	"integer?":  ProcedureFunc(IntegerPred),
	"=":         ProcedureFunc(NumberEq),
	"<":         ProcedureFunc(NumberLt),
	">":         ProcedureFunc(NumberGt),
	"<=":        ProcedureFunc(NumberLte),
	">=":        ProcedureFunc(NumberGte),
	"+":         ProcedureFunc(NumberAdd),
	"*":         ProcedureFunc(NumberMul),
	"-":         ProcedureFunc(NumberSub),
	"/":         ProcedureFunc(NumberDiv),
	"quotient":  ProcedureFunc(NumberQuotient),
	"remainder": ProcedureFunc(NumberRemainder),
	"modulo":    ProcedureFunc(NumberModulo),
	"abs":       ProcedureFunc(NumberAbs),
	"min":       ProcedureFunc(NumberMin),
	"max":       ProcedureFunc(NumberMax),
	"expt":      ProcedureFunc(NumberExpt),
	"sqrt":      ProcedureFunc(NumberSqrt),
	"floor":     ProcedureFunc(NumberFloor),
	"ceiling":   ProcedureFunc(NumberCeiling),
	"round":     ProcedureFunc(NumberRound),
	"truncate":  ProcedureFunc(NumberTruncate),
	"zero?":     ProcedureFunc(NumberZeroPred),
	"positive?": ProcedureFunc(NumberPositivePred),
	"negative?": ProcedureFunc(NumberNegativePred),
	"add1":      ProcedureFunc(NumberAdd1),
	"sub1":      ProcedureFunc(NumberSub1),

	// booleans
	"boolean?": ProcedureFunc(BooleanPred),
	"not":      ProcedureFunc(BooleanNot),

	// pairs and lists
	"pair?":     ProcedureFunc(PairPred),
	"cons":      ProcedureFunc(PairCons),
	"car":       ProcedureFunc(PairCar),
	"cdr":       ProcedureFunc(PairCdr),
	"set-car!":  ProcedureFunc(PairSetCar),
	"set-cdr!":  ProcedureFunc(PairSetCdr),
	"null?":     ProcedureFunc(NullPred),
	"list?":     ProcedureFunc(ListPred),
	"list":      ProcedureFunc(ListConstructor),
	"length":    ProcedureFunc(ListLength),
	"append":    ProcedureFunc(ListAppend),
	"reverse":   ProcedureFunc(ListReverse),
	"assq":      ProcedureFunc(ListAssq),
	"list-tail": ProcedureFunc(ListTail),
	"list-ref":  ProcedureFunc(ListRef),
	"filter":    ProcedureFunc(ListFilter),
	"for-each":  ProcedureFunc(ListForEach),

	// symbols
	"symbol?":        ProcedureFunc(SymbolPred),
	"symbol->string": ProcedureFunc(SymbolToString),
	"string->symbol": ProcedureFunc(StringToSymbol),

	// strings
	"string?":       ProcedureFunc(StringPred),
	"string-length": ProcedureFunc(StringLength),
	"string-ref":    ProcedureFunc(StringRef),
	"string<?":      ProcedureFunc(StringLt),
	"string>?":      ProcedureFunc(StringGt),
	"string<=?":     ProcedureFunc(StringLte),
	"string>=?":     ProcedureFunc(StringGte),
	"string-append": ProcedureFunc(StringAppend),
	"substring":     ProcedureFunc(StringSubstring),
	"string->list":  ProcedureFunc(StringToList),
	"list->string":  ProcedureFunc(ListToString),

	// characters
	"char?":         ProcedureFunc(CharacterPred),
	"char->integer": ProcedureFunc(CharacterToInteger),
	"integer->char": ProcedureFunc(IntegerToCharacter),

	// procedures
	"procedure?": ProcedureFunc(ProcedurePred),
	"apply":      ProcedureFunc(ProcedureApply),
	"map":        ProcedureFunc(ProcedureMap),

	// control
	"void":  ProcedureFunc(Void),
	"error": ProcedureFunc(UserRaise),
}
