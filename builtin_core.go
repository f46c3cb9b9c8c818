package lispy

// ---- core list and comparison builtins ----------------------------------

func registerCoreBuiltins(ip *Interpreter) {
	// list(x...) -> List of the args, or nil if none.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		if len(args) == 0 {
			return Nil
		}
		return ListOf(args...)
	}, "list")

	// car(l) -> first element, or nil for an empty/nil list.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		elems := wantListArg("car", args)
		if len(elems) == 0 {
			return Nil
		}
		return elems[0]
	}, "car")

	// cdr(l) -> remaining elements as a list, or nil if none remain.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		elems := wantListArg("cdr", args)
		if len(elems) <= 1 {
			return Nil
		}
		return ListOf(elems[1:]...)
	}, "cdr")

	// cons(x, l) -> prepend x to l; nil/empty count as the empty list.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		if len(args) != 2 {
			failf(ErrInvalidValue, "cons expects 2 arguments, got %d", len(args))
		}
		var rest []Value
		switch args[1].Tag {
		case VTNil:
		case VTList:
			rest = args[1].Elems()
		default:
			failf(ErrInvalidValue, "cons expects a list, got %q", FormatValue(args[1]))
		}
		out := make([]Value, 0, len(rest)+1)
		out = append(out, args[0])
		out = append(out, rest...)
		return ListOf(out...)
	}, "cons")

	// atom(x) -> t if x is not a list, else nil.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		if len(args) != 1 {
			failf(ErrInvalidValue, "atom expects 1 argument, got %d", len(args))
		}
		if args[0].Tag == VTList {
			return Nil
		}
		return True
	}, "atom")

	// eq(a, b) -> t if structurally equal, else nil.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		if len(args) != 2 {
			failf(ErrInvalidValue, "eq expects 2 arguments, got %d", len(args))
		}
		if Equal(args[0], args[1]) {
			return True
		}
		return Nil
	}, "eq", "=")

	// concat(s...) -> string concatenation.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		out := ""
		for _, a := range args {
			if a.Tag != VTStr {
				failf(ErrInvalidValue, "concat expects strings, got %q", FormatValue(a))
			}
			out += a.Data.(string)
		}
		return Str(out)
	}, "concat")
}

// wantListArg unwraps the single list-or-nil argument of car/cdr.
func wantListArg(name string, args []Value) []Value {
	if len(args) != 1 {
		failf(ErrInvalidValue, "%s expects 1 argument, got %d", name, len(args))
	}
	switch args[0].Tag {
	case VTNil:
		return nil
	case VTList:
		return args[0].Elems()
	default:
		failf(ErrInvalidValue, "%s expects a list, got %q", name, FormatValue(args[0]))
		return nil
	}
}
