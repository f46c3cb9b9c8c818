package lispy

import (
	"math"
	"strconv"
	"strings"
)

// ---- arithmetic and numeric casts ----------------------------------------
//
// Coercion rule: if every operand is an integer the result is an integer;
// otherwise every operand is treated as a float and the result is a float.
// Division is the exception and always yields a float.

func registerMathBuiltins(ip *Interpreter) {
	// +/sum(x...) -> sum of the args.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		if allInts(wantNumbers("sum", args)) {
			var acc int64
			for _, a := range args {
				acc += a.Data.(int64)
			}
			return Int(acc)
		}
		var acc float64
		for _, a := range args {
			acc += a.AsFloat()
		}
		return Float(acc)
	}, "+", "sum")

	// -/sub(x, y?) -> x minus y; with a single argument, negation.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		wantNumbers("sub", args)
		switch len(args) {
		case 1:
			if args[0].Tag == VTInt {
				return Int(-args[0].Data.(int64))
			}
			return Float(-args[0].Data.(float64))
		case 2:
			if allInts(args) {
				return Int(args[0].Data.(int64) - args[1].Data.(int64))
			}
			return Float(args[0].AsFloat() - args[1].AsFloat())
		default:
			failf(ErrInvalidValue, "sub expects 1 or 2 arguments, got %d", len(args))
			return Nil
		}
	}, "-", "sub")

	// */mul(x, y) -> product.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		wantNumbers("mul", args)
		if len(args) != 2 {
			failf(ErrInvalidValue, "mul expects 2 arguments, got %d", len(args))
		}
		if allInts(args) {
			return Int(args[0].Data.(int64) * args[1].Data.(int64))
		}
		return Float(args[0].AsFloat() * args[1].AsFloat())
	}, "*", "mul")

	// //div(x, y) -> quotient; always a float, whatever the operands.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		wantNumbers("div", args)
		if len(args) != 2 {
			failf(ErrInvalidValue, "div expects 2 arguments, got %d", len(args))
		}
		return Float(args[0].AsFloat() / args[1].AsFloat())
	}, "/", "div")

	// pow(x, y) -> x to the power y, under the coercion rule. Integer
	// bases with a negative integer exponent fall back to a float.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		wantNumbers("pow", args)
		if len(args) != 2 {
			failf(ErrInvalidValue, "pow expects 2 arguments, got %d", len(args))
		}
		if allInts(args) {
			exp := args[1].Data.(int64)
			if exp >= 0 {
				return Int(intPow(args[0].Data.(int64), exp))
			}
		}
		return Float(math.Pow(args[0].AsFloat(), args[1].AsFloat()))
	}, "pow")

	// float(x) -> float representation of a number or numeric string.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		x := wantOneArg("float", args)
		switch x.Tag {
		case VTInt:
			return Float(float64(x.Data.(int64)))
		case VTFloat:
			return x
		case VTStr:
			f, err := strconv.ParseFloat(strings.TrimSpace(x.Data.(string)), 64)
			if err != nil {
				failf(ErrInvalidValue, "cannot cast %q to float", x.Data.(string))
			}
			return Float(f)
		default:
			failf(ErrInvalidValue, "cannot cast %q to float", FormatValue(x))
			return Nil
		}
	}, "float")

	// int(x) -> integer representation; floats truncate toward zero.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		x := wantOneArg("int", args)
		switch x.Tag {
		case VTInt:
			return x
		case VTFloat:
			return Int(int64(x.Data.(float64)))
		case VTStr:
			n, err := strconv.ParseInt(strings.TrimSpace(x.Data.(string)), 10, 64)
			if err != nil {
				failf(ErrInvalidValue, "cannot cast %q to int", x.Data.(string))
			}
			return Int(n)
		default:
			failf(ErrInvalidValue, "cannot cast %q to int", FormatValue(x))
			return Nil
		}
	}, "int")

	// str(x) -> display form of x as a string.
	ip.registerNative(func(_ *Interpreter, args []Value) Value {
		x := wantOneArg("str", args)
		if x.Tag == VTStr {
			return x
		}
		return Str(FormatValue(x))
	}, "str")
}

func wantNumbers(name string, args []Value) []Value {
	if len(args) == 0 {
		failf(ErrInvalidValue, "%s expects at least 1 argument", name)
	}
	for _, a := range args {
		if !a.IsNumber() {
			failf(ErrInvalidValue, "%s expects numbers, got %q", name, FormatValue(a))
		}
	}
	return args
}

func wantOneArg(name string, args []Value) Value {
	if len(args) != 1 {
		failf(ErrInvalidValue, "%s expects 1 argument, got %d", name, len(args))
	}
	return args[0]
}

func allInts(args []Value) bool {
	for _, a := range args {
		if a.Tag != VTInt {
			return false
		}
	}
	return true
}

func intPow(base, exp int64) int64 {
	var out int64 = 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			out *= base
		}
		base *= base
	}
	return out
}
