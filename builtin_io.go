package lispy

import (
	"fmt"
	"strings"
)

// ---- console builtins -----------------------------------------------------
//
// write and read are the only blocking I/O calls in the core. They address
// the interpreter's Stdout/Stdin endpoints, so hosts and tests can redirect
// the console without touching the process streams.

func registerIOBuiltins(ip *Interpreter) {
	// write(x, end?) -> prints x's display form followed by end (default
	// "\n"; nil means no terminator). Returns nil.
	ip.registerNative(func(ip *Interpreter, args []Value) Value {
		if len(args) < 1 || len(args) > 2 {
			failf(ErrInvalidValue, "write expects 1 or 2 arguments, got %d", len(args))
		}
		end := "\n"
		if len(args) == 2 {
			switch args[1].Tag {
			case VTNil:
				end = ""
			case VTStr:
				end = args[1].Data.(string)
			default:
				failf(ErrInvalidValue, "write terminator must be a string or nil, got %q",
					FormatValue(args[1]))
			}
		}
		fmt.Fprint(ip.Stdout, FormatValue(args[0]), end)
		return Nil
	}, "write")

	// read() -> one line of console input, as a string.
	ip.registerNative(func(ip *Interpreter, args []Value) Value {
		if len(args) != 0 {
			failf(ErrInvalidValue, "read expects no arguments, got %d", len(args))
		}
		line, err := ip.Stdin.ReadString('\n')
		if err != nil && line == "" {
			failf(ErrInvalidValue, "read: %v", err)
		}
		return Str(strings.TrimRight(line, "\r\n"))
	}, "read")
}
