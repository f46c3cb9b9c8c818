// interpreter.go: the tree-walking evaluator.
//
// OVERVIEW
// ========
// An Interpreter owns three pieces of session state:
//   - the global variable table (set/get),
//   - a stack of local scopes, pushed on entry to `let` and to every
//     user-defined function call, popped on exit on every control path,
//   - the function registry: one namespace holding builtins and
//     defun-defined functions. It is disjoint from the variable namespace,
//     so one name may denote both a variable and a function.
//
// Execute is the single entry point and is total over Values: anything it
// cannot evaluate aborts with one of the error kinds in errors.go. The
// internal discipline is the panic/recover one: helpers raise via failf,
// Execute recovers at its surface and returns the *Error. Evaluation is
// single-threaded and purely synchronous; nesting depth of the input
// bounds the Go call stack.
//
// DISPATCH
// --------
//  1. A bare symbol, integer, float or string outside call position is an
//     UndefinedSymbol error. Atoms are meaningful only as literals inside
//     an evaluated argument list or as variable references.
//  2. Nil (and t, and the empty list) evaluate to themselves.
//  3. A non-empty list is a call. Its head must be a symbol naming a
//     special form or a registered function; anything else is
//     UndefinedFunction.
//
// Special forms receive their arguments unevaluated and control their own
// evaluation timing. `let` bindings, `defun` call arguments, `if` branches
// and `set` values all follow the evaluate-if-list rule: a value is
// evaluated only when it is syntactically a list, so bare literals and
// symbols bind as-is. Regular functions receive fully evaluated arguments,
// left-to-right: lists are executed, symbols resolve as variables
// (local scopes innermost first, then global) or, failing that, are
// evaluated as zero-argument calls.
package lispy

import (
	"bufio"
	"io"
	"os"
)

// nativeFn is the implementation signature of a builtin. Arguments arrive
// fully evaluated; failures are raised via failf.
type nativeFn func(ip *Interpreter, args []Value) Value

// function is one registry entry: a builtin (native != nil) or a
// defun-defined function (parameter names + body sequence).
type function struct {
	native nativeFn
	params []string
	body   []Value
}

// Interpreter carries all mutable session state. Construct one per session
// with NewInterpreter; there are no process-wide singletons.
type Interpreter struct {
	globals map[string]Value
	scopes  []map[string]Value
	funcs   map[string]*function

	// Console endpoints for the write/read builtins. Tests swap these for
	// in-memory buffers.
	Stdout io.Writer
	Stdin  *bufio.Reader
}

// NewInterpreter returns a ready interpreter with all builtins registered.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		globals: map[string]Value{},
		funcs:   map[string]*function{},
		Stdout:  os.Stdout,
		Stdin:   bufio.NewReader(os.Stdin),
	}
	registerCoreBuiltins(ip)
	registerMathBuiltins(ip)
	registerIOBuiltins(ip)
	return ip
}

// registerNative installs a builtin under one or more names.
func (ip *Interpreter) registerNative(impl nativeFn, names ...string) {
	fn := &function{native: impl}
	for _, name := range names {
		ip.funcs[name] = fn
	}
}

// EvalSource runs the whole pipeline on one balanced expression string:
// tokenize, parse, execute. Newlines are treated as spaces; the caller is
// responsible for buffering input until parentheses balance. Literal
// classification failures surface here the same way evaluation errors do.
func (ip *Interpreter) EvalSource(src string) (out Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				out, err = Nil, e
				return
			}
			panic(r)
		}
	}()

	tokens, err := Tokenize(src)
	if err != nil {
		return Nil, err
	}
	return ip.Execute(Parse(tokens))
}

// Execute evaluates one Value and returns the result, or the *Error that
// aborted evaluation. A failed call never corrupts session state beyond
// whatever set/defun mutation had already committed.
func (ip *Interpreter) Execute(form Value) (out Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				out, err = Nil, e
				return
			}
			panic(r)
		}
	}()
	return ip.exec(form), nil
}

// exec is the recursive evaluator behind Execute.
func (ip *Interpreter) exec(form Value) Value {
	switch form.Tag {
	case VTNil, VTTrue:
		return form
	case VTSymbol, VTInt, VTFloat, VTStr:
		failf(ErrUndefinedSymbol, "undefined symbol %q", FormatValue(form))
	}

	elems := form.Elems()
	if len(elems) == 0 {
		return Nil
	}

	head := elems[0]
	if head.Tag != VTSymbol {
		failf(ErrUndefinedFunction, "undefined function %q", FormatValue(head))
	}
	return ip.call(head.SymName(), elems[1:])
}

func (ip *Interpreter) call(name string, args []Value) Value {
	switch name {
	case "quote":
		return ip.formQuote(args)
	case "progn":
		return ip.formProgn(args)
	case "let":
		return ip.formLet(args)
	case "defun":
		return ip.formDefun(args)
	case "if":
		return ip.formIf(args)
	case "set":
		return ip.formSet(args)
	case "get":
		return ip.formGet(args)
	}

	fn, ok := ip.funcs[name]
	if !ok {
		failf(ErrUndefinedFunction, "undefined function %q", name)
	}
	if fn.native != nil {
		return fn.native(ip, ip.evalArgs(args))
	}
	return ip.applyUser(name, fn, args)
}

/* ===========================
   Argument evaluation
   =========================== */

// evalArgs evaluates regular-function arguments strictly left-to-right:
// lists are executed, symbols resolve as variables or fall back to a
// zero-argument call, remaining atoms pass through as literals.
func (ip *Interpreter) evalArgs(args []Value) []Value {
	out := make([]Value, len(args))
	for i, arg := range args {
		switch arg.Tag {
		case VTList:
			out[i] = ip.exec(arg)
		case VTSymbol:
			out[i] = ip.evalSymbol(arg)
		default:
			out[i] = arg
		}
	}
	return out
}

func (ip *Interpreter) evalSymbol(sym Value) Value {
	name := sym.SymName()
	if v, ok := ip.lookupVar(name); ok {
		return v
	}
	if _, ok := ip.funcs[name]; ok {
		return ip.call(name, nil) // zero-arg function reference
	}
	failf(ErrUndefinedSymbol, "undefined symbol %q", FormatValue(sym))
	return Nil
}

// evalIfList applies the evaluate-if-list rule shared by let bindings,
// defun call arguments, if branches and set values: only a syntactic list
// is evaluated, bare literals and symbols bind as-is.
func (ip *Interpreter) evalIfList(v Value) Value {
	if v.Tag == VTList {
		return ip.exec(v)
	}
	return v
}

/* ===========================
   Environment
   =========================== */

func (ip *Interpreter) pushScope() {
	ip.scopes = append(ip.scopes, map[string]Value{})
}

func (ip *Interpreter) popScope() {
	ip.scopes = ip.scopes[:len(ip.scopes)-1]
}

func (ip *Interpreter) bindLocal(name string, v Value) {
	ip.scopes[len(ip.scopes)-1][name] = v
}

// lookupVar searches local scopes innermost-to-outermost, then the global
// table.
func (ip *Interpreter) lookupVar(name string) (Value, bool) {
	for i := len(ip.scopes) - 1; i >= 0; i-- {
		if v, ok := ip.scopes[i][name]; ok {
			return v, true
		}
	}
	v, ok := ip.globals[name]
	return v, ok
}

/* ===========================
   Special forms
   =========================== */

func (ip *Interpreter) formQuote(args []Value) Value {
	if len(args) != 1 {
		failf(ErrInvalidValue, "quote expects 1 argument, got %d", len(args))
	}
	return args[0]
}

func (ip *Interpreter) formProgn(args []Value) Value {
	result := Nil
	for _, arg := range args {
		result = ip.exec(arg)
	}
	return result
}

func (ip *Interpreter) formLet(args []Value) Value {
	if len(args) == 0 {
		failf(ErrInvalidValue, "let expects a binding list")
	}

	ip.pushScope()
	defer ip.popScope() // guaranteed on every exit path

	for _, pair := range args[0].Elems() {
		elems := pair.Elems()
		if len(elems) != 2 || elems[0].Tag != VTSymbol {
			failf(ErrInvalidValue, "malformed let binding %q", FormatValue(pair))
		}
		ip.bindLocal(elems[0].SymName(), ip.evalIfList(elems[1]))
	}

	return ip.formProgn(args[1:])
}

func (ip *Interpreter) formDefun(args []Value) Value {
	if len(args) < 3 {
		failf(ErrInvalidValue, "defun expects a name, a parameter list and a body")
	}
	name := args[0]
	if name.Tag != VTSymbol {
		failf(ErrInvalidValue, "defun name must be a symbol, got %q", FormatValue(name))
	}

	params := []string{}
	for _, p := range args[1].Elems() {
		if p.Tag != VTSymbol {
			failf(ErrInvalidValue, "defun parameter must be a symbol, got %q", FormatValue(p))
		}
		params = append(params, p.SymName())
	}

	body := make([]Value, len(args)-2)
	copy(body, args[2:])
	ip.funcs[name.SymName()] = &function{params: params, body: body}
	return name
}

func (ip *Interpreter) formIf(args []Value) Value {
	if len(args) < 2 || len(args) > 3 {
		failf(ErrInvalidValue, "if expects 2 or 3 arguments, got %d", len(args))
	}
	if ip.evalIfList(args[0]).Truthy() {
		return ip.evalIfList(args[1])
	}
	if len(args) == 3 {
		return ip.evalIfList(args[2])
	}
	return Nil
}

func (ip *Interpreter) formSet(args []Value) Value {
	if len(args) != 2 || args[0].Tag != VTSymbol {
		failf(ErrInvalidValue, "set expects a symbol and a value")
	}
	ip.globals[args[0].SymName()] = ip.evalIfList(args[1])
	return Nil
}

func (ip *Interpreter) formGet(args []Value) Value {
	if len(args) != 1 || args[0].Tag != VTSymbol {
		failf(ErrInvalidValue, "get expects a symbol")
	}
	name := args[0].SymName()
	v, ok := ip.globals[name]
	if !ok {
		failf(ErrUndefinedVariable, "undefined variable %q", ":"+name)
	}
	return v
}

/* ===========================
   User-defined function calls
   =========================== */

// applyUser invokes a defun-defined function: a fresh local scope per
// call, each argument bound under the evaluate-if-list rule, the body run
// as progn inside that scope. Scopes are independent between calls; there
// is no lexical capture of the definition environment.
func (ip *Interpreter) applyUser(name string, fn *function, args []Value) Value {
	if len(args) != len(fn.params) {
		failf(ErrInvalidValue, "function %q expects %d arguments, got %d",
			name, len(fn.params), len(args))
	}

	bound := make([]Value, len(args))
	for i, arg := range args {
		bound[i] = ip.evalIfList(arg)
	}

	ip.pushScope()
	defer ip.popScope() // guaranteed on every exit path

	for i, param := range fn.params {
		ip.bindLocal(param, bound[i])
	}
	return ip.formProgn(fn.body)
}
