// types.go: the runtime value model.
//
// Value is a closed tagged union covering every datum the interpreter
// touches: nil, t, integers, floats, strings, symbols and lists. The tag
// determines which Go type Value.Data holds (see ValueTag). Values are
// immutable except that a list's elements may be replaced by index, and
// replacement is type-checked.
package lispy

// ValueTag enumerates the variants of the value union.
type ValueTag int

const (
	VTNil    ValueTag = iota // no payload
	VTTrue                   // no payload
	VTInt                    // int64
	VTFloat                  // float64
	VTStr                    // string
	VTSymbol                 // string (identifier name)
	VTList                   // []Value
)

func (t ValueTag) String() string {
	switch t {
	case VTNil:
		return "nil"
	case VTTrue:
		return "t"
	case VTInt:
		return "integer"
	case VTFloat:
		return "float"
	case VTStr:
		return "string"
	case VTSymbol:
		return "symbol"
	case VTList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil and True are the canonical singletons. All Nil values compare equal;
// True is disjoint from Nil.
var (
	Nil  = Value{Tag: VTNil}
	True = Value{Tag: VTTrue}
)

// Scalar constructors.
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }
func Sym(name string) Value { return Value{Tag: VTSymbol, Data: name} }

// ListOf builds a list value. Every element must itself be a valid Value;
// a mismatched element aborts with InvalidValue.
func ListOf(elems ...Value) Value {
	for _, e := range elems {
		mustValid(e)
	}
	if elems == nil {
		elems = []Value{}
	}
	return Value{Tag: VTList, Data: elems}
}

// Validate checks that Data matches the representation Tag promises.
// It is the construction-time type assertion of the value model: ListOf
// and SetIndex run it on every element they accept.
func (v Value) Validate() error {
	switch v.Tag {
	case VTNil, VTTrue:
		if v.Data != nil {
			return &Error{Kind: ErrInvalidValue, Msg: v.Tag.String() + " carries no payload"}
		}
		return nil
	case VTInt:
		if _, ok := v.Data.(int64); !ok {
			return &Error{Kind: ErrInvalidValue, Msg: "value is not an integer"}
		}
		return nil
	case VTFloat:
		if _, ok := v.Data.(float64); !ok {
			return &Error{Kind: ErrInvalidValue, Msg: "value is not a float"}
		}
		return nil
	case VTStr:
		if _, ok := v.Data.(string); !ok {
			return &Error{Kind: ErrInvalidValue, Msg: "value is not a string"}
		}
		return nil
	case VTSymbol:
		if _, ok := v.Data.(string); !ok {
			return &Error{Kind: ErrInvalidValue, Msg: "value is not a symbol"}
		}
		return nil
	case VTList:
		elems, ok := v.Data.([]Value)
		if !ok {
			return &Error{Kind: ErrInvalidValue, Msg: "value is not a list"}
		}
		for _, e := range elems {
			if err := e.Validate(); err != nil {
				return err
			}
		}
		return nil
	default:
		return &Error{Kind: ErrInvalidValue, Msg: "unknown value tag"}
	}
}

func mustValid(v Value) {
	if err := v.Validate(); err != nil {
		panic(err.(*Error))
	}
}

// Elems returns the element slice of a list, or nil for anything else.
func (v Value) Elems() []Value {
	if v.Tag != VTList {
		return nil
	}
	return v.Data.([]Value)
}

// SetIndex replaces a list element in place. The replacement is validated
// the same way list construction is.
func (v Value) SetIndex(i int, elem Value) {
	if v.Tag != VTList {
		failf(ErrInvalidValue, "cannot index into %s", v.Tag)
	}
	mustValid(elem)
	elems := v.Data.([]Value)
	if i < 0 || i >= len(elems) {
		failf(ErrInvalidValue, "list index %d out of range", i)
	}
	elems[i] = elem
}

// SymName returns the identifier of a symbol value.
func (v Value) SymName() string { return v.Data.(string) }

// IsNumber reports whether v is an Integer or a Float.
func (v Value) IsNumber() bool { return v.Tag == VTInt || v.Tag == VTFloat }

// AsFloat widens a numeric value to float64.
func (v Value) AsFloat() float64 {
	if v.Tag == VTInt {
		return float64(v.Data.(int64))
	}
	return v.Data.(float64)
}

// Truthy reports the boolean reading of a value: nil and the empty list
// are false, everything else is true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTList:
		return len(v.Data.([]Value)) > 0
	default:
		return true
	}
}

// Equal is structural equality. Integers and floats compare numerically
// across tags; a symbol is never equal to a string with the same text;
// lists compare element-wise.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.Tag == VTInt && b.Tag == VTInt {
			return a.Data.(int64) == b.Data.(int64)
		}
		return a.AsFloat() == b.AsFloat()
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil, VTTrue:
		return true
	case VTStr, VTSymbol:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		ax, bx := a.Data.([]Value), b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
