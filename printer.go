// printer.go: display rendering for runtime values.
package lispy

import (
	"strconv"
	"strings"
)

// FormatValue renders a value in its display form: "nil", "t", numbers in
// their natural decimal form (floats always show a fractional part),
// strings bare (no surrounding quotes), symbols with a leading ':', and
// lists as space-joined, parenthesized, recursively rendered elements.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTTrue:
		return "t"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return formatFloat(v.Data.(float64))
	case VTStr:
		return v.Data.(string)
	case VTSymbol:
		return ":" + v.Data.(string)
	case VTList:
		var b strings.Builder
		b.WriteByte('(')
		for i, e := range v.Data.([]Value) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatValue(e))
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "<unknown>"
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// An integral float still shows its fractional part: 1 -> "1.0".
	if !strings.ContainsAny(s, ".eENI") {
		s += ".0"
	}
	return s
}
