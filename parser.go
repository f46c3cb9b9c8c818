// parser.go: token tree -> Value AST.
//
// Each leaf token is classified against an ordered table of literal
// grammars, first match wins. The ordering matters: integers must win
// before the symbol catch-all, and the float pattern must not also match
// a bare integer (it requires a decimal point). Unmatched leaves always
// become symbols, so no classification error is reachable here.
package lispy

import (
	"regexp"
	"strconv"
)

// leaf grammars, in classification order
var leafGrammar = []struct {
	re    *regexp.Regexp
	parse func(text string) Value
}{
	{regexp.MustCompile(`^nil$`), func(string) Value { return Nil }},
	{regexp.MustCompile(`^t$`), func(string) Value { return True }},
	{regexp.MustCompile(`^-?\d+$`), func(text string) Value {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			failf(ErrInvalidValue, "integer literal %q out of range", text)
		}
		return Int(n)
	}},
	{regexp.MustCompile(`^-?\d*\.\d+$`), func(text string) Value {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			failf(ErrInvalidValue, "malformed float literal %q", text)
		}
		return Float(f)
	}},
	{regexp.MustCompile(`^"(.*)"$`), func(text string) Value {
		return Str(text[1 : len(text)-1])
	}},
}

// Parse converts a lexer token tree into a Value: a list at the top, or
// Nil for empty input. Nested list tokens recurse, so an empty nested
// group also parses to Nil.
func Parse(tokens []Token) Value {
	if len(tokens) == 0 {
		return Nil
	}

	result := make([]Value, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == TokenList {
			result = append(result, Parse(tok.List))
		} else {
			result = append(result, parseLeaf(tok.Text))
		}
	}
	return ListOf(result...)
}

func parseLeaf(text string) Value {
	for _, g := range leafGrammar {
		if g.re.MatchString(text) {
			return g.parse(text)
		}
	}
	return Sym(text)
}
