package lispy

import (
	"errors"
	"reflect"
	"testing"
)

func wantTokens(t *testing.T, src string, want []Token) {
	t.Helper()
	got, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize(%q)\n got %#v\nwant %#v", src, got, want)
	}
}

func Test_Lexer_EmptyInput(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks != nil {
		t.Fatalf("want no tokens, got %#v", toks)
	}
}

func Test_Lexer_BareWords(t *testing.T) {
	wantTokens(t, "foo", []Token{Word("foo")})
	wantTokens(t, "foo bar  baz", []Token{Word("foo"), Word("bar"), Word("baz")})
	wantTokens(t, "  1 2.5 nil", []Token{Word("1"), Word("2.5"), Word("nil")})
}

func Test_Lexer_FlatList(t *testing.T) {
	wantTokens(t, "(+ 1 2)", []Token{Word("+"), Word("1"), Word("2")})
	wantTokens(t, "()", []Token{})
}

func Test_Lexer_NestedLists(t *testing.T) {
	wantTokens(t, "((1 2) ((3 4) 5 6))", []Token{
		Group(Word("1"), Word("2")),
		Group(
			Group(Word("3"), Word("4")),
			Word("5"), Word("6"),
		),
	})
}

func Test_Lexer_NewlinesActAsSpaces(t *testing.T) {
	wantTokens(t, "(+ 1\n   2)", []Token{Word("+"), Word("1"), Word("2")})
}

func Test_Lexer_StringLiteralsKeepQuotes(t *testing.T) {
	wantTokens(t, `(write "hello world")`, []Token{Word("write"), Word(`"hello world"`)})
	// Parentheses inside quotes are literal text, not structure.
	wantTokens(t, `("a (b) c")`, []Token{Word(`"a (b) c"`)})
	// No escape processing: the first closing quote ends the literal.
	wantTokens(t, `"a\" rest"`, []Token{Word(`"a\"`), Word(`rest"`)})
}

func Test_Lexer_UnterminatedStringRunsToEnd(t *testing.T) {
	wantTokens(t, `"abc`, []Token{Word(`"abc`)})
}

func Test_Lexer_UnbalancedParentheses(t *testing.T) {
	for _, src := range []string{"(1", "(+ 1 (2)", "((("} {
		_, err := Tokenize(src)
		var e *Error
		if !errors.As(err, &e) || e.Kind != ErrUnbalancedParentheses {
			t.Fatalf("Tokenize(%q): want UnbalancedParentheses, got %v", src, err)
		}
	}
}

func Test_Lexer_TrailingInputAfterGroupIsDropped(t *testing.T) {
	// A leading group owns the scan; anything past its closing parenthesis
	// never reaches the parser. Callers split scripts before tokenizing.
	wantTokens(t, "(+ 1 2) junk", []Token{Word("+"), Word("1"), Word("2")})
}
