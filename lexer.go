// lexer.go: raw text -> nested token tree.
//
// The grammar has no infix syntax or precedence, so tokenization is a
// single linear scan: whitespace separates words, '"' spans are captured
// verbatim as one literal token (no escape processing, no nested quotes),
// and each matched "(...)" pair contributes one level of nesting to the
// output tree. Newlines are normalized to spaces before scanning.
package lispy

import "strings"

// TokenKind distinguishes leaf tokens from nested groups.
type TokenKind int

const (
	TokenWord TokenKind = iota // word or quoted-string literal (quotes kept)
	TokenList                  // nested "(...)" group
)

// Token is one node of the lexer's output tree. Leaves carry Text; list
// tokens carry their ordered children in List.
type Token struct {
	Kind TokenKind
	Text string
	List []Token
}

// Word and Group are convenience constructors for building token trees.
func Word(text string) Token    { return Token{Kind: TokenWord, Text: text} }
func Group(toks ...Token) Token { return Token{Kind: TokenList, List: toks} }

// lexer is an index-based cursor over an immutable input string.
type lexer struct {
	src string
	pos int
}

// Tokenize scans src into a token tree. If src opens with '(' the result
// is the single balanced group it introduces; otherwise the flat remainder
// is split into whitespace-separated words. Reaching end of input inside
// an open group fails with UnbalancedParentheses.
func Tokenize(src string) ([]Token, error) {
	if src == "" {
		return nil, nil
	}
	src = strings.ReplaceAll(src, "\n", " ")

	l := &lexer{src: src}
	if src[0] == '(' {
		group, err := l.scanList()
		if err != nil {
			return nil, err
		}
		return group, nil
	}
	return l.scanWords(), nil
}

func (l *lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte { return l.src[l.pos] }

// scanList consumes a "(...)" group, cursor on the opening parenthesis.
// It returns the group's collected tokens once the matching ')' is found.
func (l *lexer) scanList() ([]Token, error) {
	result := []Token{}
	l.pos++ // opening '('

	for !l.atEnd() {
		switch l.peek() {
		case ')':
			l.pos++
			return result, nil
		case '(':
			nested, err := l.scanList()
			if err != nil {
				return nil, err
			}
			result = append(result, Token{Kind: TokenList, List: nested})
		default:
			result = append(result, l.scanWords()...)
		}
	}

	return nil, &Error{
		Kind: ErrUnbalancedParentheses,
		Msg:  `unbalanced parentheses: expected ")" before end of input`,
	}
}

// scanWords collects leaf tokens up to the next parenthesis or the end of
// input, skipping whitespace. The delimiter itself is not consumed.
func (l *lexer) scanWords() []Token {
	var result []Token

	for !l.atEnd() {
		switch l.peek() {
		case '(', ')':
			return result
		case ' ', '\t', '\r':
			l.pos++
		case '"':
			result = append(result, l.scanLiteral())
		default:
			result = append(result, l.scanWord())
		}
	}
	return result
}

// scanWord consumes a single word up to whitespace or a parenthesis.
func (l *lexer) scanWord() Token {
	start := l.pos
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '(', ')':
			return Word(l.src[start:l.pos])
		}
		l.pos++
	}
	return Word(l.src[start:])
}

// scanLiteral consumes a '"'-delimited span verbatim, keeping both quotes
// in the token text. There is no escaping; the first closing quote ends
// the literal. An unterminated literal runs to the end of input and is
// left for the parser's classifier to reject as a plain symbol.
func (l *lexer) scanLiteral() Token {
	start := l.pos
	l.pos++ // opening '"'
	for !l.atEnd() {
		if l.peek() == '"' {
			l.pos++
			return Word(l.src[start:l.pos])
		}
		l.pos++
	}
	return Word(l.src[start:])
}
