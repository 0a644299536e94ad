package food

import "fmt"

// Lexer tokenizes one line of a SQL values list. The grammar is deliberately
// tiny: parens, commas, semicolons, single-quoted strings, and unsigned
// numbers. String literals have no escape handling; the next quote always
// ends the literal, matching the shape of the scripts this tool consumes.
type Lexer struct {
	input    string
	position int
}

// NewLexer creates a lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return Token{Type: TokenEOF}
	}

	ch := l.input[l.position]
	switch ch {
	case '(':
		return l.consumeChar(TokenLeftParen)
	case ')':
		return l.consumeChar(TokenRightParen)
	case ',':
		return l.consumeChar(TokenComma)
	case ';':
		return l.consumeChar(TokenSemicolon)
	case '\'':
		return l.readString()
	}

	if ch >= '0' && ch <= '9' {
		return l.readNumber()
	}

	return Token{Type: TokenError, Value: fmt.Sprintf("unexpected character %q", ch)}
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		switch l.input[l.position] {
		case ' ', '\t', '\r', '\n':
			l.position++
		default:
			return
		}
	}
}

func (l *Lexer) consumeChar(tokenType TokenType) Token {
	tok := Token{Type: tokenType, Value: string(l.input[l.position])}
	l.position++
	return tok
}

// readString consumes a single-quoted literal. The literal ends at the next
// quote; an unterminated literal is an error token.
func (l *Lexer) readString() Token {
	start := l.position + 1
	for pos := start; pos < len(l.input); pos++ {
		if l.input[pos] == '\'' {
			value := l.input[start:pos]
			l.position = pos + 1
			return Token{Type: TokenString, Value: value}
		}
	}
	return Token{Type: TokenError, Value: "unterminated string literal"}
}

// readNumber consumes digits with at most one fractional part. The original
// text is preserved so values round-trip without numeric reformatting.
func (l *Lexer) readNumber() Token {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	if l.position < len(l.input) && l.input[l.position] == '.' &&
		l.position+1 < len(l.input) && isDigit(l.input[l.position+1]) {
		l.position++
		for l.position < len(l.input) && isDigit(l.input[l.position]) {
			l.position++
		}
	}
	return Token{Type: TokenNumber, Value: l.input[start:l.position]}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
