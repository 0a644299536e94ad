package food

import "fmt"

// TokenType identifies a token in a SQL value-tuple literal.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenComma
	TokenSemicolon
	TokenString // single-quoted literal, value holds the unquoted text
	TokenNumber // unsigned integer or decimal, value holds the original text
	TokenError
)

// Token is a single lexed token.
type Token struct {
	Type  TokenType
	Value string
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenString:
		return fmt.Sprintf("string(%q)", t.Value)
	case TokenNumber:
		return fmt.Sprintf("number(%s)", t.Value)
	default:
		return fmt.Sprintf("error(%s)", t.Value)
	}
}
