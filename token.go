package mathshell

import (
	"strconv"
)

// Token is a single lexical unit of an expression. Kind determines which of
// Value and Op is meaningful.
type Token struct {
	// Kind is the type of token.
	Kind TokenKind
	// Value is the value of a number token, including its sign.
	Value float32
	// Op is the operator of an operator token.
	Op Operator
	// Pos is the 1-based rune column where the token's text begins.
	Pos int
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// NumberToken is a numeric literal.
	NumberToken TokenKind = iota + 1
	// OperatorToken is an operator or bracket.
	OperatorToken
)

func (k TokenKind) String() string {
	switch k {
	case NumberToken:
		return "Number"
	case OperatorToken:
		return "Operator"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a number token at position pos.
func Num(v float32, pos int) Token {
	return Token{Kind: NumberToken, Value: v, Pos: pos}
}

// Op creates an operator token at position pos.
func Op(op Operator, pos int) Token {
	return Token{Kind: OperatorToken, Op: op, Pos: pos}
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case NumberToken:
		s = strconv.FormatFloat(float64(t.Value), 'g', -1, 32)
	case OperatorToken:
		s = t.Op.String()
	default:
		s = "?"
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Pos)
}

// Operator is an arithmetic operator or bracket.
type Operator int8

const (
	Plus Operator = iota + 1
	Minus
	Star
	Slash
	LParen
	RParen
	// Exponentiation has a weight but is never produced by the scanner and
	// never evaluated by the parser.
	Exponentiation
)

// Weight is the precedence tier of the operator. An operator with a greater
// weight is folded before one with a lesser weight. Brackets have the lowest
// weight so that they hold back everything pushed after them. Weight is -1
// for values which are not operators.
func (op Operator) Weight() int {
	switch op {
	case LParen, RParen:
		return 0
	case Plus, Minus:
		return 1
	case Star, Slash:
		return 2
	case Exponentiation:
		return 3
	default:
		return -1
	}
}

func (op Operator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Exponentiation:
		return "^"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}
