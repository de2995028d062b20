package mathshell

import "strconv"

// ScanErrorKind is the reason a scan failed.
type ScanErrorKind int8

const (
	// InvalidNumberLiteral means a numeric literal was malformed, e.g. "1."
	// or a sign with no digits after it.
	InvalidNumberLiteral ScanErrorKind = iota + 1
	// InvalidCharacter means a rune which cannot begin any token.
	InvalidCharacter
)

func (k ScanErrorKind) String() string {
	switch k {
	case InvalidNumberLiteral:
		return "InvalidNumberLiteral"
	case InvalidCharacter:
		return "InvalidCharacter"
	default:
		return "ScanErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ScanError indicates input that could not be split into tokens. It
// implements InputError.
type ScanError struct {
	// Kind is the reason for the error.
	Kind ScanErrorKind
	// Col is the column of the first rune of the offending lexeme.
	Col int
	// Text is the lexeme the scanner was looking at, including the rune that
	// made it invalid.
	Text string
}

func (err *ScanError) Error() string {
	var msg string
	switch err.Kind {
	case InvalidNumberLiteral:
		msg = "invalid number literal"
	case InvalidCharacter:
		msg = "invalid character"
	default:
		msg = "scan error " + err.Kind.String()
	}
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *ScanError) Pos() int {
	return err.Col
}

// Is reports whether target is a *ScanError of the same kind, so that
// errors.Is(err, ErrInvalidCharacter) works regardless of position.
func (err *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	return ok && t.Kind == err.Kind
}

// ParseErrorKind is the reason evaluating a token sequence failed.
type ParseErrorKind int8

const (
	// StackNotEmpty means numbers were left over after evaluation, as in
	// "1 2".
	StackNotEmpty ParseErrorKind = iota + 1
	// NoOperator means a closing bracket had no matching open bracket.
	NoOperator
	// NoNumber means an operator was missing an operand, as in "1+".
	NoNumber
	// IncorrectOperator means an operator that cannot be applied reached
	// the top of the operator stack, e.g. an unclosed bracket.
	IncorrectOperator
)

func (k ParseErrorKind) String() string {
	switch k {
	case StackNotEmpty:
		return "StackNotEmpty"
	case NoOperator:
		return "NoOperator"
	case NoNumber:
		return "NoNumber"
	case IncorrectOperator:
		return "IncorrectOperator"
	default:
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError indicates a token sequence that does not form an expression. It
// implements InputError.
type ParseError struct {
	// Kind is the reason for the error.
	Kind ParseErrorKind
	// Col is the position of the token the parser blames for the error.
	Col int
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Kind {
	case StackNotEmpty:
		msg = "number with no operator"
	case NoOperator:
		msg = "close bracket with no open bracket"
	case NoNumber:
		msg = "missing operand"
	case IncorrectOperator:
		msg = "operator cannot be applied"
	default:
		msg = "parse error " + err.Kind.String()
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// Is reports whether target is a *ParseError of the same kind.
func (err *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == err.Kind
}

// Sentinel errors for use with errors.Is. They carry no position.
var (
	ErrInvalidNumberLiteral error = &ScanError{Kind: InvalidNumberLiteral}
	ErrInvalidCharacter     error = &ScanError{Kind: InvalidCharacter}

	ErrStackNotEmpty     error = &ParseError{Kind: StackNotEmpty}
	ErrNoOperator        error = &ParseError{Kind: NoOperator}
	ErrNoNumber          error = &ParseError{Kind: NoNumber}
	ErrIncorrectOperator error = &ParseError{Kind: IncorrectOperator}
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based column of the
	// rune that starts the offending token.
	Pos() int
}

var (
	_ InputError = (*ScanError)(nil)
	_ InputError = (*ParseError)(nil)
)
