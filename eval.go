package mathshell

import (
	"io"
)

// EvalString scans and evaluates one expression. The error is a *ScanError if
// the text could not be tokenized or a *ParseError if the tokens did not form
// an expression.
func EvalString(src string) (float32, error) {
	tokens, err := Scan(src)
	if err != nil {
		return 0, err
	}
	return Parse(tokens)
}

// Eval reads all of src and evaluates it as a single expression. Line breaks
// are whitespace like any other.
func Eval(src io.Reader) (float32, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	return EvalString(string(b))
}
