// Package mathshell implements a small floating-point calculator.
//
// Evaluation happens in two passes over one line of input. Scan turns the
// text into a sequence of tokens, and a Parser folds those tokens into a
// single float32 using two stacks, one for operators and one for numbers.
// "2+3*4" is 14, "(2+3)*4" is 20, and "2-3-4" is -5. A minus sign at the start
// of input or following another operator is part of the number after it, so
// "-3+4" is 1 and "3*-4" is -12.
//
// There are no variables or functions. Division by zero follows IEEE 754, so
// "1/0" is +Inf rather than an error.
//
package mathshell
