package mathshell

import (
	"errors"
	"strconv"
	"unicode"
)

// eof is the rune peek returns past the end of the source.
const eof = -1

// Scanner splits a line of text into tokens. The text between tail and head
// is the lexeme currently being scanned.
type Scanner struct {
	src    []rune
	tail   int
	head   int
	tokens []Token
	// num is whether the last token emitted was a number. A minus sign
	// following a number is subtraction; anywhere else, it is a sign.
	num bool
}

// NewScanner creates a scanner over src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: []rune(src)}
}

// Reset prepares the scanner to scan new source text.
func (s *Scanner) Reset(src string) {
	s.src = append(s.src[:0], []rune(src)...)
	s.tail, s.head = 0, 0
	s.tokens = nil
	s.num = false
}

// Scan scans the entire source and returns its tokens in order. Scanning
// stops at the first invalid lexeme, in which case the result is nil and the
// error is a *ScanError. Scanning the same source again gives the same result.
func (s *Scanner) Scan() ([]Token, error) {
	s.tail, s.head = 0, 0
	s.tokens = nil
	s.num = false
	for {
		r := s.advance()
		switch {
		case r == eof:
			return s.tokens, nil
		case r == '+':
			s.emitOp(Plus)
		case r == '-':
			if s.num {
				s.emitOp(Minus)
				continue
			}
			if err := s.scanSigned(); err != nil {
				return nil, err
			}
		case r == '*':
			s.emitOp(Star)
		case r == '/':
			s.emitOp(Slash)
		case r == '(':
			s.emitOp(LParen)
		case r == ')':
			s.emitOp(RParen)
		case isDigit(r):
			if err := s.scanNum(); err != nil {
				return nil, err
			}
		case unicode.IsSpace(r):
			s.consume()
		default:
			return nil, s.error(InvalidCharacter)
		}
	}
}

// Scan is a shortcut to scan a string.
func Scan(src string) ([]Token, error) {
	return NewScanner(src).Scan()
}

// scanSigned scans a number whose minus sign has already been read.
func (s *Scanner) scanSigned() error {
	if !isDigit(s.peek()) {
		// Show what followed the sign in the error.
		s.head = min(s.head+1, len(s.src))
		return s.error(InvalidNumberLiteral)
	}
	return s.scanNum()
}

// scanNum scans the remainder of a numeric literal. The lexeme so far must
// end with a digit.
func (s *Scanner) scanNum() error {
	s.digits()
	if s.peek() == '.' {
		if !isDigit(s.peekNext()) {
			s.head = min(s.head+2, len(s.src))
			return s.error(InvalidNumberLiteral)
		}
		s.head++
		s.digits()
	}
	pos := s.tail + 1
	text := s.consume()
	v, err := strconv.ParseFloat(text, 32)
	// Literals too large for a float32 become infinite. Anything else
	// strconv rejects is malformed.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return &ScanError{Kind: InvalidNumberLiteral, Col: pos, Text: text}
	}
	s.emit(Num(float32(v), pos))
	return nil
}

// digits advances over a run of decimal digits.
func (s *Scanner) digits() {
	for isDigit(s.peek()) {
		s.head++
	}
}

// advance returns the rune at the head and moves past it, or returns eof if
// the head is at the end of the source.
func (s *Scanner) advance() rune {
	if s.head >= len(s.src) {
		return eof
	}
	s.head++
	return s.src[s.head-1]
}

func (s *Scanner) peek() rune {
	if s.head >= len(s.src) {
		return eof
	}
	return s.src[s.head]
}

func (s *Scanner) peekNext() rune {
	if s.head+1 >= len(s.src) {
		return eof
	}
	return s.src[s.head+1]
}

// consume returns the current lexeme and starts a new one at the head.
func (s *Scanner) consume() string {
	text := string(s.src[s.tail:s.head])
	s.tail = s.head
	return text
}

func (s *Scanner) emitOp(op Operator) {
	pos := s.tail + 1
	s.consume()
	s.emit(Op(op, pos))
}

func (s *Scanner) emit(tok Token) {
	s.tokens = append(s.tokens, tok)
	s.num = tok.Kind == NumberToken
}

func (s *Scanner) error(kind ScanErrorKind) error {
	return &ScanError{
		Kind: kind,
		Col:  s.tail + 1,
		Text: string(s.src[s.tail:s.head]),
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
