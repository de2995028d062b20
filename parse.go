package mathshell

// Parser evaluates a sequence of tokens using an operator stack and a number
// stack. A Parser is single-use; create a new one for each sequence.
type Parser struct {
	tokens []Token
	// next is the index of the next token to read.
	next int
	ops  []opEntry
	nums []numEntry
}

// opEntry is an operator waiting on the operator stack.
type opEntry struct {
	op  Operator
	pos int
}

// numEntry is a value on the number stack. pos is the position of the token
// that produced it, or of its leftmost operand if it is the result of a fold.
type numEntry struct {
	v   float32
	pos int
}

// NewParser creates a parser that evaluates tokens. The parser does not
// modify the slice.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse evaluates the parser's tokens to a single number. If the tokens do not
// form a valid expression, the error is a *ParseError describing the first
// problem encountered.
func (p *Parser) Parse() (float32, error) {
	for p.next < len(p.tokens) {
		tok := p.tokens[p.next]
		p.next++
		switch tok.Kind {
		case NumberToken:
			p.nums = append(p.nums, numEntry{v: tok.Value, pos: tok.Pos})
		case OperatorToken:
			if err := p.operator(tok); err != nil {
				return 0, err
			}
		default:
			return 0, &ParseError{Kind: IncorrectOperator, Col: tok.Pos}
		}
	}
	for len(p.ops) > 0 {
		if err := p.fold(); err != nil {
			return 0, err
		}
	}
	if len(p.nums) == 0 {
		return 0, &ParseError{Kind: NoNumber, Col: p.end()}
	}
	r := p.nums[len(p.nums)-1]
	p.nums = p.nums[:len(p.nums)-1]
	if len(p.nums) != 0 {
		return 0, &ParseError{Kind: StackNotEmpty, Col: r.pos}
	}
	return r.v, nil
}

// Parse is a shortcut to evaluate a token sequence.
func Parse(tokens []Token) (float32, error) {
	return NewParser(tokens).Parse()
}

// operator handles an operator token.
func (p *Parser) operator(tok Token) error {
	switch tok.Op {
	case LParen:
		p.push(tok)
		return nil
	case RParen:
		return p.closeBracket(tok)
	}
	if len(p.ops) == 0 || p.ops[len(p.ops)-1].op.Weight() < tok.Op.Weight() {
		p.push(tok)
		return nil
	}
	// Only the top operator is folded before pushing the new one.
	if err := p.fold(); err != nil {
		return err
	}
	p.push(tok)
	return nil
}

// closeBracket folds operators back to the nearest open bracket and discards
// the bracket.
func (p *Parser) closeBracket(tok Token) error {
	for {
		if len(p.ops) == 0 {
			return &ParseError{Kind: NoOperator, Col: tok.Pos}
		}
		if p.ops[len(p.ops)-1].op == LParen {
			p.ops = p.ops[:len(p.ops)-1]
			return nil
		}
		if err := p.fold(); err != nil {
			return err
		}
	}
}

// fold pops the top operator and applies it to the top two numbers, pushing
// the result. The operator stack must not be empty.
func (p *Parser) fold() error {
	e := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	if len(p.nums) < 2 {
		return &ParseError{Kind: NoNumber, Col: e.pos}
	}
	second := p.nums[len(p.nums)-1]
	first := p.nums[len(p.nums)-2]
	p.nums = p.nums[:len(p.nums)-2]
	var r float32
	switch e.op {
	case Plus:
		r = first.v + second.v
	case Minus:
		r = first.v - second.v
	case Star:
		r = first.v * second.v
	case Slash:
		r = first.v / second.v
	default:
		return &ParseError{Kind: IncorrectOperator, Col: e.pos}
	}
	p.nums = append(p.nums, numEntry{v: r, pos: first.pos})
	return nil
}

func (p *Parser) push(tok Token) {
	p.ops = append(p.ops, opEntry{op: tok.Op, pos: tok.Pos})
}

// end returns the position just past the last token.
func (p *Parser) end() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Pos + 1
}
