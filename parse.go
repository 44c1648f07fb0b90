package bc

import (
	"errors"
	"io"
	"strconv"
)

// Program = { Stmt End } EOF
// Stmt = Expr
// Expr = num | name | Call | Neg | Plus | Binary | Assign | '(' Expr ')'
// Call = name '(' [ Expr { ',' Expr } ] ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Binary = Expr ( '+' | '-' | '*' | '/' | '%' | '^' ) Expr
// Assign = name ( '=' | '+=' | '-=' | '*=' | '/=' ) Expr

// Stmt is one parsed statement, ready to compile.
type Stmt struct {
	// n is the root node of the statement.
	n *node
	// line is the line on which the statement starts.
	line int
}

// Line returns the line on which the statement starts.
func (s *Stmt) Line() int {
	return s.line
}

// String creates a string representation of the parsed statement, with
// alternating round and square brackets grouping each term.
func (s *Stmt) String() string {
	return s.n.String()
}

// Parser parses statements one at a time. It is not safe to use a Parser
// concurrently.
type Parser struct {
	scan scanner
	p    parsectx
}

// NewParser creates a parser over src. The given options are applied in
// order.
func NewParser(src string, opts ...ParseOption) *Parser {
	ps := Parser{
		scan: scanner{toks: lex(src)},
		p:    parsectx{maxdepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		ps.p = opt.parseOption(ps.p)
	}
	return &ps
}

// Next parses the next statement. When the input is exhausted, the result is
// nil, io.EOF. If the statement is invalid, the result is nil and an
// InputError, and the parser has skipped the rest of that statement, so the
// next call continues with the statement after it.
func (ps *Parser) Next() (*Stmt, error) {
	for ps.scan.peek().kind == tokenEnd {
		ps.scan.next()
	}
	start := ps.scan.peek()
	if start.kind == tokenEOF {
		return nil, io.EOF
	}
	ps.p.depth = 0
	n, err := parseterm(&ps.scan, &ps.p, exprprec)
	if err == nil {
		err = finish(ps.scan.peek())
	}
	if err != nil {
		ps.scan.skip()
		return nil, err
	}
	return &Stmt{n: n, line: start.line}, nil
}

// Parse parses every statement in src. Invalid statements are skipped and
// their errors collected, so the result contains all the valid statements in
// order along with one error per invalid statement.
func Parse(src string, opts ...ParseOption) ([]*Stmt, []error) {
	ps := NewParser(src, opts...)
	var stmts []*Stmt
	var errs []error
	for {
		s, err := ps.Next()
		if errors.Is(err, io.EOF) {
			return stmts, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stmts = append(stmts, s)
	}
}

// finish checks the token following a complete statement.
func finish(tok lexToken) error {
	switch tok.kind {
	case tokenEnd, tokenEOF:
		return nil
	case tokenClose:
		return &BracketError{Line: tok.line, Right: tok.text}
	case tokenSep:
		return &SeparatorError{Line: tok.line, Sep: tok.text}
	default:
		panic("bc: statement ended on " + tok.String())
	}
}

// scanner walks a token sequence. It never advances past EOF.
type scanner struct {
	toks []lexToken
	i    int
}

func (s *scanner) peek() lexToken {
	return s.toks[s.i]
}

func (s *scanner) next() lexToken {
	tok := s.toks[s.i]
	if tok.kind != tokenEOF {
		s.i++
	}
	return tok
}

// skip discards tokens up to the end of the current statement, leaving the
// statement terminator or EOF as the next token.
func (s *scanner) skip() {
	for {
		switch s.peek().kind {
		case tokenEnd, tokenEOF:
			return
		}
		s.next()
	}
}

// parseterm parses an expression whose operators all bind more tightly than
// until. It leaves the token that ended the expression unconsumed.
func parseterm(scan *scanner, p *parsectx, until operator) (*node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxdepth {
		return nil, &DepthError{Line: scan.peek().line, Max: p.maxdepth}
	}
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.peek()
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &TokenError{Line: tok.line, Text: tok.text}
			}
			if !prec.moreBinding(until) {
				return n, nil
			}
			if prec.op.isAssign() && n.kind != nodeName {
				return nil, &TargetError{Line: tok.line, Op: tok.text, Target: n.String()}
			}
			scan.next()
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, line: tok.line, args: []*node{n, rhs}}
		case tokenEnd, tokenEOF, tokenClose, tokenSep:
			// End of expression.
			return n, nil
		case tokenInvalid:
			return nil, &LexError{Line: tok.line, Text: tok.text}
		case tokenNum, tokenIdent, tokenOpen:
			return nil, &TokenError{Line: tok.line, Text: tok.text}
		default:
			panic("bc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first operand of an expression, including any prefix
// operators applied to it.
func parselhs(scan *scanner, p *parsectx, until operator) (*node, error) {
	tok := scan.peek()
	switch tok.kind {
	case tokenNum:
		scan.next()
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &NumberError{Line: tok.line, Text: tok.text}
		}
		return &node{kind: nodeNum, num: v, line: tok.line}, nil
	case tokenIdent:
		scan.next()
		if scan.peek().kind != tokenOpen {
			return &node{kind: nodeName, name: tok.text, line: tok.line}, nil
		}
		scan.next()
		args, err := parseargs(scan, p)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.text, line: tok.line, args: args}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &TokenError{Line: tok.line, Text: tok.text, Operand: true}
		}
		scan.next()
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the outer operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if prec.op == nodeNop {
			return rhs, nil
		}
		return &node{kind: prec.op, line: tok.line, args: []*node{rhs}}, nil
	case tokenOpen:
		scan.next()
		if end := scan.peek(); end.kind == tokenClose {
			return nil, &EmptyExpressionError{Line: end.line, End: end.text}
		}
		n, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.peek()
		switch end.kind {
		case tokenClose:
			scan.next()
			return n, nil
		case tokenSep:
			return nil, &SeparatorError{Line: end.line, Sep: end.text}
		default:
			return nil, &BracketError{Line: end.line, Left: tok.text}
		}
	case tokenClose:
		return nil, &EmptyExpressionError{Line: tok.line, End: tok.text}
	case tokenSep:
		return nil, &SeparatorError{Line: tok.line, Sep: tok.text}
	case tokenEnd, tokenEOF:
		return nil, &EmptyExpressionError{Line: tok.line}
	case tokenInvalid:
		return nil, &LexError{Line: tok.line, Text: tok.text}
	default:
		panic("bc: unknown token: " + tok.String())
	}
}

// parseargs parses a function argument list after its open bracket, through
// the close bracket.
func parseargs(scan *scanner, p *parsectx) ([]*node, error) {
	if scan.peek().kind == tokenClose {
		scan.next()
		return nil, nil
	}
	var args []*node
	for {
		arg, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		end := scan.peek()
		switch end.kind {
		case tokenSep:
			scan.next()
		case tokenClose:
			scan.next()
			return args, nil
		default:
			return nil, &BracketError{Line: end.line, Left: "("}
		}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

// moreBinding reports whether p claims the operand between it and than, where
// than is the operator to the left. Equal precedences claim it only when p is
// right-associative.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "=":
		return operator{1, true, nodeAssign}
	case "+=":
		return operator{1, true, nodeAddAssign}
	case "-=":
		return operator{1, true, nodeSubAssign}
	case "*=":
		return operator{1, true, nodeMulAssign}
	case "/=":
		return operator{1, true, nodeDivAssign}
	case "+":
		return operator{3, false, nodeAdd}
	case "-":
		return operator{3, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{9, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{7, true, nodeNop}
	case "-":
		return operator{7, true, nodeNeg}
	default:
		return operator{}
	}
}

// nodeNop marks unary plus in the operator table. It never appears in a tree.
const nodeNop = nodeNone - 1

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
