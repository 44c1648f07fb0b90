package bc

import "strconv"

// LexError is an error indicating a character that is not part of the
// language. It implements InputError.
type LexError struct {
	// Line is the line containing the character.
	Line int
	// Text is the unrecognized character.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Line, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Line
}

// TokenError is an error indicating a token in a position where the grammar
// cannot use it. It implements InputError.
type TokenError struct {
	// Line is the line of the token.
	Line int
	// Text is the token that was not understood.
	Text string
	// Operand is whether the parser expected the start of an operand, as
	// opposed to an infix operator or the end of the statement.
	Operand bool
}

func (err *TokenError) Error() string {
	if err.Operand {
		return errpos(err.Line, "unexpected "+strconv.Quote(err.Text)+" where an operand should be")
	}
	return errpos(err.Line, "unexpected "+strconv.Quote(err.Text)+" after operand")
}

func (err *TokenError) Pos() int {
	return err.Line
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Line is the line where the mismatch was found.
	Line int
	// Left is the opening bracket, or empty if there was none.
	Left string
	// Right is the closing bracket, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Line, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Line, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Line
}

// SeparatorError is an error indicating a comma outside of a function argument
// list. It implements InputError.
type SeparatorError struct {
	// Line is the line of the separator.
	Line int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Line, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Line
}

// EmptyExpressionError is an error indicating a missing operand.
type EmptyExpressionError struct {
	// Line is the line of the token that ended the subexpression.
	Line int
	// End is the token that ended the subexpression. It is empty at the end
	// of a statement.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Line, "no expression at end of statement")
	}
	return errpos(err.Line, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Line
}

// NumberError is an error indicating a number literal that does not denote a
// number, such as 1.2.3.
type NumberError struct {
	// Line is the line of the literal.
	Line int
	// Text is the literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Line, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Line
}

// TargetError is an error indicating an assignment to something other than a
// variable name.
type TargetError struct {
	// Line is the line of the assignment operator.
	Line int
	// Op is the assignment operator.
	Op string
	// Target is the printed form of the expression on the left of Op.
	Target string
}

func (err *TargetError) Error() string {
	return errpos(err.Line, "cannot assign to "+err.Target+" with "+strconv.Quote(err.Op))
}

func (err *TargetError) Pos() int {
	return err.Line
}

// DepthError is an error indicating an expression nested more deeply than the
// parser allows.
type DepthError struct {
	// Line is the line where the limit was reached.
	Line int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Line, "expression nested deeper than "+strconv.Itoa(err.Max)+" levels")
}

func (err *DepthError) Pos() int {
	return err.Line
}

// errpos is a shortcut to create an error message with a line number.
func errpos(line int, msg string) string {
	return "line " + strconv.Itoa(line) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based line number of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*TargetError)(nil)
	_ InputError = (*DepthError)(nil)
)
