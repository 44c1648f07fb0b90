package bc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	line int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.line)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenEnd ends a statement. It is produced by a newline or ;.
	tokenEnd
	// tokenNum is a digit-led run of digits and dots.
	tokenNum
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenOp is an operator, including = and compound assignments like +=.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenSep is the function argument separator ,.
	tokenSep
	// tokenInvalid is a character the tokenizer does not recognize. The
	// parser reports it as a LexError.
	tokenInvalid
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the characters which are lexed as operators.
const Operators = "+-*/%^="

// compound contains the operators which combine with a following = into a
// compound assignment.
const compound = "+-*/"

type lexer struct {
	src  string
	pos  int
	line int
	toks []lexToken
}

// lex scans src into a token sequence. The result always ends with exactly one
// EOF token. Token texts are substrings of src; nothing is copied.
//
// Newlines and semicolons produce tokenEnd, but never twice in a row and never
// as the first token, so blank lines do not produce empty statements.
// Unrecognized characters produce tokenInvalid and scanning continues.
func lex(src string) []lexToken {
	l := lexer{src: src, line: 1}
	for l.pos < len(l.src) {
		l.next()
	}
	l.toks = append(l.toks, lexToken{kind: tokenEOF, line: l.line})
	return l.toks
}

func (l *lexer) emit(kind tokenKind, start int) {
	l.toks = append(l.toks, lexToken{text: l.src[start:l.pos], kind: kind, line: l.line})
}

// end emits a statement terminator unless the previous token already ends a
// statement.
func (l *lexer) end(start int) {
	if n := len(l.toks); n == 0 || l.toks[n-1].kind == tokenEnd {
		return
	}
	l.emit(tokenEnd, start)
}

// next scans one token, or skips one whitespace character.
func (l *lexer) next() {
	start := l.pos
	c := l.src[l.pos]
	l.pos++
	switch {
	case c == ' ', c == '\t', c == '\r':
		// skip
	case c == '\n':
		l.end(start)
		l.line++
	case c == ';':
		l.end(start)
	case isDigit(c):
		for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		l.emit(tokenNum, start)
	case isIdentStart(c):
		for l.pos < len(l.src) && (isIdentStart(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		l.emit(tokenIdent, start)
	case c == '(':
		l.emit(tokenOpen, start)
	case c == ')':
		l.emit(tokenClose, start)
	case c == ',':
		l.emit(tokenSep, start)
	case strings.IndexByte(Operators, c) >= 0:
		if strings.IndexByte(compound, c) >= 0 && l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
		}
		l.emit(tokenOp, start)
	default:
		// Take the whole rune so that the error message shows it.
		if c >= utf8.RuneSelf {
			_, sz := utf8.DecodeRuneInString(l.src[start:])
			l.pos = start + sz
		}
		l.emit(tokenInvalid, start)
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
