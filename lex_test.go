package bc

import (
	"testing"
	"unsafe"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", []lexToken{{kind: tokenEOF, line: 1}}},
		{" \t \r ", []lexToken{{kind: tokenEOF, line: 1}}},
		{"\n\n", []lexToken{{kind: tokenEOF, line: 3}}},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: "0", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1.2.3", []lexToken{{text: "1.2.3", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1x", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: "x", kind: tokenIdent, line: 1}, {kind: tokenEOF, line: 1}}},
		{"-1", []lexToken{{text: "-", kind: tokenOp, line: 1}, {text: "1", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, line: 1}, {kind: tokenEOF, line: 1}}},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, line: 1}, {kind: tokenEOF, line: 1}}},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, line: 1}, {kind: tokenEOF, line: 1}}},
		{"Ab_c9", []lexToken{{text: "Ab_c9", kind: tokenIdent, line: 1}, {kind: tokenEOF, line: 1}}},
		// operators
		{"+-*/%^=", []lexToken{
			{text: "+", kind: tokenOp, line: 1},
			{text: "-", kind: tokenOp, line: 1},
			{text: "*", kind: tokenOp, line: 1},
			{text: "/", kind: tokenOp, line: 1},
			{text: "%", kind: tokenOp, line: 1},
			{text: "^", kind: tokenOp, line: 1},
			{text: "=", kind: tokenOp, line: 1},
			{kind: tokenEOF, line: 1},
		}},
		{"a+=1", []lexToken{{text: "a", kind: tokenIdent, line: 1}, {text: "+=", kind: tokenOp, line: 1}, {text: "1", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"-=*=/=", []lexToken{{text: "-=", kind: tokenOp, line: 1}, {text: "*=", kind: tokenOp, line: 1}, {text: "/=", kind: tokenOp, line: 1}, {kind: tokenEOF, line: 1}}},
		{"%=", []lexToken{{text: "%", kind: tokenOp, line: 1}, {text: "=", kind: tokenOp, line: 1}, {kind: tokenEOF, line: 1}}},
		{"+ =", []lexToken{{text: "+", kind: tokenOp, line: 1}, {text: "=", kind: tokenOp, line: 1}, {kind: tokenEOF, line: 1}}},
		// brackets and separators
		{"f(a, b)", []lexToken{
			{text: "f", kind: tokenIdent, line: 1},
			{text: "(", kind: tokenOpen, line: 1},
			{text: "a", kind: tokenIdent, line: 1},
			{text: ",", kind: tokenSep, line: 1},
			{text: "b", kind: tokenIdent, line: 1},
			{text: ")", kind: tokenClose, line: 1},
			{kind: tokenEOF, line: 1},
		}},
		// statements
		{"1;2", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: ";", kind: tokenEnd, line: 1}, {text: "2", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"1\n2", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: "\n", kind: tokenEnd, line: 1}, {text: "2", kind: tokenNum, line: 2}, {kind: tokenEOF, line: 2}}},
		{"1\n\n\n2", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: "\n", kind: tokenEnd, line: 1}, {text: "2", kind: tokenNum, line: 4}, {kind: tokenEOF, line: 4}}},
		{"1;\n;2", []lexToken{{text: "1", kind: tokenNum, line: 1}, {text: ";", kind: tokenEnd, line: 1}, {text: "2", kind: tokenNum, line: 2}, {kind: tokenEOF, line: 2}}},
		{"\n1\n", []lexToken{{text: "1", kind: tokenNum, line: 2}, {text: "\n", kind: tokenEnd, line: 2}, {kind: tokenEOF, line: 3}}},
		// erroneous symbols
		{"$", []lexToken{{text: "$", kind: tokenInvalid, line: 1}, {kind: tokenEOF, line: 1}}},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, line: 1}, {text: "$", kind: tokenInvalid, line: 1}, {kind: tokenEOF, line: 1}}},
		{".5", []lexToken{{text: ".", kind: tokenInvalid, line: 1}, {text: "5", kind: tokenNum, line: 1}, {kind: tokenEOF, line: 1}}},
		{"π", []lexToken{{text: "π", kind: tokenInvalid, line: 1}, {kind: tokenEOF, line: 1}}},
		{"[]", []lexToken{{text: "[", kind: tokenInvalid, line: 1}, {text: "]", kind: tokenInvalid, line: 1}, {kind: tokenEOF, line: 1}}},
	}

	for _, c := range cases {
		got := lex(c.src)
		if len(got) != len(c.tokens) {
			t.Errorf("scanning %q: want %d tokens %v, got %d tokens %v", c.src, len(c.tokens), c.tokens, len(got), got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestLexShares(t *testing.T) {
	// Token texts are views of the source, not copies.
	src := "alpha + 12.5"
	base := uintptr(unsafe.Pointer(unsafe.StringData(src)))
	toks := lex(src)
	for _, tok := range toks[:len(toks)-1] {
		p := uintptr(unsafe.Pointer(unsafe.StringData(tok.text)))
		if p < base || p >= base+uintptr(len(src)) {
			t.Errorf("token %v does not point into the source", tok)
		}
	}
}
