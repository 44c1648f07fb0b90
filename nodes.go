package bc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of a statement.
type node struct {
	kind nodeKind

	// name is the variable name for nodeName and the function name for
	// nodeCall.
	name string
	// num is the value of a nodeNum.
	num float64
	// line is the source line of the token that produced the node.
	line int

	// args holds the operands in source order: one for nodeNeg, two for the
	// binary and assignment kinds, and one per argument for nodeCall.
	args []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeName // push lookup(name)
	nodeCall // call name with args

	nodeNeg // evaluate args[0], then negate
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow

	nodeAssign    // store args[1] into args[0]
	nodeAddAssign // args[0] = args[0] + args[1]
	nodeSubAssign
	nodeMulAssign
	nodeDivAssign
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// symbols gives the source text of each operator node kind.
var symbols = [...]string{
	nodeNeg:       "-",
	nodeAdd:       "+",
	nodeSub:       "-",
	nodeMul:       "*",
	nodeDiv:       "/",
	nodeMod:       "%",
	nodePow:       "^",
	nodeAssign:    "=",
	nodeAddAssign: "+=",
	nodeSubAssign: "-=",
	nodeMulAssign: "*=",
	nodeDivAssign: "/=",
}

// isAssign reports whether k stores into its first operand.
func (k nodeKind) isAssign() bool {
	return nodeAssign <= k && k <= nodeDivAssign
}

// base returns the arithmetic kind that a compound assignment applies. Other
// kinds are returned unchanged.
func (k nodeKind) base() nodeKind {
	switch k {
	case nodeAddAssign:
		return nodeAdd
	case nodeSubAssign:
		return nodeSub
	case nodeMulAssign:
		return nodeMul
	case nodeDivAssign:
		return nodeDiv
	default:
		return k
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n fully parenthesized, alternating round and square brackets at
// each level so that nesting is easy to read.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte(l)
		for i, arg := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			arg.fmt(b, !square)
		}
		b.WriteByte(r)
	case nodeNeg:
		b.WriteByte('-')
		n.args[0].fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow,
		nodeAssign, nodeAddAssign, nodeSubAssign, nodeMulAssign, nodeDivAssign:
		n.args[0].fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(symbols[n.kind])
		b.WriteByte(' ')
		n.args[1].fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.kind.String())
		b.WriteByte('$')
	}
}
