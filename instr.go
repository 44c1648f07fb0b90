package bc

import (
	"strconv"
	"strings"
)

// Op is a virtual machine operation code.
type Op uint8

const (
	OpNone Op = iota

	OpAdd // pop r, pop l, push l + r
	OpSub // pop r, pop l, push l - r
	OpNeg // pop x, push -x
	OpMul // pop r, pop l, push l * r
	OpDiv // pop r, pop l, push l / r
	OpMod // pop r, pop l, push fmod(l, r)
	OpPow // pop r, pop l, push l ^ r

	OpLoad  // push the variable Name
	OpStore // pop into the variable Name
	OpPush  // push Num
	OpCall  // pop Argc arguments, push the result of the builtin Name
)

var opnames = [...]string{
	OpNone:  "none",
	OpAdd:   "add",
	OpSub:   "sub",
	OpNeg:   "neg",
	OpMul:   "mul",
	OpDiv:   "div",
	OpMod:   "mod",
	OpPow:   "pow",
	OpLoad:  "load",
	OpStore: "store",
	OpPush:  "push",
	OpCall:  "call",
}

func (op Op) String() string {
	if int(op) < len(opnames) {
		return opnames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Instr is a single virtual machine instruction.
type Instr struct {
	Op Op
	// Name is the variable for OpLoad and OpStore and the builtin for OpCall.
	Name string
	// Num is the constant for OpPush.
	Num float64
	// Argc is the number of arguments supplied to OpCall.
	Argc int
}

func (in Instr) String() string {
	switch in.Op {
	case OpLoad, OpStore:
		return in.Op.String() + " " + in.Name
	case OpPush:
		return in.Op.String() + " " + strconv.FormatFloat(in.Num, 'g', -1, 64)
	case OpCall:
		return in.Op.String() + " " + in.Name + "/" + strconv.Itoa(in.Argc)
	default:
		return in.Op.String()
	}
}

// Program is the instruction sequence for one statement, in execution order.
type Program []Instr

// String lists the program one instruction per line.
func (p Program) String() string {
	var b strings.Builder
	for i, in := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(in.String())
	}
	return b.String()
}

// arith maps arithmetic node kinds to their operations.
var arith = [...]Op{
	nodeNeg: OpNeg,
	nodeAdd: OpAdd,
	nodeSub: OpSub,
	nodeMul: OpMul,
	nodeDiv: OpDiv,
	nodeMod: OpMod,
	nodePow: OpPow,
}
