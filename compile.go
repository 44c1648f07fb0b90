package bc

// lowering describes what a position in the tree needs from the code
// generated for it.
type lowering int8

const (
	// ctxValue positions leave exactly one value on the stack.
	ctxValue lowering = iota
	// ctxEffect is the statement root. Assignments there leave nothing on
	// the stack; anything else leaves its value.
	ctxEffect
	// ctxAssign positions name a storage location to write. Only variable
	// names may appear in them.
	ctxAssign
)

type compiler struct {
	code Program
}

// Compile lowers a parsed statement to a program for the virtual machine.
// Executing the program leaves no value on the stack if the statement is an
// assignment and exactly one value otherwise.
//
// Operands are lowered in source order, so binary operations find their right
// operand on top of the stack. Function arguments are lowered in reverse, so
// the first argument is on top when the call executes.
func Compile(s *Stmt) (Program, error) {
	var c compiler
	if err := c.lower(s.n, ctxEffect); err != nil {
		return nil, err
	}
	return c.code, nil
}

func (c *compiler) emit(in Instr) {
	c.code = append(c.code, in)
}

func (c *compiler) lower(n *node, ctx lowering) error {
	if ctx == ctxAssign && n.kind != nodeName {
		panic("bc: lowering " + n.kind.String() + " as assignment target")
	}
	switch n.kind {
	case nodeNum:
		c.emit(Instr{Op: OpPush, Num: n.num})
	case nodeName:
		if ctx == ctxAssign {
			c.emit(Instr{Op: OpStore, Name: n.name})
		} else {
			c.emit(Instr{Op: OpLoad, Name: n.name})
		}
	case nodeCall:
		for i := len(n.args) - 1; i >= 0; i-- {
			if err := c.lower(n.args[i], ctxValue); err != nil {
				return err
			}
		}
		c.emit(Instr{Op: OpCall, Name: n.name, Argc: len(n.args)})
	case nodeNeg:
		if err := c.lower(n.args[0], ctxValue); err != nil {
			return err
		}
		c.emit(Instr{Op: OpNeg})
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		if err := c.lower(n.args[0], ctxValue); err != nil {
			return err
		}
		if err := c.lower(n.args[1], ctxValue); err != nil {
			return err
		}
		c.emit(Instr{Op: arith[n.kind]})
	case nodeAssign, nodeAddAssign, nodeSubAssign, nodeMulAssign, nodeDivAssign:
		lhs := n.args[0]
		if lhs.kind != nodeName {
			return &TargetError{Line: n.line, Op: symbols[n.kind], Target: lhs.String()}
		}
		if n.kind != nodeAssign {
			// name op= rhs is name = name op rhs.
			if err := c.lower(lhs, ctxValue); err != nil {
				return err
			}
		}
		if err := c.lower(n.args[1], ctxValue); err != nil {
			return err
		}
		if n.kind != nodeAssign {
			c.emit(Instr{Op: arith[n.kind.base()]})
		}
		if err := c.lower(lhs, ctxAssign); err != nil {
			return err
		}
		if ctx == ctxValue {
			// Nested assignments produce the stored value.
			return c.lower(lhs, ctxValue)
		}
	default:
		panic("bc: invalid AST node " + n.kind.String())
	}
	return nil
}
