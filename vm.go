package bc

import (
	"math"
	"strconv"
)

// VM executes programs. It is not safe to use a VM concurrently, but a VM may
// run any number of programs in sequence.
type VM struct {
	stack []float64
	funcs map[string]Func
}

// VMOption is an option used when creating a virtual machine.
type VMOption interface {
	vmOption(*VM)
}

type funcsopt map[string]Func

// Funcs adds builtin functions, replacing any defaults with the same names.
// To disable a default function, map its name to nil.
func Funcs(fns map[string]Func) VMOption {
	return funcsopt(fns)
}

func (o funcsopt) vmOption(vm *VM) {
	for k, v := range o {
		if v == nil {
			delete(vm.funcs, k)
			continue
		}
		vm.funcs[k] = v
	}
}

// NewVM creates a virtual machine with the default builtin functions and
// applies options to it in order.
func NewVM(opts ...VMOption) *VM {
	vm := VM{funcs: DefaultFuncs()}
	for _, opt := range opts {
		opt.vmOption(&vm)
	}
	return &vm
}

// Run executes a program against env. If the program leaves one value on the
// stack, the results are that value and true; if it leaves none, they are 0
// and false.
//
// If an instruction fails, Run stops immediately and returns the error.
// Stores made by earlier instructions remain in env. Any other final stack
// depth indicates a program that Compile would not produce and is reported as
// a StackError.
func (vm *VM) Run(p Program, env *Env) (float64, bool, error) {
	vm.stack = vm.stack[:0]
	for pc, in := range p {
		if need := in.pops(); len(vm.stack) < need {
			return 0, false, &StackError{PC: pc, Op: in.Op, Depth: len(vm.stack)}
		}
		switch in.Op {
		case OpAdd:
			r := vm.pop()
			vm.stack[len(vm.stack)-1] += r
		case OpSub:
			r := vm.pop()
			vm.stack[len(vm.stack)-1] -= r
		case OpMul:
			r := vm.pop()
			vm.stack[len(vm.stack)-1] *= r
		case OpDiv:
			r := vm.pop()
			vm.stack[len(vm.stack)-1] /= r
		case OpMod:
			r := vm.pop()
			l := vm.pop()
			vm.push(math.Mod(l, r))
		case OpPow:
			r := vm.pop()
			l := vm.pop()
			vm.push(math.Pow(l, r))
		case OpNeg:
			vm.stack[len(vm.stack)-1] = -vm.stack[len(vm.stack)-1]
		case OpPush:
			vm.push(in.Num)
		case OpLoad:
			v, ok := env.Lookup(in.Name)
			if !ok {
				return 0, false, &NameError{Name: in.Name}
			}
			vm.push(v)
		case OpStore:
			env.Set(in.Name, vm.pop())
		case OpCall:
			fn := vm.funcs[in.Name]
			if fn == nil {
				return 0, false, &FuncError{Name: in.Name}
			}
			if !fn.CanCall(in.Argc) {
				return 0, false, &ArityError{Name: in.Name, Argc: in.Argc}
			}
			// The first argument is on top.
			args := make([]float64, in.Argc)
			for i := range args {
				args[i] = vm.pop()
			}
			vm.push(fn.Call(args))
		default:
			panic("bc: invalid instruction " + in.String())
		}
	}
	switch len(vm.stack) {
	case 0:
		return 0, false, nil
	case 1:
		return vm.stack[0], true, nil
	default:
		return 0, false, &StackError{PC: -1, Depth: len(vm.stack)}
	}
}

func (vm *VM) push(v float64) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() float64 {
	r := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return r
}

// pops returns the number of operands an instruction consumes.
func (in Instr) pops() int {
	switch in.Op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return 2
	case OpNeg, OpStore:
		return 1
	case OpCall:
		return in.Argc
	default:
		return 0
	}
}

// NameError is an error from a lookup for a variable that has never been
// assigned.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// FuncError is an error from a call to a function that is not a builtin.
type FuncError struct {
	// Name is the function that was called.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}

// ArityError is an error from a call to a builtin with the wrong number of
// arguments.
type ArityError struct {
	// Name is the function that was called.
	Name string
	// Argc is the number of arguments supplied.
	Argc int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Name + " with " + strconv.Itoa(err.Argc) + " arguments"
}

// StackError is an error indicating a program whose stack use is inconsistent,
// either because an instruction needed more operands than were available or
// because the program ended with more than one value.
type StackError struct {
	// PC is the index of the instruction that underflowed, or -1 if the
	// program ran to completion.
	PC int
	// Op is the underflowing operation.
	Op Op
	// Depth is the stack depth at the time of the error.
	Depth int
}

func (err *StackError) Error() string {
	if err.PC < 0 {
		return "inconsistent stack: " + strconv.Itoa(err.Depth) + " values at end of program"
	}
	return "stack underflow: " + err.Op.String() + " at instruction " + strconv.Itoa(err.PC) + " with " + strconv.Itoa(err.Depth) + " values"
}
