package bc

import (
	"errors"
	"fmt"
	"io"
)

// Result is the outcome of one statement.
type Result struct {
	// Line is the line on which the statement starts.
	Line int
	// Value is the value of an expression statement. It is meaningful only
	// if HasValue is true.
	Value float64
	// HasValue is false for assignments and failed statements.
	HasValue bool
	// Err is the error that stopped the statement, if any. Lex and parse
	// errors implement InputError. Evaluation errors are *NameError,
	// *FuncError, *ArityError, or *StackError.
	Err error
}

// Interp runs source text through the whole pipeline against a persistent
// environment. It is not safe to use an Interp concurrently.
type Interp struct {
	env   *Env
	vm    *VM
	popts []ParseOption
	trace io.Writer
}

// InterpOption is an option used when creating an interpreter.
type InterpOption interface {
	interpOption(*Interp)
}

type (
	parseoptsopt []ParseOption
	vmopt        struct{ vm *VM }
	traceopt     struct{ w io.Writer }
)

func (o parseoptsopt) interpOption(ip *Interp) { ip.popts = append(ip.popts, o...) }
func (o vmopt) interpOption(ip *Interp)        { ip.vm = o.vm }
func (o traceopt) interpOption(ip *Interp)     { ip.trace = o.w }

// WithParseOptions sets options for parsing every source the interpreter
// executes.
func WithParseOptions(opts ...ParseOption) InterpOption {
	return parseoptsopt(opts)
}

// WithVM sets the virtual machine that runs compiled statements, e.g. to use
// a custom set of builtin functions.
func WithVM(vm *VM) InterpOption {
	return vmopt{vm}
}

// Trace writes the tokens of each source and the tree and program of each
// statement to w before running it.
func Trace(w io.Writer) InterpOption {
	return traceopt{w}
}

// NewInterp creates an interpreter that stores variables in env. If env is
// nil, the interpreter uses a new empty environment.
func NewInterp(env *Env, opts ...InterpOption) *Interp {
	if env == nil {
		env = NewEnv()
	}
	ip := Interp{env: env}
	for _, opt := range opts {
		opt.interpOption(&ip)
	}
	if ip.vm == nil {
		ip.vm = NewVM()
	}
	return &ip
}

// Env returns the interpreter's environment.
func (ip *Interp) Env() *Env {
	return ip.env
}

// Exec runs every statement in src in order and returns one result per
// statement. A statement that fails to lex, parse, or evaluate produces a
// result with an error and does not prevent later statements from running.
func (ip *Interp) Exec(src string) []Result {
	ps := NewParser(src, ip.popts...)
	if ip.trace != nil {
		fmt.Fprintf(ip.trace, "tokens: %v\n", ps.scan.toks)
	}
	var results []Result
	for {
		s, err := ps.Next()
		if errors.Is(err, io.EOF) {
			return results
		}
		if err != nil {
			r := Result{Err: err}
			var ie InputError
			if errors.As(err, &ie) {
				r.Line = ie.Pos()
			}
			results = append(results, r)
			continue
		}
		results = append(results, ip.run(s))
	}
}

func (ip *Interp) run(s *Stmt) Result {
	r := Result{Line: s.Line()}
	if ip.trace != nil {
		fmt.Fprintf(ip.trace, "ast: %v\n", s)
	}
	code, err := Compile(s)
	if err != nil {
		r.Err = err
		return r
	}
	if ip.trace != nil {
		fmt.Fprintf(ip.trace, "code:\n%v\n", code)
	}
	r.Value, r.HasValue, r.Err = ip.vm.Run(code, ip.env)
	return r
}
