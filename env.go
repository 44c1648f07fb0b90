package bc

// Env holds variable values that persist from one statement to the next. The
// first store to a name creates it. It is not safe to use an Env
// concurrently.
type Env struct {
	names map[string]float64
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	constopt struct{}
)

func (varopt) envOption()   {}
func (varsopt) envOption()  {}
func (constopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val float64) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]float64) EnvOption {
	return varsopt(vars)
}

// Constants defines pi and e in the environment. They are ordinary variables
// and may be reassigned.
func Constants() EnvOption {
	return constopt{}
}

// NewEnv creates an environment and applies options to it in order.
func NewEnv(opts ...EnvOption) *Env {
	var e Env
	return e.Clone(opts...)
}

// Clone creates a copy of an environment and applies options to it. Stores
// into the copy do not affect the original.
func (e *Env) Clone(opts ...EnvOption) *Env {
	n := Env{names: make(map[string]float64, len(e.names))}
	for k, v := range e.names {
		n.names[k] = v
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		case constopt:
			for k, v := range constants {
				n.names[k] = v
			}
		default:
			panic("bc: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Env) Set(name string, val float64) *Env {
	if e.names == nil {
		e.names = make(map[string]float64)
	}
	e.names[name] = val
	return e
}

// Lookup returns the value of a variable and whether it is defined.
func (e *Env) Lookup(name string) (float64, bool) {
	v, ok := e.names[name]
	return v, ok
}

// Len returns the number of defined variables.
func (e *Env) Len() int {
	return len(e.names)
}

// Names returns the defined variable names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.names))
	for k := range e.names {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
