package bc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a builtin function from reals to a real.
type Func interface {
	// Call evaluates the function. args is in source order and has a length
	// for which CanCall returned true. Call may modify the elements of args.
	// Domain errors are reported as NaN, never as panics.
	Call(args []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	// The virtual machine checks it before popping any arguments, so a call
	// with the wrong count fails with an ArityError and leaves the stack
	// alone.
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	"sin":  Monadic(math.Sin),
	"cos":  Monadic(math.Cos),
	"tan":  Monadic(math.Tan),
	"sqrt": Monadic(math.Sqrt),

	"abs":   Monadic(math.Abs),
	"floor": Monadic(math.Floor),
	"ceil":  Monadic(math.Ceil),

	// Correctly rounded where the arbitrary-precision versions are defined.
	"exp": precise{f: bigfloat.Exp, fallback: math.Exp, domain: expDomain},
	"ln":  precise{f: bigfloat.Log, fallback: math.Log, domain: logDomain},
	"log": precise{f: log10, fallback: math.Log10, domain: logDomain},

	"atan2": Dyadic(math.Atan2),
	"hypot": Dyadic(math.Hypot),
}

// DefaultFuncs returns a copy of the builtin function table.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(args []float64) float64 {
	return m.f(args[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y float64) float64
}

func (d dyadic) Call(args []float64) float64 {
	return d.f(args[0], args[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func. The first argument
// at the call site is x.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic{f}
}

// bigprec is the working precision for precise functions. The extra bits over
// float64's 53 absorb the error of the series evaluation before the final
// rounding.
const bigprec = 80

// precise evaluates a function with package bigfloat and rounds the result to
// float64. Arguments outside domain go to fallback instead, which covers
// infinities, NaN, and results that overflow or are undefined.
type precise struct {
	f        func(z, x *big.Float) *big.Float
	fallback func(float64) float64
	domain   func(float64) bool
}

func (p precise) Call(args []float64) float64 {
	x := args[0]
	if !p.domain(x) {
		return p.fallback(x)
	}
	in := new(big.Float).SetPrec(bigprec).SetFloat64(x)
	out := new(big.Float).SetPrec(bigprec)
	p.f(out, in)
	r, _ := out.Float64()
	return r
}

func (p precise) CanCall(n int) bool {
	return n == 1
}

// expDomain excludes arguments whose exponential is not a finite, normal
// float64.
func expDomain(x float64) bool {
	return -708 < x && x < 709
}

func logDomain(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func log10(z, x *big.Float) *big.Float {
	ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
	bigfloat.Log(z, x)
	bigfloat.Log(ten, ten)
	return z.Quo(z, ten)
}

// constants holds the values defined by the Constants option.
var constants = map[string]float64{
	"pi": bigconst(bigfloat.Pi),
	"e": bigconst(func(z *big.Float) *big.Float {
		one := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
		return bigfloat.Exp(z, one)
	}),
}

func bigconst(f func(z *big.Float) *big.Float) float64 {
	z := new(big.Float).SetPrec(bigprec)
	r, _ := f(z).Float64()
	return r
}
