package bc_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/akgvn/bc"
)

func TestExec(t *testing.T) {
	cases := []struct {
		name string
		src  string
		// want is the value of the last statement.
		want float64
	}{
		{"precedence", "3 + 4 * 2", 11},
		{"parens", "(3 + 4) * 2", 14},
		{"pow-right", "2 ^ 3 ^ 2", 512},
		{"div-left", "8 / 4 / 2", 1},
		{"sub-left", "10 - 4 - 3", 3},
		{"assign-use", "x = 5; x + 1", 6},
		{"sub-assign", "x = 10; x -= 3; x", 7},
		{"add-assign", "x = 10; x += 3; x", 13},
		{"mul-assign", "x = 10; x *= 3; x", 30},
		{"div-assign", "x = 10; x /= 4; x", 2.5},
		{"negneg", "-(-5)", 5},
		{"neg-add", "-3 + 4", 1},
		{"neg-pow", "-2 ^ 2", -4},
		{"plus", "+3", 3},
		{"sqrt", "sqrt(16)", 4},
		{"sin", "sin(0)", 0},
		{"nested-call", "sqrt(abs(-16)) + hypot(3, 4)", 9},
		{"mod-mul", "7 % 3 * 2", 2},
		{"mod-neg", "-7 % 3", -1},
		{"lines", "x = 2\n\n\ny = x * 3\n\ny", 6},
		{"semicolons", ";;x = 1;;; x + 1;", 2},
		{"mixed", "x = 1;\n;\nx", 1},
		{"chain", "a = b = 4; a + b", 8},
		{"assign-value", "y = (x = 2) + 1; x * y", 6},
		{"compound-value", "x = 5; y = x -= 1; x + y", 8},
		{"arg-order", "atan2(x = 1, x = 2); x", 1},
		{"div-zero", "1 / 0", math.Inf(1)},
		{"div-neg-zero", "-1 / 0", math.Inf(-1)},
		{"zero-zero", "0 / 0", math.NaN()},
		{"mod-zero", "5 % 0", math.NaN()},
		{"neg-root", "(-8) ^ (1 / 3)", math.NaN()},
		{"overflow", "10 ^ 400", math.Inf(1)},
		{"huge-literal", "1" + strings.Repeat("0", 400), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rs := bc.NewInterp(nil).Exec(c.src)
			if len(rs) == 0 {
				t.Fatalf("%q produced no results", c.src)
			}
			for _, r := range rs {
				if r.Err != nil {
					t.Fatalf("%q: line %d failed: %v", c.src, r.Line, r.Err)
				}
			}
			r := rs[len(rs)-1]
			if !r.HasValue {
				t.Fatalf("%q: last statement has no value", c.src)
			}
			if !same(r.Value, c.want) {
				t.Errorf("%q: want %v, got %v", c.src, c.want, r.Value)
			}
		})
	}
}

func TestExecResults(t *testing.T) {
	rs := bc.NewInterp(nil).Exec("x = 1\n\nx + 1; 2\n")
	want := []bc.Result{
		{Line: 1},
		{Line: 3, Value: 2, HasValue: true},
		{Line: 3, Value: 2, HasValue: true},
	}
	if len(rs) != len(want) {
		t.Fatalf("want %d results, got %+v", len(want), rs)
	}
	for i, r := range rs {
		if r != want[i] {
			t.Errorf("result %d: want %+v, got %+v", i, want[i], r)
		}
	}
}

func TestExecErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
		line int
	}{
		{"unknown-func", "foo(1)", new(*bc.FuncError), 1},
		{"undefined", "\ny + 1", new(*bc.NameError), 2},
		{"arity", "sqrt(1, 2)", new(*bc.ArityError), 1},
		{"arity0", "sin()", new(*bc.ArityError), 1},
		{"unmatched-close", "1 + 2)", new(*bc.BracketError), 1},
		{"unmatched-open", "(1 + 2", new(*bc.BracketError), 1},
		{"lex", "1 $ 2", new(*bc.LexError), 1},
		{"empty-parens", "()", new(*bc.EmptyExpressionError), 1},
		{"dangling", "1 +", new(*bc.EmptyExpressionError), 1},
		{"target", "1 = 2", new(*bc.TargetError), 1},
		{"target-neg", "-x += 2", new(*bc.TargetError), 1},
		{"mod-assign", "x %= 2", new(*bc.TokenError), 1},
		{"separator", "1, 2", new(*bc.SeparatorError), 1},
		{"two-operands", "1 2", new(*bc.TokenError), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ip := bc.NewInterp(bc.NewEnv(bc.SetVar("x", 3)))
			rs := ip.Exec(c.src + "\nx")
			if len(rs) != 2 {
				t.Fatalf("%q: want 2 results, got %+v", c.src, rs)
			}
			r := rs[0]
			if r.Err == nil {
				t.Fatalf("%q: no error, got %+v", c.src, r)
			}
			if !errors.As(r.Err, c.err) {
				t.Errorf("%q: got %#v, want %T", c.src, r.Err, c.err)
			}
			if r.HasValue {
				t.Errorf("%q: failed statement has value %v", c.src, r.Value)
			}
			if r.Line != c.line {
				t.Errorf("%q: error on line %d, want %d", c.src, r.Line, c.line)
			}
			// The following statement still runs and x is untouched.
			if n := rs[1]; n.Err != nil || !n.HasValue || n.Value != 3 {
				t.Errorf("%q: following statement gave %+v", c.src, n)
			}
		})
	}
}

func TestExecPartialStores(t *testing.T) {
	// Stores before a failing instruction persist.
	ip := bc.NewInterp(nil)
	rs := ip.Exec("(x = 4) + nope")
	if len(rs) != 1 || !errors.As(rs[0].Err, new(*bc.NameError)) {
		t.Fatalf("want one NameError, got %+v", rs)
	}
	if v, ok := ip.Env().Lookup("x"); !ok || v != 4 {
		t.Errorf("x is %v (defined %v), want 4", v, ok)
	}
}

func TestExecPersists(t *testing.T) {
	ip := bc.NewInterp(nil)
	ip.Exec("x = 2")
	ip.Exec("x *= 21")
	rs := ip.Exec("x")
	if len(rs) != 1 || rs[0].Value != 42 {
		t.Errorf("want 42, got %+v", rs)
	}
}

func TestSelfAssign(t *testing.T) {
	vals := []float64{
		0, math.Copysign(0, -1), 1, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, v := range vals {
		env := bc.NewEnv(bc.SetVar("v", v))
		rs := bc.NewInterp(env).Exec("v = v")
		if len(rs) != 1 || rs[0].Err != nil {
			t.Fatalf("v = v with %v gave %+v", v, rs)
		}
		got, _ := env.Lookup("v")
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("v = v changed %v to %v", v, got)
		}
	}
}

func TestExecDepth(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	ip := bc.NewInterp(nil, bc.WithParseOptions(bc.MaxDepth(5)))
	rs := ip.Exec(src)
	if len(rs) != 1 || !errors.As(rs[0].Err, new(*bc.DepthError)) {
		t.Errorf("want DepthError, got %+v", rs)
	}
	rs = bc.NewInterp(nil).Exec(src)
	if len(rs) != 1 || rs[0].Err != nil || rs[0].Value != 1 {
		t.Errorf("default depth rejected %q: %+v", src, rs)
	}
}

func TestExecTrace(t *testing.T) {
	var b bytes.Buffer
	bc.NewInterp(nil, bc.Trace(&b)).Exec("1 + 2")
	out := b.String()
	for _, want := range []string{"tokens:", "ast:", "code:", "push 1", "push 2", "add"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace does not contain %q:\n%s", want, out)
		}
	}
}

func TestExecEmpty(t *testing.T) {
	for _, src := range []string{"", "\n\n", ";;;", " \t\n;"} {
		if rs := bc.NewInterp(nil).Exec(src); len(rs) != 0 {
			t.Errorf("%q gave results %+v", src, rs)
		}
	}
}
