// Package bc implements a small desk-calculator language.
//
// Source text is a sequence of statements separated by newlines or
// semicolons. Each statement is an expression over float64 values:
//
//	x = 10
//	x -= 3; x * 2
//	r = sqrt(x^2 + 1)
//	atan2(1, r) % 1
//
// Operators, from loosest to tightest binding, are assignment (= += -= *= /=,
// right-associative), addition and subtraction, multiplication, division and
// modulo, unary + and -, and exponentiation (^, right-associative). So "-2^2"
// is "-(2^2)" and "7 % 3 * 2" is "(7 % 3) * 2". Arithmetic follows IEEE 754:
// dividing by zero gives an infinity rather than an error.
//
// Statements pass through four stages. Parse tokenizes the source and builds a
// tree for each statement; Compile lowers a tree to a Program for a stack
// machine; and a VM runs the program against an Env, which holds variables
// across statements. Interp runs all four stages and reports one Result per
// statement, so that a bad statement does not stop the ones after it.
package bc
