// Package lang is the front-end of a small procedural language. It scans and
// parses source text into an abstract syntax tree and writes the tree in the
// canonical AST text format read by the back-end, or loads such text back
// into a tree.
//
// # Language
//
// A program is a sequence of function definitions and statements:
//
//	int fact(int n) {
//	    int r = 1;
//	    while (n > 1) {
//	        r *= n;
//	        n--;
//	    }
//	    return r;
//	}
//
//	double x = call fact(5) / 2;
//	if (x >= 60) {
//	    print(x);
//	} else if (x < 0) {
//	    x = -x;
//	} else {
//	    x = 0;
//	}
//
// Types are int, char, double and void. Operators, tightest first, are
// unary '-' and '!', then '^', then '*' and '/', then '+' and '-', then the
// comparisons and '&&' and '||', which all share one level. Every binary
// level is left-associative.
//
// # Pipeline
//
// [ParseString] and [ParseReader] run the lexer and the grammar engine and
// return a [Unit]. [Unit.WriteText] and [Compile] write the canonical AST
// text; [Load] reads it back. The first error aborts the unit: lexical and
// grammatical errors are [*diag.SyntaxError] values and a bad AST text header
// is a [*diag.SignatureError], both reachable with errors.As through the
// [Error] returned here.
//
// Each unit is processed by a single goroutine. Independent units share no
// state and may be processed concurrently.
package lang
