package pegutil

import (
	"github.com/hucsmn/incpeg"
)

// Set matches any single byte of chars.
// Set("") always dismatches.
func Set(chars string) incpeg.Expr {
	choices := make([]incpeg.Expr, len(chars))
	for i := 0; i < len(chars); i++ {
		choices[i] = incpeg.T(chars[i : i+1])
	}
	return incpeg.Alt(choices...)
}

// Range matches any single byte in [lo, hi].
func Range(lo, hi byte) incpeg.Expr {
	if lo > hi {
		lo, hi = hi, lo
	}
	choices := make([]incpeg.Expr, 0, int(hi)-int(lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		choices = append(choices, incpeg.T(string([]byte{byte(c)})))
	}
	return incpeg.Alt(choices...)
}

// Opt matches expr zero or one time.
// The result is the result of expr, or an empty List.
func Opt(expr incpeg.Expr) incpeg.Expr {
	return incpeg.Alt(expr, incpeg.Seq())
}

// Q1 matches expr repeated one or more times.
// The result is a List of the first result and a List of the others.
func Q1(expr incpeg.Expr) incpeg.Expr {
	return incpeg.Seq(expr, incpeg.Q0(expr))
}

// Qnn matches expr repeated exactly n times.
//
// The paramenter n is required to be non-negative,
// or the negative value would be treated as zero.
func Qnn(n int, expr incpeg.Expr) incpeg.Expr {
	if n < 0 {
		n = 0
	}
	exprs := make([]incpeg.Expr, n)
	for i := range exprs {
		exprs[i] = expr
	}
	return incpeg.Seq(exprs...)
}

// Test predicates if expr is matched, consuming no text.
func Test(expr incpeg.Expr) incpeg.Expr {
	return incpeg.Not(incpeg.Not(expr))
}

// Keyword matches word only if it is not followed by follow.
// For example, Keyword("do", ASCIILetterDigit) rejects "done".
func Keyword(word string, follow incpeg.Expr) incpeg.Expr {
	return incpeg.Seq(incpeg.T(word), incpeg.Not(follow))
}

// Tok matches text after any number of spacing.
func Tok(spacing incpeg.Expr, text string) incpeg.Expr {
	return incpeg.Seq(spacing, incpeg.T(text))
}

// J0 matches zero or more items separated by sep.
func J0(item, sep incpeg.Expr) incpeg.Expr {
	return Opt(J1(item, sep))
}

// J1 matches one or more items separated by sep.
func J1(item, sep incpeg.Expr) incpeg.Expr {
	return incpeg.Seq(item, incpeg.Q0(incpeg.Seq(sep, item)))
}
