package pegutil

import (
	"github.com/hucsmn/incpeg"
)

// Digits.
var (
	OctDigit = Range('0', '7')
	DecDigit = Range('0', '9')
	HexDigit = incpeg.Alt(Range('0', '9'), Range('a', 'f'), Range('A', 'F'))
)

// ASCII bytes.
var (
	ASCIIWhitespace  = Set(" \t\n\r\v\f")
	ASCIIDigit       = Range('0', '9')
	ASCIILower       = Range('a', 'z')
	ASCIIUpper       = Range('A', 'Z')
	ASCIILetter      = incpeg.Alt(ASCIILower, ASCIIUpper)
	ASCIILetterDigit = incpeg.Alt(ASCIILower, ASCIIUpper, ASCIIDigit)

	// AnyByte matches any single byte.
	AnyByte = Range(0x00, 0xff)

	// EOF predicates end of text.
	EOF = incpeg.Not(AnyByte)
)

// Literals
var (
	// Bare integers.
	DecInteger = Q1(DecDigit)
	HexInteger = Q1(HexDigit)

	// Hexadecimal or decimal integer.
	Integer = incpeg.Alt(
		incpeg.Seq(Set("0"), Set("xX"), HexInteger),
		DecInteger)

	// Identifier.
	Identifier = incpeg.Seq(
		incpeg.Alt(ASCIILetter, incpeg.T("_")),
		incpeg.Q0(incpeg.Alt(ASCIILetterDigit, incpeg.T("_"))))

	// Spaces and newlines.
	AnySpaces = incpeg.Q0(ASCIIWhitespace)
	Spaces    = Q1(ASCIIWhitespace)
	Newline   = incpeg.Alt(incpeg.T("\r\n"), Set("\r\n"))

	// Double quoted string.
	String = incpeg.Seq(
		incpeg.T(`"`),
		incpeg.Q0(incpeg.Alt(
			incpeg.Seq(incpeg.T(`\x`), Qnn(2, HexDigit)),
			incpeg.Seq(incpeg.T(`\u`), Qnn(4, HexDigit)),
			incpeg.Seq(incpeg.T(`\`), Set(`abfnrtv\'"`)),
			incpeg.Seq(incpeg.Not(Set("\"\\\n\r")), AnyByte))),
		incpeg.T(`"`))
)

// NoRedundantZeroes matches "0" or a bare integer without leading zeroes.
func NoRedundantZeroes(bareinteger incpeg.Expr) incpeg.Expr {
	return incpeg.Alt(incpeg.Seq(incpeg.Not(incpeg.T("0")), bareinteger), incpeg.T("0"))
}
