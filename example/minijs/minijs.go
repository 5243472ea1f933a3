// Package minijs is a grammar for a small subset of JavaScript, written
// with incpeg and pegutil.
//
// It recognizes variable declarations, functions, if/else, while and
// do/while loops, returns, blocks, calls, member access, the usual binary
// and unary operators, conditional and assignment expressions, and number,
// string, array and object literals. Statements may end at a newline, before
// a closing brace or at end of text instead of a semicolon.
package minijs

import (
	"sync"

	"github.com/hucsmn/incpeg"
	"github.com/hucsmn/incpeg/pegutil"
)

// Reserved words, never identifiers.
var Reserved = []string{
	"break", "case", "catch", "continue", "debugger", "default", "delete",
	"do", "else", "false", "finally", "for", "function", "if", "in",
	"instanceof", "new", "null", "return", "switch", "this", "throw",
	"true", "try", "typeof", "var", "void", "while", "with",
}

var (
	grammar     *incpeg.Grammar
	grammarOnce sync.Once
)

// Grammar returns the grammar built from Rules, shared by every caller.
func Grammar() *incpeg.Grammar {
	grammarOnce.Do(func() {
		grammar = incpeg.MustGrammar(Rules())
	})
	return grammar
}

func tok(text string) incpeg.Expr {
	return pegutil.Tok(incpeg.V("spacing"), text)
}

func kw(word string) incpeg.Expr {
	return incpeg.Seq(incpeg.V("spacing"), pegutil.Keyword(word, incpeg.V("identifierPart")))
}

func list(item incpeg.Expr) incpeg.Expr {
	return pegutil.J0(item, tok(","))
}

// Rules returns a fresh rule set of the grammar.
func Rules() map[string]incpeg.Expr {
	reserved := make([]incpeg.Expr, len(Reserved))
	for i, word := range Reserved {
		reserved[i] = pegutil.Keyword(word, incpeg.V("identifierPart"))
	}

	return pegutil.With(map[string]incpeg.Expr{
		incpeg.StartRule: incpeg.Seq(incpeg.V("sourceElements"), incpeg.V("spacing")),

		// Lexical rules.
		"spacing":         incpeg.Q0(incpeg.Alt(pegutil.ASCIIWhitespace, incpeg.V("comment"))),
		"lineSpacing":     incpeg.Q0(incpeg.Alt(pegutil.Set(" \t"), incpeg.V("blockComment"))),
		"comment":         incpeg.Alt(incpeg.V("lineComment"), incpeg.V("blockComment")),
		"lineComment":     incpeg.Seq(incpeg.T("//"), incpeg.Q0(incpeg.Seq(incpeg.Not(incpeg.V("Newline")), incpeg.V("AnyByte")))),
		"blockComment":    incpeg.Seq(incpeg.T("/*"), incpeg.Q0(incpeg.Seq(incpeg.Not(incpeg.T("*/")), incpeg.V("AnyByte"))), incpeg.T("*/")),
		"identifierStart": incpeg.Alt(pegutil.ASCIILetter, pegutil.Set("_$")),
		"identifierPart":  incpeg.Alt(pegutil.ASCIILetterDigit, pegutil.Set("_$")),
		"identifierName":  incpeg.Seq(incpeg.V("spacing"), incpeg.V("name")),
		"name":            incpeg.Seq(incpeg.V("identifierStart"), incpeg.Q0(incpeg.V("identifierPart"))),
		"reservedWord":    incpeg.Alt(reserved...),
		"identifier":      incpeg.Seq(incpeg.V("spacing"), incpeg.Not(incpeg.V("reservedWord")), incpeg.V("name")),
		"eos": incpeg.Alt(
			tok(";"),
			incpeg.Seq(incpeg.V("lineSpacing"), incpeg.Alt(incpeg.V("Newline"), incpeg.V("lineComment"))),
			pegutil.Test(tok("}")),
			incpeg.Seq(incpeg.V("spacing"), incpeg.V("EOF"))),

		// Literals.
		"literal": incpeg.Alt(
			kw("null"), kw("true"), kw("false"),
			incpeg.V("numericLiteral"), incpeg.V("stringLiteral")),
		"numericLiteral": incpeg.Seq(incpeg.V("spacing"), incpeg.V("Integer"), incpeg.Not(incpeg.V("identifierPart"))),
		"stringLiteral": incpeg.Seq(incpeg.V("spacing"), incpeg.Alt(
			incpeg.V("String"),
			incpeg.Seq(incpeg.T("'"), incpeg.Q0(incpeg.Alt(
				incpeg.Seq(incpeg.T(`\`), incpeg.V("AnyByte")),
				incpeg.Seq(incpeg.Not(pegutil.Set("'\\\n\r")), incpeg.V("AnyByte")))),
				incpeg.T("'")))),
		"arrayLiteral":       incpeg.Seq(tok("["), list(incpeg.V("assignmentExpression")), tok("]")),
		"objectLiteral":      incpeg.Seq(tok("{"), list(incpeg.V("propertyAssignment")), tok("}")),
		"propertyAssignment": incpeg.Seq(incpeg.V("propertyName"), tok(":"), incpeg.V("assignmentExpression")),
		"propertyName":       incpeg.Alt(incpeg.V("identifierName"), incpeg.V("stringLiteral"), incpeg.V("numericLiteral")),

		// Expressions.
		"primaryExpression": incpeg.Alt(
			kw("this"),
			incpeg.V("identifier"),
			incpeg.V("literal"),
			incpeg.V("arrayLiteral"),
			incpeg.V("objectLiteral"),
			incpeg.Seq(tok("("), incpeg.V("expression"), tok(")"))),
		"functionExpression": incpeg.Seq(kw("function"), pegutil.Opt(incpeg.V("identifier")), incpeg.V("functionRest")),
		"memberExpression": incpeg.Seq(
			incpeg.Alt(
				incpeg.V("primaryExpression"),
				incpeg.V("functionExpression"),
				incpeg.Seq(kw("new"), incpeg.V("memberExpression"), incpeg.V("arguments"))),
			incpeg.Q0(incpeg.V("memberSuffix"))),
		"memberSuffix": incpeg.Alt(
			incpeg.Seq(tok("["), incpeg.V("expression"), tok("]")),
			incpeg.Seq(tok("."), incpeg.V("identifierName"))),
		"newExpression":  incpeg.Alt(incpeg.V("memberExpression"), incpeg.Seq(kw("new"), incpeg.V("newExpression"))),
		"callExpression": incpeg.Seq(incpeg.V("memberExpression"), incpeg.V("arguments"), incpeg.Q0(incpeg.Alt(incpeg.V("arguments"), incpeg.V("memberSuffix")))),
		"arguments":      incpeg.Seq(tok("("), list(incpeg.V("assignmentExpression")), tok(")")),
		"leftHandSideExpression": incpeg.Alt(incpeg.V("callExpression"), incpeg.V("newExpression")),
		"postfixExpression": incpeg.Seq(
			incpeg.V("leftHandSideExpression"),
			pegutil.Opt(incpeg.Seq(incpeg.V("lineSpacing"), incpeg.Alt(incpeg.T("++"), incpeg.T("--"))))),
		"unaryExpression": incpeg.Alt(
			incpeg.Seq(incpeg.V("unaryOperator"), incpeg.V("unaryExpression")),
			incpeg.V("postfixExpression")),
		"unaryOperator": incpeg.Alt(
			kw("delete"), kw("void"), kw("typeof"),
			tok("++"), tok("--"),
			incpeg.Seq(tok("+"), incpeg.Not(incpeg.T("="))),
			incpeg.Seq(tok("-"), incpeg.Not(incpeg.T("="))),
			tok("~"),
			incpeg.Seq(tok("!"), incpeg.Not(incpeg.T("=")))),
		"multiplicativeExpression": binary(incpeg.V("unaryExpression"), "*", "/", "%"),
		"additiveExpression":       binary(incpeg.V("multiplicativeExpression"), "+", "-"),
		"relationalExpression": incpeg.Seq(
			incpeg.V("additiveExpression"),
			incpeg.Q0(incpeg.Seq(incpeg.V("relationalOperator"), incpeg.V("additiveExpression")))),
		"relationalOperator": incpeg.Alt(
			tok("<="), tok(">="),
			tok("<"), tok(">"),
			kw("instanceof"), kw("in")),
		"equalityExpression": incpeg.Seq(
			incpeg.V("relationalExpression"),
			incpeg.Q0(incpeg.Seq(incpeg.Alt(tok("==="), tok("!=="), tok("=="), tok("!=")), incpeg.V("relationalExpression")))),
		"logicalAndExpression": incpeg.Seq(
			incpeg.V("equalityExpression"),
			incpeg.Q0(incpeg.Seq(tok("&&"), incpeg.V("equalityExpression")))),
		"logicalOrExpression": incpeg.Seq(
			incpeg.V("logicalAndExpression"),
			incpeg.Q0(incpeg.Seq(tok("||"), incpeg.V("logicalAndExpression")))),
		"conditionalExpression": incpeg.Seq(
			incpeg.V("logicalOrExpression"),
			pegutil.Opt(incpeg.Seq(tok("?"), incpeg.V("assignmentExpression"), tok(":"), incpeg.V("assignmentExpression")))),
		"assignmentExpression": incpeg.Alt(
			incpeg.Seq(incpeg.V("leftHandSideExpression"), incpeg.V("assignmentOperator"), incpeg.V("assignmentExpression")),
			incpeg.V("conditionalExpression")),
		"assignmentOperator": incpeg.Alt(
			incpeg.Seq(tok("="), incpeg.Not(incpeg.T("="))),
			tok("+="), tok("-="), tok("*="), tok("/="), tok("%=")),
		"expression": pegutil.J1(incpeg.V("assignmentExpression"), tok(",")),

		// Statements.
		"sourceElements": incpeg.Q0(incpeg.V("statement")),
		"statement": incpeg.Alt(
			incpeg.V("block"),
			incpeg.V("variableStatement"),
			incpeg.V("emptyStatement"),
			incpeg.V("ifStatement"),
			incpeg.V("doStatement"),
			incpeg.V("whileStatement"),
			incpeg.V("returnStatement"),
			incpeg.V("functionDeclaration"),
			incpeg.V("expressionStatement")),
		"block":               incpeg.Seq(tok("{"), incpeg.V("sourceElements"), tok("}")),
		"variableStatement":   incpeg.Seq(kw("var"), pegutil.J1(incpeg.V("variableDeclaration"), tok(",")), incpeg.V("eos")),
		"variableDeclaration": incpeg.Seq(incpeg.V("identifier"), pegutil.Opt(incpeg.Seq(tok("="), incpeg.Not(incpeg.T("=")), incpeg.V("assignmentExpression")))),
		"emptyStatement":      tok(";"),
		"ifStatement": incpeg.Seq(
			kw("if"), tok("("), incpeg.V("expression"), tok(")"), incpeg.V("statement"),
			pegutil.Opt(incpeg.Seq(kw("else"), incpeg.V("statement")))),
		"doStatement": incpeg.Seq(
			kw("do"), incpeg.V("statement"),
			kw("while"), tok("("), incpeg.V("expression"), tok(")"), incpeg.V("eos")),
		"whileStatement":  incpeg.Seq(kw("while"), tok("("), incpeg.V("expression"), tok(")"), incpeg.V("statement")),
		"returnStatement": incpeg.Seq(kw("return"), pegutil.Opt(incpeg.Seq(incpeg.V("lineSpacing"), incpeg.Not(incpeg.V("Newline")), incpeg.V("expression"))), incpeg.V("eos")),
		"functionDeclaration": incpeg.Seq(kw("function"), incpeg.V("identifier"), incpeg.V("functionRest")),
		"functionRest": incpeg.Seq(
			tok("("), list(incpeg.V("identifier")), tok(")"),
			tok("{"), incpeg.V("sourceElements"), tok("}")),
		"expressionStatement": incpeg.Seq(
			incpeg.Not(incpeg.Alt(tok("{"), kw("function"))),
			incpeg.V("expression"), incpeg.V("eos")),
	}, pegutil.Scope)
}

// Left-associative binary operators. An operator never matches as the prefix
// of a compound assignment, an increment or a decrement.
func binary(operand incpeg.Expr, operators ...string) incpeg.Expr {
	choices := make([]incpeg.Expr, len(operators))
	for i, op := range operators {
		choices[i] = incpeg.Seq(tok(op), incpeg.Not(incpeg.Alt(incpeg.T("="), incpeg.T(op))))
	}
	return incpeg.Seq(operand, incpeg.Q0(incpeg.Seq(incpeg.Alt(choices...), operand)))
}
