package parser

import "github.com/wudi/phpcore/lexer"

// precedence is the Pratt binding power of a binary operator, ordered
// low to high exactly as spec.md §4.3.1 lists it. Assignment is not part
// of this table: it is recognized directly after a variable-chain operand
// (spec.md §4.3.4 step 7), giving it effectively the lowest precedence of
// all while staying right-associative without a table entry.
type precedence int

const (
	precNone precedence = iota
	precConditional
	precCoalesce // ?? — not in spec.md's ladder explicitly; placed here,
	// right-associative, matching the Language's actual grouping of "??"
	// with the ternary family rather than with the bitwise/logical tiers.
	precLogicalOr2 // or
	precLogicalXor2 // xor
	precLogicalAnd2 // and
	precLogicalOr1  // ||
	precLogicalAnd1 // &&
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdd
	precMul
	precPow
	precInstanceOf
	precUnary
)

// rightAssoc is the set of binary operators whose right-hand side is
// parsed at one below their own precedence (rather than at it), so an
// operator of the same precedence there groups to the right.
var rightAssoc = map[lexer.TokenType]bool{
	lexer.POW:      true,
	lexer.COALESCE: true,
}

var binaryPrecedence = map[lexer.TokenType]precedence{
	lexer.T_OR:  precLogicalOr2,
	lexer.T_XOR: precLogicalXor2,
	lexer.T_AND: precLogicalAnd2,

	lexer.BOOL_OR:  precLogicalOr1,
	lexer.BOOL_AND: precLogicalAnd1,

	lexer.PIPE:  precBitwiseOr,
	lexer.CARET: precBitwiseXor,
	lexer.AMP:   precBitwiseAnd,

	lexer.EQ: precEquality, lexer.NEQ: precEquality,
	lexer.IDENTICAL: precEquality, lexer.NOT_IDENTICAL: precEquality,

	lexer.LT: precRelational, lexer.LE: precRelational,
	lexer.GT: precRelational, lexer.GE: precRelational,
	lexer.SPACESHIP: precRelational,

	lexer.SHL: precShift, lexer.SHR: precShift,

	lexer.PLUS: precAdd, lexer.MINUS: precAdd, lexer.CONCAT: precAdd,

	lexer.ASTERISK: precMul, lexer.SLASH: precMul, lexer.PERCENT: precMul,

	lexer.POW: precPow,

	lexer.T_INSTANCEOF: precInstanceOf,

	lexer.COALESCE: precCoalesce,
}

var assignOps = map[lexer.TokenType]bool{
	lexer.PLUS_ASSIGN: true, lexer.MINUS_ASSIGN: true, lexer.MUL_ASSIGN: true,
	lexer.DIV_ASSIGN: true, lexer.MOD_ASSIGN: true, lexer.CONCAT_ASSIGN: true,
	lexer.POW_ASSIGN: true, lexer.AND_ASSIGN: true, lexer.OR_ASSIGN: true,
	lexer.XOR_ASSIGN: true, lexer.SHL_ASSIGN: true, lexer.SHR_ASSIGN: true,
	lexer.COALESCE_ASSIGN: true,
}

func opText(tt lexer.TokenType) string { return lexer.TokenNames[tt] }
