package lexer

import (
	"fmt"

	"github.com/wudi/phpcore/intern"
)

// Span is a half-open byte range [Start, End) into the original source
// buffer. It is the position currency shared by every Token and every AST
// node; composite nodes are formed by taking Span{left.Start, right.End}.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest Span covering both a and b.
func Join(a, b Span) Span {
	s := a
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

// TokenType identifies the lexical class of a Token.
type TokenType int

// Token is a single lexical unit: a tag, its Span in the source, and — for
// tokens that carry text (identifiers, variables, strings, inline HTML,
// heredoc labels) — an interned Handle to that text (spec.md §3.2). Integer
// and double literals are instead fully decoded at lex time into IntValue /
// DoubleValue, per spec.md §4.2.2. Literal caches the decoded string form of
// Handle for convenience (error messages, debug printing) so callers rarely
// need the Interner just to describe a token; it is derived, not authoritative.
type Token struct {
	Type    TokenType
	Span    Span
	Handle  intern.Handle
	Literal string // == interner.Lookup(Handle) when HasText
	HasText bool

	IntValue    int64
	DoubleValue float64
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@[%d,%d)", TokenNames[t.Type], t.Literal, t.Span.Start, t.Span.End)
}

const (
	// Special
	ILLEGAL TokenType = iota
	END               // end-of-input

	// Literals
	INT_LITERAL
	DOUBLE_LITERAL
	CONSTANT_ENCAPSED_STRING // constant/unescaped string content
	INLINE_HTML

	// Identifiers and variables
	IDENT
	VARIABLE // $name, Literal excludes the '$'

	// Keywords — the closed set from spec.md §6
	T_ABSTRACT
	T_ARRAY
	T_AS
	T_BREAK
	T_CALLABLE
	T_CASE
	T_CATCH
	T_CLASS
	T_CLONE
	T_CONST
	T_CONTINUE
	T_DECLARE
	T_DEFAULT
	T_DO
	T_ECHO
	T_ELSE
	T_ELSEIF
	T_EMPTY
	T_ENDDECLARE
	T_ENDFOR
	T_ENDFOREACH
	T_ENDIF
	T_ENDSWITCH
	T_ENDWHILE
	T_EVAL
	T_EXIT
	T_EXTENDS
	T_FINAL
	T_FINALLY
	T_FOR
	T_FOREACH
	T_FUNCTION
	T_GLOBAL
	T_GOTO
	T_IF
	T_IMPLEMENTS
	T_INCLUDE
	T_INCLUDE_ONCE
	T_INSTANCEOF
	T_INSTEADOF
	T_INTERFACE
	T_ISSET
	T_LIST
	T_NAMESPACE
	T_NEW
	T_PRINT
	T_PRIVATE
	T_PROTECTED
	T_PUBLIC
	T_REQUIRE
	T_REQUIRE_ONCE
	T_RETURN
	T_STATIC
	T_SWITCH
	T_THROW
	T_TRAIT
	T_TRY
	T_UNSET
	T_USE
	T_VAR
	T_WHILE
	T_YIELD
	T_YIELD_FROM
	T_HALT_COMPILER

	// Logical word operators
	T_AND
	T_OR
	T_XOR

	// Magic constants
	MAGIC_CLASS
	MAGIC_TRAIT
	MAGIC_FUNCTION
	MAGIC_METHOD
	MAGIC_LINE
	MAGIC_FILE
	MAGIC_DIR
	MAGIC_NAMESPACE

	// Cast tokens — atomic per spec.md §4.2.2
	CAST_INT
	CAST_BOOL
	CAST_DOUBLE
	CAST_STRING
	CAST_ARRAY
	CAST_OBJECT
	CAST_UNSET

	// Operators, longest-match
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	POW // **

	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN
	CONCAT_ASSIGN
	POW_ASSIGN
	AND_ASSIGN
	OR_ASSIGN
	XOR_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN
	COALESCE_ASSIGN // ??=

	EQ         // ==
	IDENTICAL  // ===
	NEQ        // !=
	NOT_IDENTICAL // !==
	LT
	LE
	GT
	GE
	SPACESHIP // <=>

	INC
	DEC

	BOOL_AND // &&
	BOOL_OR  // ||
	BANG     // !

	AMP    // &
	PIPE   // |
	CARET  // ^
	TILDE  // ~
	SHL    // <<
	SHR    // >>

	CONCAT // .

	QUESTION
	COLON
	SEMICOLON
	COMMA
	AT // @

	DOUBLE_ARROW // =>
	ARROW        // ->
	DOUBLE_COLON // ::
	ELLIPSIS     // ...
	COALESCE     // ??

	DOLLAR
	BACKTICK

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	NS_SEPARATOR // \ in namespace paths

	// Meta / mode-switching tokens
	OPEN_TAG
	OPEN_TAG_ECHO
	CLOSE_TAG
	COMMENT
	DOC_COMMENT
	DOUBLE_QUOTE
	HEREDOC_START
	HEREDOC_END
	DOLLAR_CURLY_OPEN // ${
	CURLY_OPEN        // { in "{$expr}"
)

var TokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	END:     "END",

	INT_LITERAL:              "INT_LITERAL",
	DOUBLE_LITERAL:           "DOUBLE_LITERAL",
	CONSTANT_ENCAPSED_STRING: "CONSTANT_ENCAPSED_STRING",
	INLINE_HTML:              "INLINE_HTML",

	IDENT:    "IDENT",
	VARIABLE: "VARIABLE",

	T_ABSTRACT: "abstract", T_ARRAY: "array", T_AS: "as", T_BREAK: "break",
	T_CALLABLE: "callable", T_CASE: "case", T_CATCH: "catch", T_CLASS: "class",
	T_CLONE: "clone", T_CONST: "const", T_CONTINUE: "continue",
	T_DECLARE: "declare", T_DEFAULT: "default", T_DO: "do", T_ECHO: "echo",
	T_ELSE: "else", T_ELSEIF: "elseif", T_EMPTY: "empty",
	T_ENDDECLARE: "enddeclare", T_ENDFOR: "endfor", T_ENDFOREACH: "endforeach",
	T_ENDIF: "endif", T_ENDSWITCH: "endswitch", T_ENDWHILE: "endwhile",
	T_EVAL: "eval", T_EXIT: "exit", T_EXTENDS: "extends", T_FINAL: "final",
	T_FINALLY: "finally", T_FOR: "for", T_FOREACH: "foreach",
	T_FUNCTION: "function", T_GLOBAL: "global", T_GOTO: "goto", T_IF: "if",
	T_IMPLEMENTS: "implements", T_INCLUDE: "include",
	T_INCLUDE_ONCE: "include_once", T_INSTANCEOF: "instanceof",
	T_INSTEADOF: "insteadof", T_INTERFACE: "interface", T_ISSET: "isset",
	T_LIST: "list", T_NAMESPACE: "namespace", T_NEW: "new", T_PRINT: "print",
	T_PRIVATE: "private", T_PROTECTED: "protected", T_PUBLIC: "public",
	T_REQUIRE: "require", T_REQUIRE_ONCE: "require_once", T_RETURN: "return",
	T_STATIC: "static", T_SWITCH: "switch", T_THROW: "throw",
	T_TRAIT: "trait", T_TRY: "try", T_UNSET: "unset", T_USE: "use",
	T_VAR: "var", T_WHILE: "while", T_YIELD: "yield",
	T_YIELD_FROM: "yield_from", T_HALT_COMPILER: "__halt_compiler",

	T_AND: "and", T_OR: "or", T_XOR: "xor",

	MAGIC_CLASS: "__CLASS__", MAGIC_TRAIT: "__TRAIT__",
	MAGIC_FUNCTION: "__FUNCTION__", MAGIC_METHOD: "__METHOD__",
	MAGIC_LINE: "__LINE__", MAGIC_FILE: "__FILE__", MAGIC_DIR: "__DIR__",
	MAGIC_NAMESPACE: "__NAMESPACE__",

	CAST_INT: "(int)", CAST_BOOL: "(bool)", CAST_DOUBLE: "(double)",
	CAST_STRING: "(string)", CAST_ARRAY: "(array)", CAST_OBJECT: "(object)",
	CAST_UNSET: "(unset)",

	PLUS: "+", MINUS: "-", ASTERISK: "*", SLASH: "/", PERCENT: "%", POW: "**",

	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", MUL_ASSIGN: "*=",
	DIV_ASSIGN: "/=", MOD_ASSIGN: "%=", CONCAT_ASSIGN: ".=",
	POW_ASSIGN: "**=", AND_ASSIGN: "&=", OR_ASSIGN: "|=", XOR_ASSIGN: "^=",
	SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=", COALESCE_ASSIGN: "??=",

	EQ: "==", IDENTICAL: "===", NEQ: "!=", NOT_IDENTICAL: "!==",
	LT: "<", LE: "<=", GT: ">", GE: ">=", SPACESHIP: "<=>",

	INC: "++", DEC: "--",

	BOOL_AND: "&&", BOOL_OR: "||", BANG: "!",

	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", SHL: "<<", SHR: ">>",

	CONCAT: ".",

	QUESTION: "?", COLON: ":", SEMICOLON: ";", COMMA: ",", AT: "@",

	DOUBLE_ARROW: "=>", ARROW: "->", DOUBLE_COLON: "::", ELLIPSIS: "...",
	COALESCE: "??",

	DOLLAR: "$", BACKTICK: "`",

	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	NS_SEPARATOR: `\`,

	OPEN_TAG: "<?php", OPEN_TAG_ECHO: "<?=", CLOSE_TAG: "?>",
	COMMENT: "COMMENT", DOC_COMMENT: "DOC_COMMENT",
	DOUBLE_QUOTE: `"`, HEREDOC_START: "<<<", HEREDOC_END: "HEREDOC_END",
	DOLLAR_CURLY_OPEN: "${", CURLY_OPEN: "{",
}

func (tt TokenType) String() string {
	if s, ok := TokenNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}

// keywords is the case-insensitive closed keyword table from spec.md §6.
// Magic constants are looked up separately (magicConstants) since they are
// lexically identifiers (__LINE__ etc.) rather than alphabetic keywords.
var keywords = map[string]TokenType{
	"abstract": T_ABSTRACT, "array": T_ARRAY, "as": T_AS, "break": T_BREAK,
	"callable": T_CALLABLE, "case": T_CASE, "catch": T_CATCH, "class": T_CLASS,
	"clone": T_CLONE, "const": T_CONST, "continue": T_CONTINUE,
	"declare": T_DECLARE, "default": T_DEFAULT, "do": T_DO, "echo": T_ECHO,
	"else": T_ELSE, "elseif": T_ELSEIF, "empty": T_EMPTY,
	"enddeclare": T_ENDDECLARE, "endfor": T_ENDFOR, "endforeach": T_ENDFOREACH,
	"endif": T_ENDIF, "endswitch": T_ENDSWITCH, "endwhile": T_ENDWHILE,
	"eval": T_EVAL, "exit": T_EXIT, "extends": T_EXTENDS, "final": T_FINAL,
	"finally": T_FINALLY, "for": T_FOR, "foreach": T_FOREACH,
	"function": T_FUNCTION, "global": T_GLOBAL, "goto": T_GOTO, "if": T_IF,
	"implements": T_IMPLEMENTS, "include": T_INCLUDE,
	"include_once": T_INCLUDE_ONCE, "instanceof": T_INSTANCEOF,
	"insteadof": T_INSTEADOF, "interface": T_INTERFACE, "isset": T_ISSET,
	"list": T_LIST, "namespace": T_NAMESPACE, "new": T_NEW, "print": T_PRINT,
	"private": T_PRIVATE, "protected": T_PROTECTED, "public": T_PUBLIC,
	"require": T_REQUIRE, "require_once": T_REQUIRE_ONCE, "return": T_RETURN,
	"static": T_STATIC, "switch": T_SWITCH, "throw": T_THROW,
	"trait": T_TRAIT, "try": T_TRY, "unset": T_UNSET, "use": T_USE,
	"var": T_VAR, "while": T_WHILE, "yield": T_YIELD,
	"and": T_AND, "or": T_OR, "xor": T_XOR,
	"__halt_compiler": T_HALT_COMPILER,
}

// "yield from" is matched as a single T_YIELD_FROM token by
// Lexer.scanIdentifierOrKeyword peeking for a following "from" identifier.

var magicConstants = map[string]TokenType{
	"__CLASS__": MAGIC_CLASS, "__TRAIT__": MAGIC_TRAIT,
	"__FUNCTION__": MAGIC_FUNCTION, "__METHOD__": MAGIC_METHOD,
	"__LINE__": MAGIC_LINE, "__FILE__": MAGIC_FILE, "__DIR__": MAGIC_DIR,
	"__NAMESPACE__": MAGIC_NAMESPACE,
}

var casts = map[string]TokenType{
	"int": CAST_INT, "integer": CAST_INT,
	"bool": CAST_BOOL, "boolean": CAST_BOOL,
	"double": CAST_DOUBLE, "float": CAST_DOUBLE, "real": CAST_DOUBLE,
	"string": CAST_STRING,
	"array":  CAST_ARRAY,
	"object": CAST_OBJECT,
	"unset":  CAST_UNSET,
}
