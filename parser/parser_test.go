package parser

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/diag"
)

func parseOK(t *testing.T, src string) *ParseResult {
	t.Helper()
	res, err := ParseString([]byte(src), ParseOptions{Filename: "test.php"})
	require.NoError(t, err)
	return res
}

func singleExpr(t *testing.T, res *ParseResult) ast.Expr {
	t.Helper()
	require.Len(t, res.Statements, 1)
	stmt, ok := res.Statements[0].(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", res.Statements[0])
	return stmt.Expr
}

// S1 — arithmetic precedence: 1+2*3 == Add(1, Mul(2, 3)).
func TestS1_ArithmeticPrecedence(t *testing.T) {
	res := parseOK(t, "<?php 1+2*3;")
	e := singleExpr(t, res).(*ast.BinaryExpr)
	assert.Equal(t, "+", e.Op)
	assert.Equal(t, int64(1), e.Left.(*ast.IntLiteral).Value)

	mul := e.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)
	assert.Equal(t, int64(2), mul.Left.(*ast.IntLiteral).Value)
	assert.Equal(t, int64(3), mul.Right.(*ast.IntLiteral).Value)
}

// S2 — right-associative power: $a ** $b ** $c == Pow($a, Pow($b, $c)).
func TestS2_PowerIsRightAssociative(t *testing.T) {
	res := parseOK(t, "<?php $a ** $b ** $c;")
	e := singleExpr(t, res).(*ast.BinaryExpr)
	assert.Equal(t, "**", e.Op)
	assert.Equal(t, "a", res.Interner.Lookup(e.Left.(*ast.Variable).Name))

	inner := e.Right.(*ast.BinaryExpr)
	assert.Equal(t, "**", inner.Op)
	assert.Equal(t, "b", res.Interner.Lookup(inner.Left.(*ast.Variable).Name))
	assert.Equal(t, "c", res.Interner.Lookup(inner.Right.(*ast.Variable).Name))
}

// Every other binary operator, by contrast, is left-associative.
func TestAdditionIsLeftAssociative(t *testing.T) {
	res := parseOK(t, "<?php $a - $b - $c;")
	e := singleExpr(t, res).(*ast.BinaryExpr)
	assert.Equal(t, "-", e.Op)
	inner, ok := e.Left.(*ast.BinaryExpr)
	require.True(t, ok, "left-associative chain must nest on the left")
	assert.Equal(t, "-", inner.Op)
	assert.Equal(t, "c", res.Interner.Lookup(e.Right.(*ast.Variable).Name))
}

// S3 — array literal and subscript chain: $g["a"]["b"] collapses into one
// ArrayIdx node with two indices rather than nesting.
func TestS3_SubscriptChainIsFlat(t *testing.T) {
	res := parseOK(t, `<?php $g["a"]["b"];`)
	idx := singleExpr(t, res).(*ast.ArrayIdx)
	assert.Equal(t, "g", res.Interner.Lookup(idx.Base.(*ast.Variable).Name))
	require.Len(t, idx.Indices, 2)
	assert.Equal(t, "a", res.Interner.Lookup(idx.Indices[0].(*ast.StringLiteral).Value))
	assert.Equal(t, "b", res.Interner.Lookup(idx.Indices[1].(*ast.StringLiteral).Value))
}

// S4 — interpolation: "hi $name!" splits into a three-part InterpString.
func TestS4_DoubleQuotedInterpolation(t *testing.T) {
	res := parseOK(t, `<?php "hi $name!";`)
	interp := singleExpr(t, res).(*ast.InterpString)
	require.Len(t, interp.Parts, 3)

	lit0, ok := interp.Parts[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hi ", res.Interner.Lookup(lit0.Value))

	v, ok := interp.Parts[1].(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "name", res.Interner.Lookup(v.Name))

	lit2, ok := interp.Parts[2].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "!", res.Interner.Lookup(lit2.Value))
}

// S5 — if/elseif/else desugars into nested IfStmt values via Else.
func TestS5_IfElseifElseDesugars(t *testing.T) {
	res := parseOK(t, `<?php if ($a) {x();} elseif ($b) {y();} else {z();}`)
	require.Len(t, res.Statements, 1)
	top := res.Statements[0].(*ast.IfStmt)

	assert.Equal(t, "a", res.Interner.Lookup(top.Cond.(*ast.Variable).Name))
	thenBlock := top.Then.(*ast.Block)
	require.Len(t, thenBlock.Stmts, 1)
	assertCallName(t, res, thenBlock.Stmts[0], "x")

	mid, ok := top.Else.(*ast.IfStmt)
	require.True(t, ok, "elseif must desugar into a nested IfStmt")
	assert.Equal(t, "b", res.Interner.Lookup(mid.Cond.(*ast.Variable).Name))
	midBlock := mid.Then.(*ast.Block)
	require.Len(t, midBlock.Stmts, 1)
	assertCallName(t, res, midBlock.Stmts[0], "y")

	elseBlock := mid.Else.(*ast.Block)
	require.Len(t, elseBlock.Stmts, 1)
	assertCallName(t, res, elseBlock.Stmts[0], "z")
}

func assertCallName(t *testing.T, res *ParseResult, stmt ast.Stmt, name string) {
	t.Helper()
	es := stmt.(*ast.ExprStmt)
	call := es.Expr.(*ast.Call)
	callee := call.Callee.(*ast.PathExpr)
	assert.Equal(t, name, res.Interner.Lookup(callee.Path.Name))
}

// S6 — class with trait use and abstract method.
func TestS6_ClassDeclaration(t *testing.T) {
	src := `<?php
abstract class K extends B implements I, J {
  use T { T::m as n; }
  const C = 1;
  public static $x = 0;
  abstract protected function f();
}`
	res := parseOK(t, src)
	require.Len(t, res.Statements, 1)
	decl := res.Statements[0].(*ast.ClassDeclStmt).Decl

	assert.Equal(t, ast.ClassKindClass, decl.Kind)
	assert.Equal(t, ast.ClassAbstract, decl.Modifiers&ast.ClassAbstract)
	assert.Equal(t, "K", res.Interner.Lookup(decl.Name))
	require.NotNil(t, decl.Extends)
	assert.Equal(t, "B", res.Interner.Lookup(decl.Extends.Name))
	require.Len(t, decl.Implements, 2)
	assert.Equal(t, "I", res.Interner.Lookup(decl.Implements[0].Name))
	assert.Equal(t, "J", res.Interner.Lookup(decl.Implements[1].Name))

	require.Len(t, decl.Members, 4)
	_, ok := decl.Members[0].(*ast.TraitUseMember)
	assert.True(t, ok, "member 0 must be the trait use")
	_, ok = decl.Members[1].(*ast.ConstMember)
	assert.True(t, ok, "member 1 must be the constant")
	_, ok = decl.Members[2].(*ast.PropertyMember)
	assert.True(t, ok, "member 2 must be the property")
	method, ok := decl.Members[3].(*ast.MethodMember)
	require.True(t, ok, "member 3 must be the method")
	assert.Equal(t, ast.ModAbstract, method.Modifiers&ast.ModAbstract)
	assert.Nil(t, method.Decl.Body, "abstract method must have no body")
}

// Invariant 1: spans of consecutive top-level statements are non-overlapping
// and monotone, and every span stays within the source's length.
func TestInvariant_SpansAreMonotoneAndInBounds(t *testing.T) {
	src := "<?php $a = 1; $b = 2; $c = 3;"
	res := parseOK(t, src)
	require.Len(t, res.Statements, 3)

	prevEnd := 0
	for _, s := range res.Statements {
		sp := s.Span()
		assert.LessOrEqual(t, sp.Start, sp.End)
		assert.LessOrEqual(t, sp.End, len(src))
		assert.GreaterOrEqual(t, sp.Start, prevEnd)
		prevEnd = sp.End
	}
}

// Invariant 2: interning the same bytes twice yields the same Handle and
// round-trips the original text.
func TestInvariant_InternRoundTrips(t *testing.T) {
	res := parseOK(t, "<?php $needle; $needle;")
	require.Len(t, res.Statements, 2)
	v1 := res.Statements[0].(*ast.ExprStmt).Expr.(*ast.Variable)
	v2 := res.Statements[1].(*ast.ExprStmt).Expr.(*ast.Variable)
	assert.Equal(t, v1.Name, v2.Name)
	assert.Equal(t, "needle", res.Interner.Lookup(v1.Name))
}

// Invariant 3: precedence — a lower-precedence operator never steals an
// operand from a higher-precedence one across the seam.
func TestInvariant_MulBindsTighterThanAdd(t *testing.T) {
	res := parseOK(t, "<?php $a + $b * $c;")
	e := singleExpr(t, res).(*ast.BinaryExpr)
	assert.Equal(t, "+", e.Op)
	assert.IsType(t, &ast.BinaryExpr{}, e.Right)
	assert.Equal(t, "*", e.Right.(*ast.BinaryExpr).Op)

	res2 := parseOK(t, "<?php $a * $b + $c;")
	e2 := singleExpr(t, res2).(*ast.BinaryExpr)
	assert.Equal(t, "+", e2.Op)
	assert.IsType(t, &ast.BinaryExpr{}, e2.Left)
	assert.Equal(t, "*", e2.Left.(*ast.BinaryExpr).Op)
}

// Invariant 5: "->" and "::" chains collapse the same way "[" does.
func TestInvariant_ObjAndStaticChainsAreFlat(t *testing.T) {
	res := parseOK(t, "<?php $o->a->b;")
	member := singleExpr(t, res).(*ast.ObjMember)
	assert.Equal(t, "o", res.Interner.Lookup(member.Base.(*ast.Variable).Name))
	require.Len(t, member.Members, 2)

	res2 := parseOK(t, "<?php A::$b::$c;")
	sm := singleExpr(t, res2).(*ast.StaticMember)
	require.Len(t, sm.Members, 2)
}

// ParseAll fans independent parses of the same source across a bounded
// worker pool; every outcome must succeed, agree with a direct ParseString
// call byte-for-byte in shape, and carry a distinct parse id.
func TestParseAll_ConcurrentParsesAgree(t *testing.T) {
	const n = 32
	src := "<?php $total = 0; for ($i = 0; $i < 10; $i++) { $total += $i; } echo $total;"

	sources := make([]NamedSource, n)
	for i := range sources {
		sources[i] = NamedSource{Name: fmt.Sprintf("src-%d.php", i), Src: []byte(src)}
	}

	outcomes := ParseAll(sources, 8)
	require.Len(t, outcomes, n)

	want := parseOK(t, src)
	seenIDs := make(map[string]bool)
	var mu sync.Mutex
	for i, oc := range outcomes {
		require.NoError(t, oc.Err, "outcome %d", i)
		require.Equal(t, sources[i].Name, oc.Name)
		require.Len(t, oc.Result.Statements, len(want.Statements))
		assert.Equal(t, want.Statements, oc.Result.Statements, "outcome %d", i)

		mu.Lock()
		id := oc.Result.ParseID.String()
		assert.False(t, seenIDs[id], "parse ids must be distinct across workers")
		seenIDs[id] = true
		mu.Unlock()
	}
}

// Failure semantics: a syntax error stops the parser at the first
// diagnostic rather than attempting resynchronization.
func TestSyntaxError_ReturnsSpannedParserError(t *testing.T) {
	_, err := ParseString([]byte("<?php $a = ;"), ParseOptions{Filename: "bad.php"})
	require.Error(t, err)
	assert.IsType(t, &diag.SpannedParserError{}, err)
	assert.Contains(t, err.Error(), "error")
}
