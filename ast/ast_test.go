package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wudi/phpcore/intern"
)

func TestBlock_ChildrenPreservesOrder(t *testing.T) {
	in := intern.New()
	a := &ExprStmt{Expr: &Variable{base: base{Sp: Span{0, 2}}, Name: in.InternString("a")}}
	b := &ExprStmt{Expr: &Variable{base: base{Sp: Span{4, 6}}, Name: in.InternString("b")}}
	blk := &Block{base: base{Sp: Span{0, 6}}, Stmts: []Stmt{a, b}}

	children := blk.Children()
	assert.Len(t, children, 2)
	assert.Same(t, Node(a), children[0])
	assert.Same(t, Node(b), children[1])
}

// ArrayIdx chaining must accumulate into one node's Indices slice rather
// than nesting, matching the chaining-idempotence invariant.
func TestArrayIdx_ChainingIsFlat(t *testing.T) {
	in := intern.New()
	base_ := &Variable{base: base{Sp: Span{0, 2}}, Name: in.InternString("g")}
	idx := &ArrayIdx{
		base: base{Sp: Span{0, 10}},
		Base: base_,
		Indices: []Expr{
			&StringLiteral{base: base{Sp: Span{2, 5}}, Value: in.InternString("a")},
			&StringLiteral{base: base{Sp: Span{6, 9}}, Value: in.InternString("b")},
		},
	}
	assert.Len(t, idx.Indices, 2)
	assert.IsType(t, &Variable{}, idx.Base)

	var sawNestedIdx bool
	for _, c := range idx.Children() {
		if _, ok := c.(*ArrayIdx); ok {
			sawNestedIdx = true
		}
	}
	assert.False(t, sawNestedIdx, "ArrayIdx must not nest for a single chain")
}

func TestWalk_VisitsEveryNodeInPreorder(t *testing.T) {
	in := intern.New()
	left := &IntLiteral{base: base{Sp: Span{0, 1}}, Value: 1}
	right := &IntLiteral{base: base{Sp: Span{4, 5}}, Value: 2}
	bin := &BinaryExpr{base: base{Sp: Span{0, 5}}, Op: "+", Left: left, Right: right}
	stmt := &ExprStmt{base: base{Sp: Span{0, 6}}, Expr: bin}
	_ = in

	var order []Node
	v := &collectVisitor{order: &order}
	Walk(v, stmt)

	assert.Equal(t, []Node{stmt, bin, left, right}, order)
}

func TestSpans_AreMonotoneAcrossTopLevelStatements(t *testing.T) {
	stmts := []Stmt{
		&ExprStmt{base: base{Sp: Span{0, 5}}},
		&ExprStmt{base: base{Sp: Span{5, 12}}},
		&ExprStmt{base: base{Sp: Span{12, 20}}},
	}
	for i := 1; i < len(stmts); i++ {
		assert.LessOrEqual(t, stmts[i-1].Span().End, stmts[i].Span().Start)
	}
}

func TestPath_SoleSegmentWhenUnqualified(t *testing.T) {
	in := intern.New()
	p := &Path{Sp: Span{0, 3}, Name: in.InternString("Foo")}
	assert.Empty(t, p.Namespace)
	assert.Equal(t, "Foo", in.Lookup(p.Name))
}

func TestSwitchCase_DefaultImpliesNoConds(t *testing.T) {
	def := &SwitchCase{Default: true}
	assert.Empty(t, def.Conds)

	withConds := &SwitchCase{Conds: []Expr{&IntLiteral{Value: 1}}}
	assert.False(t, withConds.Default)
	assert.NotEmpty(t, withConds.Conds)
}

// collectVisitor records every node it visits via Accept, relying on Walk
// to do the recursion; it does not need to implement every Visitor method
// meaningfully since BaseVisitor already no-ops them.
type collectVisitor struct {
	BaseVisitor
	order *[]Node
}

func (c *collectVisitor) VisitExprStmt(n *ExprStmt)     { *c.order = append(*c.order, n) }
func (c *collectVisitor) VisitBinaryExpr(n *BinaryExpr) { *c.order = append(*c.order, n) }
func (c *collectVisitor) VisitIntLiteral(n *IntLiteral) { *c.order = append(*c.order, n) }
