package main

import (
	"io"
	"reflect"

	"github.com/wudi/phpcore/ast"
)

// dumpStatements prints stmts as indented s-expressions, one tree per
// top-level statement.
func dumpStatements(w io.Writer, stmts []ast.Stmt) {
	nodes := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	ast.Dump(w, nodes)
}

// jsonNode is the JSON mirror of dumpStatements, used when the config's
// format is "json", for callers that want the tree machine-readable
// instead of eyeballed.
type jsonNode struct {
	Kind     string     `json:"kind"`
	Start    int        `json:"start"`
	End      int        `json:"end"`
	Children []jsonNode `json:"children,omitempty"`
}

func toJSONNode(n ast.Node) jsonNode {
	if n == nil {
		return jsonNode{Kind: "nil"}
	}
	if rv := reflect.ValueOf(n); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return jsonNode{Kind: "nil"}
	}
	sp := n.Span()
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	out := jsonNode{Kind: t.Name(), Start: sp.Start, End: sp.End}
	for _, k := range n.Children() {
		out.Children = append(out.Children, toJSONNode(k))
	}
	return out
}
