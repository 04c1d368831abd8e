package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Dump prints each of nodes as an indented s-expression: "(Kind @start-end
// child...)". It walks Children() generically rather than switching on
// every concrete type, so new node kinds need no matching case here.
func Dump(w io.Writer, nodes []Node) {
	for _, n := range nodes {
		dumpNode(w, n, 0)
	}
}

func dumpNode(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil || isNilNode(n) {
		fmt.Fprintf(w, "%snil\n", indent)
		return
	}

	sp := n.Span()
	kids := n.Children()
	kind := nodeKind(n)
	if len(kids) == 0 {
		fmt.Fprintf(w, "%s(%s @%d-%d)\n", indent, kind, sp.Start, sp.End)
		return
	}

	fmt.Fprintf(w, "%s(%s @%d-%d\n", indent, kind, sp.Start, sp.End)
	for _, k := range kids {
		dumpNode(w, k, depth+1)
	}
	fmt.Fprintf(w, "%s)\n", indent)
}

func isNilNode(n Node) bool {
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// nodeKind strips the pointer reflect.TypeOf leaves on a node, e.g.
// "*ast.BinaryExpr" becomes "BinaryExpr".
func nodeKind(n Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
