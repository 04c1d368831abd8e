package main

import (
	"strings"
	"testing"

	"github.com/wudi/phpcore/parser"
)

func TestDumpStatementsProducesBalancedParens(t *testing.T) {
	res, err := parser.ParseString([]byte("<?php $a = 1 + 2;"), parser.ParseOptions{Filename: "t.php"})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	var b strings.Builder
	dumpStatements(&b, res.Statements)
	out := b.String()

	if strings.Count(out, "(") != strings.Count(out, ")") {
		t.Fatalf("unbalanced parens in dump:\n%s", out)
	}
	if !strings.Contains(out, "BinaryExpr") {
		t.Fatalf("expected a BinaryExpr node in dump, got:\n%s", out)
	}
}

func TestToJSONNodeRoundTripsKind(t *testing.T) {
	res, err := parser.ParseString([]byte("<?php 1;"), parser.ParseOptions{Filename: "t.php"})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	n := toJSONNode(res.Statements[0])
	if n.Kind != "ExprStmt" {
		t.Fatalf("expected ExprStmt, got %s", n.Kind)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != "IntLiteral" {
		t.Fatalf("expected one IntLiteral child, got %+v", n.Children)
	}
}

func TestLoadConfigMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := loadConfig("/nonexistent/phpcore-config.yaml")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "sexpr" {
		t.Fatalf("expected default format sexpr, got %q", cfg.Format)
	}
}

func TestHeredocStartRePicksUpLabel(t *testing.T) {
	m := heredocStartRe.FindStringSubmatch(`$x = <<<EOT`)
	if m == nil || m[1] != "EOT" {
		t.Fatalf("expected label EOT, got %v", m)
	}
}
