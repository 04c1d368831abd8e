// Command phpcore is the thin CLI collaborator around package parser: it
// tokenizes, parses, and offers a REPL for exploring the grammar, but it is
// explicitly outside the parsing core itself — the core does no I/O.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/wudi/phpcore/parser"
)

var globalConfig = defaultConfig()

func main() {
	app := &cli.Command{
		Name:  "phpcore",
		Usage: "tokenizer and parser for a PHP-like scripting language",
		Commands: []*cli.Command{
			tokenizeCommand,
			parseCommand,
			replCommand,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional YAML config file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print token/node counts and elapsed parse time",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return ctx, fmt.Errorf("phpcore: loading config: %w", err)
			}
			globalConfig = cfg
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "phpcore:", err)
		os.Exit(1)
	}
}

var tokenizeCommand = &cli.Command{
	Name:      "tokenize",
	Usage:     "print the token stream for a file",
	ArgsUsage: "<file|->",
	Action:    tokenizeAction,
}

func tokenizeAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("tokenize: missing <file|-> argument")
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}

	start := time.Now()
	toks, err := parser.TokenizeForCLI(src, globalConfig.MaxTokens)
	elapsed := time.Since(start)
	if err != nil {
		return reportParseError(err, src)
	}
	for _, t := range toks {
		fmt.Println(t.String())
	}
	if cmd.Root().Bool("verbose") {
		fmt.Fprintf(os.Stderr, "%d tokens, %s, %s\n",
			len(toks), humanize.Bytes(uint64(len(src))), elapsed)
	}
	return nil
}

var parseCommand = &cli.Command{
	Name:      "parse",
	Usage:     "parse a file (or every file in a directory) and dump its AST",
	ArgsUsage: "<file|dir|->",
	Action:    parseAction,
}

func parseAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("parse: missing <file|dir|-> argument")
	}

	info, statErr := os.Stat(path)
	if statErr == nil && info.IsDir() {
		return parseDirectory(cmd, path)
	}

	src, err := readSource(path)
	if err != nil {
		return err
	}
	return parseAndReport(cmd, path, src)
}

func parseAndReport(cmd *cli.Command, name string, src []byte) error {
	start := time.Now()
	res, err := parser.ParseString(src, parser.ParseOptions{
		Filename:  name,
		MaxTokens: globalConfig.MaxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		return reportParseError(err, src)
	}

	if err := writeParseResult(os.Stdout, res); err != nil {
		return err
	}
	if cmd.Root().Bool("verbose") {
		fmt.Fprintf(os.Stderr, "%s: %d statements, %s, %s\n",
			name, len(res.Statements), humanize.Bytes(uint64(len(src))), elapsed)
	}
	return nil
}

// parseDirectory fans every *.php file under dir out across
// parser.ParseAll's bounded worker pool, demonstrating the "multiple
// independent parses in parallel" concession of the concurrency model.
func parseDirectory(cmd *cli.Command, dir string) error {
	var sources []parser.NamedSource
	walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".php") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, parser.NamedSource{Name: path, Src: data})
		return nil
	})
	if walkErr != nil {
		return walkErr
	}
	if len(sources) == 0 {
		return fmt.Errorf("parse: no .php files found under %s", dir)
	}

	start := time.Now()
	outcomes := parser.ParseAll(sources, runtime.NumCPU())
	elapsed := time.Since(start)

	var failed int
	for _, oc := range outcomes {
		fmt.Printf("=== %s ===\n", oc.Name)
		if oc.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, oc.Err)
			continue
		}
		if err := writeParseResult(os.Stdout, oc.Result); err != nil {
			return err
		}
	}
	if cmd.Root().Bool("verbose") {
		fmt.Fprintf(os.Stderr, "%s files, %d failed, %s\n",
			humanize.Comma(int64(len(sources))), failed, elapsed)
	}
	if failed > 0 {
		return fmt.Errorf("parse: %d of %d files failed", failed, len(sources))
	}
	return nil
}

func writeParseResult(w io.Writer, res *parser.ParseResult) error {
	switch globalConfig.Format {
	case "json":
		nodes := make([]jsonNode, len(res.Statements))
		for i, s := range res.Statements {
			nodes[i] = toJSONNode(s)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	default:
		dumpStatements(w, res.Statements)
		return nil
	}
}

func reportParseError(err error, src []byte) error {
	type renderer interface{ Render([]byte) string }
	if r, ok := err.(renderer); ok {
		fmt.Fprintln(os.Stderr, r.Render(src))
	}
	return err
}

// readSource reads "-" from stdin, anything else from the filesystem. The
// core parser never touches I/O; this is the one place the CLI does.
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
