package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v3"

	"github.com/wudi/phpcore/parser"
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactive tokenize/parse loop",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "tokens", Usage: "show tokens instead of the parsed AST"},
	},
	Action: replAction,
}

var heredocStartRe = regexp.MustCompile(`<<<\s*['"]?([A-Za-z_][A-Za-z0-9_]*)['"]?`)

// replAction drives an interactive loop over chzyer/readline: each submitted
// line is tokenized or parsed on its own, except a line opening a heredoc
// (<<<LABEL), which is read to its closing label before the chunk is handed
// to the lexer — heredoc bodies can't be split across Readline calls.
func replAction(ctx context.Context, cmd *cli.Command) error {
	rl, err := readline.New("phpcore> ")
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	showTokens := cmd.Bool("tokens")
	fmt.Println("phpcore repl — :tokens toggles token output, :quit exits")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "":
			continue
		case ":quit", ":exit":
			return nil
		case ":tokens":
			showTokens = !showTokens
			fmt.Fprintf(os.Stderr, "token mode: %v\n", showTokens)
			continue
		}

		chunk := readHeredocAware(rl, line)
		evalChunk(chunk, showTokens)
	}
	return nil
}

// readHeredocAware appends follow-up lines to first until a heredoc it
// opens is closed, returning the full chunk unchanged if it opens none.
func readHeredocAware(rl *readline.Instance, first string) string {
	m := heredocStartRe.FindStringSubmatch(first)
	if m == nil {
		return first
	}
	label := m[1]
	chunk := first
	for {
		more, err := rl.Readline()
		if err != nil {
			return chunk
		}
		chunk += "\n" + more
		t := strings.TrimSpace(more)
		if t == label || t == label+";" {
			return chunk
		}
	}
}

func evalChunk(chunk string, showTokens bool) {
	if !strings.Contains(chunk, "<?php") {
		chunk = "<?php " + chunk
	}
	src := []byte(chunk)

	if showTokens {
		toks, err := parser.TokenizeForCLI(src, globalConfig.MaxTokens)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		for _, t := range toks {
			fmt.Println(t.String())
		}
		return
	}

	res, err := parser.ParseString(src, parser.ParseOptions{
		Filename:  "<repl>",
		MaxTokens: globalConfig.MaxTokens,
	})
	if err != nil {
		reportParseError(err, src)
		return
	}
	dumpStatements(os.Stdout, res.Statements)
}
