package parser

import "sync"

// NamedSource is one input to ParseAll: a byte slice paired with the
// filename that should appear on any diagnostic it produces.
type NamedSource struct {
	Name string
	Src  []byte
}

// ParseOutcome is one NamedSource's result, order-preserved with its input.
type ParseOutcome struct {
	Name   string
	Result *ParseResult
	Err    error
}

// ParseAll parses every source in sources independently, fanning the batch
// out across up to workers goroutines. Each parse owns its own Interner,
// Lexer, and Parser (see ParseString) — nothing is shared between workers,
// so the result for index i is identical to calling ParseString(sources[i].Src,
// ...) directly, just done concurrently. A workers value <= 0 is treated as 1.
func ParseAll(sources []NamedSource, workers int) []ParseOutcome {
	if workers <= 0 {
		workers = 1
	}
	out := make([]ParseOutcome, len(sources))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, src NamedSource) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := ParseString(src.Src, ParseOptions{Filename: src.Name})
			out[i] = ParseOutcome{Name: src.Name, Result: res, Err: err}
		}(i, src)
	}

	wg.Wait()
	return out
}
