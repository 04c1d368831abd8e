package lexer

import "sort"

// LineMap answers offset-to-line and line-to-offset-range queries over a
// source buffer, for diag's caret-underline rendering. It is built once
// from the same byte slice the Lexer scanned.
type LineMap struct {
	src    []byte
	starts []int // starts[i] = byte offset of the first byte of line i+1
}

// NewLineMap scans src for '\n' bytes and records each line's start offset.
func NewLineMap(src []byte) *LineMap {
	lm := &LineMap{src: src, starts: []int{0}}
	for i, b := range src {
		if b == '\n' {
			lm.starts = append(lm.starts, i+1)
		}
	}
	return lm
}

// Line returns the 1-based line number containing the byte at offset.
func (lm *LineMap) Line(offset int) int {
	// starts is sorted ascending; find the last start <= offset.
	i := sort.Search(len(lm.starts), func(i int) bool { return lm.starts[i] > offset })
	return i // i is 1-based already: starts[0]==0 covers line 1
}

// LineRange returns the [start, end) byte offsets of the given 1-based line
// number, end being exclusive of the line's trailing newline.
func (lm *LineMap) LineRange(line int) (start, end int) {
	if line < 1 || line > len(lm.starts) {
		return 0, 0
	}
	start = lm.starts[line-1]
	if line < len(lm.starts) {
		end = lm.starts[line] - 1 // drop the '\n'
	} else {
		end = len(lm.src)
	}
	if end < start {
		end = start
	}
	return start, end
}

// Column returns the 1-based column of offset within its line.
func (lm *LineMap) Column(offset int) int {
	line := lm.Line(offset)
	start, _ := lm.LineRange(line)
	return offset - start + 1
}
