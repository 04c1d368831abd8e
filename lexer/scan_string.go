package lexer

import "strings"

// scanEncaps handles DoubleQuoted and Shell modes, which share an identical
// grammar (spec.md §4.2.2): runs of literal text, interrupted by $name,
// ${...}, or {$...} interpolation, terminated by the matching quote/
// backtick.
func (l *Lexer) scanEncaps(terminator byte, mode Mode) (Token, error) {
	start := l.pos

	if l.eof() {
		return Token{}, unterminated("string", Span{start, start})
	}

	if l.cur() == terminator {
		l.pos++
		l.pop()
		tt := DOUBLE_QUOTE
		if terminator == '`' {
			tt = BACKTICK
		}
		return Token{Type: tt, Span: Span{start, l.pos}}, nil
	}

	if tok, ok, err := l.tryScanInterpolationTrigger(); ok || err != nil {
		return tok, err
	}

	var sb strings.Builder
	for {
		if l.eof() {
			return Token{}, unterminated("string", Span{start, l.pos})
		}
		if l.cur() == terminator {
			break
		}
		if l.cur() == '$' && isIdentStart(l.byteAt(1)) {
			break
		}
		if l.hasPrefix("${") || l.hasPrefix("{$") {
			break
		}
		l.consumeEscapedByte(&sb)
	}
	return l.textToken(CONSTANT_ENCAPSED_STRING, Span{start, l.pos}, sb.String()), nil
}

// tryScanInterpolationTrigger consumes $name / ${ / {$ at the current
// position (called only when the caller already knows the literal run, if
// any, is empty) and returns the resulting token. ok is false if the
// current position is not an interpolation trigger.
func (l *Lexer) tryScanInterpolationTrigger() (Token, bool, error) {
	start := l.pos
	switch {
	case l.cur() == '$' && isIdentStart(l.byteAt(1)):
		tok, err := l.scanVariable()
		return tok, true, err
	case l.hasPrefix("${"):
		l.pos += 2
		l.push(modeFrame{mode: ModeCode, viaInterpolation: true, braceDepth: 1})
		return Token{Type: DOLLAR_CURLY_OPEN, Span: Span{start, l.pos}}, true, nil
	case l.hasPrefix("{$"):
		l.pos++ // consume only '{'; '$' starts the next Code token
		l.push(modeFrame{mode: ModeCode, viaInterpolation: true, braceDepth: 1})
		return Token{Type: CURLY_OPEN, Span: Span{start, l.pos}}, true, nil
	}
	return Token{}, false, nil
}

// consumeEscapedByte decodes one logical character at the lexer's current
// position (an ordinary byte, or a backslash escape) into sb, per spec.md
// §4.2.2's list: \n \t \r \v \f \e \0 \xHH \NNN \u{...}, plus \\ and \$ and
// \" (the latter two only meaningful, but harmless either way, inside
// encapsed strings).
func (l *Lexer) consumeEscapedByte(sb *strings.Builder) {
	c := l.advance()
	if c != '\\' || l.eof() {
		sb.WriteByte(c)
		return
	}
	e := l.cur()
	switch e {
	case 'n':
		l.pos++
		sb.WriteByte('\n')
	case 't':
		l.pos++
		sb.WriteByte('\t')
	case 'r':
		l.pos++
		sb.WriteByte('\r')
	case 'v':
		l.pos++
		sb.WriteByte('\v')
	case 'f':
		l.pos++
		sb.WriteByte('\f')
	case 'e':
		l.pos++
		sb.WriteByte(0x1b)
	case '\\', '$', '"', '`':
		l.pos++
		sb.WriteByte(e)
	case 'x':
		l.scanHexEscape(sb)
	case 'u':
		l.scanUnicodeEscape(sb)
	default:
		if e >= '0' && e <= '7' {
			l.scanOctalEscape(sb)
			return
		}
		sb.WriteByte('\\')
	}
}

func (l *Lexer) scanHexEscape(sb *strings.Builder) {
	save := l.pos
	l.pos++ // 'x'
	n := 0
	var v byte
	for n < 2 && !l.eof() && isHexDigit(l.cur()) {
		v = v*16 + hexValue(l.advance())
		n++
	}
	if n == 0 {
		l.pos = save
		sb.WriteByte('\\')
		sb.WriteByte(l.advance())
		return
	}
	sb.WriteByte(v)
}

func (l *Lexer) scanOctalEscape(sb *strings.Builder) {
	n := 0
	var v int
	for n < 3 && !l.eof() && l.cur() >= '0' && l.cur() <= '7' {
		v = v*8 + int(l.advance()-'0')
		n++
	}
	sb.WriteByte(byte(v))
}

// scanUnicodeEscape handles \u{XXXX} by encoding the code point as UTF-8,
// matching the Language's string-literal escape grammar.
func (l *Lexer) scanUnicodeEscape(sb *strings.Builder) {
	save := l.pos
	l.pos++ // 'u'
	if l.cur() != '{' {
		l.pos = save
		sb.WriteByte('\\')
		sb.WriteByte(l.advance())
		return
	}
	l.pos++ // '{'
	var cp rune
	for !l.eof() && isHexDigit(l.cur()) {
		cp = cp*16 + rune(hexValue(l.advance()))
	}
	if l.cur() == '}' {
		l.pos++
	}
	sb.WriteRune(cp)
}

func hexValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}
