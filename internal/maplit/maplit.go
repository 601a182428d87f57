// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package maplit parses the restricted "constant map literal" syntax used to
// write module specifications as single strings, e.g.:
//
//	@{ ModuleName = 'Utils'; ModuleVersion = '1.2.0' }
//
// The grammar is intentionally tiny: an @{ ... } block containing
// identifier keys assigned literal values, separated by semicolons or
// newlines. Values may be single-quoted strings (doubling the quote to
// escape it), double-quoted strings (backtick escapes), bare decimal
// numbers, or the constants $true and $false. Anything that would require
// evaluation -- variable references, subexpressions, operators, nested
// structures -- is a parse error. This is not a scripting-language parser
// and must never grow into one.
package maplit

import (
	"fmt"
	"strings"
)

// Entry is a single key/value pair from a map literal, in source order.
type Entry struct {
	Key   string
	Value any // string, Number, or bool
}

// Number is the source text of a bare numeric literal. It is kept as text
// rather than converted to a float so that values like "1.0" survive intact
// for later interpretation as version numbers.
type Number string

func (n Number) String() string {
	return string(n)
}

// ParseError describes why a string failed to parse as a constant map
// literal. Pos is a byte offset into the input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid map literal at offset %d: %s", e.Pos, e.Msg)
}

// Parse interprets src as a constant map literal and returns its entries in
// source order. Duplicate keys (compared case-insensitively, matching the
// semantics of the consumers of these literals) are an error.
func Parse(src string) ([]Entry, error) {
	p := &parser{src: src}

	p.skipSpace(true)
	if !p.eat("@{") {
		return nil, p.errorf("expected \"@{\" to open the literal")
	}

	var entries []Entry
	seen := make(map[string]struct{})
	for {
		p.skipSpace(true)
		for p.eat(";") {
			p.skipSpace(true)
		}
		if p.eat("}") {
			break
		}
		if p.atEOF() {
			return nil, p.errorf("unterminated map literal")
		}

		key, err := p.readIdentifier()
		if err != nil {
			return nil, err
		}
		p.skipSpace(false)
		if !p.eat("=") {
			return nil, p.errorf("expected \"=\" after key %q", key)
		}
		p.skipSpace(false)
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}

		lowerKey := strings.ToLower(key)
		if _, dup := seen[lowerKey]; dup {
			return nil, p.errorf("duplicate key %q", key)
		}
		seen[lowerKey] = struct{}{}
		entries = append(entries, Entry{Key: key, Value: val})

		sep := p.skipSpace(false)
		switch {
		case p.eat(";"), sep:
			// Separator consumed; further separators and the closing
			// brace are handled at the top of the loop.
		case p.peek("}"):
			// Final entry may omit the separator.
		default:
			return nil, p.errorf("expected \";\" or newline after value for %q", key)
		}
	}

	p.skipSpace(true)
	if !p.atEOF() {
		return nil, p.errorf("unexpected text after closing \"}\"")
	}
	return entries, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) atEOF() bool {
	return p.pos >= len(p.src)
}

// skipSpace advances over whitespace. Newlines are only consumed when
// newlines is true; otherwise it stops at them and reports whether at least
// one newline was crossed, since a newline separates entries.
func (p *parser) skipSpace(newlines bool) bool {
	sawNewline := false
	for !p.atEOF() {
		switch p.src[p.pos] {
		case ' ', '\t':
			p.pos++
		case '\r', '\n':
			sawNewline = true
			if !newlines {
				// Consume the newline itself so the caller can treat it
				// as a separator, but stop there.
				p.pos++
				return true
			}
			p.pos++
		default:
			return sawNewline
		}
	}
	return sawNewline
}

func (p *parser) eat(tok string) bool {
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) peek(tok string) bool {
	return strings.HasPrefix(p.src[p.pos:], tok)
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (p *parser) readIdentifier() (string, error) {
	if p.atEOF() || !isIdentStart(p.src[p.pos]) {
		return "", p.errorf("expected an identifier key")
	}
	start := p.pos
	for !p.atEOF() && isIdentCont(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) readValue() (any, error) {
	if p.atEOF() {
		return nil, p.errorf("expected a literal value")
	}
	switch c := p.src[p.pos]; {
	case c == '\'':
		return p.readSingleQuoted()
	case c == '"':
		return p.readDoubleQuoted()
	case c == '$':
		return p.readConstant()
	case c >= '0' && c <= '9':
		return p.readNumber()
	default:
		// Bare words, variables, parentheses and everything else all mean
		// the input needs evaluation, which this grammar refuses.
		return nil, p.errorf("expected a constant literal value")
	}
}

func (p *parser) readSingleQuoted() (string, error) {
	p.pos++ // opening quote
	var buf strings.Builder
	for !p.atEOF() {
		c := p.src[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
				buf.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return buf.String(), nil
		}
		buf.WriteByte(c)
		p.pos++
	}
	return "", p.errorf("unterminated single-quoted string")
}

func (p *parser) readDoubleQuoted() (string, error) {
	p.pos++ // opening quote
	var buf strings.Builder
	for !p.atEOF() {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return buf.String(), nil
		case '`':
			p.pos++
			if p.atEOF() {
				return "", p.errorf("unterminated escape sequence")
			}
			switch e := p.src[p.pos]; e {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				buf.WriteByte(e)
			}
			p.pos++
		case '$':
			// A double-quoted string with interpolation is not a constant.
			return "", p.errorf("string interpolation is not allowed in a constant literal")
		default:
			buf.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated double-quoted string")
}

func (p *parser) readConstant() (bool, error) {
	switch {
	case p.eat("$true"):
		return true, nil
	case p.eat("$false"):
		return false, nil
	default:
		return false, p.errorf("variable references are not allowed in a constant literal")
	}
}

func (p *parser) readNumber() (Number, error) {
	start := p.pos
	for !p.atEOF() {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
			p.pos++
		case c == '.':
			// Multi-dot sequences like 1.2.3 are version-shaped numbers;
			// accept them as text since the value is never evaluated
			// arithmetically. A dot must be followed by a digit, so a
			// trailing "1." is malformed.
			if p.pos+1 >= len(p.src) || p.src[p.pos+1] < '0' || p.src[p.pos+1] > '9' {
				return "", p.errorf("malformed number")
			}
			p.pos++
		default:
			return Number(p.src[start:p.pos]), nil
		}
	}
	return Number(p.src[start:p.pos]), nil
}
