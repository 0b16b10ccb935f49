// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"
	"github.com/creachadair/jvalue/internal/scratch"
	"go4.org/mem"
)

// A Parser parses JSON text into Values. The zero Parser is ready for use.
//
// A Parser keeps a scratch buffer for decoding strings that is reused by
// successive calls. A Parser is not safe for concurrent use; use a separate
// Parser for each goroutine.
type Parser struct {
	buf      scratch.Buffer
	comments bool // allow comments
	span     Span // location of the last root value
}

// NewParser constructs a new Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// AllowComments configures the parser to accept (true) or reject (false)
// comments around the root value.  Comments are a non-standard extension of
// the JSON spec.  If enabled, C++ style block comments (/* ... */) and line
// comments (// ...) are treated as whitespace. A line comment may end at the
// end of the input. An unterminated block comment is an InvalidValue.
func (p *Parser) AllowComments(ok bool) { p.comments = ok }

// Span returns the location of the root value recognized by the most recent
// successful call to p.Parse. After a failed parse it returns a zero Span.
func (p *Parser) Span() Span { return p.span }

// Parse parses text as a single JSON value and stores it in v, replacing
// the previous contents of v. The input ends at the end of text or at the
// first zero byte, whichever comes first.
//
// If parsing fails, v is set to null and the error has concrete type
// *SyntaxError.
func (p *Parser) Parse(v *Value, text []byte) error { return p.parse(v, mem.B(text)) }

// ParseString parses text as a single JSON value and stores it in v.
// It behaves as Parse, but accepts a string.
func (p *Parser) ParseString(v *Value, text string) error { return p.parse(v, mem.S(text)) }

// ParseFrom reads r to EOF and parses its contents as a single JSON value,
// which is stored in v. If reading r fails, ParseFrom sets v to null and
// returns the error from r unchanged; CodeOf reports false for such errors.
func (p *Parser) ParseFrom(v *Value, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		v.SetNull()
		p.span = Span{}
		return err
	}
	return p.Parse(v, data)
}

// Parse parses text as a single JSON value using a new Parser with default
// settings. In case of error, the Value is null and the error has concrete
// type *SyntaxError.
func Parse(text []byte) (Value, error) {
	var v Value
	err := new(Parser).Parse(&v, text)
	return v, err
}

func (p *Parser) parse(v *Value, src mem.RO) error {
	if i := mem.IndexByte(src, 0); i >= 0 {
		src = src.SliceTo(i)
	}
	d := decoder{src: src, buf: &p.buf, v: v, comments: p.comments}
	v.SetNull()
	p.span = Span{}

	code := d.skipSpace()
	start := d.pos
	if code == OK {
		code = d.parseValue()
	}
	if code == OK {
		end := d.pos
		if !d.atEnd() && !d.atSpace() {
			code = InvalidValue
		} else if code = d.skipSpace(); code == OK && !d.atEnd() {
			code = RootNotSingular
		} else if code == OK {
			p.span = Span{Pos: start, End: end}
		}
	}
	if top := p.buf.Top(); top != 0 {
		panic(fmt.Sprintf("jvalue: scratch buffer not empty after parse (top=%d)", top))
	}
	if code != OK {
		v.SetNull()
		return &SyntaxError{Code: code, Offset: d.pos, Location: lineCol(src, d.pos)}
	}
	return nil
}

// A decoder holds the state of a single call to Parse.  When a step fails,
// pos is left at the offset where the failure was detected.
type decoder struct {
	src      mem.RO
	pos      int
	buf      *scratch.Buffer
	v        *Value
	comments bool // treat comments as whitespace
}

func (d *decoder) atEnd() bool { return d.pos >= d.src.Len() }

// peek returns the byte at the cursor, or 0 at the end of input.
func (d *decoder) peek() byte { return d.at(d.pos) }

// at returns the byte at offset i, or 0 if i is past the end of input.
func (d *decoder) at(i int) byte {
	if i < d.src.Len() {
		return d.src.At(i)
	}
	return 0
}

// atSpace reports whether the cursor is at whitespace, or at the start of a
// comment when comments are enabled.
func (d *decoder) atSpace() bool {
	if c := d.peek(); isSpace(c) {
		return true
	} else if c != '/' || !d.comments {
		return false
	}
	next := d.at(d.pos + 1)
	return next == '/' || next == '*'
}

// skipSpace advances the cursor past whitespace and comments. It reports
// InvalidValue for an unterminated block comment, leaving the cursor at the
// start of the comment.
func (d *decoder) skipSpace() ErrorCode {
	for !d.atEnd() && d.atSpace() {
		if isSpace(d.peek()) {
			d.pos++
		} else if !d.skipComment() {
			return InvalidValue
		}
	}
	return OK
}

// skipComment advances the cursor past the comment that begins there, and
// reports whether the comment was complete.
func (d *decoder) skipComment() bool {
	rest := d.src.SliceFrom(d.pos + 2)
	if d.at(d.pos+1) == '/' {
		// A line comment runs through the next LF, or to the end of input.
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			d.pos += 2 + i + 1
		} else {
			d.pos = d.src.Len()
		}
		return true
	}
	if i := mem.Index(rest, mem.S("*/")); i >= 0 {
		d.pos += 2 + i + 2
		return true
	}
	return false
}

// parseValue consumes a single value of any supported type.
func (d *decoder) parseValue() ErrorCode {
	if d.atEnd() {
		return ExpectValue
	}
	switch c := d.peek(); {
	case c == 'n':
		return d.parseLiteral("null", Null)
	case c == 't':
		return d.parseLiteral("true", True)
	case c == 'f':
		return d.parseLiteral("false", False)
	case isNumStart(c):
		return d.parseNumber()
	case c == '"':
		return d.parseString()
	default:
		return InvalidValue
	}
}

func (d *decoder) parseLiteral(lit string, t Type) ErrorCode {
	if !mem.HasPrefix(d.src.SliceFrom(d.pos), mem.S(lit)) {
		return InvalidValue
	}
	d.pos += len(lit)
	d.v.setType(t)
	return OK
}

// parseNumber consumes a number.  The text is checked against the JSON
// number grammar before it is converted:
//
//	number := '-'? int frac? exp?
//	int    := '0' | [1-9][0-9]*
//	frac   := '.' [0-9]+
//	exp    := [eE] [+-]? [0-9]+
func (d *decoder) parseNumber() ErrorCode {
	p := d.pos
	if d.at(p) == '-' {
		p++
	}

	// A leading zero must be the only digit of the integer part.
	// Anything that follows it is handled by the caller.
	if d.at(p) == '0' {
		p++
	} else if n := d.scanDigits(p); n == 0 {
		d.pos = p
		return InvalidValue
	} else {
		p += n
	}

	if d.at(p) == '.' {
		p++
		n := d.scanDigits(p)
		if n == 0 {
			d.pos = p
			return InvalidValue // no digits after decimal point
		}
		p += n
	}

	if c := d.at(p); c == 'e' || c == 'E' {
		p++
		if c := d.at(p); c == '+' || c == '-' {
			p++
		}
		n := d.scanDigits(p)
		if n == 0 {
			d.pos = p
			return InvalidValue // missing exponent digits
		}
		p += n
	}

	// Overflow to infinity is an error, but underflow to zero is not.
	f, err := mem.ParseFloat(d.src.Slice(d.pos, p), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			return NumberTooLarge
		} else if !errors.Is(err, strconv.ErrRange) {
			return InvalidValue
		}
	}
	d.v.SetNumber(f)
	d.pos = p
	return OK
}

// scanDigits reports the number of consecutive decimal digits beginning at
// offset i of the input.
func (d *decoder) scanDigits(i int) int {
	n := 0
	for isDigit(d.at(i + n)) {
		n++
	}
	return n
}

// parseString consumes a quoted string, decoding escapes into the scratch
// buffer. Every exit from parseString leaves the buffer top where it began.
// Precondition: the cursor is at an opening quotation mark.
func (d *decoder) parseString() ErrorCode {
	mark := d.buf.Top()
	fail := func(code ErrorCode) ErrorCode {
		d.buf.Rewind(mark)
		return code
	}

	d.pos++ // skip the open quote
	for {
		if d.atEnd() {
			return fail(MissingQuotationMark)
		}
		switch c := d.peek(); {
		case c == '"':
			d.v.SetString(d.buf.Pop(d.buf.Top() - mark))
			d.pos++
			return OK

		case c == '\\':
			d.pos++
			dec, ok := escape.Decode(d.peek()) // 0 at end of input is not an escape
			if !ok {
				return fail(InvalidStringEscape)
			}
			d.buf.PushByte(dec)

		case escape.IsControl(c):
			return fail(InvalidStringChar)

		default:
			d.buf.PushByte(c)
		}
		d.pos++
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
