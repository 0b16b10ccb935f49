// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
package escape

// decodeEsc maps the byte following a backslash to its decoded value.
// Zero entries are not valid escapes.
var decodeEsc = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Decode reports the byte denoted by the escape sequence "\c", and whether
// c denotes a supported escape. Unicode escapes ("\u") are not supported.
func Decode(c byte) (byte, bool) {
	d := decodeEsc[c]
	return d, d != 0
}

// IsControl reports whether c is a control byte that may not appear
// unescaped in a string.
func IsControl(c byte) bool { return c >= 0x01 && c <= 0x1f }
