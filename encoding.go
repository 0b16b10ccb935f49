// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// String renders v for display. Strings are quoted with their contents
// escaped; numbers use the shortest representation that round-trips.
// String has a value receiver so that fmt can format a Value held by value.
func (v Value) String() string {
	switch v.typ {
	case Null, False, True:
		return v.typ.String()
	case Number:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case String:
		return string(escape.Quote(mem.B(v.str)))
	default:
		return v.typ.String()
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface, allowing a Value
// to be the target of a field decoded by the encoding/json package.
func (v *Value) UnmarshalJSON(data []byte) error {
	return new(Parser).Parse(v, data)
}
