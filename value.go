// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// Type is the type of a JSON value.
type Type byte

// Constants defining the valid Type values.
const (
	Null   Type = iota // constant: null
	False              // constant: false
	True               // constant: true
	Number             // number
	String             // string
)

var typeStr = [...]string{
	Null:   "null",
	False:  "false",
	True:   "true",
	Number: "number",
	String: "string",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return fmt.Sprintf("Type(%d)", t)
	}
	return typeStr[t]
}

// A Value holds a single JSON value: null, a Boolean, a number, or a string.
// The zero Value is null.
//
// The payload of a Value is only defined for its current type. Each of the
// accessor methods panics if called on a value of the wrong type.
type Value struct {
	typ Type
	num float64 // valid if typ == Number
	str []byte  // valid if typ == String
}

// Type reports the type of v.
func (v *Value) Type() Type { return v.typ }

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.typ == Null }

// Bool returns the Boolean value of v.
// It panics if v is not True or False.
func (v *Value) Bool() bool {
	v.check("Bool", False, True)
	return v.typ == True
}

// Float64 returns the numeric value of v.
// It panics if v is not a Number.
func (v *Value) Float64() float64 {
	v.check("Float64", Number)
	return v.num
}

// Bytes returns the contents of v, a String. The result is a view of the
// storage owned by v, and is only valid until the next change to v.
// It panics if v is not a String.
func (v *Value) Bytes() []byte {
	v.check("Bytes", String)
	return v.str
}

// Len returns the length in bytes of v, a String.
// It panics if v is not a String.
func (v *Value) Len() int {
	v.check("Len", String)
	return len(v.str)
}

// SetNull sets v to null, discarding any previous contents.
func (v *Value) SetNull() { *v = Value{} }

// SetBool sets v to True or False according to b.
func (v *Value) SetBool(b bool) {
	v.SetNull()
	if b {
		v.typ = True
	} else {
		v.typ = False
	}
}

// SetNumber sets v to the number f.
func (v *Value) SetNumber(f float64) {
	v.SetNull()
	v.typ = Number
	v.num = f
}

// SetString sets v to a string containing a copy of s. The contents of s
// may include any byte values, including zero.
func (v *Value) SetString(s []byte) {
	v.SetNull()
	v.typ = String
	v.str = append(make([]byte, 0, len(s)), s...)
}

// setType sets v to one of the payload-free types.
func (v *Value) setType(t Type) {
	v.SetNull()
	v.typ = t
}

func (v *Value) check(method string, want ...Type) {
	for _, t := range want {
		if v.typ == t {
			return
		}
	}
	panic(fmt.Sprintf("jvalue: %s called on %v value", method, v.typ))
}
