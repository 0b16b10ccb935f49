// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestAccessNull(t *testing.T) {
	var v jvalue.Value
	if !v.IsNull() || v.Type() != jvalue.Null {
		t.Errorf("Zero value: got %v, want null", v.Type())
	}
	v.SetString([]byte("a"))
	v.SetNull()
	if got := v.Type(); got != jvalue.Null {
		t.Errorf("After SetNull: got %v, want null", got)
	}
}

func TestAccessBoolean(t *testing.T) {
	var v jvalue.Value
	v.SetString([]byte("a"))
	v.SetBool(true)
	if !v.Bool() || v.Type() != jvalue.True {
		t.Errorf("SetBool(true): got %v", v)
	}
	v.SetBool(false)
	if v.Bool() || v.Type() != jvalue.False {
		t.Errorf("SetBool(false): got %v", v)
	}
}

func TestAccessNumber(t *testing.T) {
	var v jvalue.Value
	v.SetString([]byte("a"))
	v.SetNumber(12345.678)
	if got := v.Float64(); got != 12345.678 {
		t.Errorf("Float64: got %v, want 12345.678", got)
	}
}

func TestAccessString(t *testing.T) {
	var v jvalue.Value
	v.SetString(nil)
	if got := v.Len(); got != 0 {
		t.Errorf("Len: got %d, want 0", got)
	}
	if got := string(v.Bytes()); got != "" {
		t.Errorf("Bytes: got %#q, want empty", got)
	}

	src := []byte("Hello")
	v.SetString(src)
	src[0] = 'J' // the value has its own copy
	if got := string(v.Bytes()); got != "Hello" {
		t.Errorf("Bytes: got %#q, want %#q", got, "Hello")
	}
	if got := v.Len(); got != 5 {
		t.Errorf("Len: got %d, want 5", got)
	}

	// Zero bytes are not terminators.
	v.SetString([]byte("a\x00b"))
	if diff := cmp.Diff([]byte("a\x00b"), v.Bytes()); diff != "" {
		t.Errorf("Bytes (-want, +got):\n%s", diff)
	}
}

func TestAccessWrongType(t *testing.T) {
	var v jvalue.Value
	mtest.MustPanic(t, func() { v.Bool() })
	mtest.MustPanic(t, func() { v.Float64() })
	mtest.MustPanic(t, func() { v.Bytes() })
	mtest.MustPanic(t, func() { v.Len() })

	v.SetNumber(1)
	mtest.MustPanic(t, func() { v.Bool() })
	mtest.MustPanic(t, func() { v.Bytes() })

	v.SetString([]byte("1"))
	mtest.MustPanic(t, func() { v.Float64() })
	mtest.MustPanic(t, func() { v.Bool() })

	v.SetBool(false)
	mtest.MustPanic(t, func() { v.Float64() })
	mtest.MustPanic(t, func() { v.Len() })
}

func TestValueString(t *testing.T) {
	mk := func(f func(*jvalue.Value)) jvalue.Value {
		var v jvalue.Value
		f(&v)
		return v
	}
	tests := []struct {
		input jvalue.Value
		want  string
	}{
		{jvalue.Value{}, "null"},
		{mk(func(v *jvalue.Value) { v.SetBool(true) }), "true"},
		{mk(func(v *jvalue.Value) { v.SetBool(false) }), "false"},
		{mk(func(v *jvalue.Value) { v.SetNumber(-0.00239) }), "-0.00239"},
		{mk(func(v *jvalue.Value) { v.SetNumber(150) }), "150"},
		{mk(func(v *jvalue.Value) { v.SetNumber(1.234e+21) }), "1.234e+21"},
		{mk(func(v *jvalue.Value) { v.SetString(nil) }), `""`},
		{mk(func(v *jvalue.Value) { v.SetString([]byte("a \t b\x01\"")) }), `"a \t b\u0001\""`},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("String: got %s, want %s", got, test.want)
		}
		if got := fmt.Sprint(test.input); got != test.want {
			t.Errorf("Sprint: got %s, want %s", got, test.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		input jvalue.Type
		want  string
	}{
		{jvalue.Null, "null"},
		{jvalue.False, "false"},
		{jvalue.True, "true"},
		{jvalue.Number, "number"},
		{jvalue.String, "string"},
		{jvalue.Type(99), "Type(99)"},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("%d.String(): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var msg struct {
		Name  jvalue.Value `json:"name"`
		Count jvalue.Value `json:"count"`
		Flag  jvalue.Value `json:"flag"`
		Empty jvalue.Value `json:"empty"`
	}
	const input = `{"name": "a\nb", "count": 2.5e3, "flag": false, "empty": null}`
	if err := json.Unmarshal([]byte(input), &msg); err != nil {
		t.Fatalf("Unmarshal: unexpected error: %v", err)
	}
	if got := string(msg.Name.Bytes()); got != "a\nb" {
		t.Errorf("Name: got %#q, want %#q", got, "a\nb")
	}
	if got := msg.Count.Float64(); got != 2500 {
		t.Errorf("Count: got %v, want 2500", got)
	}
	if msg.Flag.Type() != jvalue.False {
		t.Errorf("Flag: got %v, want false", msg.Flag)
	}
	if !msg.Empty.IsNull() {
		t.Errorf("Empty: got %v, want null", msg.Empty)
	}

	// Composite values are not supported.
	err := json.Unmarshal([]byte(`{"name": [1, 2]}`), &msg)
	if !errors.Is(err, jvalue.InvalidValue) {
		t.Errorf("Unmarshal array: got %v, want %v", err, jvalue.InvalidValue)
	}
}

func TestErrorCode(t *testing.T) {
	if got, ok := jvalue.CodeOf(nil); !ok || got != jvalue.OK {
		t.Errorf("CodeOf(nil): got %v, %v; want OK, true", got, ok)
	}
	if got, ok := jvalue.CodeOf(errors.New("other")); ok {
		t.Errorf("CodeOf(other): got %v, true; want false", got)
	}
	if got, ok := jvalue.CodeOf(fmt.Errorf("wrapped: %w", jvalue.RootNotSingular)); !ok || got != jvalue.RootNotSingular {
		t.Errorf("CodeOf(wrapped): got %v, %v; want %v, true", got, ok, jvalue.RootNotSingular)
	}
	if got := jvalue.ErrorCode(200).String(); got != "ErrorCode(200)" {
		t.Errorf("String: got %q, want %q", got, "ErrorCode(200)")
	}
	err := &jvalue.SyntaxError{Code: jvalue.NumberTooLarge, Location: jvalue.LineCol{Line: 2, Column: 3}}
	if got, want := err.Error(), "at 2:3: number too large"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if !errors.Is(err, jvalue.NumberTooLarge) || errors.Is(err, jvalue.InvalidValue) {
		t.Errorf("errors.Is did not match the code of %v", err)
	}
}
