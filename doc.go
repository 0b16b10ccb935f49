// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a parser for single JSON scalar values.
//
// # Parsing
//
// The Parser type converts a JSON text into a Value holding exactly one of
// null, true, false, a number, or a string:
//
//	var v jvalue.Value
//	p := jvalue.NewParser()
//	if err := p.Parse(&v, input); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("Got %v value: %v", v.Type(), v)
//
// The input must contain exactly one value, optionally surrounded by
// whitespace. Arrays, objects, and Unicode escapes ("\u0041") are not
// supported, and are reported as errors.
//
// # Errors
//
// In case of error, the Value is set to null and the error has concrete type
// *jvalue.SyntaxError, which records the kind of failure as an ErrorCode
// along with the location where it was detected. ErrorCode values satisfy
// the error interface, so callers may check for a specific kind of failure
// with errors.Is:
//
//	if errors.Is(err, jvalue.NumberTooLarge) {
//	   log.Print("Number out of range")
//	}
//
// Numbers whose magnitude is too large for a float64 are rejected with
// NumberTooLarge. Numbers too small to represent are rounded to zero and
// are not an error.
//
// # Values
//
// A Value reports its type via the Type method. The accessor methods Bool,
// Float64, Bytes, and Len are only valid for a value of the matching type,
// and panic otherwise:
//
//	Type          | Accessors      | Mutator
//	------------- | -------------- | ------------------
//	Null          | --             | SetNull
//	True, False   | Bool           | SetBool
//	Number        | Float64        | SetNumber
//	String        | Bytes, Len     | SetString
//
// A String value owns a copy of its contents, which may include any byte
// values. Each mutator discards the previous contents of the value.
//
// # Concurrency
//
// A Parser reuses an internal buffer across calls, and must not be shared
// among goroutines without synchronization. To parse many documents
// concurrently, use ParseAll, which gives each goroutine its own Parser.
package jvalue
