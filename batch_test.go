// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

// codeOf returns the ErrorCode of a parse error, or fails the test.
func codeOf(t *testing.T, err error) jvalue.ErrorCode {
	t.Helper()
	code, ok := jvalue.CodeOf(err)
	if !ok {
		t.Fatalf("Error %v is not a parse error", err)
	}
	return code
}

func TestParseAll(t *testing.T) {
	docs := [][]byte{
		[]byte(`null`),
		[]byte(` "a\tb" `),
		[]byte(`1e309`),
		[]byte(`-2.5`),
		[]byte(`true false`),
		[]byte(`false`),
	}
	for _, limit := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			rs, err := jvalue.ParseAll(context.Background(), docs, limit)
			if err != nil {
				t.Fatalf("ParseAll: unexpected error: %v", err)
			}
			var got []string
			for _, r := range rs {
				got = append(got, fmt.Sprintf("%v %v", r.Value, codeOf(t, r.Err)))
			}
			want := []string{
				"null ok",
				`"a\tb" ok`,
				"null number too large",
				"-2.5 ok",
				"null root not singular",
				"false ok",
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Results (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParseAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := [][]byte{[]byte("1"), []byte("2")}
	rs, err := jvalue.ParseAll(ctx, docs, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseAll: got (%v, %v), want %v", rs, err, context.Canceled)
	}
}
