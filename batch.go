// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A Result is the outcome of parsing one document with ParseAll.
type Result struct {
	Value Value
	Err   error // nil, or a *SyntaxError
}

// ParseAll parses each of docs as a single JSON value, using up to limit
// concurrent goroutines (limit <= 0 means no limit). Each goroutine uses its
// own Parser.  The results are returned in the same order as docs.
//
// Syntax errors are reported per document in the results.  ParseAll itself
// returns an error only if ctx ends before all the documents are parsed.
func ParseAll(ctx context.Context, docs [][]byte, limit int) ([]Result, error) {
	out := make([]Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var p Parser
			out[i].Err = p.Parse(&out[i].Value, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
