// SPDX-License-Identifier: MIT

package wl

import (
	"context"

	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// pool owns one base kernel per round. Calls for different rounds run
// concurrently; their results are stored by round and reduced in round order.
type pool struct {
	kernels []BaseKernel
	limit   int
}

// newPool builds rounds instances from factory.
func newPool(factory Factory, s Settings, rounds, limit int) (*pool, error) {
	ks := make([]BaseKernel, rounds)
	for i := range ks {
		bk, err := factory(s)
		if err != nil {
			return nil, errors.WithMessagef(err, "round %d: build base kernel", i)
		}
		if bk == nil {
			return nil, validationf("round %d: factory returned a nil base kernel", i)
		}
		ks[i] = bk
	}

	return &pool{kernels: ks, limit: limit}, nil
}

// each runs fn for every round, failing fast on the first error.
func (p *pool) each(ctx context.Context, fn func(ctx context.Context, round int) error) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.limit)
	for i := range p.kernels {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(gctx, i); err != nil {
				return errors.WithMessagef(err, "round %d", i)
			}
			return nil
		})
	}

	return eg.Wait()
}

func (p *pool) fit(ctx context.Context, dss []Dataset) error {
	return p.each(ctx, func(ctx context.Context, i int) error {
		return p.kernels[i].Fit(ctx, dss[i])
	})
}

func (p *pool) fitTransform(ctx context.Context, dss []Dataset, n int) (*matrix.Dense, error) {
	return p.collect(ctx, n, n, func(ctx context.Context, i int) (*matrix.Dense, error) {
		return p.kernels[i].FitTransform(ctx, dss[i])
	})
}

func (p *pool) transform(ctx context.Context, dss []Dataset, nQuery, nFit int) (*matrix.Dense, error) {
	return p.collect(ctx, nQuery, nFit, func(ctx context.Context, i int) (*matrix.Dense, error) {
		return p.kernels[i].Transform(ctx, dss[i])
	})
}

// collect gathers one matrix per round and sums them. No partial result is
// returned when any round fails.
func (p *pool) collect(ctx context.Context, rows, cols int, call func(ctx context.Context, round int) (*matrix.Dense, error)) (*matrix.Dense, error) {
	parts := make([]*matrix.Dense, len(p.kernels))
	err := p.each(ctx, func(ctx context.Context, i int) error {
		m, err := call(ctx, i)
		if err != nil {
			return err
		}
		parts[i] = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sumRounds(parts, rows, cols)
}

// diagonals sums every round's fit diagonal and, when nQuery >= 0, every
// round's query diagonal (each of length nQuery). A negative nQuery means the
// rounds hold no consistent query batch and query is nil.
func (p *pool) diagonals(nFit, nQuery int) (fit, query []float64, err error) {
	fits := make([][]float64, len(p.kernels))
	queries := make([][]float64, len(p.kernels))
	for i, bk := range p.kernels {
		f, q, err := bk.Diagonal()
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "round %d: diagonal", i)
		}
		fits[i], queries[i] = f, q
	}

	if fit, err = sumDiagonals(fits, nFit); err != nil {
		return nil, nil, errors.WithMessage(err, "fit diagonal")
	}
	if nQuery < 0 {
		return fit, nil, nil
	}
	if query, err = sumDiagonals(queries, nQuery); err != nil {
		return nil, nil, errors.WithMessage(err, "query diagonal")
	}

	return fit, query, nil
}
