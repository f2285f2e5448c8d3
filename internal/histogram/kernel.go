// SPDX-License-Identifier: MIT

// Package histogram implements base kernels that compare graphs by the dot
// product of sparse feature-count histograms. vertexhist and edgehist are
// thin front-ends that only choose the features.
package histogram

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/katalvlaran/wlkernel/wl"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Extractor counts the features of one relabeled graph.
type Extractor[K comparable] func(g wl.LabeledGraph) map[K]float64

// Kernel is a histogram base kernel. It implements wl.BaseKernel.
type Kernel[K comparable] struct {
	mu       sync.RWMutex
	name     string
	extract  Extractor[K]
	settings wl.Settings

	fit       []map[K]float64
	fitDiag   []float64
	queryDiag []float64
}

var _ wl.BaseKernel = (*Kernel[int])(nil)

// New returns an unfitted histogram kernel.
func New[K comparable](name string, s wl.Settings, extract Extractor[K]) *Kernel[K] {
	return &Kernel[K]{name: name, extract: extract, settings: s}
}

// Fit stores the histograms of ds.
func (k *Kernel[K]) Fit(ctx context.Context, ds wl.Dataset) error {
	feats, err := k.features(ctx, ds)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.fit = feats
	k.fitDiag = selfDots(feats)
	k.queryDiag = nil
	k.logf("%s: fitted %d graphs", k.name, len(feats))

	return nil
}

// FitTransform fits ds and returns its Gram matrix.
func (k *Kernel[K]) FitTransform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	if err := k.Fit(ctx, ds); err != nil {
		return nil, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	m, err := k.gram(ctx, k.fit, k.fit)
	if err != nil {
		return nil, err
	}
	if !k.settings.Normalize {
		return m, nil
	}

	return matrix.NormalizeByDiagonals(m, k.fitDiag, k.fitDiag)
}

// Transform returns the len(ds)×n_fit similarity matrix against the fitted
// histograms and records the query diagonal.
func (k *Kernel[K]) Transform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	k.mu.RLock()
	fitted := k.fit != nil
	k.mu.RUnlock()
	if !fitted {
		return nil, errors.Wrapf(wl.ErrNotFitted, "%s: transform", k.name)
	}

	query, err := k.features(ctx, ds)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	m, err := k.gram(ctx, query, k.fit)
	if err != nil {
		return nil, err
	}
	k.queryDiag = selfDots(query)
	if !k.settings.Normalize {
		return m, nil
	}

	return matrix.NormalizeByDiagonals(m, k.queryDiag, k.fitDiag)
}

// Diagonal returns copies of the fit and query self-similarities. query is
// nil before the first Transform.
func (k *Kernel[K]) Diagonal() (fit, query []float64, err error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.fit == nil {
		return nil, nil, errors.Wrapf(wl.ErrNotFitted, "%s: diagonal", k.name)
	}
	fit = append([]float64(nil), k.fitDiag...)
	if k.queryDiag != nil {
		query = append([]float64(nil), k.queryDiag...)
	}

	return fit, query, nil
}

// features extracts one histogram per graph, in parallel.
func (k *Kernel[K]) features(ctx context.Context, ds wl.Dataset) ([]map[K]float64, error) {
	if len(ds) == 0 {
		return nil, errors.Wrapf(wl.ErrValidation, "%s: empty dataset", k.name)
	}

	out := make([]map[K]float64, len(ds))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(k.limit())
	for i := range ds {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = k.extract(ds[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.WithMessagef(err, "%s: features", k.name)
	}

	return out, nil
}

// gram computes rows[i]·cols[j] for every pair, one row per goroutine.
func (k *Kernel[K]) gram(ctx context.Context, rows, cols []map[K]float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(rows), len(cols))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(k.limit())
	for i := range rows {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := range cols {
				if err := m.Set(i, j, dot(rows[i], cols[j])); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, errors.WithMessagef(err, "%s: gram", k.name)
	}

	return m, nil
}

func (k *Kernel[K]) limit() int {
	if k.settings.Concurrency > 0 {
		return k.settings.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

func (k *Kernel[K]) logf(format string, args ...interface{}) {
	if k.settings.Verbose {
		klog.Infof(format, args...)
		return
	}
	klog.V(2).Infof(format, args...)
}

// dot is the sparse dot product; it iterates the smaller map.
func dot[K comparable](a, b map[K]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var s float64
	for key, va := range a {
		if vb, ok := b[key]; ok {
			s += va * vb
		}
	}

	return s
}

func selfDots[K comparable](hs []map[K]float64) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = dot(h, h)
	}

	return out
}
