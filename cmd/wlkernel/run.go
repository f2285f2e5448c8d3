// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/wlkernel/builder"
	"github.com/katalvlaran/wlkernel/core"
	"github.com/katalvlaran/wlkernel/wl"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// run builds the configured datasets, fits the kernel and prints the fit
// Gram matrix, the number of label codes summed over every round's
// dictionary and, if configured, the query matrix to out. Progress bars go
// to status.
func run(ctx context.Context, cfg RunConfig, out, status io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	factory, err := cfg.factory()
	if err != nil {
		return err
	}

	fitSet, err := buildGraphs(cfg.Fit)
	if err != nil {
		return errors.WithMessage(err, "fit dataset")
	}
	querySet, err := buildGraphs(cfg.Query)
	if err != nil {
		return errors.WithMessage(err, "query dataset")
	}

	bar := newProgress(status)
	k, err := wl.New(factory, append(cfg.options(), wl.WithOnIteration(bar.step))...)
	if err != nil {
		return err
	}
	rounds := cfg.Iterations + 1

	bar.start("fit", rounds)
	K, err := k.FitTransform(ctx, fitSet)
	bar.finish()
	if err != nil {
		return errors.WithMessage(err, "fit")
	}
	klog.V(1).Infof("fitted session %s", k.Session())

	fmt.Fprintf(out, "session %s\n", k.Session())
	fmt.Fprintf(out, "base kernel %s, %d iterations, normalize=%t\n", cfg.BaseKernel, cfg.Iterations, cfg.Normalize)
	fmt.Fprintf(out, "fit: %s\n", describe(fitSet))
	fmt.Fprint(out, K)

	codes := 0
	for i := 0; i <= cfg.Iterations; i++ {
		d, err := k.Dictionary(i)
		if err != nil {
			return err
		}
		codes += len(d)
	}
	fmt.Fprintf(out, "label codes: %s\n", humanize.Comma(int64(codes)))

	if len(querySet) == 0 {
		return nil
	}

	bar.start("transform", rounds)
	Q, err := k.Transform(ctx, querySet)
	bar.finish()
	if err != nil {
		return errors.WithMessage(err, "transform")
	}
	fmt.Fprintf(out, "query: %s\n", describe(querySet))
	fmt.Fprint(out, Q)

	return nil
}

// buildGraphs turns dataset specs into graphs.
func buildGraphs(specs []DatasetSpec) ([]wl.Graph, error) {
	out := make([]wl.Graph, 0, len(specs))
	for i, spec := range specs {
		con, opts, err := spec.constructor()
		if err != nil {
			return nil, errors.WithMessagef(err, "entry %d", i)
		}
		g, err := builder.BuildGraph(nil, opts, con)
		if err != nil {
			return nil, errors.WithMessagef(err, "entry %d (%s/%d)", i, spec.Shape, spec.Size)
		}
		out = append(out, g)
	}

	return out, nil
}

// describe summarizes a batch as "<graphs> graphs, <nodes> nodes, <edges> edges".
func describe(gs []wl.Graph) string {
	var nodes, edges int
	for _, g := range gs {
		if cg, ok := g.(*core.Graph); ok {
			nodes += cg.VertexCount()
			edges += cg.EdgeCount()
		}
	}

	return fmt.Sprintf("%s graphs, %s nodes, %s edges",
		humanize.Comma(int64(len(gs))), humanize.Comma(int64(nodes)), humanize.Comma(int64(edges)))
}
