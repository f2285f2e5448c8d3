// SPDX-License-Identifier: MIT

package wl

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

// Span names, one per public operation.
const (
	spanFit          = "wl.Fit"
	spanFitTransform = "wl.FitTransform"
	spanTransform    = "wl.Transform"
)

// Kernel is a Weisfeiler–Lehman kernel over a pluggable base kernel.
type Kernel struct {
	mu      sync.Mutex
	factory Factory
	cfg     Config
	state   *fitState // nil while unfit
}

// fitState is everything a fit produces. It is replaced wholesale by the next
// fit and only extended (dictionaries, query bookkeeping) by Transform.
type fitState struct {
	session  string
	dicts    []*labelDict // one per round
	nextCode int
	pool     *pool
	nFit     int
	xDiag    []float64 // cached fit-side diagonal; nil until first computed
	nQuery   int       // rows of the last successful transform; -1 before any or after a failed one
}

// New validates the options and returns an unfit Kernel.
//
// Errors:
//   - ErrNilFactory (an ErrValidation) when factory is nil.
//   - ErrValidation for invalid options (e.g. WithIterations(0)).
func New(factory Factory, opts ...Option) (*Kernel, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Kernel{factory: factory, cfg: cfg}, nil
}

// Iterations returns the configured number of refinement rounds (round 0 not
// counted).
func (k *Kernel) Iterations() int { return k.cfg.Iterations }

// Session returns the ID of the current fit, or "" while unfit.
func (k *Kernel) Session() string {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state == nil {
		return ""
	}

	return k.state.session
}

// Dictionary returns a copy of round i's signature → code dictionary,
// including any entries appended by Transform.
func (k *Kernel) Dictionary(i int) (map[string]int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state == nil {
		return nil, errors.WithStack(ErrNotFitted)
	}
	if i < 0 || i >= len(k.state.dicts) {
		return nil, validationf("round %d out of range [0,%d]", i, len(k.state.dicts)-1)
	}

	return k.state.dicts[i].snapshot(), nil
}

// Fit relabels X and fits one base kernel per round. Any previous state is
// discarded, also when Fit fails.
func (k *Kernel) Fit(ctx context.Context, X []Graph) (err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	ctx, span := k.startSpan(ctx, spanFit, len(X))
	defer func() { endSpan(span, err) }()

	_, err = k.fitLocked(ctx, X, false)

	return err
}

// FitTransform is Fit followed by the Gram matrix of X: the sum of every
// round's base-kernel matrix, normalized when configured. The fit diagonal
// is cached from the summed matrix.
func (k *Kernel) FitTransform(ctx context.Context, X []Graph) (_ *matrix.Dense, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	ctx, span := k.startSpan(ctx, spanFitTransform, len(X))
	defer func() { endSpan(span, err) }()

	return k.fitLocked(ctx, X, true)
}

// Transform relabels X against the fitted dictionaries and returns the
// len(X')×n_fit similarity matrix, where X' are the non-empty elements of X.
// Signatures unseen at fit time get new codes appended to the dictionaries.
//
// Errors:
//   - ErrNotFitted before a successful fit.
//   - ErrValidation for an empty or malformed batch.
//   - Any base-kernel error, with round context.
func (k *Kernel) Transform(ctx context.Context, X []Graph) (_ *matrix.Dense, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	ctx, span := k.startSpan(ctx, spanTransform, len(X))
	defer func() { endSpan(span, err) }()

	st := k.state
	if st == nil {
		return nil, errors.WithStack(ErrNotFitted)
	}
	span.SetAttributes(attribute.String("wl.session", st.session))

	graphs, err := parseBatch(X)
	if err != nil {
		return nil, err
	}
	dss, err := k.relabel(ctx, graphs, st)
	if err != nil {
		return nil, err
	}
	// rounds that finish before a failing one already hold this batch's
	// query side; no query diagonal is reported until a transform succeeds.
	st.nQuery = -1
	K, err := st.pool.transform(ctx, dss, len(graphs), st.nFit)
	if err != nil {
		return nil, err
	}
	st.nQuery = len(graphs)
	k.logf("wl: transform of %d graphs against %d fitted (session %s)", len(graphs), st.nFit, st.session)

	if !k.cfg.Normalize {
		return K, nil
	}
	xDiag, yDiag, err := k.diagonalLocked(st)
	if err != nil {
		return nil, err
	}

	return normalize(K, yDiag, xDiag)
}

// Diagonal returns the summed self-similarities of the fitted graphs (xDiag)
// and of the most recently transformed graphs (yDiag, nil if no Transform
// has succeeded since the last fit or the latest one failed). xDiag is
// cached; yDiag is recomputed on every call.
func (k *Kernel) Diagonal() (xDiag, yDiag []float64, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state == nil {
		return nil, nil, errors.WithStack(ErrNotFitted)
	}

	return k.diagonalLocked(k.state)
}

func (k *Kernel) diagonalLocked(st *fitState) (xDiag, yDiag []float64, err error) {
	fit, query, err := st.pool.diagonals(st.nFit, st.nQuery)
	if err != nil {
		return nil, nil, err
	}
	if st.xDiag == nil {
		st.xDiag = fit
	}

	return append([]float64(nil), st.xDiag...), query, nil
}

// fitLocked runs a full fit. The model is left unfit on any error.
func (k *Kernel) fitLocked(ctx context.Context, X []Graph, withMatrix bool) (*matrix.Dense, error) {
	k.state = nil

	graphs, err := parseBatch(X)
	if err != nil {
		return nil, err
	}

	rounds := k.cfg.Iterations + 1
	st := &fitState{
		session: uuid.NewString(),
		dicts:   make([]*labelDict, rounds),
		nFit:    len(graphs),
		nQuery:  -1,
	}
	for i := range st.dicts {
		st.dicts[i] = newLabelDict()
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("wl.session", st.session),
		attribute.Int("wl.graphs", len(graphs)),
	)

	dss, err := k.relabel(ctx, graphs, st)
	if err != nil {
		return nil, err
	}
	for _, d := range st.dicts {
		d.freeze()
	}

	if st.pool, err = newPool(k.factory, k.cfg.settings(), rounds, k.cfg.limit()); err != nil {
		return nil, err
	}

	if !withMatrix {
		if err = st.pool.fit(ctx, dss); err != nil {
			return nil, err
		}
		k.state = st
		k.logf("wl: fitted %d graphs, %d codes (session %s)", st.nFit, st.nextCode, st.session)
		return nil, nil
	}

	K, err := st.pool.fitTransform(ctx, dss, st.nFit)
	if err != nil {
		return nil, err
	}
	if st.xDiag, err = matrix.Diagonal(K); err != nil {
		return nil, errors.WithStack(err)
	}
	k.state = st
	k.logf("wl: fitted %d graphs, %d codes (session %s)", st.nFit, st.nextCode, st.session)

	if !k.cfg.Normalize {
		return K, nil
	}

	return normalize(K, st.xDiag, st.xDiag)
}

// relabel runs round 0 and all refinement rounds over graphs, extending
// st's dictionaries, and returns one Dataset per round.
func (k *Kernel) relabel(ctx context.Context, graphs []*indexedGraph, st *fitState) ([]Dataset, error) {
	rounds := len(st.dicts)
	dss := make([]Dataset, rounds)

	labeling, added, err := compressRaw(graphs, st.dicts[0], &st.nextCode)
	if err != nil {
		return nil, err
	}
	dss[0] = toDataset(graphs, labeling)
	k.logf("wl: round 0/%d: %d new codes", rounds-1, added)
	k.cfg.OnIteration(0, rounds)

	limit := k.cfg.limit()
	for i := 1; i < rounds; i++ {
		if labeling, added, err = relabelRound(ctx, graphs, labeling, st.dicts[i], &st.nextCode, limit); err != nil {
			return nil, errors.WithMessagef(err, "round %d", i)
		}
		dss[i] = toDataset(graphs, labeling)
		k.logf("wl: round %d/%d: %d new codes", i, rounds-1, added)
		k.cfg.OnIteration(i, rounds)
	}

	return dss, nil
}

// logf logs progress at info level when verbose, at V(1) otherwise.
func (k *Kernel) logf(format string, args ...interface{}) {
	if k.cfg.Verbose {
		klog.InfofDepth(1, format, args...)
		return
	}
	klog.V(1).Infof(format, args...)
}

func (k *Kernel) startSpan(ctx context.Context, name string, n int) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return k.cfg.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("wl.batch", n),
		attribute.Int("wl.iterations", k.cfg.Iterations),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
