// SPDX-License-Identifier: MIT

package wl_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/wlkernel/builder"
	"github.com/katalvlaran/wlkernel/core"
	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/katalvlaran/wlkernel/vertexhist"
	"github.com/katalvlaran/wlkernel/wl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapPair is two single-edge graphs with labels swapped between the endpoints.
func swapPair() []wl.Graph {
	return []wl.Graph{
		tup(map[string]string{"1": "a", "2": "b"}, [2]string{"1", "2"}),
		tup(map[string]string{"1": "b", "2": "a"}, [2]string{"1", "2"}),
	}
}

// molecules is a small batch of builder fixtures with mixed labels.
func molecules(t *testing.T) []wl.Graph {
	t.Helper()
	gs, err := builder.BuildDataset(nil,
		[]builder.BuilderOption{builder.WithLabels(builder.CyclicLabels("C", "N", "O"))},
		builder.Cycle(6), builder.Path(5), builder.Star(5), builder.Wheel(6), builder.Grid(2, 3),
	)
	require.NoError(t, err)

	out := make([]wl.Graph, len(gs))
	for i, g := range gs {
		out[i] = g
	}

	return out
}

func newKernel(t *testing.T, f wl.Factory, opts ...wl.Option) *wl.Kernel {
	t.Helper()
	k, err := wl.New(f, opts...)
	require.NoError(t, err)

	return k
}

func TestNew_Validation(t *testing.T) {
	_, err := wl.New(nil)
	require.ErrorIs(t, err, wl.ErrNilFactory)
	require.ErrorIs(t, err, wl.ErrValidation)

	_, err = wl.New(vertexhist.Factory, wl.WithIterations(0))
	require.ErrorIs(t, err, wl.ErrValidation)
	_, err = wl.New(vertexhist.Factory, wl.WithIterations(-3))
	require.ErrorIs(t, err, wl.ErrValidation)
	_, err = wl.New(vertexhist.Factory, wl.WithConcurrency(-1))
	require.ErrorIs(t, err, wl.ErrValidation)

	k := newKernel(t, vertexhist.Factory)
	assert.Equal(t, wl.DefaultIterations, k.Iterations())
	assert.Equal(t, "", k.Session())
}

func TestFitTransform_SwapIsomorphicEdges(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(1))

	K, err := k.FitTransform(ctx, swapPair())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(K, 0))
	assert.Equal(t, [][]float64{{4, 4}, {4, 4}}, K.ToRows())

	d0, err := k.Dictionary(0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, d0)
	d1, err := k.Dictionary(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0,[1]": 2, "1,[0]": 3}, d1)

	_, err = k.Dictionary(2)
	require.ErrorIs(t, err, wl.ErrValidation)
}

func TestFitTransform_IsolatedNode(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(1))

	X := []wl.Graph{
		tup(map[string]string{"1": "x"}),
		tup(map[string]string{"1": "x", "2": "y"}, [2]string{"1", "2"}),
	}
	K, err := k.FitTransform(ctx, X)
	require.NoError(t, err)
	// round 0: both share one "x" node; round 1: the isolated "x" differs.
	assert.Equal(t, [][]float64{{2, 1}, {1, 4}}, K.ToRows())

	d1, err := k.Dictionary(1)
	require.NoError(t, err)
	assert.NotEqual(t, d1["0,[]"], d1["0,[1]"])
	assert.Contains(t, d1, "0,[]")
}

func TestFit_EmptyBatches(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory)

	require.ErrorIs(t, k.Fit(ctx, []wl.Graph{}), wl.ErrValidation)
	require.ErrorIs(t, k.Fit(ctx, nil), wl.ErrValidation)
	require.ErrorIs(t, k.Fit(ctx, []wl.Graph{wl.Tuple{}}), wl.ErrValidation)
	require.ErrorIs(t, k.Fit(ctx, []wl.Graph{core.NewGraph(), nil}), wl.ErrValidation)
	_, err := k.FitTransform(ctx, []wl.Graph{wl.Tuple{}})
	require.ErrorIs(t, err, wl.ErrValidation)
}

func TestEmptyElementsAreSkipped(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(1))

	X := append([]wl.Graph{wl.Tuple{}}, swapPair()...)
	X = append(X, nil)
	K, err := k.FitTransform(ctx, X)
	require.NoError(t, err)
	assert.Equal(t, 2, K.Rows())
}

func TestNotFitted(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory)

	_, err := k.Transform(ctx, swapPair())
	require.ErrorIs(t, err, wl.ErrNotFitted)
	_, _, err = k.Diagonal()
	require.ErrorIs(t, err, wl.ErrNotFitted)
	_, err = k.Dictionary(0)
	require.ErrorIs(t, err, wl.ErrNotFitted)
}

func TestDeterminism(t *testing.T) {
	ctx := context.Background()
	X := molecules(t)

	a := newKernel(t, vertexhist.Factory, wl.WithIterations(3), wl.WithConcurrency(4))
	b := newKernel(t, vertexhist.Factory, wl.WithIterations(3), wl.WithConcurrency(1))
	Ka, err := a.FitTransform(ctx, X)
	require.NoError(t, err)
	Kb, err := b.FitTransform(ctx, X)
	require.NoError(t, err)
	assert.Equal(t, Ka.ToRows(), Kb.ToRows())

	for i := 0; i <= 3; i++ {
		da, err := a.Dictionary(i)
		require.NoError(t, err)
		db, err := b.Dictionary(i)
		require.NoError(t, err)
		assert.Equal(t, da, db, "round %d", i)
	}
	assert.NotEqual(t, a.Session(), b.Session())
}

func TestCodes_MonotonicAndDisjoint(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(4))
	require.NoError(t, k.Fit(ctx, molecules(t)))

	seen := map[int]int{}
	prevMax := -1
	for i := 0; i <= 4; i++ {
		d, err := k.Dictionary(i)
		require.NoError(t, err)
		require.NotEmpty(t, d)

		codes := make([]int, 0, len(d))
		for _, c := range d {
			codes = append(codes, c)
		}
		sort.Ints(codes)
		assert.Greater(t, codes[0], prevMax, "round %d starts above round %d", i, i-1)
		// round codes are contiguous
		assert.Equal(t, codes[0]+len(codes)-1, codes[len(codes)-1])
		for _, c := range codes {
			r, dup := seen[c]
			assert.False(t, dup, "code %d reused in round %d (first in %d)", c, i, r)
			seen[c] = i
		}
		prevMax = codes[len(codes)-1]
	}
}

func TestIsomorphismInvariance(t *testing.T) {
	ctx := context.Background()
	sp := &spies{}
	k := newKernel(t, sp.factory, wl.WithIterations(3))

	g1 := tup(map[string]string{"1": "a", "2": "b", "3": "a", "4": "c"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"})
	// same graph, node IDs permuted: 1→z, 2→y, 3→x, 4→w
	g2 := tup(map[string]string{"w": "c", "x": "a", "y": "b", "z": "a"},
		[2]string{"x", "w"}, [2]string{"y", "x"}, [2]string{"z", "y"})
	iso := map[string]string{"1": "z", "2": "y", "3": "x", "4": "w"}

	K, err := k.FitTransform(ctx, []wl.Graph{g1, g2})
	require.NoError(t, err)
	assert.Equal(t, K.ToRows()[0][0], K.ToRows()[1][1])
	assert.Equal(t, K.ToRows()[0][0], K.ToRows()[0][1])

	rounds := sp.last(4)
	l1, l2 := labelsOf(rounds, 0, false), labelsOf(rounds, 1, false)
	for i := range rounds {
		for from, to := range iso {
			assert.Equal(t, l1[i][from], l2[i][to], "round %d node %s", i, from)
		}
	}

	x, _, err := k.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, x[0], x[1])
}

func TestIsomorphismInvariance_ShuffledFixtures(t *testing.T) {
	plain, err := builder.BuildDataset(nil, nil, builder.Wheel(7), builder.Path(5))
	require.NoError(t, err)
	shuffled, err := builder.BuildDataset(nil, []builder.BuilderOption{builder.WithShuffledIDs(11, 6)},
		builder.Wheel(7), builder.Path(5))
	require.NoError(t, err)

	k := newKernel(t, vertexhist.Factory, wl.WithIterations(3))
	K, err := k.FitTransform(context.Background(), []wl.Graph{plain[0], plain[1], shuffled[0], shuffled[1]})
	require.NoError(t, err)

	rows := K.ToRows()
	assert.Equal(t, rows[0], rows[2])
	assert.Equal(t, rows[1], rows[3])
}

func TestAdditivity(t *testing.T) {
	ctx := context.Background()
	sp := &spies{}
	k := newKernel(t, sp.factory, wl.WithIterations(2), wl.WithNormalize(false))

	K, err := k.FitTransform(ctx, molecules(t))
	require.NoError(t, err)

	rounds := sp.last(3)
	sum, err := matrix.NewDense(K.Rows(), K.Cols())
	require.NoError(t, err)
	for _, s := range rounds {
		assert.False(t, s.settings.Normalize)
		require.NoError(t, matrix.AddInPlace(sum, s.fitM))
	}
	assert.Equal(t, sum.ToRows(), K.ToRows())

	x, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Nil(t, y)
	diag, err := matrix.Diagonal(K)
	require.NoError(t, err)
	assert.Equal(t, diag, x)
}

func TestBaseKernelsNeverNormalize(t *testing.T) {
	sp := &spies{}
	k := newKernel(t, sp.factory, wl.WithIterations(1), wl.WithNormalize(true), wl.WithVerbose(true), wl.WithConcurrency(3))
	require.NoError(t, k.Fit(context.Background(), swapPair()))
	for _, s := range sp.last(2) {
		assert.Equal(t, wl.Settings{Normalize: false, Verbose: true, Concurrency: 3}, s.settings)
	}
}

func TestNormalize_UnitDiagonal(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithNormalize(true))
	X := molecules(t)

	K, err := k.FitTransform(ctx, X)
	require.NoError(t, err)
	for i, row := range K.ToRows() {
		assert.InDelta(t, 1.0, row[i], 1e-12)
		for _, v := range row {
			assert.LessOrEqual(t, v, 1.0+1e-12)
		}
	}

	// A fitted graph transformed again matches itself with similarity 1.
	Q, err := k.Transform(ctx, X[2:3])
	require.NoError(t, err)
	assert.InDelta(t, 1.0, Q.ToRows()[0][2], 1e-12)
}

func TestTransform_ShapeAndDiagonal(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(2))
	X := molecules(t)
	require.NoError(t, k.Fit(ctx, X))

	query := []wl.Graph{X[0], tup(map[string]string{"q": "Z"})}
	Q, err := k.Transform(ctx, query)
	require.NoError(t, err)
	r, c := Q.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, len(X), c)
	// an unseen label shares nothing with the fitted graphs
	assert.Equal(t, make([]float64, len(X)), Q.ToRows()[1])

	x, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Len(t, x, len(X))
	require.Len(t, y, 2)
	assert.Equal(t, x[0], y[0])
	assert.Equal(t, 3.0, y[1]) // one node, one distinct code per round
}

func TestTransform_Consistency(t *testing.T) {
	ctx := context.Background()
	X := molecules(t)
	query := X[1] // every signature of a fitted graph is known

	spA := &spies{}
	a := newKernel(t, spA.factory, wl.WithIterations(3))
	require.NoError(t, a.Fit(ctx, X[:3]))
	Q, err := a.Transform(ctx, []wl.Graph{query})
	require.NoError(t, err)

	spB := &spies{}
	b := newKernel(t, spB.factory, wl.WithIterations(3))
	K, err := b.FitTransform(ctx, append(append([]wl.Graph{}, X[:3]...), query))
	require.NoError(t, err)

	viaTransform := labelsOf(spA.last(4), 0, true)
	viaFit := labelsOf(spB.last(4), 3, false)
	assert.Equal(t, viaFit, viaTransform)
	assert.Equal(t, K.ToRows()[3][:3], Q.ToRows()[0])

	for i := 0; i <= 3; i++ {
		da, _ := a.Dictionary(i)
		db, _ := b.Dictionary(i)
		assert.Equal(t, db, da)
	}
}

func TestTransform_AppendsUnseenCodes(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(1))
	_, err := k.FitTransform(ctx, swapPair())
	require.NoError(t, err)

	before0, _ := k.Dictionary(0)
	before1, _ := k.Dictionary(1)

	_, err = k.Transform(ctx, []wl.Graph{tup(map[string]string{"1": "a", "2": "z"}, [2]string{"1", "2"})})
	require.NoError(t, err)

	after0, _ := k.Dictionary(0)
	after1, _ := k.Dictionary(1)
	for sig, code := range before0 {
		assert.Equal(t, code, after0[sig])
	}
	for sig, code := range before1 {
		assert.Equal(t, code, after1[sig])
	}
	// fit issued codes 0..3; new ones come strictly after.
	assert.Equal(t, 4, after0["z"])
	assert.Equal(t, map[string]int{"0,[1]": 2, "1,[0]": 3, "0,[4]": 5, "4,[0]": 6}, after1)
}

func TestRefit_ReplacesState(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(1))

	require.NoError(t, k.Fit(ctx, swapPair()))
	s1 := k.Session()
	require.NotEmpty(t, s1)
	_, err := k.Transform(ctx, swapPair())
	require.NoError(t, err)

	require.NoError(t, k.Fit(ctx, []wl.Graph{tup(map[string]string{"1": "q"})}))
	assert.NotEqual(t, s1, k.Session())
	d0, err := k.Dictionary(0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"q": 0}, d0)
	_, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Nil(t, y)
}

func TestBaseKernelError_AbortsAndUnfits(t *testing.T) {
	ctx := context.Background()

	k := newKernel(t, failingFactory(2, false), wl.WithIterations(3))
	K, err := k.FitTransform(ctx, swapPair())
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, K)
	_, err = k.Transform(ctx, swapPair())
	require.ErrorIs(t, err, wl.ErrNotFitted)

	k = newKernel(t, failingFactory(0, false), wl.WithIterations(1))
	require.ErrorIs(t, k.Fit(ctx, swapPair()), errBoom)
	assert.Equal(t, "", k.Session())

	// a failure on refit discards the earlier good state
	fail := false
	k = newKernel(t, func(s wl.Settings) (wl.BaseKernel, error) {
		if fail {
			return nil, errBoom
		}
		return vertexhist.New(s), nil
	}, wl.WithIterations(1))
	require.NoError(t, k.Fit(ctx, swapPair()))
	fail = true
	require.ErrorIs(t, k.Fit(ctx, swapPair()), errBoom)
	_, _, err = k.Diagonal()
	require.ErrorIs(t, err, wl.ErrNotFitted)
}

func TestTransformError_Propagates(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, failingFactory(1, true), wl.WithIterations(2))
	require.NoError(t, k.Fit(ctx, swapPair()))

	Q, err := k.Transform(ctx, swapPair())
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, Q)
	assert.NotEmpty(t, k.Session())

	x, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6}, x)
	assert.Nil(t, y)
}

func TestTransformError_FitStaysUsable(t *testing.T) {
	ctx := context.Background()
	var built []*failing
	factory := func(s wl.Settings) (wl.BaseKernel, error) {
		f := &failing{BaseKernel: vertexhist.New(s), fail: len(built) == 1, transformOnly: true}
		built = append(built, f)
		return f, nil
	}
	k := newKernel(t, factory, wl.WithIterations(2), wl.WithConcurrency(1))
	require.NoError(t, k.Fit(ctx, swapPair()))
	require.Len(t, built, 3)

	built[1].fail = false
	Q, err := k.Transform(ctx, swapPair())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{6, 6}, {6, 6}}, Q.ToRows())
	_, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6}, y)

	// round 0 now holds the one-graph batch, round 1 still the two-graph one
	built[1].fail = true
	_, err = k.Transform(ctx, swapPair()[:1])
	require.ErrorIs(t, err, errBoom)
	x, y, err := k.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6}, x)
	assert.Nil(t, y, "no query diagonal mixed from two batches")

	built[1].fail = false
	Q, err = k.Transform(ctx, swapPair()[:1])
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{6, 6}}, Q.ToRows())
	x, y, err = k.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6}, x)
	assert.Equal(t, []float64{6}, y)
}

func TestFactoryReturningNil(t *testing.T) {
	k := newKernel(t, func(wl.Settings) (wl.BaseKernel, error) { return nil, nil })
	require.ErrorIs(t, k.Fit(context.Background(), swapPair()), wl.ErrValidation)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	k := newKernel(t, vertexhist.Factory)
	_, err := k.FitTransform(ctx, molecules(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestOnIteration(t *testing.T) {
	var got [][2]int
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(3), wl.WithOnIteration(func(round, total int) {
		got = append(got, [2]int{round, total})
	}))
	require.NoError(t, k.Fit(context.Background(), swapPair()))
	assert.Equal(t, [][2]int{{0, 4}, {1, 4}, {2, 4}, {3, 4}}, got)
}

func TestDuplicateEdgesCollapse(t *testing.T) {
	ctx := context.Background()
	plain := tup(map[string]string{"1": "a", "2": "b"}, [2]string{"1", "2"})
	doubled := tup(map[string]string{"1": "a", "2": "b"}, [2]string{"1", "2"}, [2]string{"1", "2"})

	a := newKernel(t, vertexhist.Factory, wl.WithIterations(2))
	b := newKernel(t, vertexhist.Factory, wl.WithIterations(2))
	Ka, err := a.FitTransform(ctx, []wl.Graph{plain})
	require.NoError(t, err)
	Kb, err := b.FitTransform(ctx, []wl.Graph{doubled})
	require.NoError(t, err)
	assert.Equal(t, Ka.ToRows(), Kb.ToRows())
	d1a, _ := a.Dictionary(1)
	d1b, _ := b.Dictionary(1)
	assert.Equal(t, d1a, d1b)
}

func TestConcurrentTransforms(t *testing.T) {
	ctx := context.Background()
	k := newKernel(t, vertexhist.Factory, wl.WithIterations(2), wl.WithNormalize(true))
	X := molecules(t)
	require.NoError(t, k.Fit(ctx, X))

	query := []wl.Graph{X[3], tup(map[string]string{"1": "C", "2": "S"}, [2]string{"1", "2"})}
	want, err := k.Transform(ctx, query)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*matrix.Dense, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = k.Transform(ctx, query)
		}()
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want.ToRows(), results[i].ToRows())
	}
}
