// Package wlkernel computes Weisfeiler–Lehman graph kernels: pairwise
// similarity matrices over batches of labeled graphs, built by iterative
// neighborhood relabeling on top of a pluggable base kernel.
//
// 🚀 What is wlkernel?
//
//	An in-memory engine that brings together:
//		• Labeled graphs: build and mutate safely under locks (core)
//		• Dense matrices: Gram matrices, diagonals, cosine normalization (matrix)
//		• WL relabeling: per-round signature dictionaries, fit/transform (wl)
//		• Base kernels: vertex and edge label histograms (vertexhist, edgehist)
//		• Fixtures: paths, cycles, stars, wheels, grids, random sparse graphs (builder)
//		• A CLI: YAML-configured runs with progress and tracing (cmd/wlkernel)
//
// ✨ How does it work?
//
//   - Round 0 compresses raw vertex labels to integer codes.
//   - Round i gives each vertex the code of "<own code>,[sorted neighbor codes]".
//   - Every round feeds one base kernel; the WL kernel is their sum.
//   - Transform reuses the fitted dictionaries and appends codes for unseen
//     signatures, so fit-time codes never change.
//
// Under the hood the packages are organized as:
//
//	core/         Graph, Vertex, Edge types & thread-safe primitives
//	matrix/       dense float64 matrices + validators
//	builder/      deterministic graph fixtures and label schemes
//	wl/           the Weisfeiler–Lehman kernel
//	vertexhist/   vertex-label histogram base kernel
//	edgehist/     edge-label-pair histogram base kernel
//	cmd/          the wlkernel command
//
// Quick ASCII example:
//
//	    x              x───y
//
// With one refinement round over a vertex histogram, the left graph scores
// 2 with itself, the right one 4, and 1 with each other: both share an "x"
// in round 0, but the isolated "x" gets its own code in round 1.
//
//	go get github.com/katalvlaran/wlkernel/wl
package wlkernel
