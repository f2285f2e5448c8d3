// SPDX-License-Identifier: MIT

// Package wl implements the Weisfeiler–Lehman graph kernel framework.
//
// A Kernel refines every node label of a batch of graphs for a fixed number
// of rounds. Round 0 compresses the raw labels into dense integer codes; each
// following round replaces a node's code by the code of its signature
//
//	"<own code>,[<sorted neighbor codes, comma separated>]"
//
// Every round owns its own signature dictionary and draws new codes from a
// single model-wide counter, so codes from different rounds never overlap.
//
// Similarity at each round is delegated to an independent BaseKernel built
// by the caller-supplied Factory; the engine sums the per-round matrices and,
// when normalization is enabled, divides the total by the square roots of
// the summed self-similarities:
//
//	K[a,b] / sqrt(diag_query[a] * diag_fit[b])
//
// Lifecycle:
//
//	UNFIT ──Fit/FitTransform──▶ FIT ──Transform──▶ TRANSFORMED ──Transform──▶ ...
//
// Every Fit or FitTransform discards all earlier state. Transform and
// Diagonal on an unfit kernel return ErrNotFitted. Transform extends the
// round dictionaries append-only: signatures seen at fit time keep their
// codes, unseen ones receive codes strictly greater than any issued before.
//
// All methods are safe for concurrent use; operations on one Kernel are
// serialized. Within an operation, per-graph signature computation and the
// per-round base-kernel calls run in parallel, bounded by WithConcurrency,
// and results are reduced in round order so output is deterministic.
package wl
