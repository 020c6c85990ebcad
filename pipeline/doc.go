// Package pipeline implements the generic pipeline framework (spec.md §4.1):
// a typed, left-folded chain of stages built by static composition over Go
// generics (§9 option (a) — "static composition via generics, preserving
// zero-cost type checking of stage adjacency").
//
// A pipeline is purely synchronous and single-threaded within one run;
// concurrency, if any, comes from running many pipelines on a worker pool
// (see package sched), not from anything inside a single run.
package pipeline
