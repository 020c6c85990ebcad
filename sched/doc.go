// Package sched runs many independent pipeline instances concurrently on a
// worker pool (spec.md §5: "The rendering layer (external) may run many
// pipeline instances concurrently on a worker pool; each such run is
// independent").
//
// A single pipeline run stays strictly synchronous and single-threaded
// (spec.md §4.1, §5); sched is the layer above that fans many such runs out
// across goroutines and collects their results back in request order.
//
// Pool is grounded on the teacher's internal/parallel.WorkerPool: the same
// per-worker queue plus work-stealing shape, since a renderer decoding many
// tiles per frame is the same load-balancing problem as rasterizing many
// scanline spans per frame.
package sched
