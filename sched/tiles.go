package sched

import "github.com/gogpu/vtile/pipeline"

// TileJob is one unit of work for RunTiles: an input to run through a
// pipeline, paired with the context (and, transitively, the Processor) that
// run should report to.
type TileJob[I, O any] struct {
	Input   I
	Context *pipeline.Context
}

// TileResult is RunTiles' per-job outcome, kept in the same order as the
// Jobs slice passed in regardless of which worker finished it first —
// ordering across concurrent runs is otherwise unspecified (spec.md §5: "No
// ordering is promised between concurrent pipeline runs"), but callers
// still need to know which output belongs to which request.
type TileResult[O any] struct {
	Output O
	Err    error
}

// RunTiles runs every job through pipe concurrently on pool and returns one
// TileResult per job, in input order. Each run is independent: a decode
// failure in one tile (spec.md §7, DecodeError) does not affect any other
// tile's run.
func RunTiles[I, O any](pool *Pool, pipe pipeline.Pipeline[I, O], jobs []TileJob[I, O]) []TileResult[O] {
	results := make([]TileResult[O], len(jobs))
	work := make([]func(), len(jobs))

	for i, job := range jobs {
		i, job := i, job
		work[i] = func() {
			out, err := pipe.Run(job.Input, job.Context)
			results[i] = TileResult[O]{Output: out, Err: err}
		}
	}

	pool.ExecuteAll(work)
	return results
}
