package sched

import (
	"testing"

	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/pipeline"
)

type incStage struct{}

func (incStage) Process(input int, ctx *pipeline.Context) (int, error) {
	return input + 1, nil
}

func TestRunTilesPreservesOrder(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	pipe := pipeline.New[int, int](incStage{})

	jobs := make([]TileJob[int, int], 50)
	for i := range jobs {
		jobs[i] = TileJob[int, int]{Input: i, Context: pipeline.NewContext(nil)}
	}

	results := RunTiles(pool, pipe, jobs)

	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("job %d: unexpected error %v", i, r.Err)
		}
		if r.Output != i+1 {
			t.Fatalf("job %d: expected output %d, got %d", i, i+1, r.Output)
		}
	}
}

type failOddStage struct{}

func (failOddStage) Process(input int, ctx *pipeline.Context) (int, error) {
	if input%2 == 1 {
		return 0, &vtile.DecodeError{Coords: vtile.NewTileCoords(uint32(input), 0, 0)}
	}
	return input, nil
}

func TestRunTilesIsolatesFailures(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	pipe := pipeline.New[int, int](failOddStage{})

	jobs := make([]TileJob[int, int], 10)
	for i := range jobs {
		jobs[i] = TileJob[int, int]{Input: i, Context: pipeline.NewContext(nil)}
	}

	results := RunTiles(pool, pipe, jobs)

	for i, r := range results {
		if i%2 == 1 {
			if r.Err == nil {
				t.Fatalf("job %d: expected a decode error", i)
			}
		} else if r.Err != nil {
			t.Fatalf("job %d: unexpected error %v", i, r.Err)
		}
	}
}
