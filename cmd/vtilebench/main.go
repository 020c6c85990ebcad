// Command vtilebench exercises the tile pipeline and buffer pool against
// synthetic tiles, the way ggdemo exercises the 2D graphics library against
// synthetic drawing commands: a small, flag-driven program with no
// production purpose beyond giving the library a runnable entry point.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/bufferpool"
	"github.com/gogpu/vtile/geomindex"
	"github.com/gogpu/vtile/mvt"
	"github.com/gogpu/vtile/pipeline"
	"github.com/gogpu/vtile/sched"
	"github.com/gogpu/vtile/stages"
	"github.com/gogpu/vtile/tessellate"
)

func main() {
	var (
		tileCount  = flag.Int("tiles", 64, "number of synthetic tiles to process")
		workers    = flag.Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
		extrude    = flag.Bool("extrude", true, "extrude the buildings layer into 3D walls")
		vertexSize = flag.Uint64("vertex-buffer", 4<<20, "vertex backing buffer size, bytes")
		indexSize  = flag.Uint64("index-buffer", 4<<20, "index backing buffer size, bytes")
		verbose    = flag.Bool("v", false, "log per-layer pipeline progress")
	)
	flag.Parse()

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		vtile.SetLogger(slog.New(handler).With("cmd", "vtilebench"))
	}

	pool := sched.NewPool(*workers)
	defer pool.Close()

	pipe := stages.BuildTilePipeline()

	style := vtile.Style{Layers: []vtile.LayerStyle{
		{SourceLayer: "buildings", Extrusion: *extrude},
	}}
	layers := vtile.NewLayerSet("buildings")

	jobs := make([]sched.TileJob[stages.RawTile, stages.DecodedTile], *tileCount)
	for i := range jobs {
		coords := vtile.NewTileCoords(uint32(i), uint32(i/16), 14)
		req := vtile.TileRequest{Coords: coords, Layers: layers, Style: style}
		proc := &benchProcessor{pool: newBufferPool(*vertexSize, *indexSize)}
		jobs[i] = sched.TileJob[stages.RawTile, stages.DecodedTile]{
			Input:   stages.RawTile{Request: req, Bytes: syntheticTile(i)},
			Context: pipeline.NewContext(proc),
		}
	}

	results := sched.RunTiles(pool, pipe, jobs)

	var decoded, failed int64
	var vertices, indices int64
	for i, r := range results {
		if r.Err != nil {
			failed++
			log.Printf("tile %d: %v", i, r.Err)
			continue
		}
		decoded++
		proc := jobs[i].Context.Processor.(*benchProcessor)
		vertices += proc.vertices.Load()
		indices += proc.indices.Load()
	}

	fmt.Printf("tiles: %d decoded, %d failed\n", decoded, failed)
	fmt.Printf("geometry uploaded: %d vertices, %d indices\n", vertices, indices)
}

// benchProcessor implements pipeline.Processor: it uploads every
// successfully tessellated layer into its own BufferPool and tallies
// vertex/index counts for the summary line above.
type benchProcessor struct {
	pool     *bufferpool.BufferPool[tessellate.Vertex, uint32, string]
	queue    fakeQueue
	nextID   atomic.Uint32
	vertices atomic.Int64
	indices  atomic.Int64
}

func newBufferPool(vertexSize, indexSize uint64) *bufferpool.BufferPool[tessellate.Vertex, uint32, string] {
	return bufferpool.New[tessellate.Vertex, uint32, string](
		bufferpool.NewVertexBackingBuffer[string]("vertices", vertexSize),
		bufferpool.NewIndexBackingBuffer[string]("indices", indexSize),
	)
}

func (p *benchProcessor) LayerTessellationFinished(
	coords vtile.TileCoords,
	buf *tessellate.OverAlignedVertexBuffer[tessellate.Vertex, uint32],
	featureIndices []uint32,
	layer mvt.Layer,
) {
	id := p.nextID.Add(1)
	if err := p.pool.AllocateGeometry(p.queue, id, coords, buf); err != nil {
		log.Printf("tile %s: layer %q: %v", coords, layer.Name, err)
		return
	}
	p.vertices.Add(int64(len(buf.Vertices)))
	p.indices.Add(int64(buf.UsableIndices))
}

func (p *benchProcessor) LayerIndexingFinished(vtile.TileCoords, *geomindex.Index) {}

func (p *benchProcessor) LayerUnavailable(coords vtile.TileCoords, layerName string) {
	if layerName != "" {
		log.Printf("tile %s: layer %q unavailable", coords, layerName)
	}
}

func (p *benchProcessor) TileFinished(vtile.TileCoords) {}

// fakeQueue discards its writes: vtilebench measures pipeline and pool
// bookkeeping, not an actual GPU upload, so it needs no real device.
type fakeQueue struct{}

func (fakeQueue) WriteBuffer(buffer string, offset uint64, data []byte) {}
