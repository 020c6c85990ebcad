package stages

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/geomindex"
	"github.com/gogpu/vtile/mvt"
	"github.com/gogpu/vtile/tessellate"
)

// event is one processor callback, recorded in call order for assertions.
type event struct {
	kind  string
	layer string
}

// recordingProcessor implements pipeline.Processor and records every call it
// receives, in order, for tests to assert against (spec.md §8, "Pipeline
// ordering").
type recordingProcessor struct {
	events []event
}

func (r *recordingProcessor) LayerTessellationFinished(
	coords vtile.TileCoords,
	buf *tessellate.OverAlignedVertexBuffer[tessellate.Vertex, uint32],
	featureIndices []uint32,
	layer mvt.Layer,
) {
	r.events = append(r.events, event{kind: "tessellated", layer: layer.Name})
}

func (r *recordingProcessor) LayerIndexingFinished(coords vtile.TileCoords, index *geomindex.Index) {
	r.events = append(r.events, event{kind: "indexed", layer: index.LayerName})
}

func (r *recordingProcessor) LayerUnavailable(coords vtile.TileCoords, layerName string) {
	r.events = append(r.events, event{kind: "unavailable", layer: layerName})
}

func (r *recordingProcessor) TileFinished(coords vtile.TileCoords) {
	r.events = append(r.events, event{kind: "finished"})
}
