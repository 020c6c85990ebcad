package pipeline

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/geomindex"
	"github.com/gogpu/vtile/mvt"
	"github.com/gogpu/vtile/tessellate"
)

// Processor is the polymorphic observer a pipeline run reports to (spec.md
// §4.1). Stages call it exactly where their contracts demand; the framework
// itself never calls it. All methods are best-effort fire-and-forget — the
// pipeline never inspects a return value, so Processor has none.
type Processor interface {
	// LayerTessellationFinished reports a layer that tessellated
	// successfully. layer is a value snapshot taken before tessellation
	// mutated the decoded tile's features.
	LayerTessellationFinished(
		coords vtile.TileCoords,
		buf *tessellate.OverAlignedVertexBuffer[tessellate.Vertex, uint32],
		featureIndices []uint32,
		layer mvt.Layer,
	)

	// LayerIndexingFinished reports a layer the optional IndexLayer stage
	// finished indexing.
	LayerIndexingFinished(coords vtile.TileCoords, index *geomindex.Index)

	// LayerUnavailable reports a requested layer that is either missing
	// from the tile or failed tessellation.
	LayerUnavailable(coords vtile.TileCoords, layerName string)

	// TileFinished reports that every layer of one tile has been processed.
	// Called exactly once per pipeline run that reaches ParseTile
	// successfully.
	TileFinished(coords vtile.TileCoords)
}

// Context is the PipelineContext of spec.md §4.1: state shared across every
// stage of a single pipeline run.
type Context struct {
	Processor Processor
}

// NewContext builds a Context reporting to processor.
func NewContext(processor Processor) *Context {
	return &Context{Processor: processor}
}
