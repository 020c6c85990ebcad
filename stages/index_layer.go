package stages

import (
	"github.com/gogpu/vtile/geomindex"
	"github.com/gogpu/vtile/pipeline"
)

// IndexLayer is the reserved, non-default C5 stage of spec.md §4.4: it
// builds a spatial index per requested layer and reports it via
// Processor.LayerIndexingFinished. It is never part of the default pipeline
// BuildTilePipeline constructs.
//
// Cache, if set, bounds how many tiles' indexes are kept resident; a nil
// Cache means every call rebuilds and discards its index immediately.
type IndexLayer struct {
	Cache *geomindex.Cache
}

// Process implements pipeline.Stage[DecodedTile, DecodedTile].
func (s IndexLayer) Process(input DecodedTile, ctx *pipeline.Context) (DecodedTile, error) {
	req := input.Request
	coords := req.Coords

	for i := range input.Tile.Layers {
		layer := &input.Tile.Layers[i]
		if !req.Layers.Contains(layer.Name) {
			continue
		}

		idx := geomindex.Build(coords, layer)
		if s.Cache != nil {
			s.Cache.Set(coords, idx)
		}

		if ctx.Processor != nil {
			ctx.Processor.LayerIndexingFinished(coords, idx)
		}
	}

	return input, nil
}
