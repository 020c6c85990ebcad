package stages

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/pipeline"
	"github.com/gogpu/vtile/tessellate"
)

// TessellateLayer implements spec.md §4.3: for each requested layer present
// in the tile, tessellate it (and extrude it, if the matching style asks
// for that), reporting success or failure via the pipeline's Processor; then
// report every requested layer the tile didn't have, and finally report the
// tile as finished exactly once.
//
// A layer with no matching LayerStyle tessellates as non-extruding with
// default settings rather than being reported unavailable — see DESIGN.md
// for the open-question rationale.
type TessellateLayer struct{}

// Process implements pipeline.Stage[DecodedTile, DecodedTile].
func (TessellateLayer) Process(input DecodedTile, ctx *pipeline.Context) (DecodedTile, error) {
	req := input.Request
	coords := req.Coords
	available := make(map[string]struct{}, len(input.Tile.Layers))

	for _, layer := range input.Tile.Layers {
		available[layer.Name] = struct{}{}

		if !req.Layers.Contains(layer.Name) {
			continue
		}

		// layer is already a value copy (range over []mvt.Layer), taken
		// before tessellation runs, so it is a valid pre-mutation snapshot
		// for the processor callback below.
		layerSnapshot := layer
		style, _ := req.Style.Find(layer.Name)

		tess := tessellate.NewTessellator()
		buf, featureIndices, err := tess.TessellateLayer(&layer)
		if err != nil {
			vtile.Logger().Warn("layer tessellation failed",
				"coords", coords.String(),
				"layer", layer.Name,
				"err", err,
			)
			reportUnavailable(ctx, coords, layer.Name)
			continue
		}

		if style.Extrusion {
			buf = tessellate.Extrude(buf)
		}

		vtile.Logger().Debug("layer ready",
			"coords", coords.String(),
			"layer", layer.Name,
			"vertices", len(buf.Vertices),
			"usableIndices", buf.UsableIndices,
		)
		if ctx.Processor != nil {
			ctx.Processor.LayerTessellationFinished(coords, buf, featureIndices, layerSnapshot)
		}
	}

	for _, missing := range req.Layers.Difference(available) {
		vtile.Logger().Warn("layer missing", "coords", coords.String(), "layer", missing)
		reportUnavailable(ctx, coords, missing)
	}

	vtile.Logger().Debug("tile finished", "coords", coords.String())
	if ctx.Processor != nil {
		ctx.Processor.TileFinished(coords)
	}

	return input, nil
}

func reportUnavailable(ctx *pipeline.Context, coords vtile.TileCoords, layerName string) {
	if ctx.Processor != nil {
		ctx.Processor.LayerUnavailable(coords, layerName)
	}
}
