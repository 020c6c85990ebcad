package stages

import "github.com/gogpu/vtile/pipeline"

// BuildTilePipeline wires the default pipeline: ParseTile followed by
// TessellateLayer. This reproduces, as an explicit constructor, the
// two-stage composition the original implementation wires by hand wherever
// it needs to process a tile — see DESIGN.md's supplemented-features entry.
// IndexLayer is reserved (spec.md §4.4) and deliberately not part of this
// default chain; callers that want it compose it themselves with
// pipeline.Append.
func BuildTilePipeline() pipeline.Pipeline[RawTile, DecodedTile] {
	return pipeline.Append[RawTile, DecodedTile, DecodedTile](
		ParseTile{},
		pipeline.New[DecodedTile, DecodedTile](TessellateLayer{}),
	)
}
