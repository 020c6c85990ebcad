package stages

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/mvt"
	"github.com/gogpu/vtile/pipeline"
)

// ParseTile decodes raw MVT bytes into a structured tile (spec.md §4.2).
// Decode failure is fatal to the tile: no further stage runs and the
// pipeline returns a *vtile.DecodeError.
type ParseTile struct{}

// Process implements pipeline.Stage[RawTile, DecodedTile].
func (ParseTile) Process(input RawTile, ctx *pipeline.Context) (DecodedTile, error) {
	tile, err := mvt.Decode(input.Bytes)
	if err != nil {
		vtile.Logger().Error("decode tile failed",
			"coords", input.Request.Coords.String(),
			"err", err,
		)
		return DecodedTile{}, &vtile.DecodeError{Coords: input.Request.Coords, Err: err}
	}

	vtile.Logger().Debug("decode tile finished",
		"coords", input.Request.Coords.String(),
		"layers", len(tile.Layers),
	)
	return DecodedTile{Request: input.Request, Tile: tile}, nil
}
