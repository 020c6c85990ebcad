package stages

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/mvt"
)

// RawTile is ParseTile's input: a request paired with the encoded tile bytes
// it was made against.
type RawTile struct {
	Request vtile.TileRequest
	Bytes   []byte
}

// DecodedTile is ParseTile's output and TessellateLayer's input and output
// (spec.md §4.2, §4.3: "Output: same").
type DecodedTile struct {
	Request vtile.TileRequest
	Tile    *mvt.Tile
}
