package vtile

import "fmt"

// ZoomLevel is a map zoom level. Valid values are small (typically 0-24),
// so a single byte is ample.
type ZoomLevel uint8

// TileCoords identifies a single tile in the XYZ tile scheme. It is opaque,
// comparable, and cheap to copy — safe to use as a map key or to pass by
// value through every stage of the pipeline.
type TileCoords struct {
	X, Y uint32
	Zoom ZoomLevel
}

// NewTileCoords constructs a TileCoords from its components.
func NewTileCoords(x, y uint32, zoom ZoomLevel) TileCoords {
	return TileCoords{X: x, Y: y, Zoom: zoom}
}

// String renders the coordinate triple as "z/x/y", the conventional tile
// path fragment.
func (c TileCoords) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Zoom, c.X, c.Y)
}

// Less gives TileCoords a total order (zoom, then x, then y), so sorted
// slices and ordered containers of coordinates are well-defined wherever
// the implementation needs deterministic iteration.
func (c TileCoords) Less(other TileCoords) bool {
	if c.Zoom != other.Zoom {
		return c.Zoom < other.Zoom
	}
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}
