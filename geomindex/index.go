package geomindex

import (
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/mvt"
)

// BoundingBox is an axis-aligned box in tile-local integer coordinates.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int32
}

// Contains reports whether (x, y) falls within the box, inclusive of edges.
func (b BoundingBox) Contains(x, y int32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b *BoundingBox) extend(x, y int32) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Geometry is one indexed feature: its id and the bounding box of every
// point in its decoded geometry.
type Geometry struct {
	FeatureID uint64
	Bounds    BoundingBox
}

// Index is a layer's spatial index: a flat, unsorted slice of per-feature
// bounding boxes. A linear scan over it is adequate at the feature counts a
// single tile layer carries; see doc.go for why this isn't a tree.
type Index struct {
	Coords     vtile.TileCoords
	LayerName  string
	Geometries []Geometry
}

// Build walks every feature of layer and records its bounding box. A feature
// whose geometry fails to decode is skipped rather than failing the whole
// index, since IndexLayer is a best-effort, reserved stage (spec.md §4.4),
// not one in the default failure-reporting path TessellateLayer uses.
func Build(coords vtile.TileCoords, layer *mvt.Layer) *Index {
	idx := &Index{Coords: coords, LayerName: layer.Name}
	for _, f := range layer.Features {
		paths, err := mvt.DecodeGeometry(f.Geometry)
		if err != nil {
			continue
		}
		bounds, ok := boundsOf(paths)
		if !ok {
			continue
		}
		idx.Geometries = append(idx.Geometries, Geometry{FeatureID: f.ID, Bounds: bounds})
	}
	return idx
}

func boundsOf(paths [][]mvt.Point) (BoundingBox, bool) {
	var box BoundingBox
	found := false
	for _, path := range paths {
		for _, p := range path {
			if !found {
				box = BoundingBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				found = true
				continue
			}
			box.extend(p.X, p.Y)
		}
	}
	return box, found
}

// HitTest returns the feature ids whose bounding box contains (x, y).
func (idx *Index) HitTest(x, y int32) []uint64 {
	var hits []uint64
	for _, g := range idx.Geometries {
		if g.Bounds.Contains(x, y) {
			hits = append(hits, g.FeatureID)
		}
	}
	return hits
}
