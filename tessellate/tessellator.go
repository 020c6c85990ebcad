package tessellate

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/vtile/mvt"
)

// strokeHalfWidth is the half-width, in tile-local units, used to expand
// LineString features into stroke quads.
const strokeHalfWidth = 1.0

// pointHalfSize is the half-size, in tile-local units, of the quad emitted
// for each Point feature.
const pointHalfSize = 4.0

var flatNormal = [3]float32{0, 0, 1}

// Tessellator converts one decoded MVT layer into a flat triangle-list
// mesh. It plays the role the source system calls ZeroTessellator: the
// core only depends on its input/output contract (§4.3), not its internal
// algorithm, so this implementation is free to triangulate polygons
// properly (ear-clipping with holes) rather than fan from a single origin.
//
// A Tessellator is single-use: construct one per layer, matching the
// source's "fresh ZeroTessellator" per layer (§4.3 step 3).
type Tessellator struct {
	vertices []Vertex
	indices  []uint32
	featIdx  []uint32
}

// NewTessellator returns a ready-to-use Tessellator.
func NewTessellator() *Tessellator {
	return &Tessellator{}
}

// TessellateLayer processes every feature of layer and returns the merged
// mesh plus a parallel feature_indices sequence giving the index count
// contributed by each feature, in layer order.
//
// A malformed feature (truncated geometry commands, a polygon with no
// visible bridge for one of its holes) fails the whole layer: §4.3 treats
// tessellation failure as all-or-nothing per layer, matching the source's
// single Result-returning ZeroTessellator::process call.
func (t *Tessellator) TessellateLayer(layer *mvt.Layer) (*OverAlignedVertexBuffer[Vertex, uint32], []uint32, error) {
	for _, f := range layer.Features {
		before := len(t.indices)
		if err := t.tessellateFeature(f); err != nil {
			return nil, nil, fmt.Errorf("tessellate: feature %d: %w", f.ID, err)
		}
		t.featIdx = append(t.featIdx, uint32(len(t.indices)-before))
	}

	buf := padForAlignment[Vertex, uint32](t.vertices, t.indices)
	return buf, t.featIdx, nil
}

func (t *Tessellator) tessellateFeature(f mvt.Feature) error {
	paths, err := mvt.DecodeGeometry(f.Geometry)
	if err != nil {
		return err
	}

	switch f.Type {
	case mvt.GeomPolygon:
		return t.emitPolygon(paths)
	case mvt.GeomLine:
		t.emitLines(paths)
		return nil
	case mvt.GeomPoint:
		t.emitPoints(paths)
		return nil
	default:
		return nil
	}
}

func (t *Tessellator) emitPolygon(paths [][]mvt.Point) error {
	rings := make([][]point2, 0, len(paths))
	for _, p := range paths {
		rings = append(rings, toPoint2(p))
	}
	polygons := groupRingsIntoPolygons(rings)
	for _, polyRings := range polygons {
		merged, err := mergeHoles(polyRings)
		if err != nil {
			return err
		}
		tris := triangulateEarClip(merged)
		base := uint32(len(t.vertices))
		for _, p := range merged {
			t.vertices = append(t.vertices, NewVertex(float32(p.X), float32(p.Y), flatNormal))
		}
		for _, idx := range tris {
			t.indices = append(t.indices, base+uint32(idx))
		}
	}
	return nil
}

func (t *Tessellator) emitLines(paths [][]mvt.Point) {
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			t.emitSegmentQuad(path[i], path[i+1])
		}
	}
}

func (t *Tessellator) emitSegmentQuad(a, b mvt.Point) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := -dy / length * strokeHalfWidth
	ny := dx / length * strokeHalfWidth

	base := uint32(len(t.vertices))
	t.vertices = append(t.vertices,
		NewVertex(float32(float64(a.X)+nx), float32(float64(a.Y)+ny), flatNormal),
		NewVertex(float32(float64(a.X)-nx), float32(float64(a.Y)-ny), flatNormal),
		NewVertex(float32(float64(b.X)+nx), float32(float64(b.Y)+ny), flatNormal),
		NewVertex(float32(float64(b.X)-nx), float32(float64(b.Y)-ny), flatNormal),
	)
	// Two triangles, consistent winding: (a+n, a-n, b+n), (a-n, b-n, b+n).
	t.indices = append(t.indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (t *Tessellator) emitPoints(paths [][]mvt.Point) {
	for _, pt := range flattenPoints(paths) {
		t.emitPointQuad(pt)
	}
}

// flattenPoints flattens Point-feature paths: a MultiPoint feature decodes
// as one path holding every point, so this just returns that path's points
// (or none, for an empty feature).
func flattenPoints(paths [][]mvt.Point) []mvt.Point {
	var out []mvt.Point
	for _, p := range paths {
		out = append(out, p...)
	}
	return out
}

func (t *Tessellator) emitPointQuad(p mvt.Point) {
	x, y := float32(p.X), float32(p.Y)
	s := float32(pointHalfSize)
	base := uint32(len(t.vertices))
	t.vertices = append(t.vertices,
		NewVertex(x-s, y-s, flatNormal),
		NewVertex(x+s, y-s, flatNormal),
		NewVertex(x+s, y+s, flatNormal),
		NewVertex(x-s, y+s, flatNormal),
	)
	t.indices = append(t.indices,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

func toPoint2(pts []mvt.Point) []point2 {
	out := make([]point2, len(pts))
	for i, p := range pts {
		out[i] = point2{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// padForAlignment builds an OverAlignedVertexBuffer whose index slice is
// already long enough to satisfy COPY_BUFFER_ALIGNMENT once the pool
// computes usable_bytes = usableIndices * sizeof(I): for a 2-byte index
// type with an odd usable count, one zero-value padding index is appended
// so the pool never has to grow the slice itself (spec.md §3: "the index
// array may be padded beyond usable_indices").
func padForAlignment[V any, I Index](vertices []V, indices []I) *OverAlignedVertexBuffer[V, I] {
	const copyBufferAlignment = 4

	usable := uint32(len(indices))
	var zero I
	stride := int(unsafe.Sizeof(zero))
	usableBytes := uint64(usable) * uint64(stride)
	padding := (copyBufferAlignment - usableBytes%copyBufferAlignment) % copyBufferAlignment
	paddingElems := 0
	if stride > 0 && padding > 0 {
		paddingElems = int((padding + uint64(stride) - 1) / uint64(stride))
	}
	for i := 0; i < paddingElems; i++ {
		indices = append(indices, zero)
	}

	return &OverAlignedVertexBuffer[V, I]{
		Vertices:      vertices,
		Indices:       indices,
		UsableIndices: usable,
	}
}
