package tessellate

import (
	"math"
	"sort"
)

// ExtrusionHeight is the world-unit height buildings are extruded to
// (spec.md §4.3.1, §6). It is exported so a caller can override the global
// default; per-feature extrusion height is a documented future extension
// (see DESIGN.md — the source's attempt at this is incomplete and its
// intent should not be guessed at).
var ExtrusionHeight float32 = 40.0

type edge struct{ A, B uint32 }

// silhouetteEdges returns the set of directed edges that appear an odd
// number of times across the triangle list — the boundary of the 2D mesh
// (spec.md §4.3.1, "Contour detection"). The result is sorted by (A, B) so
// wall emission order is deterministic regardless of map iteration order
// (spec.md §9: "use an ordered structure or sort at emission").
func silhouetteEdges(indices []uint32) []edge {
	present := make(map[edge]struct{}, len(indices))
	for i := 0; i+3 <= len(indices); i += 3 {
		tri := [3]uint32{indices[i], indices[i+1], indices[i+2]}
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			rev := edge{b, a}
			if _, ok := present[rev]; ok {
				delete(present, rev)
			} else {
				present[edge{a, b}] = struct{}{}
			}
		}
	}
	out := make([]edge, 0, len(present))
	for e := range present {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Extrude applies the 3D extrusion procedure of spec.md §4.3.1 to a 2D
// tessellated mesh: it raises the roof to ExtrusionHeight and synthesizes
// vertical walls along the mesh's silhouette edges only.
//
// Extrude returns a new OverAlignedVertexBuffer; it does not mutate the one
// it was given, since the backing arrays may be shared (padding trimmed and
// recomputed fresh makes in-place mutation error-prone across call sites).
func Extrude(buf *OverAlignedVertexBuffer[Vertex, uint32]) *OverAlignedVertexBuffer[Vertex, uint32] {
	usable := buf.Indices[:buf.UsableIndices]
	edges := silhouetteEdges(usable)

	vertices := append([]Vertex(nil), buf.Vertices...)
	indices := append([]uint32(nil), usable...)

	h := ExtrusionHeight

	for _, e := range edges {
		pa := vertices[e.A].Position
		pb := vertices[e.B].Position

		ex, ey := pb[0]-pa[0], pb[1]-pa[1]
		nx, ny := -ey, ex
		length := float32(math.Hypot(float64(nx), float64(ny)))
		if length != 0 {
			nx /= length
			ny /= length
		}
		n := [3]float32{nx, ny, 0}

		base := uint32(len(vertices))
		a := Vertex{Position: [3]float32{pa[0], pa[1], 0}, Normal: n}
		b := Vertex{Position: [3]float32{pb[0], pb[1], 0}, Normal: n}
		aUp := Vertex{Position: [3]float32{pa[0], pa[1], h}, Normal: n}
		bUp := Vertex{Position: [3]float32{pb[0], pb[1], h}, Normal: n}
		vertices = append(vertices, a, b, aUp, bUp)

		// (A, B', A') and (B, B', A), clockwise so normals face outward.
		indices = append(indices,
			base+0, base+3, base+2,
			base+1, base+3, base+0,
		)
	}

	// Roof lift happens after wall generation so wall bases used z=0.
	for i := range buf.Vertices {
		vertices[i].Position[2] = h
	}

	return padForAlignment[Vertex, uint32](vertices, indices)
}
