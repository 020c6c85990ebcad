package tessellate

import "testing"

func TestSilhouetteEdgesTwoTriangles(t *testing.T) {
	// Two triangles sharing edge 1->2 (as 2->1 in the second triangle).
	indices := []uint32{0, 1, 2, 2, 1, 3}

	got := silhouetteEdges(indices)
	want := []edge{{0, 1}, {1, 3}, {2, 0}, {3, 2}}

	if len(got) != len(want) {
		t.Fatalf("expected %d silhouette edges, got %d: %v", len(want), len(got), got)
	}
	for i, e := range want {
		if got[i] != e {
			t.Fatalf("edge %d: expected %v, got %v (full: %v)", i, e, got[i], got)
		}
	}
}

func TestSilhouetteEdgesSharedEdgeCancels(t *testing.T) {
	// The shared edge 1->2 / 2->1 must not appear in the silhouette.
	indices := []uint32{0, 1, 2, 2, 1, 3}
	got := silhouetteEdges(indices)
	for _, e := range got {
		if (e.A == 1 && e.B == 2) || (e.A == 2 && e.B == 1) {
			t.Fatalf("shared interior edge %v leaked into silhouette: %v", e, got)
		}
	}
}

func TestExtrudeTwoTriangleQuad(t *testing.T) {
	base := &OverAlignedVertexBuffer[Vertex, uint32]{
		Vertices: []Vertex{
			NewVertex(0, 0, flatNormal),
			NewVertex(1, 0, flatNormal),
			NewVertex(1, 1, flatNormal),
			NewVertex(0, 1, flatNormal),
		},
		Indices:       []uint32{0, 1, 2, 2, 3, 0},
		UsableIndices: 6,
	}

	ExtrusionHeight = 40.0
	out := Extrude(base)

	wallVertexCount := len(out.Vertices) - len(base.Vertices)
	if wallVertexCount != 16 {
		t.Fatalf("expected 16 new wall vertices (4 edges x 4 verts), got %d", wallVertexCount)
	}
	wallIndexCount := int(out.UsableIndices) - int(base.UsableIndices)
	if wallIndexCount != 24 {
		t.Fatalf("expected 24 usable indices (4 edges x 6), got %d", wallIndexCount)
	}

	for i := range base.Vertices {
		if out.Vertices[i].Position[2] != ExtrusionHeight {
			t.Fatalf("roof vertex %d not lifted: got z=%v", i, out.Vertices[i].Position[2])
		}
	}

	for i := len(base.Vertices); i < len(out.Vertices); i++ {
		z := out.Vertices[i].Position[2]
		if z != 0 && z != ExtrusionHeight {
			t.Fatalf("wall vertex %d has unexpected z=%v", i, z)
		}
	}

	for _, idx := range out.Indices[:out.UsableIndices] {
		if int(idx) >= len(out.Vertices) {
			t.Fatalf("index %d out of range of %d vertices", idx, len(out.Vertices))
		}
	}
}

func TestExtrudeWallWindingPerEdge(t *testing.T) {
	base := &OverAlignedVertexBuffer[Vertex, uint32]{
		Vertices: []Vertex{
			NewVertex(0, 0, flatNormal),
			NewVertex(1, 0, flatNormal),
			NewVertex(1, 1, flatNormal),
		},
		Indices:       []uint32{0, 1, 2},
		UsableIndices: 3,
	}
	out := Extrude(base)

	// Wall triangles follow the original roof triangle in the index list.
	triStart := int(base.UsableIndices)
	for e := 0; e < 3; e++ {
		i0 := out.Indices[triStart+0]
		i1 := out.Indices[triStart+1]
		i2 := out.Indices[triStart+2]
		// (A, B', A'): base+0, base+3, base+2
		if i0 != i2-2 || i1 != i2+1 {
			t.Fatalf("wall triangle 1 of edge %d has unexpected index pattern: %d %d %d", e, i0, i1, i2)
		}
		triStart += 6
	}
}
