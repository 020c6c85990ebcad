package tessellate

import "fmt"

// point2 is a 2D point in tile-local float coordinates, used internally by
// the polygon triangulator before it is written out as a Vertex.
type point2 struct{ X, Y float64 }

// signedArea returns twice the signed area of a ring (shoelace formula).
// Its sign gives the ring's winding: positive for counter-clockwise in a
// standard Y-up frame.
func signedArea(ring []point2) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum
}

// groupRingsIntoPolygons buckets MVT rings into polygons by orientation:
// the first ring establishes the "exterior" winding sign; any later ring
// sharing that sign starts a new polygon, any ring with the opposite sign
// is a hole of the current polygon. This is the standard MVT ring-grouping
// convention (exterior rings share one winding, holes the other).
func groupRingsIntoPolygons(rings [][]point2) [][]([]point2) {
	if len(rings) == 0 {
		return nil
	}
	var polygons [][]([]point2)
	exteriorSign := signedArea(rings[0]) >= 0
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		sign := signedArea(ring) >= 0
		if sign == exteriorSign || len(polygons) == 0 {
			polygons = append(polygons, []([]point2){ring})
		} else {
			last := len(polygons) - 1
			polygons[last] = append(polygons[last], ring)
		}
	}
	return polygons
}

// mergeHoles splices each hole of a polygon into its exterior ring via a
// zero-width bridge edge, producing one simple (non-hole-bearing) ring that
// ear-clipping can triangulate directly. This is the standard
// "slit"/bridge technique for triangulating polygons with holes.
func mergeHoles(rings []([]point2)) ([]point2, error) {
	poly := append([]point2(nil), rings[0]...)
	for _, hole := range rings[1:] {
		if len(hole) < 3 {
			continue
		}
		merged, err := bridgeHole(poly, hole)
		if err != nil {
			return nil, err
		}
		poly = merged
	}
	return poly, nil
}

// bridgeHole finds a polygon vertex visible from the hole's rightmost
// vertex and splices the hole ring in at that point.
func bridgeHole(poly, hole []point2) ([]point2, error) {
	hi := 0
	for i, p := range hole {
		if p.X > hole[hi].X {
			hi = i
		}
	}
	h := hole[hi]

	mIdx := -1
	bestDist := 0.0
	for i, m := range poly {
		if segmentCrossesAny(h, m, poly) || segmentCrossesAny(h, m, hole) {
			continue
		}
		d := (m.X-h.X)*(m.X-h.X) + (m.Y-h.Y)*(m.Y-h.Y)
		if mIdx == -1 || d < bestDist {
			mIdx = i
			bestDist = d
		}
	}
	if mIdx == -1 {
		return nil, fmt.Errorf("tessellate: no visible bridge vertex for hole")
	}

	rotatedHole := make([]point2, 0, len(hole))
	rotatedHole = append(rotatedHole, hole[hi:]...)
	rotatedHole = append(rotatedHole, hole[:hi]...)

	out := make([]point2, 0, len(poly)+len(hole)+2)
	out = append(out, poly[:mIdx+1]...)
	out = append(out, rotatedHole...)
	out = append(out, h)
	out = append(out, poly[mIdx])
	out = append(out, poly[mIdx+1:]...)
	return out, nil
}

// segmentCrossesAny reports whether segment (a,b) properly crosses any edge
// of ring, ignoring incidental touches at shared endpoints. It is a
// conservative visibility check used while picking a bridge vertex.
func segmentCrossesAny(a, b point2, ring []point2) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		c, d := ring[i], ring[(i+1)%n]
		if c == a || c == b || d == a || d == b {
			continue
		}
		if segmentsIntersect(a, b, c, d) {
			return true
		}
	}
	return false
}

func cross2(o, a, b point2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func segmentsIntersect(p1, p2, p3, p4 point2) bool {
	d1 := cross2(p3, p4, p1)
	d2 := cross2(p3, p4, p2)
	d3 := cross2(p1, p2, p3)
	d4 := cross2(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// triangulateEarClip triangulates a simple (possibly non-convex) polygon
// ring via iterative ear clipping, returning vertex indices into ring in
// groups of 3 (one triangle per group).
func triangulateEarClip(ring []point2) []int {
	n := len(ring)
	if n < 3 {
		return nil
	}

	ccw := signedArea(ring) >= 0

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris []int
	guard := 0
	maxGuard := n * n * 2
	for len(idx) > 3 && guard < maxGuard {
		guard++
		earFound := false
		m := len(idx)
		for i := 0; i < m; i++ {
			prev := idx[(i-1+m)%m]
			cur := idx[i]
			next := idx[(i+1)%m]

			if !isConvex(ring[prev], ring[cur], ring[next], ccw) {
				continue
			}
			if triangleContainsAnyOther(ring, prev, cur, next, idx) {
				continue
			}

			tris = append(tris, prev, cur, next)
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Numerically degenerate polygon (collinear runs, bridge
			// slits): fall back to a fan from the first remaining vertex
			// rather than looping forever.
			break
		}
	}
	if len(idx) >= 3 {
		for i := 1; i < len(idx)-1; i++ {
			tris = append(tris, idx[0], idx[i], idx[i+1])
		}
	}
	return tris
}

func isConvex(prev, cur, next point2, ccw bool) bool {
	c := cross2(prev, cur, next)
	if ccw {
		return c >= 0
	}
	return c <= 0
}

func pointInTriangle(p, a, b, c point2) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func triangleContainsAnyOther(ring []point2, a, b, c int, idx []int) bool {
	for _, i := range idx {
		if i == a || i == b || i == c {
			continue
		}
		if pointInTriangle(ring[i], ring[a], ring[b], ring[c]) {
			return true
		}
	}
	return false
}
