package mvt

import "testing"

// appendVarint appends a base-128 varint encoding of v.
func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func appendTag(buf []byte, field, wireType int) []byte {
	return appendVarint(buf, uint64(field)<<3|uint64(wireType))
}

func appendBytesField(buf []byte, field int, data []byte) []byte {
	buf = appendTag(buf, field, wireBytes)
	buf = appendVarint(buf, uint64(len(data)))
	return append(buf, data...)
}

func zigzagEncode32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// buildSquareFeature builds a single-ring 10x10 square Polygon feature
// (exterior ring only) as raw MVT feature bytes.
func buildSquareFeature(id uint64) []byte {
	// MoveTo(1) to (0,0); LineTo(3) to (10,0),(10,10),(0,10); ClosePath.
	geom := []uint32{
		(1 << 3) | cmdMoveTo, zigzagEncode32(0), zigzagEncode32(0),
		(3 << 3) | cmdLineTo,
		zigzagEncode32(10), zigzagEncode32(0),
		zigzagEncode32(0), zigzagEncode32(10),
		zigzagEncode32(-10), zigzagEncode32(0),
		(1 << 3) | cmdClosePath,
	}
	var geomBytes []byte
	for _, c := range geom {
		geomBytes = appendVarint(geomBytes, uint64(c))
	}

	var f []byte
	f = appendTag(f, 1, wireVarint)
	f = appendVarint(f, id)
	f = appendTag(f, 3, wireVarint)
	f = appendVarint(f, uint64(GeomPolygon))
	f = appendBytesField(f, 4, geomBytes)
	return f
}

func buildLayer(name string, features [][]byte) []byte {
	var l []byte
	l = appendBytesField(l, 1, []byte(name))
	for _, fb := range features {
		l = appendBytesField(l, 2, fb)
	}
	l = appendTag(l, 5, wireVarint)
	l = appendVarint(l, 4096)
	l = appendTag(l, 15, wireVarint)
	l = appendVarint(l, 2)
	return l
}

func buildTile(layers [][]byte) []byte {
	var t []byte
	for _, lb := range layers {
		t = appendBytesField(t, 3, lb)
	}
	return t
}

func TestDecodeSquarePolygon(t *testing.T) {
	layer := buildLayer("buildings", [][]byte{buildSquareFeature(1)})
	tile := buildTile([][]byte{layer})

	got, err := Decode(tile)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(got.Layers))
	}
	l := got.Layers[0]
	if l.Name != "buildings" {
		t.Fatalf("expected name 'buildings', got %q", l.Name)
	}
	if l.Extent != 4096 || l.Version != 2 {
		t.Fatalf("extent/version mismatch: %+v", l)
	}
	if len(l.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(l.Features))
	}
	f := l.Features[0]
	if f.Type != GeomPolygon {
		t.Fatalf("expected polygon, got %v", f.Type)
	}

	rings, err := DecodeGeometry(f.Geometry)
	if err != nil {
		t.Fatalf("DecodeGeometry: %v", err)
	}
	if len(rings) != 1 || len(rings[0]) != 4 {
		t.Fatalf("expected 1 ring of 4 points, got %v", rings)
	}
	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for i, p := range rings[0] {
		if p != want[i] {
			t.Fatalf("point %d: got %v want %v", i, p, want[i])
		}
	}
}

func TestDecodeEmptyTile(t *testing.T) {
	got, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(got.Layers) != 0 {
		t.Fatalf("expected no layers, got %d", len(got.Layers))
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{0x1a, 0x7f}) // claims a 127-byte layer that isn't there
	if err == nil {
		t.Fatalf("expected an error decoding truncated input")
	}
}

func TestDecodeValueKinds(t *testing.T) {
	var values []byte
	// string_value = "water"
	var v1 []byte
	v1 = appendBytesField(v1, 1, []byte("water"))
	values = appendBytesField(values, 4, v1)

	// bool_value = true
	var v2 []byte
	v2 = appendTag(v2, 7, wireVarint)
	v2 = appendVarint(v2, 1)
	values = appendBytesField(values, 4, v2)

	layer := appendBytesField(nil, 1, []byte("l"))
	layer = append(layer, values...)
	tile := buildTile([][]byte{layer})

	got, err := Decode(tile)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	l := got.Layers[0]
	if len(l.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(l.Values))
	}
	if l.Values[0].Kind != ValueString || l.Values[0].String != "water" {
		t.Fatalf("value 0 mismatch: %+v", l.Values[0])
	}
	if l.Values[1].Kind != ValueBool || !l.Values[1].Bool {
		t.Fatalf("value 1 mismatch: %+v", l.Values[1])
	}
}
