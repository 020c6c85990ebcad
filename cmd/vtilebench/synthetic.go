package main

// Minimal MVT wire-format builders, the same primitives mvt/decode.go reads
// (varint, tag, length-delimited field), used here to synthesize benchmark
// input without depending on a real encoded tile fixture.

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
	buf = appendTag(buf, field, 2)
	buf = appendVarint(buf, uint64(len(data)))
	return append(buf, data...)
}

func zigzagEncode32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// squareBuildingFeature builds a single-ring square polygon feature, offset
// so distinct tiles in a benchmark run don't all tessellate identically.
func squareBuildingFeature(id uint64, offset int32) []byte {
	x0, y0 := offset%2048, offset%4096
	geom := []uint32{
		(1 << 3) | 1, zigzagEncode32(x0), zigzagEncode32(y0), // MoveTo
		(3 << 3) | 2, // LineTo x3
		zigzagEncode32(40), zigzagEncode32(0),
		zigzagEncode32(0), zigzagEncode32(40),
		zigzagEncode32(-40), zigzagEncode32(0),
		(1 << 3) | 7, // ClosePath
	}
	var geomBytes []byte
	for _, c := range geom {
		geomBytes = appendVarint(geomBytes, uint64(c))
	}

	var f []byte
	f = appendTag(f, 1, 0)
	f = appendVarint(f, id)
	f = appendTag(f, 3, 0)
	f = appendVarint(f, 3) // Polygon
	f = appendBytesField(f, 4, geomBytes)
	return f
}

func buildLayer(name string, features ...[]byte) []byte {
	var l []byte
	l = appendBytesField(l, 1, []byte(name))
	for _, fb := range features {
		l = appendBytesField(l, 2, fb)
	}
	l = appendTag(l, 5, 0)
	l = appendVarint(l, 4096)
	l = appendTag(l, 15, 0)
	l = appendVarint(l, 2)
	return l
}

func buildTile(layers ...[]byte) []byte {
	var t []byte
	for _, lb := range layers {
		t = appendBytesField(t, 3, lb)
	}
	return t
}

// syntheticTile builds an encoded tile carrying a handful of building
// footprints in a "buildings" layer, varied by i so a benchmark run isn't
// tessellating the exact same mesh thousands of times.
func syntheticTile(i int) []byte {
	features := make([][]byte, 0, 4)
	for f := 0; f < 4; f++ {
		features = append(features, squareBuildingFeature(uint64(f), int32(i*97+f*271)))
	}
	layer := buildLayer("buildings", features...)
	return buildTile(layer)
}
