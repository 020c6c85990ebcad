package stages

// Minimal MVT wire-format builders for assembling raw tile bytes in tests,
// mirroring the protobuf primitives mvt/decode.go reads (varint, tag,
// length-delimited field).

func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func appendTag(buf []byte, field int, wireType int) []byte {
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

// buildPointFeature builds a minimal Point-geometry feature with the given
// id at tile-local coordinates (x, y).
func buildPointFeature(id uint64, x, y int32) []byte {
	var geom []byte
	geom = appendVarint(geom, uint64(1<<3|1)) // MoveTo x1
	geom = appendVarint(geom, uint64(zigzagEncode32(x)))
	geom = appendVarint(geom, uint64(zigzagEncode32(y)))

	var f []byte
	f = appendTag(f, 1, 0)
	f = appendVarint(f, id)
	f = appendTag(f, 3, 0) // type
	f = appendVarint(f, 1) // Point
	f = appendBytesField(f, 4, geom)
	return f
}

func buildLayer(name string, extent uint32, features ...[]byte) []byte {
	var layer []byte
	layer = appendBytesField(layer, 1, []byte(name))
	for _, f := range features {
		layer = appendBytesField(layer, 2, f)
	}
	layer = appendTag(layer, 5, 0)
	layer = appendVarint(layer, uint64(extent))
	layer = appendTag(layer, 15, 0)
	layer = appendVarint(layer, 2)
	return layer
}

func buildTile(layers ...[]byte) []byte {
	var tile []byte
	for _, l := range layers {
		tile = appendBytesField(tile, 3, l)
	}
	return tile
}
