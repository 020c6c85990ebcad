package bufferpool

import "github.com/gogpu/vtile"

// ByteRange is a half-open byte interval [Start, End) in a backing buffer.
type ByteRange struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes the range spans.
func (r ByteRange) Len() uint64 {
	return r.End - r.Start
}

// IndexEntry records one allocate_geometry call: the byte ranges it
// occupies in both backing buffers, and enough metadata to attribute a draw
// call back to the allocation id and tile that produced it.
type IndexEntry struct {
	ID            uint32
	Coords        vtile.TileCoords
	IndicesStride uint64
	Vertices      ByteRange
	Indices       ByteRange
	UsableIndices uint32
}

// IndicesRange returns the byte range of the semantically useful portion of
// the index allocation, excluding any trailing alignment padding.
func (e IndexEntry) IndicesRange() ByteRange {
	return ByteRange{
		Start: e.Indices.Start,
		End:   e.Indices.Start + uint64(e.UsableIndices)*e.IndicesStride,
	}
}

// IndicesBufferRange returns the full byte range reserved in the index
// backing buffer, padding included.
func (e IndexEntry) IndicesBufferRange() ByteRange {
	return e.Indices
}

// VerticesBufferRange returns the full byte range reserved in the vertex
// backing buffer.
func (e IndexEntry) VerticesBufferRange() ByteRange {
	return e.Vertices
}
