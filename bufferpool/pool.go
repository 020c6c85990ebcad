package bufferpool

import (
	"iter"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vtile"
	"github.com/gogpu/vtile/tessellate"
)

// copyBufferAlignment is COPY_BUFFER_ALIGNMENT: the minimum alignment, in
// bytes, the GPU imposes on buffer-copy offsets and lengths.
const copyBufferAlignment = 4

// Queue is the upload path the pool writes geometry through. Its method set
// matches github.com/gogpu/wgpu/hal.Queue.WriteBuffer: the pool never reads a
// GPU buffer back, only writes pre-aligned byte ranges at offsets it computed
// itself.
type Queue[B any] interface {
	WriteBuffer(buffer B, offset uint64, data []byte)
}

// BackingBuffer is one of the pool's two fixed-size GPU allocations. Size is
// fixed for the lifetime of the pool that owns it.
type BackingBuffer[B any] struct {
	Handle B
	Size   uint64
	Usage  gputypes.BufferUsage
}

// NewVertexBackingBuffer builds a BackingBuffer tagged with the usage flags a
// real device needs to accept vertex uploads: BufferUsageVertex so it can be
// bound at draw time, BufferUsageCopyDst so Queue.WriteBuffer can target it.
func NewVertexBackingBuffer[B any](handle B, size uint64) BackingBuffer[B] {
	return BackingBuffer[B]{
		Handle: handle,
		Size:   size,
		Usage:  gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}
}

// NewIndexBackingBuffer builds a BackingBuffer tagged for index uploads.
func NewIndexBackingBuffer[B any](handle B, size uint64) BackingBuffer[B] {
	return BackingBuffer[B]{
		Handle: handle,
		Size:   size,
		Usage:  gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	}
}

// BufferPool ring-allocates vertex and index byte ranges across two fixed
// backing buffers, evicting the oldest live entry (FIFO, across both buffers
// at once) whenever a new allocation needs room it doesn't have.
//
// A BufferPool is not safe for concurrent use; §5 of the design calls for a
// single owning thread (typically the render thread) to serialize access.
type BufferPool[V any, I tessellate.Index, B any] struct {
	vertexBuf BackingBuffer[B]
	indexBuf  BackingBuffer[B]
	entries   []IndexEntry
}

// New constructs an empty pool over the given backing buffers.
func New[V any, I tessellate.Index, B any](vertexBuffer, indexBuffer BackingBuffer[B]) *BufferPool[V, I, B] {
	return &BufferPool[V, I, B]{
		vertexBuf: vertexBuffer,
		indexBuf:  indexBuffer,
	}
}

// AllocateGeometry uploads geometry's vertices and indices and records the
// allocation at the back of the pool's deque. It evicts the oldest live
// entries as needed to make room (§4.5.1) and fails with OverSized if the
// geometry itself cannot fit in a backing buffer regardless of eviction.
func (p *BufferPool[V, I, B]) AllocateGeometry(
	queue Queue[B],
	id uint32,
	coords vtile.TileCoords,
	geometry *tessellate.OverAlignedVertexBuffer[V, I],
) error {
	var zeroV V
	var zeroI I
	vertexStride := uint64(unsafe.Sizeof(zeroV))
	indexStride := uint64(unsafe.Sizeof(zeroI))

	verticesBytes := uint64(len(geometry.Vertices)) * vertexStride
	indicesBytes := uint64(len(geometry.Indices)) * indexStride

	if verticesBytes > p.vertexBuf.Size {
		return &vtile.OverSized{Vertices: true, Requested: verticesBytes, Capacity: p.vertexBuf.Size}
	}
	if indicesBytes > p.indexBuf.Size {
		return &vtile.OverSized{Vertices: false, Requested: indicesBytes, Capacity: p.indexBuf.Size}
	}

	alignedVerticesBytes := alignUp(verticesBytes, copyBufferAlignment)
	alignedIndicesBytes := alignUp(indicesBytes, copyBufferAlignment)

	vertexRange := p.makeRoom(alignedVerticesBytes, true)
	indexRange := p.makeRoom(alignedIndicesBytes, false)

	if verticesBytes > 0 {
		queue.WriteBuffer(p.vertexBuf.Handle, vertexRange.Start, bytesOf(geometry.Vertices))
	}
	if indicesBytes > 0 {
		queue.WriteBuffer(p.indexBuf.Handle, indexRange.Start, bytesOf(geometry.Indices))
	}

	p.entries = append(p.entries, IndexEntry{
		ID:            id,
		Coords:        coords,
		IndicesStride: indexStride,
		Vertices:      vertexRange,
		Indices:       indexRange,
		UsableIndices: geometry.UsableIndices,
	})
	return nil
}

// AvailableSpace returns the size of the largest free gap in the selected
// backing buffer (vertices=true for the vertex buffer, false for the index
// buffer).
func (p *BufferPool[V, I, B]) AvailableSpace(vertices bool) uint64 {
	return p.findLargestGap(vertices).Len()
}

// AvailableVertices returns an insertion-ordered, read-only view over live
// entries, for draw submission.
func (p *BufferPool[V, I, B]) AvailableVertices() iter.Seq[IndexEntry] {
	return func(yield func(IndexEntry) bool) {
		for _, e := range p.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// makeRoom evicts from the front of the deque until the selected backing
// buffer has a gap of at least newBytes, then returns that range. newBytes is
// assumed already aligned by the caller.
func (p *BufferPool[V, I, B]) makeRoom(newBytes uint64, isVertexBuffer bool) ByteRange {
	for {
		gap := p.findLargestGap(isVertexBuffer)
		if gap.Len() >= newBytes {
			return ByteRange{Start: gap.Start, End: gap.Start + newBytes}
		}
		if len(p.entries) == 0 {
			panic("bufferpool: geometry larger than backing buffer")
		}
		p.entries = p.entries[1:]
	}
}

// findLargestGap returns the largest free byte range in the selected backing
// buffer given the current deque (§4.5.1).
func (p *BufferPool[V, I, B]) findLargestGap(isVertexBuffer bool) ByteRange {
	size := p.indexBuf.Size
	if isVertexBuffer {
		size = p.vertexBuf.Size
	}
	if len(p.entries) == 0 {
		return ByteRange{Start: 0, End: size}
	}

	front := p.rangeOf(p.entries[0], isVertexBuffer)
	back := p.rangeOf(p.entries[len(p.entries)-1], isVertexBuffer)
	start, end := front.Start, back.End

	if end > start {
		prefix := ByteRange{Start: 0, End: start}
		suffix := ByteRange{Start: end, End: size}
		if prefix.Len() > suffix.Len() {
			return prefix
		}
		return suffix
	}
	return ByteRange{Start: end, End: start}
}

func (p *BufferPool[V, I, B]) rangeOf(e IndexEntry, isVertexBuffer bool) ByteRange {
	if isVertexBuffer {
		return e.Vertices
	}
	return e.Indices
}

func alignUp(n, alignment uint64) uint64 {
	if alignment == 0 {
		return n
	}
	return (n + alignment - 1) / alignment * alignment
}

// bytesOf reinterprets a slice of fixed-size values as a byte slice for
// upload, the same cast pattern the wgpu Metal queue uses to hand CPU memory
// to the GPU without a copy.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}
