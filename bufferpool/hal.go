package bufferpool

import "github.com/gogpu/wgpu/hal"

// HALQueue is the production Queue[hal.Buffer] implementation: any
// hal.Queue already satisfies it, since hal.Queue.WriteBuffer(buffer
// hal.Buffer, offset uint64, data []byte) is exactly Queue[hal.Buffer]'s
// method set (see the Metal, DX12, and Vulkan hal.Queue implementations in
// the retrieved corpus — all three share this signature). No adapter shim
// is needed between this package and a real device's queue.
type HALQueue = hal.Queue

// NewHALVertexBackingBuffer builds a vertex BackingBuffer over a real
// wgpu/hal.Buffer, the GPU handle type this pool is designed to hold once a
// renderer wires it to an actual device (spec.md §6's Queue abstraction).
func NewHALVertexBackingBuffer(buf hal.Buffer, size uint64) BackingBuffer[hal.Buffer] {
	return NewVertexBackingBuffer[hal.Buffer](buf, size)
}

// NewHALIndexBackingBuffer builds an index BackingBuffer over a real
// wgpu/hal.Buffer.
func NewHALIndexBackingBuffer(buf hal.Buffer, size uint64) BackingBuffer[hal.Buffer] {
	return NewIndexBackingBuffer[hal.Buffer](buf, size)
}
