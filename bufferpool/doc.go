// Package bufferpool implements the ring-buffer GPU geometry pool: two fixed
// backing buffers (one for vertices, one for indices) that a renderer uploads
// per-tile geometry into, with FIFO eviction when space runs out and
// byte-range bookkeeping for draw submission.
//
// The pool never reads back from the GPU; all writes go through a Queue, the
// same shape as github.com/gogpu/wgpu/hal.Queue.WriteBuffer.
package bufferpool
