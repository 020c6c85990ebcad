// Package vtile is the data-preparation and GPU-memory backbone of a vector
// map renderer.
//
// # Overview
//
// Two subsystems carry nearly all of the engineering weight:
//
//   - The tile processing pipeline ([github.com/gogpu/vtile/pipeline],
//     [github.com/gogpu/vtile/stages]) turns raw MVT-encoded tile bytes into
//     tessellated, optionally 3D-extruded, GPU-ready geometry, reporting
//     per-layer success, failure, and absence as it goes.
//   - The ring-buffer GPU geometry pool ([github.com/gogpu/vtile/bufferpool])
//     uploads per-tile vertex and index data into two fixed backing buffers,
//     evicting the oldest entries to make room, and hands back byte ranges
//     for draw calls.
//
// Rendering itself, input handling, style-sheet loading, network fetching of
// tiles, camera math, and map projection are out of scope: vtile stops at
// tessellated geometry sitting in GPU buffers.
//
// # Quick start
//
//	pipe := stages.BuildTilePipeline()
//	ctx := pipeline.NewContext(myProcessor)
//	_, err := pipe.Run(stages.RawTile{Request: req, Bytes: data}, ctx)
//
// # Architecture
//
//   - mvt: decodes the Mapbox Vector Tile wire format into a Tile.
//   - tessellate: turns 2D polygon features into GPU triangle lists, with
//     optional 3D wall extrusion.
//   - geomindex: optional spatial index used by the IndexLayer stage.
//   - pipeline: the generic stage-composition framework.
//   - stages: the concrete ParseTile / TessellateLayer / IndexLayer stages.
//   - bufferpool: the ring-buffer vertex/index allocator.
//   - sched: a worker pool for running many independent pipeline instances
//     concurrently.
package vtile
