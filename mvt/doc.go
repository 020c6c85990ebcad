// Package mvt decodes Mapbox Vector Tile (MVT) protobuf bytes — the wire
// format ParseTile consumes — into a structured, in-memory Tile.
//
// No protobuf runtime or MVT decoding library appears anywhere in the
// retrieved reference corpus, so this package reads the tile's wire bytes
// directly: a handful of varint and length-delimited fields, the same small
// set of primitives the teacher package reaches for when laying out GPU
// buffer structs by hand (see gpucore's fixed-layout structs). See
// DESIGN.md for the full justification.
//
// MVT is wire-compatible with the published MVT spec version 2.
package mvt
