// Package stages implements the concrete pipeline stages of spec.md §4.2,
// §4.3, and §4.4: ParseTile, TessellateLayer, and the reserved IndexLayer
// stage, composed by pipeline.Append into the runnable chain the original
// system's build_vector_tile_pipeline wires by hand.
package stages
