// Package geomindex implements the IndexLayer stage's spatial index: a
// reserved, non-default pipeline step (spec.md §4.4) that builds a
// hit-testable index of a layer's feature geometries.
//
// No repo in the retrieved corpus carries an R-tree/quadtree/BVH library, so
// Index is a flat per-layer slice of bounding boxes rather than a tree — a
// linear scan is adequate at the per-tile feature counts this stage sees.
// The cache that bounds how many tiles' indexes are retained at once is
// grounded on internal/cache.Cache's soft-limit, tick-counter eviction shape.
package geomindex
