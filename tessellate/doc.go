// Package tessellate turns decoded MVT features into GPU-ready triangle
// lists, and optionally extrudes 2D polygon footprints into closed 3D
// volumes.
//
// Tessellator plays the role the source system's ZeroTessellator plays: an
// external collaborator whose internals are otherwise unspecified, grounded
// here on the teacher's triangle-fan tessellation technique
// (internal/gpu/tessellate.go's FanTessellator) but generalized from a
// single fan origin to proper ear-clipping with hole support, since building
// footprints are frequently concave.
package tessellate
