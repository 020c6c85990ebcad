package vtile

// LayerSet is an insertion-ordered set of layer names. Mathematically the
// spec treats TileRequest.layers as a plain set, but reporting missing
// layers deterministically (§8, testable properties) requires a stable
// iteration order, so LayerSet remembers insertion order the way a Go
// programmer reaching for "ordered set" naturally would: a slice for order,
// a map for O(1) membership.
type LayerSet struct {
	names []string
	index map[string]int
}

// NewLayerSet builds a LayerSet from a list of layer names, preserving the
// order they are given in and discarding duplicates.
func NewLayerSet(names ...string) *LayerSet {
	s := &LayerSet{
		index: make(map[string]int, len(names)),
	}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name into the set if it is not already present.
func (s *LayerSet) Add(name string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
}

// Contains reports whether name is a member of the set.
func (s *LayerSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns the set's members in insertion order. The returned slice
// must not be mutated by the caller.
func (s *LayerSet) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// Len returns the number of members in the set.
func (s *LayerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Difference returns the members of s that are not present in available,
// in s's insertion order. available is typically the set of layer names
// actually present in a decoded tile.
func (s *LayerSet) Difference(available map[string]struct{}) []string {
	if s == nil {
		return nil
	}
	var missing []string
	for _, n := range s.names {
		if _, ok := available[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// LayerStyle configures tessellation behavior for the tile layer whose name
// matches SourceLayer. An empty SourceLayer matches a layer whose own name
// is also empty — the same "unwrap_or default" shape as the source this
// spec was distilled from; it does not mean "match any layer".
type LayerStyle struct {
	// SourceLayer names the tile layer this style applies to.
	SourceLayer string

	// Extrusion enables the 3D wall-extrusion procedure (§4.3.1) for
	// polygons in the matching layer.
	Extrusion bool
}

// Matches reports whether this style applies to a layer with the given name.
func (s LayerStyle) Matches(layerName string) bool {
	return s.SourceLayer == layerName
}

// Style is an ordered sequence of per-layer styling rules.
type Style struct {
	Layers []LayerStyle
}

// Find returns the first LayerStyle whose SourceLayer matches layerName, and
// whether a match was found.
func (s Style) Find(layerName string) (LayerStyle, bool) {
	for _, ls := range s.Layers {
		if ls.Matches(layerName) {
			return ls, true
		}
	}
	return LayerStyle{}, false
}

// TileRequest describes what a caller wants produced from one encoded tile.
// It is immutable for the duration of a single pipeline run: Layers lists
// the layer names the caller wants, layers in the tile that are not in this
// set are ignored, and names in this set absent from the tile are reported
// missing.
type TileRequest struct {
	Coords TileCoords
	Layers *LayerSet
	Style  Style
}
