package mvt

import "fmt"

// Point is an absolute, tile-local integer coordinate, in the range
// [0, layer.Extent) for well-formed tiles (MVT allows a small amount of
// buffering outside that range).
type Point struct {
	X, Y int32
}

const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7
)

func zigzagDecode32(v uint32) int32 {
	return int32(v>>1) ^ -(int32(v & 1))
}

// DecodeGeometry walks a feature's raw command stream and returns it as a
// sequence of paths: each MoveTo starts a new path, each ClosePath ends one
// (used by polygon rings). A Point feature's single path holds every point
// of a (possibly multi-) point feature; a LineString feature's paths are its
// (possibly multiple) polylines; a Polygon feature's paths are its rings,
// exterior and interior alike, in wire order.
func DecodeGeometry(commands []uint32) ([][]Point, error) {
	var paths [][]Point
	var current []Point
	var cx, cy int32

	i := 0
	for i < len(commands) {
		cmdInt := commands[i]
		i++
		id := cmdInt & 0x7
		count := int(cmdInt >> 3)

		switch id {
		case cmdMoveTo:
			if len(current) > 0 {
				paths = append(paths, current)
			}
			current = make([]Point, 0, count)
			if i+2*count > len(commands) {
				return nil, fmt.Errorf("mvt: truncated MoveTo parameters")
			}
			for c := 0; c < count; c++ {
				dx := zigzagDecode32(commands[i])
				dy := zigzagDecode32(commands[i+1])
				i += 2
				cx += dx
				cy += dy
				current = append(current, Point{cx, cy})
			}
		case cmdLineTo:
			if i+2*count > len(commands) {
				return nil, fmt.Errorf("mvt: truncated LineTo parameters")
			}
			for c := 0; c < count; c++ {
				dx := zigzagDecode32(commands[i])
				dy := zigzagDecode32(commands[i+1])
				i += 2
				cx += dx
				cy += dy
				current = append(current, Point{cx, cy})
			}
		case cmdClosePath:
			if len(current) > 0 {
				paths = append(paths, current)
				current = nil
			}
		default:
			return nil, fmt.Errorf("mvt: unknown geometry command id %d", id)
		}
	}
	if len(current) > 0 {
		paths = append(paths, current)
	}
	return paths, nil
}
