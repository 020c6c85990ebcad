package mvt

import (
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned when the byte stream ends in the middle of a
// field, tag, or length-delimited value.
var ErrTruncated = errors.New("mvt: truncated input")

const (
	wireVarint  = 0
	wireFixed64 = 1
	wireBytes   = 2
	wireFixed32 = 5
)

// wireReader is a minimal, allocation-light protobuf wire-format cursor.
// It understands exactly the field kinds the MVT schema uses: varint,
// fixed32, fixed64, and length-delimited.
type wireReader struct {
	buf []byte
	pos int
}

func newWireReader(buf []byte) *wireReader {
	return &wireReader{buf: buf}
}

func (r *wireReader) done() bool { return r.pos >= len(r.buf) }

func (r *wireReader) readVarint() (uint64, error) {
	var result uint64
	var shift uint
	for {
		if r.pos >= len(r.buf) {
			return 0, ErrTruncated
		}
		b := r.buf[r.pos]
		r.pos++
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, fmt.Errorf("mvt: varint overflow")
		}
	}
}

func (r *wireReader) readTag() (field int, wireType int, err error) {
	v, err := r.readVarint()
	if err != nil {
		return 0, 0, err
	}
	return int(v >> 3), int(v & 0x7), nil
}

func (r *wireReader) readBytes() ([]byte, error) {
	n, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	end := r.pos + int(n)
	if n > uint64(len(r.buf)) || end < r.pos || end > len(r.buf) {
		return nil, ErrTruncated
	}
	out := r.buf[r.pos:end]
	r.pos = end
	return out, nil
}

func (r *wireReader) readFixed32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := uint32(r.buf[r.pos]) | uint32(r.buf[r.pos+1])<<8 | uint32(r.buf[r.pos+2])<<16 | uint32(r.buf[r.pos+3])<<24
	r.pos += 4
	return v, nil
}

func (r *wireReader) readFixed64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, ErrTruncated
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(r.buf[r.pos+i]) << (8 * i)
	}
	r.pos += 8
	return v, nil
}

// skip discards the value of the field whose wire type was just read.
func (r *wireReader) skip(wireType int) error {
	switch wireType {
	case wireVarint:
		_, err := r.readVarint()
		return err
	case wireFixed64:
		_, err := r.readFixed64()
		return err
	case wireBytes:
		_, err := r.readBytes()
		return err
	case wireFixed32:
		_, err := r.readFixed32()
		return err
	default:
		return fmt.Errorf("mvt: unknown wire type %d", wireType)
	}
}

// packedVarints decodes a length-delimited field as a packed sequence of
// varints (used for Feature.tags and Feature.geometry).
func packedVarints(data []byte) ([]uint32, error) {
	r := newWireReader(data)
	var out []uint32
	for !r.done() {
		v, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -(int64(v & 1))
}

// Decode parses MVT wire-format bytes into a Tile. It is the sole decode
// entry point ParseTile calls; decode failure here is fatal to the tile
// (§7: DecodeError).
func Decode(data []byte) (*Tile, error) {
	r := newWireReader(data)
	tile := &Tile{}
	for !r.done() {
		field, wt, err := r.readTag()
		if err != nil {
			return nil, err
		}
		switch {
		case field == 3 && wt == wireBytes: // repeated Layer layers = 3;
			lb, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			layer, err := decodeLayer(lb)
			if err != nil {
				return nil, fmt.Errorf("mvt: layer %d: %w", len(tile.Layers), err)
			}
			tile.Layers = append(tile.Layers, *layer)
		default:
			if err := r.skip(wt); err != nil {
				return nil, err
			}
		}
	}
	return tile, nil
}

func decodeLayer(data []byte) (*Layer, error) {
	r := newWireReader(data)
	layer := &Layer{Extent: 4096, Version: 1}
	var rawFeatures [][]byte
	for !r.done() {
		field, wt, err := r.readTag()
		if err != nil {
			return nil, err
		}
		switch field {
		case 1: // name
			b, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			layer.Name = string(b)
		case 2: // features
			b, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			rawFeatures = append(rawFeatures, b)
		case 3: // keys
			b, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			layer.Keys = append(layer.Keys, string(b))
		case 4: // values
			b, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(b)
			if err != nil {
				return nil, err
			}
			layer.Values = append(layer.Values, *v)
		case 5: // extent
			v, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			layer.Extent = uint32(v)
		case 15: // version
			v, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			layer.Version = uint32(v)
		default:
			if err := r.skip(wt); err != nil {
				return nil, err
			}
		}
	}
	for i, fb := range rawFeatures {
		f, err := decodeFeature(fb)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		layer.Features = append(layer.Features, *f)
	}
	return layer, nil
}

func decodeFeature(data []byte) (*Feature, error) {
	r := newWireReader(data)
	f := &Feature{}
	for !r.done() {
		field, wt, err := r.readTag()
		if err != nil {
			return nil, err
		}
		switch field {
		case 1: // id
			v, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			f.ID = v
		case 2: // tags
			if wt == wireBytes {
				b, err := r.readBytes()
				if err != nil {
					return nil, err
				}
				tags, err := packedVarints(b)
				if err != nil {
					return nil, err
				}
				f.Tags = append(f.Tags, tags...)
			} else {
				v, err := r.readVarint()
				if err != nil {
					return nil, err
				}
				f.Tags = append(f.Tags, uint32(v))
			}
		case 3: // type
			v, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			f.Type = GeomType(v)
		case 4: // geometry
			if wt == wireBytes {
				b, err := r.readBytes()
				if err != nil {
					return nil, err
				}
				geom, err := packedVarints(b)
				if err != nil {
					return nil, err
				}
				f.Geometry = append(f.Geometry, geom...)
			} else {
				v, err := r.readVarint()
				if err != nil {
					return nil, err
				}
				f.Geometry = append(f.Geometry, uint32(v))
			}
		default:
			if err := r.skip(wt); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func decodeValue(data []byte) (*Value, error) {
	r := newWireReader(data)
	v := &Value{}
	for !r.done() {
		field, wt, err := r.readTag()
		if err != nil {
			return nil, err
		}
		switch field {
		case 1:
			b, err := r.readBytes()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueString
			v.String = string(b)
		case 2:
			raw, err := r.readFixed32()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueFloat
			v.Float = math.Float32frombits(raw)
		case 3:
			raw, err := r.readFixed64()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueDouble
			v.Double = math.Float64frombits(raw)
		case 4:
			raw, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueInt
			v.Int = int64(raw)
		case 5:
			raw, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueUint
			v.Uint = raw
		case 6:
			raw, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueSint
			v.Sint = zigzagDecode(raw)
		case 7:
			raw, err := r.readVarint()
			if err != nil {
				return nil, err
			}
			v.Kind = ValueBool
			v.Bool = raw != 0
		default:
			if err := r.skip(wt); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}
