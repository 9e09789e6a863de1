package cbor

import (
	"bytes"
	"fmt"
	"math"

	fxcbor "github.com/fxamacker/cbor/v2"
)

var (
	defaultEncMode fxcbor.EncMode
	defaultDecMode fxcbor.DecMode
)

func init() {
	var err error
	defaultEncMode, err = EncOptions{}.mode()
	if err != nil {
		panic(err)
	}
	defaultDecMode, err = DecOptions{}.mode()
	if err != nil {
		panic(err)
	}
}

// EncOptions configures Marshal. The zero value is ready to use.
type EncOptions struct{}

func (EncOptions) mode() (fxcbor.EncMode, error) {
	return fxcbor.EncOptions{
		// Deterministic output is a hard requirement (spec.md's
		// Determinism testable property): sort keys on the wire so Go
		// map iteration order never leaks through, and disable every
		// shortest-form heuristic that could vary between runs.
		Sort:             fxcbor.SortBytewiseLexical,
		ShortestFloat:    fxcbor.ShortestFloatNone,
		NaNConvert:       fxcbor.NaNConvertReject,
		InfConvert:       fxcbor.InfConvertReject,
		IndefLength:      fxcbor.IndefLengthForbidden,
		MapKeyStringOnly: false,
		OmitEmpty:        fxcbor.OmitEmptyGoValue,
	}.EncMode()
}

// DecOptions configures Unmarshal. The zero value is ready to use.
type DecOptions struct{}

func (DecOptions) mode() (fxcbor.DecMode, error) {
	return fxcbor.DecOptions{
		// Duplicate map keys must be detected, not silently
		// overwritten (spec.md's ordered-map invariant).
		DupMapKey:   fxcbor.DupMapKeyEnforcedAPF,
		IndefLength: fxcbor.IndefLengthForbidden,
		// Pass through tags we don't otherwise understand as
		// cbor.Tag{Number, Content} rather than rejecting them, so a
		// document carrying an unrelated tagged literal round-trips.
		TagsMd: fxcbor.TagsAllowed,
	}.DecMode()
}

// Marshal encodes v to its canonical CBOR byte representation.
func Marshal(v Value) ([]byte, error) {
	native, err := toNative(v)
	if err != nil {
		return nil, err
	}
	return defaultEncMode.Marshal(native)
}

// Unmarshal decodes a single CBOR data item into a Value. Array and map
// structure is walked by hand (see decodeItem) rather than through
// fxamacker/cbor's native []interface{}/map[interface{}]interface{}
// decode, because a map's wire order must survive the round trip and
// Go map iteration order is randomized.
func Unmarshal(data []byte) (Value, error) {
	item, rest, err := splitItem(data)
	if err != nil {
		return Value{}, err
	}
	if len(rest) != 0 {
		return Value{}, fmt.Errorf("cbor: %d trailing byte(s) after top-level item", len(rest))
	}
	return decodeItem(item)
}

// splitItem decodes the single well-formed CBOR data item at the front
// of data and returns its exact raw bytes alongside whatever follows.
// Going through a real decode, rather than a hand-rolled byte-count
// walk, means DecOptions.IndefLength is enforced on every nested item,
// not just the outermost one. Duplicate map keys are a semantic check
// on decoded values, not a structural one this raw-bytes step can see,
// so decodeMapItem checks for those itself.
func splitItem(data []byte) ([]byte, []byte, error) {
	var raw fxcbor.RawMessage
	dec := defaultDecMode.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, err
	}
	return data[:len(raw)], data[len(raw):], nil
}

// header is a CBOR item's initial byte(s): the decoded argument (an
// array's element count, a map's pair count, or a tag's number) and
// how many leading bytes it took to encode it.
type header struct {
	arg uint64
	len int
}

func parseHeader(data []byte) (header, error) {
	if len(data) == 0 {
		return header{}, fmt.Errorf("cbor: truncated item header")
	}
	info := data[0] & 0x1f
	switch {
	case info < 24:
		return header{uint64(info), 1}, nil
	case info == 24:
		if len(data) < 2 {
			return header{}, fmt.Errorf("cbor: truncated item header")
		}
		return header{uint64(data[1]), 2}, nil
	case info == 25:
		if len(data) < 3 {
			return header{}, fmt.Errorf("cbor: truncated item header")
		}
		return header{uint64(data[1])<<8 | uint64(data[2]), 3}, nil
	case info == 26:
		if len(data) < 5 {
			return header{}, fmt.Errorf("cbor: truncated item header")
		}
		v := uint64(data[1])<<24 | uint64(data[2])<<16 | uint64(data[3])<<8 | uint64(data[4])
		return header{v, 5}, nil
	case info == 27:
		if len(data) < 9 {
			return header{}, fmt.Errorf("cbor: truncated item header")
		}
		var v uint64
		for _, b := range data[1:9] {
			v = v<<8 | uint64(b)
		}
		return header{v, 9}, nil
	default:
		return header{}, fmt.Errorf("cbor: indefinite-length items are not supported")
	}
}

// decodeItem decodes one well-formed CBOR data item, dispatching on its
// major type. Arrays, maps, and tags recurse by hand so a map's entries
// come out in the order they appeared on the wire; every other major
// type has no ordering concern and goes through fxamacker/cbor's native
// decode straight into fromNative.
func decodeItem(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, fmt.Errorf("cbor: empty data item")
	}
	switch data[0] >> 5 {
	case 4:
		return decodeArrayItem(data)
	case 5:
		return decodeMapItem(data)
	case 6:
		return decodeTagItem(data)
	default:
		var native any
		if err := defaultDecMode.Unmarshal(data, &native); err != nil {
			return Value{}, err
		}
		return fromNative(native)
	}
}

func decodeArrayItem(data []byte) (Value, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Value{}, err
	}
	rest := data[h.len:]
	items := make([]Value, 0, h.arg)
	for i := uint64(0); i < h.arg; i++ {
		itemData, tail, err := splitItem(rest)
		if err != nil {
			return Value{}, err
		}
		v, err := decodeItem(itemData)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
		rest = tail
	}
	return ArrayOf(items), nil
}

func decodeMapItem(data []byte) (Value, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Value{}, err
	}
	rest := data[h.len:]
	entries := make(Map, 0, h.arg)
	for i := uint64(0); i < h.arg; i++ {
		keyData, tail, err := splitItem(rest)
		if err != nil {
			return Value{}, err
		}
		key, err := decodeItem(keyData)
		if err != nil {
			return Value{}, err
		}
		rest = tail

		valData, tail, err := splitItem(rest)
		if err != nil {
			return Value{}, err
		}
		val, err := decodeItem(valData)
		if err != nil {
			return Value{}, err
		}
		rest = tail

		if _, dup := entries.Get(key); dup {
			return Value{}, fmt.Errorf("cbor: duplicate map key")
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return MapOf(entries), nil
}

func decodeTagItem(data []byte) (Value, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Value{}, err
	}
	content, err := decodeItem(data[h.len:])
	if err != nil {
		return Value{}, err
	}
	return Tag(h.arg, content), nil
}

// toNative converts a Value tree into the plain Go types fxamacker/cbor
// knows how to encode natively. Maps become map[any]any; the encoder's
// Sort option (not insertion order) is what fixes their final order on
// the wire.
func toNative(v Value) (any, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindUint:
		return v.u, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		return v.f, nil
	case KindText:
		return v.t, nil
	case KindBytes:
		return v.by, nil
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			n, err := toNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case KindMap:
		out := make(map[any]any, len(v.m))
		for _, e := range v.m {
			k, err := toNative(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := toNative(e.Value)
			if err != nil {
				return nil, err
			}
			out[k] = val
		}
		return out, nil
	case KindTag:
		content, err := toNative(*v.tagContent)
		if err != nil {
			return nil, err
		}
		return fxcbor.Tag{Number: v.tagNum, Content: content}, nil
	default:
		return nil, fmt.Errorf("cbor: unknown value kind %d", v.kind)
	}
}

// fromNative converts a decoded scalar (bool, uint64, int64, float64,
// []byte, string, or nil) into a Value. Only decodeItem's default case
// calls this, so n is never an array, map, or tag - decodeItem walks
// those major types itself to keep map entries in wire order rather
// than routing them through fxamacker/cbor's native
// map[interface{}]interface{}, whose iteration order Go randomizes.
func fromNative(n any) (Value, error) {
	switch x := n.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case uint64:
		return Uint(x), nil
	case int64:
		return Int(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Value{}, fmt.Errorf("cbor: non-finite float decoded")
		}
		return Float(x), nil
	case []byte:
		return Bytes(x), nil
	case string:
		return Text(x), nil
	default:
		return Value{}, fmt.Errorf("cbor: unsupported decoded type %T", n)
	}
}
