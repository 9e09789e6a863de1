// Package cbor provides the ordered CBOR value model the transformer
// walks: a tagged sum type mirroring CBOR's own data model, with maps
// modeled as an ordered sequence of pairs rather than a hash, so that
// traversal order is under the caller's control rather than at the
// mercy of Go map iteration. Unmarshal keeps a map's wire order;
// Marshal writes map entries sorted bytewise by their encoded keys,
// whatever their order in the Map.
package cbor

// Kind identifies which alternative of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindUint
	KindInt
	KindFloat
	KindText
	KindBytes
	KindArray
	KindMap
	KindTag
)

// Value is a CBOR value. The zero Value is KindNull.
type Value struct {
	kind Kind

	b   bool
	u   uint64
	i   int64
	f   float64
	t   string
	by  []byte
	arr []Value
	m   Map

	tagNum     uint64
	tagContent *Value
}

// Entry is one (key, value) pair of an ordered CBOR map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is an ordered sequence of entries. Unlike a Go map, duplicate
// keys are not silently deduplicated; callers that need duplicate
// detection should check for it explicitly (see cborld's traversal,
// which does this while resolving each entry's term).
type Map []Entry

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func Text(s string) Value { return Value{kind: KindText, t: s} }

func Bytes(b []byte) Value { return Value{kind: KindBytes, by: b} }

func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

func ArrayOf(items []Value) Value { return Value{kind: KindArray, arr: items} }

func NewMap(entries ...Entry) Value { return Value{kind: KindMap, m: Map(entries)} }

func MapOf(entries Map) Value { return Value{kind: KindMap, m: entries} }

func Tag(number uint64, content Value) Value {
	return Value{kind: KindTag, tagNum: number, tagContent: &content}
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.t, true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.by, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsMap() (Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

func (v Value) AsTag() (number uint64, content Value, ok bool) {
	if v.kind != KindTag {
		return 0, Value{}, false
	}
	return v.tagNum, *v.tagContent, true
}

// IsNull reports whether v is the CBOR null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Get returns the value bound to key in an ordered map, and whether it
// was found. If key appears more than once, the first occurrence wins;
// callers that must reject duplicates should scan m directly.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if e.Key.Equal(key) {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether a and b represent the same CBOR value. Arrays
// and maps compare element-wise and entry-wise respectively, in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindUint:
		return v.u == other.u
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.t == other.t
	case KindBytes:
		if len(v.by) != len(other.by) {
			return false
		}
		for i := range v.by {
			if v.by[i] != other.by[i] {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for i := range v.m {
			if !v.m[i].Key.Equal(other.m[i].Key) || !v.m[i].Value.Equal(other.m[i].Value) {
				return false
			}
		}
		return true
	case KindTag:
		return v.tagNum == other.tagNum && v.tagContent.Equal(*other.tagContent)
	}
	return false
}
