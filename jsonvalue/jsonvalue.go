// Package jsonvalue bridges JSON text and the shared cbor.Value tree,
// so the transformer can walk a parsed JSON-LD document with the same
// value model it uses for CBOR. Numbers round-trip through
// encoding/json's json.Number so integers and floats stay
// distinguishable, matching the CBOR side where uint/int and float are
// separate Kinds.
package jsonvalue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/cborld/go-cborld/cbor"
)

var api = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Parse decodes a JSON document into a cbor.Value tree. Object keys
// are sorted lexicographically on the way in — JSON objects carry no
// source order of their own, and a deterministic order keeps repeated
// parses of the same document comparable.
func Parse(data []byte) (cbor.Value, error) {
	var raw interface{}
	if err := api.Unmarshal(data, &raw); err != nil {
		return cbor.Value{}, fmt.Errorf("jsonvalue: %v", err)
	}
	return toValue(raw)
}

// Marshal renders a cbor.Value tree as JSON text. It fails if v (or
// any value nested in it) contains a map with a non-text key, since
// JSON object keys must be strings.
func Marshal(v cbor.Value) ([]byte, error) {
	native, err := fromValue(v)
	if err != nil {
		return nil, err
	}
	return api.Marshal(native)
}

func toValue(raw interface{}) (cbor.Value, error) {
	switch x := raw.(type) {
	case nil:
		return cbor.Null(), nil
	case bool:
		return cbor.Bool(x), nil
	case json.Number:
		return numberToValue(x)
	case string:
		return cbor.Text(x), nil
	case []interface{}:
		items := make([]cbor.Value, len(x))
		for i, e := range x {
			v, err := toValue(e)
			if err != nil {
				return cbor.Value{}, err
			}
			items[i] = v
		}
		return cbor.ArrayOf(items), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make(cbor.Map, 0, len(keys))
		for _, k := range keys {
			v, err := toValue(x[k])
			if err != nil {
				return cbor.Value{}, err
			}
			entries = append(entries, cbor.Entry{Key: cbor.Text(k), Value: v})
		}
		return cbor.MapOf(entries), nil
	default:
		return cbor.Value{}, fmt.Errorf("jsonvalue: unsupported decoded type %T", raw)
	}
}

func numberToValue(n json.Number) (cbor.Value, error) {
	s := string(n)
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return cbor.Uint(u), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return cbor.Int(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return cbor.Value{}, fmt.Errorf("jsonvalue: invalid number %q", s)
	}
	return cbor.Float(f), nil
}

func fromValue(v cbor.Value) (interface{}, error) {
	switch v.Kind() {
	case cbor.KindNull:
		return nil, nil
	case cbor.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case cbor.KindUint:
		u, _ := v.AsUint()
		return u, nil
	case cbor.KindInt:
		i, _ := v.AsInt()
		return i, nil
	case cbor.KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case cbor.KindText:
		t, _ := v.AsText()
		return t, nil
	case cbor.KindBytes:
		b, _ := v.AsBytes()
		return b, nil
	case cbor.KindArray:
		arr, _ := v.AsArray()
		out := make([]interface{}, len(arr))
		for i, e := range arr {
			n, err := fromValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case cbor.KindMap:
		m, _ := v.AsMap()
		out := make(map[string]interface{}, len(m))
		for _, e := range m {
			key, ok := e.Key.AsText()
			if !ok {
				return nil, fmt.Errorf("jsonvalue: map key %+v is not a JSON-representable string", e.Key)
			}
			n, err := fromValue(e.Value)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case cbor.KindTag:
		_, content, _ := v.AsTag()
		return fromValue(content)
	default:
		return nil, fmt.Errorf("jsonvalue: unsupported value kind %d", v.Kind())
	}
}
