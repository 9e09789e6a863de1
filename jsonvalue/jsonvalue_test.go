package jsonvalue

import (
	"testing"

	"github.com/cborld/go-cborld/cbor"
)

func TestParseDistinguishesIntAndFloat(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 1.5, "c": -3}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := v.AsMap()
	if !ok {
		t.Fatalf("expected map")
	}
	a, _ := m.Get(cbor.Text("a"))
	if a.Kind() != cbor.KindUint {
		t.Fatalf("a: got kind %d, want KindUint", a.Kind())
	}
	b, _ := m.Get(cbor.Text("b"))
	if b.Kind() != cbor.KindFloat {
		t.Fatalf("b: got kind %d, want KindFloat", b.Kind())
	}
	c, _ := m.Get(cbor.Text("c"))
	if c.Kind() != cbor.KindInt {
		t.Fatalf("c: got kind %d, want KindInt", c.Kind())
	}
}

func TestParseSortsObjectKeys(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, _ := v.AsMap()
	if len(m) != 2 || m[0].Key.Equal(cbor.Text("z")) {
		t.Fatalf("expected sorted keys, got %+v", m)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	original := []byte(`{"list":[1,2,3],"name":"hello","ok":true,"nothing":null}`)
	v, err := Parse(original)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	v2, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if !v.Equal(v2) {
		t.Fatalf("round trip mismatch: %+v vs %+v", v, v2)
	}
}

func TestMarshalRejectsNonTextMapKeys(t *testing.T) {
	bad := cbor.MapOf(cbor.Map{{Key: cbor.Uint(1), Value: cbor.Text("x")}})
	if _, err := Marshal(bad); err == nil {
		t.Fatalf("expected error for non-text map key")
	}
}
