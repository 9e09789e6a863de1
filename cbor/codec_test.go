package cbor

import "testing"

func TestRoundTripScalars(t *testing.T) {
	cases := []Value{
		Null(),
		Bool(true),
		Uint(42),
		Int(-7),
		Text("hello"),
		Bytes([]byte{1, 2, 3}),
		Array(Uint(1), Text("a"), Bool(false)),
	}
	for _, v := range cases {
		b, err := Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", v, err)
		}
		got, err := Unmarshal(b)
		if err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !got.Equal(v) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, v)
		}
	}
}

func TestMapEncodesInAscendingKeyOrder(t *testing.T) {
	m := MapOf(Map{
		{Key: Uint(5), Value: Text("five")},
		{Key: Uint(0), Value: Text("zero")},
		{Key: Uint(2), Value: Text("two")},
	})
	b, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// A definite-length map header for 3 pairs is 0xa3, followed by
	// key 0 (0x00) first since SortBytewiseLexical on uint keys yields
	// ascending numeric order.
	if len(b) < 2 || b[0] != 0xa3 || b[1] != 0x00 {
		t.Fatalf("expected map header then key 0 first, got % x", b)
	}
}

func TestDuplicateKeyRejected(t *testing.T) {
	// Hand-built CBOR: map with two entries both keyed 0.
	// a2 00 01 00 02  == {0: 1, 0: 2}
	_, err := Unmarshal([]byte{0xa2, 0x00, 0x01, 0x00, 0x02})
	if err == nil {
		t.Fatal("expected duplicate key to be rejected")
	}
}

func TestUnmarshalPreservesMapWireOrder(t *testing.T) {
	// Hand-built CBOR, deliberately out of key order:
	// a2 61 7a 01 61 61 02  == {"z": 1, "a": 2}
	got, err := Unmarshal([]byte{0xa2, 0x61, 0x7a, 0x01, 0x61, 0x61, 0x02})
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	m, ok := got.AsMap()
	if !ok || len(m) != 2 {
		t.Fatalf("expected 2-entry map, got %+v", got)
	}
	if k, _ := m[0].Key.AsText(); k != "z" {
		t.Fatalf("entries reordered: first key = %q, want %q", k, "z")
	}
	if k, _ := m[1].Key.AsText(); k != "a" {
		t.Fatalf("entries reordered: second key = %q, want %q", k, "a")
	}
}

func TestTagRoundTrip(t *testing.T) {
	v := Tag(42, Text("hi"))
	b, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("tag round trip mismatch: got %+v, want %+v", got, v)
	}
}
