package cborld

import (
	"context"
	"errors"
	"testing"

	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/contextloader"
	"github.com/cborld/go-cborld/jsonvalue"
)

func mustParse(t *testing.T, doc string) cbor.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("jsonvalue.Parse: %v", err)
	}
	return v
}

func decodedTag(t *testing.T, data []byte) (uint64, cbor.Value) {
	t.Helper()
	raw, err := cbor.Unmarshal(data)
	if err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}
	number, inner, ok := raw.AsTag()
	if !ok {
		t.Fatalf("encoded output is not a tagged value")
	}
	return number, inner
}

func TestEncodeContextOnlyUsesDefaultTableID(t *testing.T) {
	loader := contextloader.MapLoader{
		"https://www.w3.org/2018/credentials/v1": map[string]interface{}{
			"@context": map[string]interface{}{},
		},
	}
	doc := `{"@context":"https://www.w3.org/2018/credentials/v1"}`
	out, err := Encode(context.Background(), []byte(doc), EncOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tagNum, inner := decodedTag(t, out)
	if tagNum != 0x0501 {
		t.Fatalf("tag = %#x, want 0x0501", tagNum)
	}
	entries, ok := inner.AsMap()
	if !ok || len(entries) != 1 {
		t.Fatalf("inner = %+v, want single-entry map", inner)
	}
	if !entries[0].Key.Equal(cbor.Uint(0)) {
		t.Fatalf("key = %+v, want 0", entries[0].Key)
	}
	if !entries[0].Value.Equal(cbor.Uint(0x11)) {
		t.Fatalf("value = %+v, want 0x11", entries[0].Value)
	}

	back, err := Decode(context.Background(), out, DecOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !mustParse(t, string(back)).Equal(mustParse(t, doc)) {
		t.Fatalf("round trip mismatch: got %s, want %s", back, doc)
	}
}

func TestEncodeKeywordAliasAndCustomTermOrdering(t *testing.T) {
	loader := contextloader.MapLoader{
		"https://example.com/ctx": map[string]interface{}{
			"@context": map[string]interface{}{
				"type":    "@type",
				"content": "https://schema.org/content",
			},
		},
	}
	doc := `{"@context":"https://example.com/ctx","type":"Note","content":"hi"}`
	out, err := Encode(context.Background(), []byte(doc), EncOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tagNum, inner := decodedTag(t, out)
	if tagNum != 0x0501 {
		t.Fatalf("tag = %#x, want 0x0501", tagNum)
	}
	entries, ok := inner.AsMap()
	if !ok || len(entries) != 3 {
		t.Fatalf("inner = %+v, want 3-entry map", inner)
	}

	// "content" allocates before "type" lexicographically (100, 102),
	// and the final emit sorts by that numeric key: @context(0) <
	// content(100) < type(102).
	want := []struct {
		key   uint64
		value cbor.Value
	}{
		{0, cbor.Text("https://example.com/ctx")},
		{100, cbor.Text("hi")},
		{102, cbor.Text("Note")},
	}
	for i, w := range want {
		if !entries[i].Key.Equal(cbor.Uint(w.key)) {
			t.Fatalf("entry %d key = %+v, want %d", i, entries[i].Key, w.key)
		}
		if !entries[i].Value.Equal(w.value) {
			t.Fatalf("entry %d value = %+v, want %+v", i, entries[i].Value, w.value)
		}
	}

	back, err := Decode(context.Background(), out, DecOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !mustParse(t, string(back)).Equal(mustParse(t, doc)) {
		t.Fatalf("round trip mismatch: got %s, want %s", back, doc)
	}
}

func TestEncodeCompressesUrnUUIDTypedID(t *testing.T) {
	loader := contextloader.MapLoader{
		"https://example.com/ctx": map[string]interface{}{
			"@context": map[string]interface{}{
				"identifier": map[string]interface{}{
					"@id":   "https://schema.org/identifier",
					"@type": "@id",
				},
			},
		},
	}
	doc := `{"@context":"https://example.com/ctx","identifier":"urn:uuid:188e8450-269e-11eb-b545-d3692cf35398"}`
	out, err := Encode(context.Background(), []byte(doc), EncOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, inner := decodedTag(t, out)
	entries, ok := inner.AsMap()
	if !ok || len(entries) != 2 {
		t.Fatalf("inner = %+v, want 2-entry map", inner)
	}
	if !entries[1].Key.Equal(cbor.Uint(100)) {
		t.Fatalf("identifier key = %+v, want 100", entries[1].Key)
	}
	parts, ok := entries[1].Value.AsArray()
	if !ok || len(parts) != 2 {
		t.Fatalf("identifier value = %+v, want 2-element array", entries[1].Value)
	}
	if !parts[0].Equal(cbor.Uint(3)) {
		t.Fatalf("identifier scheme id = %+v, want 3 (urn:uuid:)", parts[0])
	}
	b, ok := parts[1].AsBytes()
	if !ok || len(b) != 16 {
		t.Fatalf("identifier payload = %+v, want 16 raw UUID bytes", parts[1])
	}

	back, err := Decode(context.Background(), out, DecOptions{Loader: loader})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !mustParse(t, string(back)).Equal(mustParse(t, doc)) {
		t.Fatalf("round trip mismatch: got %s, want %s", back, doc)
	}
}

func TestEncodeUncompressedWrapsValueVerbatim(t *testing.T) {
	doc := `{"hello":"world","n":[1,2,3]}`
	out, err := Encode(context.Background(), []byte(doc), EncOptions{Uncompressed: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tagNum, inner := decodedTag(t, out)
	if tagNum != 0x0500 {
		t.Fatalf("tag = %#x, want 0x0500", tagNum)
	}
	// cbor.Marshal writes map keys sorted bytewise by their encoding
	// ("n" before "hello"), so compare as JSON values rather than entry
	// by entry in parse order.
	innerJSON, err := jsonvalue.Marshal(inner)
	if err != nil {
		t.Fatalf("jsonvalue.Marshal: %v", err)
	}
	if !mustParse(t, string(innerJSON)).Equal(mustParse(t, doc)) {
		t.Fatalf("inner value altered under uncompressed mode")
	}

	back, err := Decode(context.Background(), out, DecOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !mustParse(t, string(back)).Equal(mustParse(t, doc)) {
		t.Fatalf("round trip mismatch: got %s, want %s", back, doc)
	}
}

func TestDecodeRejectsNonCborLdInput(t *testing.T) {
	raw, err := cbor.Marshal(cbor.Text("just a string"))
	if err != nil {
		t.Fatalf("cbor.Marshal: %v", err)
	}
	_, err = Decode(context.Background(), raw, DecOptions{})
	if !errors.Is(err, ErrNotCborLd) {
		t.Fatalf("got %v, want ErrNotCborLd", err)
	}
}

func TestEncodeUndefinedTermFails(t *testing.T) {
	loader := contextloader.MapLoader{
		"https://example.com/ctx": map[string]interface{}{
			"@context": map[string]interface{}{
				"content": "https://schema.org/content",
			},
		},
	}
	doc := `{"@context":"https://example.com/ctx","nope":"nope"}`
	_, err := Encode(context.Background(), []byte(doc), EncOptions{Loader: loader})
	var undef *UndefinedTermError
	if !errors.As(err, &undef) {
		t.Fatalf("got %v, want *UndefinedTermError", err)
	}
	if undef.Term != "nope" {
		t.Fatalf("Term = %q, want %q", undef.Term, "nope")
	}
}

func TestEncodeRejectsNonObjectTopLevel(t *testing.T) {
	_, err := Encode(context.Background(), []byte(`"just a string"`), EncOptions{})
	if !errors.Is(err, ErrExpectedNodeObject) {
		t.Fatalf("got %v, want ErrExpectedNodeObject", err)
	}
}
