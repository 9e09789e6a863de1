package iricodec

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/cborld/go-cborld/cbor"
)

func TestUrnUUIDScenario(t *testing.T) {
	r := NewRegistry()
	v, err := r.Encode("urn:uuid:188e8450-269e-11eb-b545-d3692cf35398")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	arr, ok := v.AsArray()
	if !ok || len(arr) != 2 {
		t.Fatalf("expected 2-element array, got %+v", v)
	}
	id, _ := arr[0].AsUint()
	if id != 3 {
		t.Fatalf("expected scheme id 3, got %d", id)
	}
	back, err := r.Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != "urn:uuid:188e8450-269e-11eb-b545-d3692cf35398" {
		t.Fatalf("round trip mismatch: %q", back)
	}
}

func TestUnregisteredPrefixPassesThroughAsText(t *testing.T) {
	r := NewRegistry()
	v, err := r.Encode("mailto:person@example.com")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text, ok := v.AsText()
	if !ok || text != "mailto:person@example.com" {
		t.Fatalf("expected passthrough text, got %+v", v)
	}
}

func TestLongestPrefixWins(t *testing.T) {
	r := &Registry{}
	r.Register("did:", 9000, recordingCodec{})
	r.Register("did:key:", 1025, base58DIDMethodCodec{})
	v, err := r.Encode("did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	arr, _ := v.AsArray()
	id, _ := arr[0].AsUint()
	if id != 1025 {
		t.Fatalf("expected longest-prefix match (did:key: / 1025), got id %d", id)
	}
}

type recordingCodec struct{}

func (recordingCodec) Encode(suffix string) ([]cbor.Value, error) {
	return []cbor.Value{cbor.Text(suffix)}, nil
}
func (recordingCodec) Decode(parts []cbor.Value) (string, error) {
	t, _ := parts[0].AsText()
	return t, nil
}

func TestHTTPCodecInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		host := rapid.StringMatching(`[a-z][a-z0-9.-]{2,20}`).Draw(t, "host")
		iri := "https://" + host + "/path"
		r := NewRegistry()
		enc, err := r.Encode(iri)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		dec, err := r.Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if dec != iri {
			t.Fatalf("involution failed: got %q, want %q", dec, iri)
		}
	})
}
