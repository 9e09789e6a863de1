// Package iricodec implements the pluggable, scheme-prefix-indexed IRI
// compression registry: a small set of built-in codecs (http/https,
// urn:uuid, did:key-style multibase identifiers, and an optional data:
// URL codec), plus the longest-prefix-match lookup used by both the
// @id and @vocab typed-literal codecs.
package iricodec

import (
	"fmt"
	"sort"

	"github.com/cborld/go-cborld/cbor"
)

// Codec compresses and decompresses the suffix of an IRI following its
// registered scheme prefix.
type Codec interface {
	// Encode turns the IRI suffix (the part after the scheme prefix)
	// into the CBOR values that follow the scheme ID in the encoded
	// array form.
	Encode(suffix string) ([]cbor.Value, error)
	// Decode is the inverse of Encode.
	Decode(parts []cbor.Value) (string, error)
}

type registration struct {
	prefix string
	id     uint64
	codec  Codec
}

// Registry holds an ordered set of scheme-prefix registrations and
// performs longest-prefix-match lookup.
//
// spec.md flags the original implementation's hash-ordered first-match
// lookup as unstable (an IRI matching two registered prefixes would
// non-deterministically prefer whichever the hash map happened to
// iterate first) and directs implementations to match the longest
// prefix instead. byLength is kept sorted by descending prefix length
// for exactly that reason.
type Registry struct {
	byID     map[uint64]registration
	byLength []registration
}

// NewRegistry returns a Registry with the built-in http, https,
// urn:uuid, did:v1:nym, did:key, and data: codecs already registered.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[uint64]registration)}
	r.Register("http:", 1, urlCodec{})
	r.Register("https:", 2, urlCodec{})
	r.Register("urn:uuid:", 3, urnUUIDCodec{})
	r.Register("data:", 4, dataURLCodec{})
	r.Register("did:v1:nym:", 1024, base58DIDMethodCodec{})
	r.Register("did:key:", 1025, base58DIDMethodCodec{})
	return r
}

// Register adds or replaces the codec registered under prefix.
func (r *Registry) Register(prefix string, id uint64, codec Codec) {
	if r.byID == nil {
		r.byID = make(map[uint64]registration)
	}
	reg := registration{prefix: prefix, id: id, codec: codec}
	r.byID[id] = reg

	replaced := false
	for i, existing := range r.byLength {
		if existing.prefix == prefix {
			r.byLength[i] = reg
			replaced = true
			break
		}
	}
	if !replaced {
		r.byLength = append(r.byLength, reg)
	}
	sort.SliceStable(r.byLength, func(i, j int) bool {
		return len(r.byLength[i].prefix) > len(r.byLength[j].prefix)
	})
}

// Encode compresses iri. If no registered prefix matches, it returns
// the IRI as plain CBOR text.
func (r *Registry) Encode(iri string) (cbor.Value, error) {
	for _, reg := range r.byLength {
		if len(iri) < len(reg.prefix) || iri[:len(reg.prefix)] != reg.prefix {
			continue
		}
		suffix := iri[len(reg.prefix):]
		parts, err := reg.codec.Encode(suffix)
		if err != nil {
			return cbor.Value{}, fmt.Errorf("iricodec: encoding %q: %v", iri, err)
		}
		items := make([]cbor.Value, 0, len(parts)+1)
		items = append(items, cbor.Uint(reg.id))
		items = append(items, parts...)
		return cbor.ArrayOf(items), nil
	}
	return cbor.Text(iri), nil
}

// Decode expands a previously-encoded IRI value. Text values pass
// through unchanged; arrays are dispatched to the codec named by their
// first element.
func (r *Registry) Decode(v cbor.Value) (string, error) {
	if text, ok := v.AsText(); ok {
		return text, nil
	}
	arr, ok := v.AsArray()
	if !ok || len(arr) == 0 {
		return "", fmt.Errorf("iricodec: expected text or non-empty array, got kind %d", v.Kind())
	}
	id, ok := arr[0].AsUint()
	if !ok {
		return "", fmt.Errorf("iricodec: array head is not an unsigned integer")
	}
	reg, ok := r.byID[id]
	if !ok {
		return "", fmt.Errorf("iricodec: unknown scheme id %d", id)
	}
	suffix, err := reg.codec.Decode(arr[1:])
	if err != nil {
		return "", fmt.Errorf("iricodec: decoding scheme %q: %v", reg.prefix, err)
	}
	return reg.prefix + suffix, nil
}
