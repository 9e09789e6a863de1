package iricodec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cborld/go-cborld/cbor"
)

// dataURLCodec compresses "data:" URLs of the common
// "mediatype;base64,PAYLOAD" shape by storing the decoded payload as
// raw bytes instead of its base64 text. Anything else after "data:" is
// carried through as plain text, so encoding never fails, it just
// doesn't always save space. Decode re-encodes the payload as standard
// padded base64, which reproduces the input whenever its base64 was
// already in that canonical form.
//
// spec.md marks this codec optional; it is implemented here because
// original_source/src/codecs/iri/data.rs fully specifies it and it
// exercises the registry's variable-arity array shape more than the
// fixed-arity codecs do.
type dataURLCodec struct{}

func (dataURLCodec) Encode(suffix string) ([]cbor.Value, error) {
	idx := strings.Index(suffix, ";base64,")
	if idx < 0 || !isMediaType(suffix[:idx]) {
		return []cbor.Value{cbor.Text(suffix)}, nil
	}
	mediatype := suffix[:idx]
	payload := suffix[idx+len(";base64,"):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return []cbor.Value{cbor.Text(suffix)}, nil
	}
	return []cbor.Value{cbor.Text(mediatype), cbor.Bytes(data)}, nil
}

// isMediaType reports whether s contains only characters the original
// data-URL parser accepts before the ";base64," marker; anything else
// (e.g. "image@jpeg") means the marker is coincidental text, not a real
// base64 data URL.
func isMediaType(s string) bool {
	for _, c := range s {
		if !isMediaTypeChar(c) {
			return false
		}
	}
	return true
}

func isMediaTypeChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '/', '!', '#', '$', '&', '-', '+', '^', '_', '.':
		return true
	}
	return false
}

func (dataURLCodec) Decode(parts []cbor.Value) (string, error) {
	switch len(parts) {
	case 1:
		text, ok := parts[0].AsText()
		if !ok {
			return "", fmt.Errorf("data url codec: expected text part")
		}
		return text, nil
	case 2:
		mediatype, ok := parts[0].AsText()
		if !ok {
			return "", fmt.Errorf("data url codec: expected text mediatype")
		}
		payload, ok := parts[1].AsBytes()
		if !ok {
			return "", fmt.Errorf("data url codec: expected bytes payload")
		}
		return mediatype + ";base64," + base64.StdEncoding.EncodeToString(payload), nil
	default:
		return "", fmt.Errorf("data url codec: expected 1 or 2 parts, got %d", len(parts))
	}
}
