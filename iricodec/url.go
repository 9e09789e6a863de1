package iricodec

import (
	"fmt"
	"strings"

	"github.com/cborld/go-cborld/cbor"
)

// urlCodec compresses http/https IRIs by dropping the "//" authority
// marker, which is always present for these two schemes and costs two
// bytes to carry on the wire for nothing.
type urlCodec struct{}

func (urlCodec) Encode(suffix string) ([]cbor.Value, error) {
	return []cbor.Value{cbor.Text(strings.TrimPrefix(suffix, "//"))}, nil
}

func (urlCodec) Decode(parts []cbor.Value) (string, error) {
	if len(parts) != 1 {
		return "", fmt.Errorf("url codec: expected 1 part, got %d", len(parts))
	}
	rest, ok := parts[0].AsText()
	if !ok {
		return "", fmt.Errorf("url codec: expected text part")
	}
	return "//" + rest, nil
}
