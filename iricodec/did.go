package iricodec

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"

	"github.com/cborld/go-cborld/cbor"
)

// base58DIDMethodCodec compresses "did:key:" and "did:v1:nym:" style
// suffixes, which are multibase strings optionally followed by a "#"
// fragment that is itself a multibase string (e.g. a verification
// method reference). Each part is multibase-decoded independently and
// carried as raw bytes; the multibase prefix character is discarded on
// encode and reconstructed (always as Base58btc, 'z') on decode.
type base58DIDMethodCodec struct{}

func (base58DIDMethodCodec) Encode(suffix string) ([]cbor.Value, error) {
	parts := strings.SplitN(suffix, "#", 2)
	out := make([]cbor.Value, 0, len(parts))
	for _, p := range parts {
		_, data, err := multibase.Decode(p)
		if err != nil {
			return nil, fmt.Errorf("did codec: %v", err)
		}
		out = append(out, cbor.Bytes(data))
	}
	return out, nil
}

func (base58DIDMethodCodec) Decode(parts []cbor.Value) (string, error) {
	if len(parts) == 0 || len(parts) > 2 {
		return "", fmt.Errorf("did codec: expected 1 or 2 parts, got %d", len(parts))
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		b, ok := p.AsBytes()
		if !ok {
			return "", fmt.Errorf("did codec: expected bytes part")
		}
		s, err := multibase.Encode(multibase.Base58BTC, b)
		if err != nil {
			return "", fmt.Errorf("did codec: %v", err)
		}
		strs[i] = s
	}
	return strings.Join(strs, "#"), nil
}
