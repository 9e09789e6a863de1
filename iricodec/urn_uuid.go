package iricodec

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cborld/go-cborld/cbor"
)

// urnUUIDCodec compresses "urn:uuid:<uuid>" by storing the 16 raw UUID
// bytes instead of the 36-character canonical string form.
type urnUUIDCodec struct{}

func (urnUUIDCodec) Encode(suffix string) ([]cbor.Value, error) {
	id, err := uuid.Parse(suffix)
	if err != nil {
		return nil, fmt.Errorf("urn:uuid codec: %v", err)
	}
	b := id[:]
	return []cbor.Value{cbor.Bytes(b)}, nil
}

func (urnUUIDCodec) Decode(parts []cbor.Value) (string, error) {
	if len(parts) != 1 {
		return "", fmt.Errorf("urn:uuid codec: expected 1 part, got %d", len(parts))
	}
	b, ok := parts[0].AsBytes()
	if !ok {
		return "", fmt.Errorf("urn:uuid codec: expected bytes part")
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", fmt.Errorf("urn:uuid codec: %v", err)
	}
	return id.String(), nil
}
