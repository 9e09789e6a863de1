package typedcodec

import (
	"fmt"

	"github.com/multiformats/go-multibase"

	"github.com/cborld/go-cborld/cbor"
)

// multibaseCodec compresses a multibase string by decoding its payload
// and prepending the literal ASCII byte of its base-code prefix
// character (e.g. 'z' = 0x7A for Base58btc), rather than carrying the
// full text form.
type multibaseCodec struct{}

func (multibaseCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if len(value) == 0 {
		return cbor.Value{}, fmt.Errorf("multibase codec: empty value")
	}
	baseByte := value[0]
	_, data, err := multibase.Decode(value)
	if err != nil {
		return cbor.Value{}, fmt.Errorf("multibase codec: %v", err)
	}
	out := make([]byte, 0, len(data)+1)
	out = append(out, baseByte)
	out = append(out, data...)
	return cbor.Bytes(out), nil
}

func (multibaseCodec) Decode(env *Env, value cbor.Value) (string, error) {
	b, ok := value.AsBytes()
	if !ok || len(b) < 1 {
		return "", fmt.Errorf("multibase codec: expected non-empty bytes")
	}
	s, err := multibase.Encode(multibase.Encoding(b[0]), b[1:])
	if err != nil {
		return "", fmt.Errorf("multibase codec: %v", err)
	}
	return s, nil
}
