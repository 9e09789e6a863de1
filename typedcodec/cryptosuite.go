package typedcodec

import (
	"fmt"

	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/tables"
)

// globalCryptosuites is the process-wide cryptosuite name table. When a
// registry entry (e.g. VcBarcodes) supplies its own, smaller,
// locally-scoped table via Env.Tables, that one takes priority over
// this fallback table.
var globalCryptosuites = tables.NewTypeTable(map[string]uint64{
	"ecdsa-rdfc-2019": 0x34,
	"ecdsa-sd-2023":   0x35,
	"eddsa-rdfc-2022": 0x36,
})

// cryptosuiteCodec compresses known data-integrity cryptosuite names
// into a small integer; unknown names fall through to plain text.
type cryptosuiteCodec struct{}

func (cryptosuiteCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if tt, ok := env.Tables.TypeTable(tables.CryptosuiteTypeIRI); ok {
		if id, ok := tt.Encode(value); ok {
			return cbor.Uint(id), nil
		}
	}
	if id, ok := globalCryptosuites.Encode(value); ok {
		return cbor.Uint(id), nil
	}
	return cbor.Text(value), nil
}

func (cryptosuiteCodec) Decode(env *Env, value cbor.Value) (string, error) {
	if text, ok := value.AsText(); ok {
		return text, nil
	}
	id, ok := value.AsUint()
	if !ok {
		return "", fmt.Errorf("cryptosuite codec: unsupported value kind %d", value.Kind())
	}
	if tt, ok := env.Tables.TypeTable(tables.CryptosuiteTypeIRI); ok {
		if name, ok := tt.Decode(id); ok {
			return name, nil
		}
	}
	if name, ok := globalCryptosuites.Decode(id); ok {
		return name, nil
	}
	return "", fmt.Errorf("cryptosuite codec: unknown suite id %d", id)
}
