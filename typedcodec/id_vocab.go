package typedcodec

import (
	"fmt"
	"strings"

	"github.com/cborld/go-cborld/cbor"
)

// idCodec implements the @id typed-literal codec: it's a thin pass
// through to the IRI codec registry.
type idCodec struct{}

func (idCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if env.IRIs == nil {
		return cbor.Text(value), nil
	}
	return env.IRIs.Encode(value)
}

func (idCodec) Decode(env *Env, value cbor.Value) (string, error) {
	if env.IRIs == nil {
		text, ok := value.AsText()
		if !ok {
			return "", fmt.Errorf("@id codec: expected text")
		}
		return text, nil
	}
	return env.IRIs.Decode(value)
}

// vocabCodec implements the @vocab typed-literal codec: allocator term
// lookup first, then CURIE-prefix expansion, then the IRI codec
// registry (which itself falls back to plain text for anything it
// doesn't recognize).
type vocabCodec struct{}

func (vocabCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if env.Allocator != nil {
		if id, ok := env.Allocator.EncodeTerm(value, false); ok {
			return cbor.Uint(id), nil
		}
	}

	candidate := value
	if idx := strings.IndexByte(value, ':'); idx >= 0 && env.Context != nil {
		prefix, suffix := value[:idx], value[idx+1:]
		if iri, isPrefix := env.Context.ResolvePrefix(prefix); isPrefix {
			candidate = iri + suffix
		}
	}

	if env.IRIs == nil {
		return cbor.Text(candidate), nil
	}
	return env.IRIs.Encode(candidate)
}

func (vocabCodec) Decode(env *Env, value cbor.Value) (string, error) {
	if id, ok := value.AsUint(); ok {
		if env.Allocator == nil {
			return "", fmt.Errorf("@vocab codec: no allocator to resolve term id %d", id)
		}
		term, _, ok := env.Allocator.DecodeTerm(id)
		if !ok {
			return "", fmt.Errorf("@vocab codec: undefined compressed term %d", id)
		}
		return term, nil
	}
	if text, ok := value.AsText(); ok {
		return text, nil
	}
	if _, ok := value.AsArray(); ok {
		if env.IRIs == nil {
			return "", fmt.Errorf("@vocab codec: no IRI registry to decode array form")
		}
		return env.IRIs.Decode(value)
	}
	return "", fmt.Errorf("@vocab codec: unsupported value kind %d", value.Kind())
}
