// Package cborld implements the bidirectional CBOR-LD transform: a
// context-aware traversal that walks a JSON-LD document (or its CBOR-LD
// counterpart) while maintaining a live JSON-LD active context,
// allocating compact integer IDs for every term the context defines,
// and dispatching typed values (IRIs, dates, multibase strings,
// cryptosuite names, …) to the typedcodec registry.
package cborld

import (
	"context"

	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/contextloader"
	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/jsonvalue"
	"github.com/cborld/go-cborld/ldcontext"
	"github.com/piprate/json-gold/ld"
)

// Encode compresses a JSON-LD document into its CBOR-LD wire form: a
// CBOR tag wrapping either the term-substituted, codec-compressed
// traversal of doc (the default), or doc re-encoded as CBOR verbatim
// when opts.Uncompressed is set. ctx bounds any remote context fetch
// opts.Loader performs.
func Encode(ctx context.Context, doc []byte, opts EncOptions) ([]byte, error) {
	value, err := jsonvalue.Parse(doc)
	if err != nil {
		return nil, err
	}

	if opts.Uncompressed {
		return cbor.Marshal(legacyEnvelope(false).wrap(value))
	}

	tableID, t, codecs, iris, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	allocator := idalloc.New()
	ac := ldcontext.New(documentLoader(ctx, opts.Loader))
	enc := &encoder{allocator: allocator, tables: t, codecs: codecs, iris: iris}
	eng := &engine{dir: enc, allocator: allocator}

	inner, err := eng.transform(ac, value)
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(envelope{registryID: tableID}.wrap(inner))
}

// Decode expands a CBOR-LD document back into JSON-LD. It reads the
// outer envelope to learn which compression-tables registry entry
// produced it (legacy mode 1 names tables.RegistryDefault; the registry
// form names its ID directly), looks that ID up in opts.Tables (the
// built-in registry when nil), then runs the inverse traversal.
func Decode(ctx context.Context, doc []byte, opts DecOptions) ([]byte, error) {
	raw, err := cbor.Unmarshal(doc)
	if err != nil {
		return nil, err
	}

	env, inner, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	if env.registryID == 0 {
		return jsonvalue.Marshal(inner)
	}

	t, codecs, iris, err := opts.resolve(env.registryID)
	if err != nil {
		return nil, err
	}

	allocator := idalloc.New()
	ac := ldcontext.New(documentLoader(ctx, opts.Loader))
	dec := &decoder{allocator: allocator, tables: t, codecs: codecs, iris: iris}
	eng := &engine{dir: dec, allocator: allocator}

	out, err := eng.transform(ac, inner)
	if err != nil {
		return nil, err
	}

	return jsonvalue.Marshal(out)
}

// documentLoader bridges an optional contextloader.Loader into the
// github.com/piprate/json-gold document loader ActiveContext needs.
// When no loader was configured it bridges an empty
// contextloader.MapLoader, so no remote context is ever fetched.
func documentLoader(ctx context.Context, loader contextloader.Loader) ld.DocumentLoader {
	if loader == nil {
		loader = contextloader.MapLoader{}
	}
	return contextloader.AsDocumentLoader(ctx, loader)
}
