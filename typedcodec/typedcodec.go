// Package typedcodec implements the typed-literal codec registry: an
// IRI-keyed set of codecs (plus the two pseudo-types @id and @vocab)
// that compress typed JSON-LD values — IRIs, dates, multibase strings,
// cryptosuite names — into compact CBOR.
package typedcodec

import (
	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/iricodec"
	"github.com/cborld/go-cborld/tables"

	"github.com/cborld/go-cborld/cbor"
)

const (
	XsdDateIRI     = "http://www.w3.org/2001/XMLSchema#date"
	XsdDateTimeIRI = "http://www.w3.org/2001/XMLSchema#dateTime"
	MultibaseIRI   = "https://w3id.org/security#multibase"
)

// PrefixResolver answers whether a short name is a CURIE prefix defined
// in the active context, and what it expands to. ldcontext.ActiveContext
// implements this; it is declared here, narrowly, so typedcodec doesn't
// need to import ldcontext just for this one query.
type PrefixResolver interface {
	ResolvePrefix(prefix string) (iri string, isPrefix bool)
}

// Env bundles everything a typed-literal codec might need beyond the
// bare value: the term allocator (for @vocab), the IRI codec registry
// (for @id and @vocab), the active context's CURIE prefixes (for
// @vocab), and the currently selected compression tables (for codecs,
// like cryptosuite, that consult a per-registry type table before
// falling back to their built-in one).
type Env struct {
	Allocator *idalloc.Allocator
	IRIs      *iricodec.Registry
	Context   PrefixResolver
	Tables    tables.Tables
}

// Codec compresses and decompresses one typed-literal shape.
type Codec interface {
	Encode(env *Env, value string) (cbor.Value, error)
	Decode(env *Env, value cbor.Value) (string, error)
}

// Registry maps a JSON-LD type indicator (a type IRI, or the
// pseudo-types "@id"/"@vocab") to the codec that handles it.
type Registry struct {
	byType map[string]Codec
}

// NewRegistry returns a Registry with every built-in codec registered.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Codec)}
	r.Register("@id", idCodec{})
	r.Register("@vocab", vocabCodec{})
	r.Register(MultibaseIRI, multibaseCodec{})
	r.Register(XsdDateIRI, xsdDateCodec{})
	r.Register(XsdDateTimeIRI, xsdDateTimeCodec{})
	r.Register(tables.CryptosuiteTypeIRI, cryptosuiteCodec{})
	return r
}

// Register adds or replaces the codec for typeIRI.
func (r *Registry) Register(typeIRI string, codec Codec) {
	if r.byType == nil {
		r.byType = make(map[string]Codec)
	}
	r.byType[typeIRI] = codec
}

// Lookup returns the codec registered for typeIRI, if any.
func (r *Registry) Lookup(typeIRI string) (Codec, bool) {
	c, ok := r.byType[typeIRI]
	return c, ok
}
