package cborld

import (
	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/ldcontext"
)

// direction supplies the handful of operations that differ between
// encoding (JSON shape in, CBOR shape out) and decoding (CBOR shape
// in, JSON shape out). Both shapes are represented by the same
// cbor.Value tree — jsonvalue.Parse and jsonvalue.Marshal already do
// the JSON<->cbor.Value bridging at the edges — so, unlike the
// generic Input/Output type parameters a literal port would need,
// direction's hooks all operate on one concrete value type. engine's
// traversal (transformNode, transformObject) is written once and
// shared by both concrete directions.
type direction interface {
	// contextIRIRef extracts an IRI reference from a value appearing
	// inside an @context entry.
	contextIRIRef(v cbor.Value) (string, error)
	// contextID produces the output-side representation of a context
	// reference, given the original entry value and its resolved IRI.
	contextID(v cbor.Value, iriRef string) cbor.Value
	// termKey produces the output key for a term.
	termKey(term string, plural bool) (cbor.Value, error)
	// keyTerm resolves an input (key, value) pair to the term and
	// plurality it denotes. ok is false when the key carries no term
	// information at all (not even a malformed one).
	keyTerm(key, value cbor.Value) (term string, plural bool, ok bool, err error)
	// valueTerm resolves an input value appearing in @type position to
	// the term string it denotes.
	valueTerm(ac ldcontext.ActiveContext, v cbor.Value) (string, error)
	// transformID dispatches the @id codec.
	transformID(v cbor.Value) (cbor.Value, error)
	// transformVocab dispatches the @vocab codec.
	transformVocab(ac ldcontext.ActiveContext, v cbor.Value) (cbor.Value, error)
	// transformTypedValue attempts a typed-literal codec for v given
	// its property's declared type. ok is false when no table or codec
	// claims the type (or v isn't eligible), meaning the caller should
	// fall back to transformObject.
	transformTypedValue(ac ldcontext.ActiveContext, v cbor.Value, typeIRI string, hasType bool) (out cbor.Value, ok bool, err error)
}

// lessKey orders two already-transformed output keys. Encoded keys are
// always unsigned integers, compared numerically; decoded keys are
// always text, compared lexicographically.
func lessKey(a, b cbor.Value) bool {
	if au, ok := a.AsUint(); ok {
		bu, _ := b.AsUint()
		return au < bu
	}
	at, _ := a.AsText()
	bt, _ := b.AsText()
	return at < bt
}
