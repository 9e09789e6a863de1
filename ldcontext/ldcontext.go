// Package ldcontext wraps github.com/piprate/json-gold's active-context
// processing with the two extra pieces of bookkeeping the transformer
// needs: a per-term index of nested @context values (json-gold's own
// term definitions discard that key) and the full, sorted list of
// terms the resulting context defines, for term allocation.
//
// Remote context IRIs are dereferenced by json-gold during Apply,
// through the ld.DocumentLoader passed to New; with a nil loader,
// json-gold's own default document loader stays in place.
package ldcontext

import (
	"sort"

	"github.com/piprate/json-gold/ld"
)

var topLevelKeywords = map[string]bool{
	"@base": true, "@vocab": true, "@language": true,
	"@version": true, "@propagate": true, "@import": true,
	"@protected": true,
}

// ActiveContext is an immutable JSON-LD active context plus the side
// bookkeeping needed for CBOR-LD term allocation and @vocab CURIE
// resolution. Applying a local context to it returns a new value; the
// receiver is never mutated, so a caller can keep using a pre-Apply
// context for sibling values (the propagate:false behavior type-scoped
// contexts need) simply by not discarding it.
type ActiveContext struct {
	inner  *ld.Context
	nested map[string]interface{}
}

// New returns the empty active context. loader, if non-nil, is
// consulted whenever a local context passed to Apply names a remote
// IRI — github.com/piprate/json-gold dereferences it synchronously
// during Parse.
func New(loader ld.DocumentLoader) ActiveContext {
	opts := ld.NewJsonLdOptions("")
	if loader != nil {
		opts.DocumentLoader = loader
	}
	return ActiveContext{inner: ld.NewContext(nil, opts), nested: map[string]interface{}{}}
}

// Apply processes localContext against the receiver and returns the
// resulting context, along with every term it defines — including
// terms pulled in transitively from a remote context — sorted
// lexicographically and with context-level keywords (@vocab, @base,
// @version, …) excluded, for the caller to
// feed to an idalloc.Allocator. Allocation is idempotent, so handing
// it the full term set of the new context rather than just this
// call's additions is harmless and avoids needing to diff against the
// previous context.
func (ac ActiveContext) Apply(localContext interface{}) (ActiveContext, []string, error) {
	if localContext == nil {
		return ac, nil, nil
	}
	next, err := ac.inner.Parse(localContext)
	if err != nil {
		return ActiveContext{}, nil, err
	}
	nested := make(map[string]interface{}, len(ac.nested))
	for k, v := range ac.nested {
		nested[k] = v
	}
	terms := map[string]bool{}
	collectLocalContext(localContext, nested, terms)

	if serialized := next.Serialize(); serialized != nil {
		if ctxVal, ok := serialized["@context"].(map[string]interface{}); ok {
			for term := range ctxVal {
				if !topLevelKeywords[term] {
					terms[term] = true
				}
			}
		}
	}

	names := make([]string, 0, len(terms))
	for t := range terms {
		names = append(names, t)
	}
	sort.Strings(names)

	return ActiveContext{inner: next, nested: nested}, names, nil
}

// collectLocalContext walks a raw local context value — a single
// context object, or an array of them — recording every term it
// defines into terms, and updating nested with any per-term @context
// override the term definition object carries. A context given as an
// IRI string is not dereferenced here, so nested @context values inside
// a context fetched by IRI are not indexed and Context reports none for
// terms defined only there.
func collectLocalContext(raw interface{}, nested map[string]interface{}, terms map[string]bool) {
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			collectLocalContext(item, nested, terms)
		}
	case map[string]interface{}:
		for key, val := range v {
			if topLevelKeywords[key] || key == "@context" {
				continue
			}
			terms[key] = true
			def, isMap := val.(map[string]interface{})
			if !isMap {
				delete(nested, key)
				continue
			}
			if ctxVal, ok := def["@context"]; ok {
				nested[key] = ctxVal
			} else {
				delete(nested, key)
			}
		}
	}
}

// TermDefinition is the subset of a JSON-LD term definition the
// transformer and typed-literal codecs need.
type TermDefinition struct {
	raw           map[string]interface{}
	nestedContext interface{}
	hasNested     bool
}

// Get looks up a term's definition. ok is false both when the term is
// undefined and when it's explicitly mapped to null (ignored).
func (ac ActiveContext) Get(term string) (TermDefinition, bool) {
	raw := ac.inner.GetTermDefinition(term)
	if raw == nil {
		return TermDefinition{}, false
	}
	ctxVal, hasNested := ac.nested[term]
	return TermDefinition{raw: raw, nestedContext: ctxVal, hasNested: hasNested}, true
}

// ID returns the term's @id mapping (a full IRI or keyword).
func (d TermDefinition) ID() (string, bool) {
	v, ok := d.raw["@id"].(string)
	return v, ok
}

// Type returns the term's @type coercion, if any ("@id", "@vocab", or
// a full datatype IRI).
func (d TermDefinition) Type() (string, bool) {
	v, ok := d.raw["@type"].(string)
	return v, ok
}

// Container returns the term's @container mapping, if any.
func (d TermDefinition) Container() (string, bool) {
	v, ok := d.raw["@container"].(string)
	return v, ok
}

// Reverse reports whether the term is defined via @reverse.
func (d TermDefinition) Reverse() bool {
	v, _ := d.raw["@reverse"].(bool)
	return v
}

// Context returns the term's nested (type-scoped or property-scoped)
// @context value, if its definition carried one.
func (d TermDefinition) Context() (interface{}, bool) {
	return d.nestedContext, d.hasNested
}

// ExpandIRI expands a term or compact IRI to an absolute IRI using the
// active context's vocabulary and prefix mappings.
func (ac ActiveContext) ExpandIRI(value string, vocab bool) (string, error) {
	return ac.inner.ExpandIri(value, false, vocab, nil, nil)
}

// CompactIRI compacts an absolute IRI to a term or CURIE, if the
// active context defines one.
func (ac ActiveContext) CompactIRI(iri string) string {
	return ac.inner.CompactIri(iri, nil, true, false)
}

// ResolvePrefix answers whether prefix is a CURIE prefix defined in
// this context, and what it expands to. It satisfies
// typedcodec.PrefixResolver.
func (ac ActiveContext) ResolvePrefix(prefix string) (string, bool) {
	def, ok := ac.Get(prefix)
	if !ok {
		return "", false
	}
	id, ok := def.ID()
	if !ok || def.Reverse() {
		return "", false
	}
	return id, true
}
