package cborld

import (
	"sort"

	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/ldcontext"
)

// engine drives the traversal shared by encode and decode. All of the
// direction-specific behavior lives behind dir; engine itself only
// knows how to walk a node object and allocate term IDs along the way.
type engine struct {
	dir       direction
	allocator *idalloc.Allocator
}

// transform requires v to be a node object and walks it. It's the
// entry point for the whole document and for recursion into array
// elements: an array nested inside a property's value is expected to
// hold node objects, not further scalars.
func (e *engine) transform(ac ldcontext.ActiveContext, v cbor.Value) (cbor.Value, error) {
	obj, ok := v.AsMap()
	if !ok {
		return cbor.Value{}, ErrExpectedNodeObject
	}
	result, err := e.transformNode(ac, obj)
	if err != nil {
		return cbor.Value{}, err
	}
	return cbor.MapOf(result), nil
}

// transformNode implements the seven-step traversal: locate and
// process @context, collect and apply type-scoped contexts, then
// process every remaining entry against the resulting active context.
func (e *engine) transformNode(ac ldcontext.ActiveContext, obj cbor.Map) (cbor.Map, error) {
	result := make(cbor.Map, 0, len(obj))

	// Step 1-2: find and process @context.
	var contextEntry *cbor.Entry
	for i := range obj {
		term, _, ok, err := e.dir.keyTerm(obj[i].Key, obj[i].Value)
		if err != nil {
			return nil, err
		}
		if !ok || term != "@context" {
			continue
		}
		if contextEntry != nil {
			return nil, &DuplicateEntryError{Term: "@context"}
		}
		entry := obj[i]
		contextEntry = &entry
	}

	if contextEntry != nil {
		_, plural, _, _ := e.dir.keyTerm(contextEntry.Key, contextEntry.Value)
		outKey, err := e.dir.termKey("@context", plural)
		if err != nil {
			return nil, err
		}
		outVal, newAC, err := e.processGlobalContext(ac, contextEntry.Value)
		if err != nil {
			return nil, err
		}
		ac = newAC
		result = append(result, cbor.Entry{Key: outKey, Value: outVal})
	}

	// Step 3: collect @type values.
	var types []string
	for _, entry := range obj {
		term, plural, ok, err := e.dir.keyTerm(entry.Key, entry.Value)
		if err != nil {
			return nil, err
		}
		if !ok || !isAlias(ac, term, "@type") {
			continue
		}
		for _, tv := range forceArray(entry.Value, plural) {
			t, err := e.dir.valueTerm(ac, tv)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}
	sort.Strings(types)

	// Step 4: apply type-scoped contexts, in sorted type order.
	for _, ty := range types {
		def, ok := ac.Get(ty)
		if !ok {
			continue
		}
		nestedCtx, hasNested := def.Context()
		if !hasNested {
			continue
		}
		newAC, err := e.processContext(ac, nestedCtx)
		if err != nil {
			return nil, err
		}
		ac = newAC
	}

	// Step 5: sort the remaining entries by term name.
	type sortedEntry struct {
		term   string
		plural bool
		def    ldcontext.TermDefinition
		hasDef bool
		outKey cbor.Value
		value  cbor.Value
	}
	entries := make([]sortedEntry, 0, len(obj))
	seen := make(map[string]bool, len(obj))
	for _, entry := range obj {
		term, plural, ok, err := e.dir.keyTerm(entry.Key, entry.Value)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &MissingTermForError{Key: entry.Key}
		}
		if term == "@context" {
			continue
		}
		if seen[term] {
			return nil, &DuplicateEntryError{Term: term}
		}
		seen[term] = true
		def, hasDef := ac.Get(term)
		outKey, err := e.dir.termKey(term, plural)
		if err != nil {
			if !hasDef {
				return nil, &UndefinedTermError{Term: term}
			}
			return nil, err
		}
		entries = append(entries, sortedEntry{term, plural, def, hasDef, outKey, entry.Value})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].term < entries[j].term })

	// Step 6: process each entry against the (possibly type-scoped)
	// active context.
	for _, se := range entries {
		if isAliasOfDef(se.term, se.def, se.hasDef, "@id") {
			outVal, err := e.dir.transformID(se.value)
			if err != nil {
				return nil, err
			}
			result = append(result, cbor.Entry{Key: se.outKey, Value: outVal})
			continue
		}

		if isAliasOfDef(se.term, se.def, se.hasDef, "@type") {
			outVal, err := e.transformTypeValue(ac, se.value, se.plural)
			if err != nil {
				return nil, err
			}
			result = append(result, cbor.Entry{Key: se.outKey, Value: outVal})
			continue
		}

		if !se.hasDef {
			return nil, &UndefinedTermError{Term: se.term}
		}

		propertyCtx := ac
		if nestedCtx, hasNested := se.def.Context(); hasNested {
			newCtx, err := e.processContext(ac, nestedCtx)
			if err != nil {
				return nil, err
			}
			propertyCtx = newCtx
		}

		typeIRI, hasType := se.def.Type()
		values := forceArray(se.value, se.plural)
		outValues := make([]cbor.Value, len(values))
		for i, v := range values {
			outVal, handled, err := e.dir.transformTypedValue(ac, v, typeIRI, hasType)
			if err != nil {
				return nil, err
			}
			if !handled {
				outVal, err = e.transformObject(propertyCtx, v)
				if err != nil {
					return nil, err
				}
			}
			outValues[i] = outVal
		}

		var outVal cbor.Value
		if se.plural {
			outVal = cbor.ArrayOf(outValues)
		} else {
			outVal = outValues[0]
		}
		result = append(result, cbor.Entry{Key: se.outKey, Value: outVal})
	}

	// Step 7: final emit, sorted by actual output key.
	sort.SliceStable(result, func(i, j int) bool { return lessKey(result[i].Key, result[j].Key) })
	return result, nil
}

// transformTypeValue handles an @type-aliased entry's value:
// transform_vocab applied element-wise when plural, a scalar
// otherwise.
func (e *engine) transformTypeValue(ac ldcontext.ActiveContext, value cbor.Value, plural bool) (cbor.Value, error) {
	if !plural {
		return e.dir.transformVocab(ac, value)
	}
	arr, ok := value.AsArray()
	if !ok {
		return cbor.Value{}, ErrInvalidVocabTermKind
	}
	out := make([]cbor.Value, len(arr))
	for i, v := range arr {
		outVal, err := e.dir.transformVocab(ac, v)
		if err != nil {
			return cbor.Value{}, err
		}
		out[i] = outVal
	}
	return cbor.ArrayOf(out), nil
}

// transformObject is the base case: node objects recurse through
// transform, arrays recurse element-wise through transform (so array
// elements are themselves expected to be node objects), and every
// other primitive passes through unchanged.
func (e *engine) transformObject(ac ldcontext.ActiveContext, v cbor.Value) (cbor.Value, error) {
	switch v.Kind() {
	case cbor.KindArray:
		arr, _ := v.AsArray()
		out := make([]cbor.Value, len(arr))
		for i, item := range arr {
			outVal, err := e.transform(ac, item)
			if err != nil {
				return cbor.Value{}, err
			}
			out[i] = outVal
		}
		return cbor.ArrayOf(out), nil
	case cbor.KindMap:
		return e.transform(ac, v)
	default:
		return v, nil
	}
}

// processGlobalContext processes an @context entry's value, which may
// be a single context reference or an array of them threaded through
// in order.
func (e *engine) processGlobalContext(ac ldcontext.ActiveContext, contextValue cbor.Value) (cbor.Value, ldcontext.ActiveContext, error) {
	if arr, ok := contextValue.AsArray(); ok {
		items := make([]cbor.Value, len(arr))
		cur := ac
		for i, entry := range arr {
			outVal, newAC, err := e.processGlobalContextEntry(cur, entry)
			if err != nil {
				return cbor.Value{}, ldcontext.ActiveContext{}, err
			}
			cur = newAC
			items[i] = outVal
		}
		return cbor.ArrayOf(items), cur, nil
	}
	return e.processGlobalContextEntry(ac, contextValue)
}

func (e *engine) processGlobalContextEntry(ac ldcontext.ActiveContext, contextValue cbor.Value) (cbor.Value, ldcontext.ActiveContext, error) {
	iriRef, err := e.dir.contextIRIRef(contextValue)
	if err != nil {
		return cbor.Value{}, ldcontext.ActiveContext{}, err
	}
	outVal := e.dir.contextID(contextValue, iriRef)
	newAC, err := e.processContext(ac, iriRef)
	if err != nil {
		return cbor.Value{}, ldcontext.ActiveContext{}, err
	}
	return outVal, newAC, nil
}

// processContext applies localContext (a bare IRI reference, a nested
// context object, or an array of either) to ac and allocates term IDs
// for every term the result defines, in lexicographic order.
// Re-allocating an already-known term is harmless; idalloc.Allocator
// is idempotent.
func (e *engine) processContext(ac ldcontext.ActiveContext, localContext interface{}) (ldcontext.ActiveContext, error) {
	newAC, terms, err := ac.Apply(localContext)
	if err != nil {
		return ldcontext.ActiveContext{}, &ContextProcessingError{Err: err}
	}
	e.allocator.AllocateTerms(terms)
	return newAC, nil
}

// forceArray lifts value to a slice: its elements if plural and it's
// actually an array, or a single-element slice otherwise.
func forceArray(value cbor.Value, plural bool) []cbor.Value {
	if plural {
		if arr, ok := value.AsArray(); ok {
			return arr
		}
	}
	return []cbor.Value{value}
}

// isAlias reports whether term is keyword itself or is defined in ac
// as an alias of it (its @id mapping is the keyword literally).
func isAlias(ac ldcontext.ActiveContext, term, keyword string) bool {
	if term == keyword {
		return true
	}
	def, ok := ac.Get(term)
	return isAliasOfDef(term, def, ok, keyword)
}

func isAliasOfDef(term string, def ldcontext.TermDefinition, hasDef bool, keyword string) bool {
	if term == keyword {
		return true
	}
	if !hasDef {
		return false
	}
	id, ok := def.ID()
	return ok && id == keyword
}
