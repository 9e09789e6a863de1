// Package tables implements the compression-tables registry: named
// bijections between well-known context IRIs (and, per type, well-known
// string values) and small integers, selected as a unit via a registry
// entry carried in the outer CBOR envelope.
package tables

// CryptosuiteTypeIRI is the type IRI under which cryptosuite-name type
// tables (and the generic cryptosuite typed-literal codec) are keyed.
const CryptosuiteTypeIRI = "https://w3id.org/security#cryptosuiteString"

// TypeTable is a bijection between string values and small integers,
// scoped to one JSON-LD type IRI.
type TypeTable struct {
	forward  map[string]uint64
	backward map[uint64]string
}

// NewTypeTable builds a TypeTable from a set of (value, id) pairs.
func NewTypeTable(pairs map[string]uint64) TypeTable {
	t := TypeTable{
		forward:  make(map[string]uint64, len(pairs)),
		backward: make(map[uint64]string, len(pairs)),
	}
	for v, id := range pairs {
		t.forward[v] = id
		t.backward[id] = v
	}
	return t
}

// Encode looks up the integer id for a value.
func (t TypeTable) Encode(value string) (uint64, bool) {
	id, ok := t.forward[value]
	return id, ok
}

// Decode looks up the value for an integer id.
func (t TypeTable) Decode(id uint64) (string, bool) {
	v, ok := t.backward[id]
	return v, ok
}

// ContextTable is a bijection between context IRI references and
// integer IDs.
type ContextTable struct {
	forward  map[string]uint64
	backward map[uint64]string
}

// NewContextTable builds a ContextTable from a set of (iri, id) pairs.
func NewContextTable(pairs map[string]uint64) ContextTable {
	t := ContextTable{
		forward:  make(map[string]uint64, len(pairs)),
		backward: make(map[uint64]string, len(pairs)),
	}
	for iri, id := range pairs {
		t.forward[iri] = id
		t.backward[id] = iri
	}
	return t
}

// Encode looks up the integer id for a context IRI reference.
func (t ContextTable) Encode(iri string) (uint64, bool) {
	id, ok := t.forward[iri]
	return id, ok
}

// Decode looks up the context IRI reference for an integer id.
func (t ContextTable) Decode(id uint64) (string, bool) {
	iri, ok := t.backward[id]
	return iri, ok
}

// Tables bundles a context table with zero or more per-type tables. A
// Registry selects one Tables value as a unit.
type Tables struct {
	Context ContextTable
	Types   map[string]TypeTable
}

// TypeTable returns the table registered for typeIRI, if any.
func (t Tables) TypeTable(typeIRI string) (TypeTable, bool) {
	tt, ok := t.Types[typeIRI]
	return tt, ok
}
