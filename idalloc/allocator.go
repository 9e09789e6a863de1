package idalloc

import "sort"

// keywordMap is the process-wide keyword table, built once and shared
// read-only beneath every document-level Allocator.
var keywordMap = func() *IdMap {
	m := NewIdMap(nil)
	for term, id := range Keywords {
		m.Set(term, id)
	}
	return m
}()

// Allocator assigns term IDs for a single document. It layers a fresh,
// document-scoped IdMap on top of the shared keyword table: keyword
// lookups never touch the document map, and custom terms never collide
// with keywords because custom allocation always starts at
// FirstCustomID.
type Allocator struct {
	doc  *IdMap
	next uint64
}

// New creates an allocator for one encode or decode invocation. An
// allocator must not be reused across invocations or shared across
// goroutines.
func New() *Allocator {
	return &Allocator{
		doc:  NewIdMap(keywordMap),
		next: FirstCustomID,
	}
}

// EncodeTerm returns the compact ID for term, adjusted for plurality. It
// returns false if term has no allocation in any layer.
func (a *Allocator) EncodeTerm(term string, plural bool) (uint64, bool) {
	id, ok := a.doc.ID(term)
	if !ok {
		return 0, false
	}
	if plural {
		return id + 1, true
	}
	return id, true
}

// DecodeTerm resolves a compact ID back to its term and plurality. The
// parity rule: an even ID is singular, an odd ID is the plural form of
// the even ID immediately below it.
func (a *Allocator) DecodeTerm(id uint64) (term string, plural bool, ok bool) {
	singular := id
	if singular%2 != 0 {
		singular--
	}
	term, ok = a.doc.Term(singular)
	if !ok {
		return "", false, false
	}
	return term, singular != id, true
}

// Allocate assigns term an ID if it doesn't already have one, and
// returns the (possibly pre-existing) ID. It is idempotent: calling it
// twice for the same term returns the same ID both times.
func (a *Allocator) Allocate(term string) uint64 {
	if id, ok := a.doc.ID(term); ok {
		return id
	}
	id := a.next
	a.next += 2
	a.doc.Set(term, id)
	return id
}

// AllocateTerms allocates IDs for every term in terms that is not a
// JSON-LD keyword, in lexicographic order. This is the deterministic
// ordering rule that keeps encoder and decoder allocations in lockstep:
// both sides see the same active context after processing a @context
// entry, sort its defined terms the same way, and allocate in that
// order.
func (a *Allocator) AllocateTerms(terms []string) {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)
	for _, term := range sorted {
		if IsKeyword(term) {
			continue
		}
		a.Allocate(term)
	}
}
