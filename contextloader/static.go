package contextloader

import "context"

// MapLoader is an offline-only loader backed by a fixed table of
// pre-fetched context documents, keyed by IRI. It never performs I/O.
type MapLoader map[string]interface{}

func (m MapLoader) Load(_ context.Context, iri string) (interface{}, error) {
	doc, ok := m[iri]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}
