// Package contextloader supplies concrete implementations of the
// context loader the JSON-LD context processor consults whenever a
// local context names a remote IRI: load(iri) -> document or error.
package contextloader

import (
	"context"
	"errors"
)

// ErrAllSourcesFailed is returned by ChainLoader when every candidate
// loader fails for the requested IRI.
var ErrAllSourcesFailed = errors.New("go-cborld/contextloader: all sources failed")

// ErrNotFound is returned by MapLoader for an IRI it has no document
// for.
var ErrNotFound = errors.New("go-cborld/contextloader: context not found")

// Loader resolves a context IRI to its parsed JSON document: the whole
// document, "@context" member and all. AsDocumentLoader hands that
// document to github.com/piprate/json-gold, which extracts the
// "@context" value itself.
type Loader interface {
	Load(ctx context.Context, iri string) (interface{}, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context, iri string) (interface{}, error)

func (f LoaderFunc) Load(ctx context.Context, iri string) (interface{}, error) {
	return f(ctx, iri)
}
