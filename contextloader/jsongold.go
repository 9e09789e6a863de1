package contextloader

import (
	"context"
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// AsDocumentLoader adapts a Loader to github.com/piprate/json-gold's
// ld.DocumentLoader, so a JSON-LD context processor can dereference a
// remote "@context": "<iri>" entry through the same Loader that
// answers contextloader's own interface. ctx governs every fetch made
// through the adapter for the lifetime of one encode or decode call.
func AsDocumentLoader(ctx context.Context, loader Loader) ld.DocumentLoader {
	return &documentLoaderAdapter{ctx: ctx, loader: loader}
}

type documentLoaderAdapter struct {
	ctx    context.Context
	loader Loader
}

func (a *documentLoaderAdapter) LoadDocument(u string) (*ld.RemoteDocument, error) {
	doc, err := a.loader.Load(a.ctx, u)
	if err != nil {
		return nil, fmt.Errorf("go-cborld/contextloader: %s: %v", u, err)
	}
	return &ld.RemoteDocument{DocumentURL: u, Document: doc}, nil
}
