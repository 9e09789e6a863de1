package contextloader

import "context"

// ChainLoader queries every member loader for the same IRI in
// parallel and returns the first successful result, cancelling the
// rest — the same fan-out-then-take-first-success shape as fetching a
// hinted CID from several mirrors at once, generalized from "several
// hosts for one CID" to "several sources for one context IRI" (e.g. an
// offline override table checked alongside a live HTTP fetch).
//
// If every loader fails, ErrAllSourcesFailed is returned.
type ChainLoader []Loader

func (c ChainLoader) Load(ctx context.Context, iri string) (interface{}, error) {
	if len(c) == 0 {
		return nil, ErrAllSourcesFailed
	}

	type result struct {
		doc interface{}
		err error
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan result, len(c))
	for _, loader := range c {
		loader := loader
		go func() {
			doc, err := loader.Load(subCtx, iri)
			resultCh <- result{doc, err}
		}()
	}

	remaining := len(c)
	for remaining > 0 {
		r := <-resultCh
		remaining--
		if r.err == nil {
			return r.doc, nil
		}
	}
	return nil, ErrAllSourcesFailed
}
