package contextloader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var httpAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPLoader fetches a document over HTTP(S) and parses its JSON body.
// The returned value is the whole document, "@context" member and all
// — callers that need just the context value extract it themselves,
// the same way github.com/piprate/json-gold's own remote-context
// resolution does.
type HTTPLoader struct {
	Client *http.Client
}

func (h HTTPLoader) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return http.DefaultClient
}

func (h HTTPLoader) Load(ctx context.Context, iri string) (interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/ld+json, application/json")
	resp, err := h.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("go-cborld/contextloader: %s: unexpected status %d", iri, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := httpAPI.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("go-cborld/contextloader: %s: %v", iri, err)
	}
	return doc, nil
}
