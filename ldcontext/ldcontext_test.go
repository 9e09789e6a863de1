package ldcontext

import "testing"

func TestApplyReportsNewlyDefinedTermsSorted(t *testing.T) {
	ac := New(nil)
	_, terms, err := ac.Apply(map[string]interface{}{
		"@vocab": "https://example.com/",
		"name":   "https://schema.org/name",
		"age":    "https://schema.org/age",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(terms) != 2 || terms[0] != "age" || terms[1] != "name" {
		t.Fatalf("got %v, want [age name]", terms)
	}
}

func TestApplyTracksNestedContextPerTerm(t *testing.T) {
	ac := New(nil)
	next, _, err := ac.Apply(map[string]interface{}{
		"@vocab": "https://example.com/",
		"Thing": map[string]interface{}{
			"@id": "https://schema.org/Thing",
			"@context": map[string]interface{}{
				"nickname": "https://schema.org/nickname",
			},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	def, ok := next.Get("Thing")
	if !ok {
		t.Fatalf("expected Thing to be defined")
	}
	ctx, hasNested := def.Context()
	if !hasNested {
		t.Fatalf("expected Thing to carry a nested context")
	}
	m, ok := ctx.(map[string]interface{})
	if !ok || m["nickname"] != "https://schema.org/nickname" {
		t.Fatalf("got %+v", ctx)
	}
}

func TestApplyIsImmutable(t *testing.T) {
	base := New(nil)
	extended, _, err := base.Apply(map[string]interface{}{
		"@vocab": "https://example.com/",
		"name":   "https://schema.org/name",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := base.Get("name"); ok {
		t.Fatalf("base context should be unaffected by Apply")
	}
	if _, ok := extended.Get("name"); !ok {
		t.Fatalf("extended context should define name")
	}
}

func TestResolvePrefixUsesTermIDMapping(t *testing.T) {
	ac := New(nil)
	next, _, err := ac.Apply(map[string]interface{}{
		"schema": "https://schema.org/",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	iri, ok := next.ResolvePrefix("schema")
	if !ok || iri != "https://schema.org/" {
		t.Fatalf("got (%q, %v), want (https://schema.org/, true)", iri, ok)
	}
	if _, ok := next.ResolvePrefix("nope"); ok {
		t.Fatalf("expected unknown prefix to resolve false")
	}
}

func TestGetReportsUndefinedAndNulledTerms(t *testing.T) {
	ac := New(nil)
	next, _, err := ac.Apply(map[string]interface{}{
		"name":   "https://schema.org/name",
		"ignore": nil,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := next.Get("doesNotExist"); ok {
		t.Fatalf("expected undefined term to report false")
	}
	if _, ok := next.Get("ignore"); ok {
		t.Fatalf("expected null-mapped term to report false")
	}
}
