package idalloc

import (
	"testing"

	"pgregory.net/rapid"
)

func TestKeywordLookup(t *testing.T) {
	a := New()
	id, ok := a.EncodeTerm("@type", false)
	if !ok || id != 2 {
		t.Fatalf("EncodeTerm(@type, false) = %d, %v, want 2, true", id, ok)
	}
	id, ok = a.EncodeTerm("@type", true)
	if !ok || id != 3 {
		t.Fatalf("EncodeTerm(@type, true) = %d, %v, want 3, true", id, ok)
	}
}

func TestAllocateFixedPoint(t *testing.T) {
	a := New()
	id1 := a.Allocate("Note")
	id2 := a.Allocate("Note")
	if id1 != id2 {
		t.Fatalf("allocate(Note) twice gave %d then %d", id1, id2)
	}
	if id1 < FirstCustomID {
		t.Fatalf("custom id %d below FirstCustomID %d", id1, FirstCustomID)
	}
	if id1%2 != 0 {
		t.Fatalf("allocated id %d is not even", id1)
	}
}

func TestDecodeTermParity(t *testing.T) {
	a := New()
	id := a.Allocate("content")
	term, plural, ok := a.DecodeTerm(id)
	if !ok || term != "content" || plural {
		t.Fatalf("DecodeTerm(%d) = %q, %v, %v, want content, false, true", id, term, plural, ok)
	}
	term, plural, ok = a.DecodeTerm(id + 1)
	if !ok || term != "content" || !plural {
		t.Fatalf("DecodeTerm(%d) = %q, %v, %v, want content, true, true", id+1, term, plural, ok)
	}
}

func TestAllocateTermsOrderIsDeterministic(t *testing.T) {
	a1 := New()
	a2 := New()
	terms := []string{"zebra", "apple", "@type", "mango"}
	a1.AllocateTerms(terms)
	a2.AllocateTerms(terms)
	for _, term := range terms {
		id1, ok1 := a1.EncodeTerm(term, false)
		id2, ok2 := a2.EncodeTerm(term, false)
		if ok1 != ok2 || id1 != id2 {
			t.Fatalf("term %q diverged: (%d,%v) vs (%d,%v)", term, id1, ok1, id2, ok2)
		}
	}
	appleID, _ := a1.EncodeTerm("apple", false)
	mangoID, _ := a1.EncodeTerm("mango", false)
	zebraID, _ := a1.EncodeTerm("zebra", false)
	if !(appleID < mangoID && mangoID < zebraID) {
		t.Fatalf("allocation order not lexicographic: apple=%d mango=%d zebra=%d", appleID, mangoID, zebraID)
	}
}

func TestAllocateSkipsKeywords(t *testing.T) {
	a := New()
	a.AllocateTerms([]string{"@vocab", "@type"})
	if _, ok := a.doc.forward["@vocab"]; ok {
		t.Fatal("AllocateTerms should not allocate a fresh id for a keyword")
	}
}

func TestUndefinedTermNotEncodable(t *testing.T) {
	a := New()
	if _, ok := a.EncodeTerm("neverDefined", false); ok {
		t.Fatal("expected EncodeTerm to fail for an undefined term")
	}
}

func TestAllocatorPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		terms := rapid.SliceOfDistinct(rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9]{0,12}`), func(s string) string { return s }).Draw(t, "terms")
		a := New()
		a.AllocateTerms(terms)
		for _, term := range terms {
			if IsKeyword(term) {
				continue
			}
			id, ok := a.EncodeTerm(term, false)
			if !ok {
				t.Fatalf("term %q not allocated", term)
			}
			if id%2 != 0 {
				t.Fatalf("term %q got odd singular id %d", term, id)
			}
			gotTerm, plural, ok := a.DecodeTerm(id)
			if !ok || gotTerm != term || plural {
				t.Fatalf("DecodeTerm(%d) = %q, %v, %v; want %q, false, true", id, gotTerm, plural, ok, term)
			}
		}
	})
}
