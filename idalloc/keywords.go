package idalloc

// Keywords holds the fixed mapping from JSON-LD keywords to their
// reserved term IDs. IDs 0..99 are reserved for keywords; custom terms
// begin at FirstCustomID.
var Keywords = map[string]uint64{
	"@context":     0,
	"@type":        2,
	"@id":          4,
	"@value":       6,
	"@direction":   8,
	"@graph":       10,
	"@included":    12,
	"@index":       14,
	"@json":        16,
	"@language":    18,
	"@list":        20,
	"@nest":        22,
	"@reverse":     24,
	"@base":        26,
	"@container":   28,
	"@default":     30,
	"@embed":       32,
	"@explicit":    34,
	"@none":        36,
	"@omitDefault": 38,
	"@prefix":      40,
	"@preserve":    42,
	"@protected":   44,
	"@requireAll":  46,
	"@set":         48,
	"@version":     50,
	"@vocab":       52,
}

// FirstCustomID is the first term ID available for terms defined by a
// document's own active context.
const FirstCustomID uint64 = 100

// keywordsByID is the inverse of Keywords, built once at package init.
var keywordsByID = func() map[uint64]string {
	m := make(map[uint64]string, len(Keywords))
	for term, id := range Keywords {
		m[id] = term
	}
	return m
}()

// IsKeyword reports whether term is a reserved JSON-LD keyword.
func IsKeyword(term string) bool {
	_, ok := Keywords[term]
	return ok
}
