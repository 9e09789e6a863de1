package tables

import "fmt"

// Registry entry IDs, as carried in the outer CBOR envelope. 0 is
// reserved by the envelope itself to mean "uncompressed" and is never a
// valid Registry lookup key. Default and VcBarcodes use the numbering
// from original_source/src/tables/registry.rs, which spec.md does not
// otherwise fix.
const (
	RegistryDefault    uint64 = 1
	RegistryVcBarcodes uint64 = 100
)

// UnknownTableError reports a registry ID with no known Tables value.
type UnknownTableError struct {
	ID uint64
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("tables: unknown registry id %d", e.ID)
}

// Registry resolves a registry ID to a Tables value. The zero Registry
// is empty but ready for Register; NewRegistry returns one already
// seeded with the built-in Default and VcBarcodes entries. Callers may
// register additional entries before first use.
type Registry struct {
	entries map[uint64]Tables
}

// NewRegistry returns a Registry seeded with the built-in Default and
// VcBarcodes entries.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[uint64]Tables)}
	r.Register(RegistryDefault, Default())
	r.Register(RegistryVcBarcodes, VcBarcodes())
	return r
}

// Register adds or replaces the Tables value for id.
func (r *Registry) Register(id uint64, t Tables) {
	if r.entries == nil {
		r.entries = make(map[uint64]Tables)
	}
	r.entries[id] = t
}

// Lookup resolves id to its Tables value, or an *UnknownTableError if id
// names no registered entry.
func (r *Registry) Lookup(id uint64) (Tables, error) {
	t, ok := r.entries[id]
	if !ok {
		return Tables{}, &UnknownTableError{ID: id}
	}
	return t, nil
}
