package cborld

import (
	"github.com/cborld/go-cborld/contextloader"
	"github.com/cborld/go-cborld/iricodec"
	"github.com/cborld/go-cborld/tables"
	"github.com/cborld/go-cborld/typedcodec"
)

// EncOptions configures Encode. The zero value encodes with the
// built-in Default compression tables, the built-in IRI and
// typed-literal codec registries, and no remote context loader, so no
// "@context" reference can be dereferenced and no network I/O happens.
type EncOptions struct {
	// TableID selects the compression-tables registry entry (see
	// tables.RegistryDefault, tables.RegistryVcBarcodes). Zero means
	// tables.RegistryDefault.
	TableID uint64
	// Uncompressed, when true, skips term allocation and codec
	// dispatch entirely: the document is re-encoded as CBOR verbatim,
	// per the envelope's "registry id 0" convention.
	Uncompressed bool
	// Loader dereferences remote "@context" string references. Nil
	// means every such reference fails with a ContextProcessingError.
	Loader contextloader.Loader
	// Tables overrides the registry lookup with an explicit value,
	// bypassing TableID.
	Tables *tables.Registry
	// Codecs overrides the default typed-literal codec registry.
	Codecs *typedcodec.Registry
	// IRIs overrides the default IRI codec registry.
	IRIs *iricodec.Registry
}

func (o EncOptions) resolve() (uint64, tables.Tables, *typedcodec.Registry, *iricodec.Registry, error) {
	return resolveCommon(o.TableID, o.Tables, o.Codecs, o.IRIs)
}

// DecOptions configures Decode. Its fields mirror EncOptions, without
// a table ID or mode: the envelope of the document being decoded names
// its registry ID, which is looked up in Tables (the built-in registry
// when nil).
type DecOptions struct {
	Loader contextloader.Loader
	Tables *tables.Registry
	Codecs *typedcodec.Registry
	IRIs   *iricodec.Registry
}

func resolveCommon(tableID uint64, tableRegistry *tables.Registry, codecs *typedcodec.Registry, iris *iricodec.Registry) (uint64, tables.Tables, *typedcodec.Registry, *iricodec.Registry, error) {
	if tableID == 0 {
		tableID = tables.RegistryDefault
	}
	reg := tableRegistry
	if reg == nil {
		reg = tables.NewRegistry()
	}
	t, err := reg.Lookup(tableID)
	if err != nil {
		return 0, tables.Tables{}, nil, nil, err
	}
	c := codecs
	if c == nil {
		c = typedcodec.NewRegistry()
	}
	ir := iris
	if ir == nil {
		ir = iricodec.NewRegistry()
	}
	return tableID, t, c, ir, nil
}

func (o DecOptions) resolve(registryID uint64) (tables.Tables, *typedcodec.Registry, *iricodec.Registry, error) {
	_, t, c, ir, err := resolveCommon(registryID, o.Tables, o.Codecs, o.IRIs)
	return t, c, ir, err
}
