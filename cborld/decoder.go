package cborld

import (
	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/iricodec"
	"github.com/cborld/go-cborld/ldcontext"
	"github.com/cborld/go-cborld/tables"
	"github.com/cborld/go-cborld/typedcodec"
)

// decoder is the CBOR-in, JSON-out direction: map keys and @vocab
// values are compact integers on the way in, strings on the way out.
type decoder struct {
	allocator *idalloc.Allocator
	tables    tables.Tables
	codecs    *typedcodec.Registry
	iris      *iricodec.Registry
}

func (d *decoder) env(ac ldcontext.ActiveContext) *typedcodec.Env {
	return &typedcodec.Env{Allocator: d.allocator, IRIs: d.iris, Context: ac, Tables: d.tables}
}

func (d *decoder) contextIRIRef(v cbor.Value) (string, error) {
	if id, ok := v.AsUint(); ok {
		iri, ok := d.tables.Context.Decode(id)
		if !ok {
			return "", &UndefinedCompressedContextError{ID: id}
		}
		return iri, nil
	}
	if text, ok := v.AsText(); ok {
		return text, nil
	}
	return "", ErrInvalidContextEntry
}

func (d *decoder) contextID(_ cbor.Value, iriRef string) cbor.Value {
	return cbor.Text(iriRef)
}

func (d *decoder) termKey(term string, _ bool) (cbor.Value, error) {
	return cbor.Text(term), nil
}

// keyTerm never hard-errors on shape: a key that isn't an unsigned
// integer, or one with no allocation, simply isn't a term (ok=false).
// Callers that require one (transformNode's entry-sort step) raise
// MissingTermForError themselves.
func (d *decoder) keyTerm(key, _ cbor.Value) (string, bool, bool, error) {
	id, ok := key.AsUint()
	if !ok {
		return "", false, false, nil
	}
	term, plural, ok := d.allocator.DecodeTerm(id)
	return term, plural, ok, nil
}

func (d *decoder) valueTerm(_ ldcontext.ActiveContext, v cbor.Value) (string, error) {
	if id, ok := v.AsUint(); ok {
		term, _, ok := d.allocator.DecodeTerm(id)
		if !ok {
			return "", &MissingTermForError{Key: v}
		}
		return term, nil
	}
	if text, ok := v.AsText(); ok {
		return text, nil
	}
	iri, err := d.iris.Decode(v)
	if err != nil {
		return "", &CodecError{Name: "@vocab", Message: err.Error()}
	}
	return iri, nil
}

func (d *decoder) transformID(v cbor.Value) (cbor.Value, error) {
	codec, _ := d.codecs.Lookup("@id")
	s, err := codec.Decode(d.env(ldcontext.ActiveContext{}), v)
	if err != nil {
		return cbor.Value{}, &CodecError{Name: "@id", Message: err.Error()}
	}
	return cbor.Text(s), nil
}

func (d *decoder) transformVocab(ac ldcontext.ActiveContext, v cbor.Value) (cbor.Value, error) {
	codec, _ := d.codecs.Lookup("@vocab")
	s, err := codec.Decode(d.env(ac), v)
	if err != nil {
		return cbor.Value{}, &CodecError{Name: "@vocab", Message: err.Error()}
	}
	return cbor.Text(s), nil
}

func (d *decoder) transformTypedValue(ac ldcontext.ActiveContext, v cbor.Value, typeIRI string, hasType bool) (cbor.Value, bool, error) {
	if _, isMap := v.AsMap(); isMap {
		return cbor.Value{}, false, nil
	}
	if !hasType {
		return cbor.Value{}, false, nil
	}

	if tt, ok := d.tables.TypeTable(typeIRI); ok {
		// The encoder carries values missing from the type table as text.
		if text, ok := v.AsText(); ok {
			return cbor.Text(text), true, nil
		}
		id, ok := v.AsUint()
		if !ok {
			return cbor.Value{}, false, ErrInvalidValue
		}
		text, ok := tt.Decode(id)
		if !ok {
			return cbor.Value{}, false, ErrInvalidValue
		}
		return cbor.Text(text), true, nil
	}

	codec, ok := d.codecs.Lookup(typeIRI)
	if !ok {
		return cbor.Value{}, false, nil
	}
	s, err := codec.Decode(d.env(ac), v)
	if err != nil {
		return cbor.Value{}, false, &CodecError{Name: typeIRI, Message: err.Error()}
	}
	return cbor.Text(s), true, nil
}
