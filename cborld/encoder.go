package cborld

import (
	"github.com/cborld/go-cborld/cbor"
	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/iricodec"
	"github.com/cborld/go-cborld/ldcontext"
	"github.com/cborld/go-cborld/tables"
	"github.com/cborld/go-cborld/typedcodec"
)

// encoder is the JSON-in, CBOR-out direction: map keys and @vocab
// values are strings on the way in, compact integers on the way out.
type encoder struct {
	allocator *idalloc.Allocator
	tables    tables.Tables
	codecs    *typedcodec.Registry
	iris      *iricodec.Registry
}

func (e *encoder) env(ac ldcontext.ActiveContext) *typedcodec.Env {
	return &typedcodec.Env{Allocator: e.allocator, IRIs: e.iris, Context: ac, Tables: e.tables}
}

func (e *encoder) contextIRIRef(v cbor.Value) (string, error) {
	text, ok := v.AsText()
	if !ok {
		return "", ErrInvalidContextEntry
	}
	return text, nil
}

func (e *encoder) contextID(_ cbor.Value, iriRef string) cbor.Value {
	if id, ok := e.tables.Context.Encode(iriRef); ok {
		return cbor.Uint(id)
	}
	return cbor.Text(iriRef)
}

func (e *encoder) termKey(term string, plural bool) (cbor.Value, error) {
	id, ok := e.allocator.EncodeTerm(term, plural)
	if !ok {
		return cbor.Value{}, &MissingIDForError{Term: term}
	}
	return cbor.Uint(id), nil
}

func (e *encoder) keyTerm(key, value cbor.Value) (string, bool, bool, error) {
	text, ok := key.AsText()
	if !ok {
		return "", false, false, ErrInvalidVocabTermKind
	}
	_, isArray := value.AsArray()
	return text, isArray, true, nil
}

func (e *encoder) valueTerm(_ ldcontext.ActiveContext, v cbor.Value) (string, error) {
	text, ok := v.AsText()
	if !ok {
		return "", ErrInvalidVocabTermKind
	}
	return text, nil
}

func (e *encoder) transformID(v cbor.Value) (cbor.Value, error) {
	text, ok := v.AsText()
	if !ok {
		return cbor.Value{}, ErrInvalidIDKind
	}
	codec, _ := e.codecs.Lookup("@id")
	out, err := codec.Encode(e.env(ldcontext.ActiveContext{}), text)
	if err != nil {
		return cbor.Value{}, &InvalidIDError{Value: text}
	}
	return out, nil
}

func (e *encoder) transformVocab(ac ldcontext.ActiveContext, v cbor.Value) (cbor.Value, error) {
	text, ok := v.AsText()
	if !ok {
		return cbor.Value{}, ErrInvalidVocabTermKind
	}
	codec, _ := e.codecs.Lookup("@vocab")
	out, err := codec.Encode(e.env(ac), text)
	if err != nil {
		return cbor.Value{}, &InvalidVocabTermError{Value: text}
	}
	return out, nil
}

func (e *encoder) transformTypedValue(ac ldcontext.ActiveContext, v cbor.Value, typeIRI string, hasType bool) (cbor.Value, bool, error) {
	if !hasType {
		return cbor.Value{}, false, nil
	}
	text, ok := v.AsText()
	if !ok {
		return cbor.Value{}, false, nil
	}

	if tt, ok := e.tables.TypeTable(typeIRI); ok {
		if id, found := tt.Encode(text); found {
			return cbor.Uint(id), true, nil
		}
		return cbor.Text(text), true, nil
	}

	codec, ok := e.codecs.Lookup(typeIRI)
	if !ok {
		return cbor.Value{}, false, nil
	}
	out, err := codec.Encode(e.env(ac), text)
	if err != nil {
		return cbor.Value{}, false, &CodecError{Name: typeIRI, Message: err.Error()}
	}
	return out, true, nil
}
