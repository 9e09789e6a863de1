package cborld

import (
	"fmt"

	"github.com/cborld/go-cborld/cbor"
)

// Sentinel errors for failure kinds that carry no data beyond their
// name.
var (
	ErrNotCborLd            = fmt.Errorf("cborld: not CBOR-LD")
	ErrExpectedNodeObject   = fmt.Errorf("cborld: expected node object")
	ErrInvalidIDKind        = fmt.Errorf("cborld: node id must be a string")
	ErrInvalidVocabTermKind = fmt.Errorf("cborld: invalid vocabulary term value")
	ErrNonFiniteFloat       = fmt.Errorf("cborld: non-finite float")
	ErrInvalidValue         = fmt.Errorf("cborld: invalid value")
	ErrInvalidContextEntry  = fmt.Errorf("cborld: invalid JSON-LD context entry")
)

// UndefinedCompressedContextError reports a decoder encountering a
// compressed context-table ID with no matching entry in the selected
// tables.
type UndefinedCompressedContextError struct {
	ID uint64
}

func (e *UndefinedCompressedContextError) Error() string {
	return fmt.Sprintf("cborld: undefined compressed context id %d", e.ID)
}

// UnsupportedCompressionModeError reports an envelope whose legacy mode
// byte names neither 0 (uncompressed) nor 1 (compressed), or whose
// registry-form ID is 128 or above (reserved).
type UnsupportedCompressionModeError struct {
	Mode uint64
}

func (e *UnsupportedCompressionModeError) Error() string {
	return fmt.Sprintf("cborld: unsupported compression mode %d", e.Mode)
}

// DuplicateEntryError reports a node object carrying two entries that
// both resolve to the same term.
type DuplicateEntryError struct {
	Term string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("cborld: duplicate entry for %q", e.Term)
}

// ContextProcessingError wraps a failure from the underlying JSON-LD
// context processor.
type ContextProcessingError struct {
	Err error
}

func (e *ContextProcessingError) Error() string {
	return fmt.Sprintf("cborld: context processing failed: %v", e.Err)
}

// MissingTermForError reports a decoder encountering a map key with no
// matching term allocation.
type MissingTermForError struct {
	Key cbor.Value
}

func (e *MissingTermForError) Error() string {
	if id, ok := e.Key.AsUint(); ok {
		return fmt.Sprintf("cborld: no term allocated for id %d", id)
	}
	return "cborld: no term allocated for map key"
}

// UndefinedTermError reports an encoder encountering a string key with
// no definition in the active context.
type UndefinedTermError struct {
	Term string
}

func (e *UndefinedTermError) Error() string {
	return fmt.Sprintf("cborld: undefined term %q", e.Term)
}

// InvalidIDError reports an @id value that failed IRI parsing or
// codec encoding.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("cborld: invalid node id %q", e.Value)
}

// InvalidVocabTermError reports an @vocab-typed value that could not be
// resolved to a term or IRI.
type InvalidVocabTermError struct {
	Value string
}

func (e *InvalidVocabTermError) Error() string {
	return fmt.Sprintf("cborld: invalid vocabulary term %q", e.Value)
}

// MissingContextIDError reports a strict-encode request for a
// compressed context ID that the selected tables don't define.
type MissingContextIDError struct {
	IRI string
}

func (e *MissingContextIDError) Error() string {
	return fmt.Sprintf("cborld: no CBOR-LD context id for %q", e.IRI)
}

// MissingIDForError reports an encoder that can't produce a compact key
// for a term, because the key shape it saw didn't resolve to one.
type MissingIDForError struct {
	Term string
}

func (e *MissingIDForError) Error() string {
	return fmt.Sprintf("cborld: no CBOR-LD id for %q", e.Term)
}

// CodecError reports a named typed-literal codec's encode or decode
// failure.
type CodecError struct {
	Name    string
	Message string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("cborld: %s codec error: %s", e.Name, e.Message)
}
