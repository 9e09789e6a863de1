package cborld

import "github.com/cborld/go-cborld/cbor"

// Outer CBOR tag forms. Legacy tags pack a one-bit compression mode
// into the low byte of a fixed high byte; registry tags pack a
// registry-entry ID into the low byte of a different fixed high byte.
// A registry ID of zero means uncompressed with no term allocation,
// the same thing legacy mode 0 means.
const (
	legacyTagHigh   uint64 = 0x05
	registryTagHigh uint64 = 0xCB

	legacyModeUncompressed uint64 = 0
	legacyModeCompressed   uint64 = 1
)

// envelope is the outer tag, decoded into the registry-entry ID it
// selects (0 meaning uncompressed).
type envelope struct {
	registryID uint64
}

// legacyEnvelope returns the envelope for the historical tag form,
// which only ever selects the Default table set or the uncompressed
// passthrough.
func legacyEnvelope(compressed bool) envelope {
	if compressed {
		return envelope{registryID: legacyModeCompressed}
	}
	return envelope{registryID: legacyModeUncompressed}
}

// tag returns the outer CBOR tag number this envelope wraps its inner
// value in, using the legacy form when the registry ID fits that
// form's two-value mode byte and the registry form otherwise.
func (e envelope) tag() uint64 {
	if e.registryID <= legacyModeCompressed {
		return legacyTagHigh<<8 | e.registryID
	}
	return registryTagHigh<<8 | e.registryID
}

// wrap produces the outer tagged CBOR value for an already-transformed
// inner value.
func (e envelope) wrap(inner cbor.Value) cbor.Value {
	return cbor.Tag(e.tag(), inner)
}

// unwrap validates and unpacks an outer tagged CBOR value, returning
// its envelope and inner value.
func unwrap(v cbor.Value) (envelope, cbor.Value, error) {
	number, inner, ok := v.AsTag()
	if !ok {
		return envelope{}, cbor.Value{}, ErrNotCborLd
	}

	high := number >> 8
	low := number & 0xff

	switch high {
	case legacyTagHigh:
		if low != legacyModeUncompressed && low != legacyModeCompressed {
			return envelope{}, cbor.Value{}, &UnsupportedCompressionModeError{Mode: low}
		}
		return envelope{registryID: low}, inner, nil
	case registryTagHigh:
		if low >= 128 {
			return envelope{}, cbor.Value{}, &UnsupportedCompressionModeError{Mode: low}
		}
		return envelope{registryID: low}, inner, nil
	default:
		return envelope{}, cbor.Value{}, ErrNotCborLd
	}
}
