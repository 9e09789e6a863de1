package typedcodec

import (
	"fmt"
	"time"

	"github.com/cborld/go-cborld/cbor"
)

const millisLayout = "2006-01-02T15:04:05.000Z07:00"

// dateTimeBareLayout matches an xsd:dateTime with no timezone offset
// (e.g. "2021-03-24T20:03:03"), which is legal XSD but names no single
// instant, so it can't be compressed to a timestamp.
const dateTimeBareLayout = "2006-01-02T15:04:05.999999999"

// xsdDateTimeCodec compresses xsd:dateTime values that carry a
// timezone offset down to an integer (whole-second precision) or a
// [seconds, milliseconds] pair (whole-millisecond precision); anything
// finer-grained, or with no offset to pin down a single instant, is
// carried as text. Decode reads seconds and milliseconds from their
// own array elements rather than a shared slot.
type xsdDateTimeCodec struct{}

func (xsdDateTimeCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		ns := t.Nanosecond()
		switch {
		case ns == 0:
			return cbor.Uint(uint64(t.Unix())), nil
		case ns%1_000_000 == 0:
			ms := uint64(ns / 1_000_000)
			return cbor.Array(cbor.Uint(uint64(t.Unix())), cbor.Uint(ms)), nil
		default:
			return cbor.Text(value), nil
		}
	}
	if _, err := time.Parse(dateTimeBareLayout, value); err == nil {
		return cbor.Text(value), nil
	}
	return cbor.Value{}, fmt.Errorf("xsd:dateTime codec: %q is not a valid xsd:dateTime", value)
}

func (xsdDateTimeCodec) Decode(env *Env, value cbor.Value) (string, error) {
	if sec, ok := value.AsUint(); ok {
		return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339), nil
	}
	if arr, ok := value.AsArray(); ok {
		if len(arr) != 2 {
			return "", fmt.Errorf("xsd:dateTime codec: expected [seconds, milliseconds]")
		}
		sec, ok := arr[0].AsUint()
		if !ok {
			return "", fmt.Errorf("xsd:dateTime codec: seconds element is not an unsigned integer")
		}
		ms, ok := arr[1].AsUint()
		if !ok {
			return "", fmt.Errorf("xsd:dateTime codec: milliseconds element is not an unsigned integer")
		}
		t := time.Unix(int64(sec), int64(ms)*1_000_000).UTC()
		return t.Format(millisLayout), nil
	}
	if text, ok := value.AsText(); ok {
		return text, nil
	}
	return "", fmt.Errorf("xsd:dateTime codec: unsupported value kind %d", value.Kind())
}
