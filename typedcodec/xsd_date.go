package typedcodec

import (
	"fmt"
	"time"

	"github.com/cborld/go-cborld/cbor"
)

// dateWithOffsetLayout matches both "2021-03-24Z" and "2021-03-24-05:00".
const dateWithOffsetLayout = "2006-01-02Z07:00"
const bareDateLayout = "2006-01-02"

// xsdDateCodec compresses xsd:date values that carry a timezone offset
// into a Unix-second timestamp; dates with no offset have no unambiguous
// instant to compute, so they're carried as text.
type xsdDateCodec struct{}

func (xsdDateCodec) Encode(env *Env, value string) (cbor.Value, error) {
	if t, err := time.Parse(dateWithOffsetLayout, value); err == nil {
		return cbor.Uint(uint64(t.Unix())), nil
	}
	if _, err := time.Parse(bareDateLayout, value); err == nil {
		return cbor.Text(value), nil
	}
	return cbor.Value{}, fmt.Errorf("xsd:date codec: %q is not a valid xsd:date", value)
}

func (xsdDateCodec) Decode(env *Env, value cbor.Value) (string, error) {
	if sec, ok := value.AsUint(); ok {
		return time.Unix(int64(sec), 0).UTC().Format(bareDateLayout) + "Z", nil
	}
	if text, ok := value.AsText(); ok {
		return text, nil
	}
	return "", fmt.Errorf("xsd:date codec: unsupported value kind %d", value.Kind())
}
