package typedcodec

import (
	"testing"

	"github.com/cborld/go-cborld/idalloc"
	"github.com/cborld/go-cborld/iricodec"
	"github.com/cborld/go-cborld/tables"
)

func testEnv() *Env {
	return &Env{
		Allocator: idalloc.New(),
		IRIs:      iricodec.NewRegistry(),
		Tables:    tables.Default(),
	}
}

func TestXsdDateTimeWholeSecond(t *testing.T) {
	c := xsdDateTimeCodec{}
	env := testEnv()
	v, err := c.Encode(env, "2021-03-24T20:03:03Z")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sec, ok := v.AsUint()
	if !ok || sec != 1616616183 {
		t.Fatalf("got %+v, want integer 1616616183", v)
	}
	back, err := c.Decode(env, v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != "2021-03-24T20:03:03Z" {
		t.Fatalf("round trip mismatch: %q", back)
	}
}

func TestXsdDateTimeMilliseconds(t *testing.T) {
	c := xsdDateTimeCodec{}
	env := testEnv()
	v, err := c.Encode(env, "2021-03-24T20:03:03.500Z")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	arr, ok := v.AsArray()
	if !ok || len(arr) != 2 {
		t.Fatalf("expected 2-element array, got %+v", v)
	}
	ms, _ := arr[1].AsUint()
	if ms != 500 {
		t.Fatalf("milliseconds = %d, want 500", ms)
	}
}

func TestXsdDateTimeNoOffsetFallsBackToText(t *testing.T) {
	c := xsdDateTimeCodec{}
	env := testEnv()
	v, err := c.Encode(env, "2021-03-24T20:03:03")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text, ok := v.AsText()
	if !ok || text != "2021-03-24T20:03:03" {
		t.Fatalf("got %+v, want text %q", v, "2021-03-24T20:03:03")
	}
}

func TestCryptosuiteCodecVcBarcodesPriority(t *testing.T) {
	c := cryptosuiteCodec{}
	env := testEnv()
	env.Tables = tables.VcBarcodes()
	v, err := c.Encode(env, "eddsa-rdfc-2022")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	id, _ := v.AsUint()
	if id != 3 {
		t.Fatalf("expected VcBarcodes-scoped id 3, got %d", id)
	}
}

func TestCryptosuiteCodecUnknownFallsThroughToText(t *testing.T) {
	c := cryptosuiteCodec{}
	env := testEnv()
	v, err := c.Encode(env, "some-future-suite")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text, ok := v.AsText()
	if !ok || text != "some-future-suite" {
		t.Fatalf("expected text fallback, got %+v", v)
	}
}
