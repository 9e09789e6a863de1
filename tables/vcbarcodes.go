package tables

// vcBarcodesContexts mirrors the VcBarcodes registry entry in
// original_source/src/tables/registry.rs: a small, separately-numbered
// context table starting at 32768, used by barcode-oriented credential
// profiles that want to stay well clear of the default table's ID
// space.
var vcBarcodesContexts = map[string]uint64{
	"https://www.w3.org/ns/credentials/v2": 32768,
	"https://w3id.org/vc-barcodes/v1":      32769,
	"https://w3id.org/utopia/v2":           32770,
}

// vcBarcodesCryptosuites is VcBarcodes' locally scoped cryptosuite type
// table. When the VcBarcodes registry entry is active, this table takes
// priority over the generic cryptosuite typed-literal codec's global
// numbering (see typedcodec's cryptosuite codec), matching the
// table-before-codec fallback order the original implementation uses.
var vcBarcodesCryptosuites = map[string]uint64{
	"ecdsa-rdfc-2019": 1,
	"ecdsa-sd-2023":   2,
	"eddsa-rdfc-2022": 3,
	"ecdsa-xi-2023":   4,
}

// VcBarcodes returns the VcBarcodes built-in Tables value.
func VcBarcodes() Tables {
	return Tables{
		Context: NewContextTable(vcBarcodesContexts),
		Types: map[string]TypeTable{
			CryptosuiteTypeIRI: NewTypeTable(vcBarcodesCryptosuites),
		},
	}
}
