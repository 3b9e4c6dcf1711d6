// Package jq255 exposes the default curve of the jq255 signature and
// key-exchange library.
//
// The library implements two prime-order groups over 255-bit fields,
// jq255e and jq255s, each in its own package. The curve selection is the
// import path: jq255.mleku.dev/jq255e (the default, with a fast
// endomorphism-based multiplier) or jq255.mleku.dev/jq255s (the more
// conservative curve shape). This package aliases the jq255e types and
// re-exports its entry points, so callers that just want "the" curve can
// depend on jq255.mleku.dev directly.
//
// Signatures are 48 bytes, public and private keys 32 bytes, ECDH
// outputs 32 bytes. See the curve packages for the scheme details.
package jq255
