// Package jq255e implements the jq255e prime-order group and the
// signature and key-exchange schemes built on it.
//
// jq255e is a double-odd curve over GF(2^255 - 18651): the curve
// y^2 = x*(x^2 - 2) has order 2r with r prime, and the group of order r
// is represented on the associated Jacobi quartic e^2 = 8*u^4 + 1 in
// extended (E:Z:U:T) coordinates, following the double-odd curves
// construction (doubleodd.org). Group elements encode to 32 bytes;
// signatures are 48 bytes (16-byte challenge plus 32-byte scalar);
// ECDH outputs are 32 bytes. The claimed security level is 128 bits.
//
// All operations are constant-time except signature verification, which
// only ever processes public data. The curve supports an efficient
// endomorphism (a square root of -1 acting on the group), which the
// generic multiplier exploits by splitting scalars into two 127-bit
// halves.
//
// The internal hash for key derivation, challenges and ECDH outputs is
// BLAKE2s-256. Messages may be signed raw or pre-hashed under a named
// hash; the hash name is bound into the signature.
package jq255e
