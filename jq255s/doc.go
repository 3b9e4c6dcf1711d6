// Package jq255s implements the jq255s prime-order group and the
// signature and key-exchange schemes built on it.
//
// jq255s is a double-odd curve over GF(2^255 - 3957): the curve
// y^2 = x*(x^2 - x + 1/2) has order 2r with r prime, and the group of
// order r is represented on the associated Jacobi quartic
// e^2 = -u^4 + 2*u^2 + 1 in extended (E:Z:U:T) coordinates, following
// the double-odd curves construction (doubleodd.org). Group elements
// encode to 32 bytes; signatures are 48 bytes; ECDH outputs are 32
// bytes. The claimed security level is 128 bits.
//
// Unlike its sibling jq255e, this curve carries no fast endomorphism:
// the generic multiplier runs a plain signed 5-bit window over the full
// scalar. jq255e remains the default choice; jq255s trades a little
// speed for a more conservative curve shape.
//
// All operations are constant-time except signature verification, which
// only ever processes public data.
package jq255s
