// Package signer provides an implementation of the signer interface from
// next.orly.dev/pkg/interfaces/signer backed by the jq255e scheme, used
// to abstract the signature algorithm from the usage.
package signer

import (
	orlysigner "next.orly.dev/pkg/interfaces/signer"
)

// I is an alias for the signer interface from
// next.orly.dev/pkg/interfaces/signer, so this package can be used as a
// drop-in signer provider.
type I = orlysigner.I

// Gen is an alias for the Gen interface from
// next.orly.dev/pkg/interfaces/signer.
type Gen = orlysigner.Gen
