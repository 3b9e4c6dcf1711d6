package jq255e

// ECDH computes the authenticated key-exchange output between the local
// private key and a peer public key. On success the returned flag is
// true and the secret is derived from the shared point. When the peer
// key is the invalid sentinel (the identity), the flag is false but a
// 32-byte output is still produced, derived from the local private key
// under a distinct domain byte: the failure path is indistinguishable
// from success to an outside observer and unguessable without the
// private key. Constant-time throughout.
func ECDH(priv *PrivateKey, peer *PublicKey) ([SharedSecretSize]byte, bool) {
	bad := ^peer.ok | peer.p.isIdentityMask()

	// Z = sec * peer; on the failure path the encoding of the private
	// scalar is substituted for the shared value by masking.
	var Z Point
	Z.Mul(&priv.s, &peer.p)
	var shared [32]byte
	Z.Encode(shared[:])
	sb := priv.s.Bytes()
	for i := 0; i < 32; i++ {
		shared[i] ^= byte(bad) & (shared[i] ^ sb[i])
	}
	wipe(sb[:])

	// Order the two encoded public keys as little-endian integers
	// (bytewise comparison from the most significant end), so both
	// parties hash the same transcript.
	ownFirst := lex32LessOrEqual(&priv.pub.enc, &peer.enc)
	var lo, hi [32]byte
	for i := 0; i < 32; i++ {
		m := byte(ownFirst)
		lo[i] = (priv.pub.enc[i] & m) | (peer.enc[i] &^ m)
		hi[i] = (peer.enc[i] & m) | (priv.pub.enc[i] &^ m)
	}

	dom := byte(domainECDHOK) ^ (byte(bad) & (domainECDHOK ^ domainECDHFail))

	h := newHash()
	h.Write(lo[:])
	h.Write(hi[:])
	h.Write([]byte{dom})
	h.Write(shared[:])
	var out [SharedSecretSize]byte
	h.Sum(out[:0])
	wipe(shared[:])
	return out, bad == 0
}

// lex32LessOrEqual compares two 32-byte little-endian integers in
// constant time, returning 0xFF when a <= b and 0x00 otherwise.
func lex32LessOrEqual(a, b *[32]byte) uint8 {
	var gt, eq uint8 = 0, 0xFF
	for i := 31; i >= 0; i-- {
		ai, bi := uint16(a[i]), uint16(b[i])
		gtI := uint8((bi - ai) >> 8) // 0xFF when ai > bi
		eqI := uint8((((ai ^ bi) - 1) >> 8)) // 0xFF when equal
		gt |= eq & gtI
		eq &= eqI
	}
	return ^gt
}
