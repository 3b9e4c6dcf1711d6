package signer

import (
	"errors"

	"jq255.mleku.dev/jq255e"
)

// Jq255Signer implements the I interface over the jq255e signature and
// key-exchange scheme. Messages are signed in raw mode (the scheme hashes
// them internally), so any message length is accepted.
type Jq255Signer struct {
	priv      *jq255e.PrivateKey
	pub       *jq255e.PublicKey
	hasSecret bool
}

// NewJq255Signer creates a new signer with no key material.
func NewJq255Signer() *Jq255Signer {
	return &Jq255Signer{}
}

// Generate creates a fresh key pair from system entropy.
func (s *Jq255Signer) Generate() error {
	priv, err := jq255e.KeyPairGenerate()
	if err != nil {
		return err
	}
	s.priv = priv
	s.pub = priv.Public()
	s.hasSecret = true
	return nil
}

// InitSec initialises the secret (signing) key from the raw bytes, and
// also derives the public key.
func (s *Jq255Signer) InitSec(sec []byte) error {
	priv, err := jq255e.PrivateKeyDecode(sec)
	if err != nil {
		return err
	}
	s.priv = priv
	s.pub = priv.Public()
	s.hasSecret = true
	return nil
}

// InitPub initializes the public (verification) key from raw bytes.
func (s *Jq255Signer) InitPub(pub []byte) error {
	pk, err := jq255e.PublicKeyDecode(pub)
	if err != nil {
		return err
	}
	if !pk.IsValid() {
		return errors.New("identity is not a valid public key")
	}
	s.pub = pk
	s.priv = nil
	s.hasSecret = false
	return nil
}

// Sec returns the secret key bytes.
func (s *Jq255Signer) Sec() []byte {
	if !s.hasSecret || s.priv == nil {
		return nil
	}
	b := s.priv.Bytes()
	return b[:]
}

// Pub returns the public key bytes.
func (s *Jq255Signer) Pub() []byte {
	if s.pub == nil {
		return nil
	}
	b := s.pub.Bytes()
	return b[:]
}

// Sign creates a deterministic signature over the message using the
// stored secret key.
func (s *Jq255Signer) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.priv == nil {
		return nil, errors.New("no secret key available for signing")
	}
	out := jq255e.Sign(s.priv, "", msg, nil)
	return out[:], nil
}

// Verify checks a message and signature against the stored public key.
func (s *Jq255Signer) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}
	return jq255e.Verify(s.pub, "", msg, sig), nil
}

// Zero wipes the secret key.
func (s *Jq255Signer) Zero() {
	if s.priv != nil {
		s.priv.Clear()
		s.priv = nil
	}
	s.hasSecret = false
	s.pub = nil
}

// ECDH returns a shared secret derived from the stored secret key and
// the provided 32-byte public key.
func (s *Jq255Signer) ECDH(pub []byte) (secret []byte, err error) {
	if !s.hasSecret || s.priv == nil {
		return nil, errors.New("no secret key available for ECDH")
	}
	pk, err := jq255e.PublicKeyDecode(pub)
	if err != nil {
		return nil, err
	}
	out, ok := jq255e.ECDH(s.priv, pk)
	if !ok {
		return nil, errors.New("invalid peer public key")
	}
	return out[:], nil
}

// Jq255Gen implements the Gen interface for key matching workflows.
type Jq255Gen struct {
	priv *jq255e.PrivateKey
}

// NewJq255Gen creates a new Jq255Gen instance.
func NewJq255Gen() *Jq255Gen {
	return &Jq255Gen{}
}

// Generate gathers entropy and derives pubkey bytes for matching.
func (g *Jq255Gen) Generate() (pubBytes []byte, err error) {
	priv, err := jq255e.KeyPairGenerate()
	if err != nil {
		return nil, err
	}
	g.priv = priv
	b := priv.Public().Bytes()
	return b[:], nil
}

// Negate is a no-op: jq255e encodings carry no Y-parity ambiguity, so
// there is nothing to flip.
func (g *Jq255Gen) Negate() {}

// KeyPairBytes returns the raw bytes of the secret and public key.
func (g *Jq255Gen) KeyPairBytes() (secBytes, cmprPubBytes []byte) {
	if g.priv == nil {
		return nil, nil
	}
	sb := g.priv.Bytes()
	pb := g.priv.Public().Bytes()
	return sb[:], pb[:]
}
