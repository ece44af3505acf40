// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package keys implements PASETO's algorithm lucidity: key material is
// carried in disjoint, versioned, tagged variants rather than as bare
// byte slices, and a serialized key's textual prefix is checked for exact
// equality against the version/purpose an operation expects before any
// cryptographic work begins.
//
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/02-Implementation-Guide/03-Algorithm-Lucidity.md
package keys

import (
	"crypto/ed25519"
	"fmt"
	"io"

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
	"github.com/lucidpaseto/paseto/internal/common"
)

const (
	// SymmetricKeyLength is the raw size of a local (symmetric) key.
	SymmetricKeyLength = 32
	// PublicKeyLength is the raw size of an Ed25519 public key.
	PublicKeyLength = 32
	// SecretKeyLength is the raw size of an Ed25519 secret key (seed || public).
	SecretKeyLength = 64
)

const (
	typeLocal  = ".local."
	typePublic = ".public."
	typeSecret = ".secret."
)

// SymmetricKey is a local (symmetric encryption) key, tagged with the
// protocol version it was minted for.
type SymmetricKey struct {
	version int
	raw     [SymmetricKeyLength]byte
}

// PublicKey is a public (signature verification) key.
type PublicKey struct {
	version int
	raw     [PublicKeyLength]byte
}

// SecretKey is a secret (signing) key.
type SecretKey struct {
	version int
	raw     [SecretKeyLength]byte
}

// NewSymmetricKey wraps raw key material tagged for version. raw must be
// exactly SymmetricKeyLength bytes.
func NewSymmetricKey(version int, raw []byte) (*SymmetricKey, error) {
	if len(raw) != SymmetricKeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes, got %d", pasetoerrors.ErrInvalidKey, SymmetricKeyLength, len(raw))
	}
	k := &SymmetricKey{version: version}
	copy(k.raw[:], raw)
	return k, nil
}

// GenerateSymmetricKey mints a fresh symmetric key from r (the OS CSPRNG in
// production; a deterministic reader in tests).
func GenerateSymmetricKey(r io.Reader, version int) (*SymmetricKey, error) {
	raw, err := readFull(r, SymmetricKeyLength)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to generate symmetric key: %w", err)
	}
	return NewSymmetricKey(version, raw)
}

// Bytes returns the raw key material.
func (k *SymmetricKey) Bytes() []byte { return append([]byte(nil), k.raw[:]...) }

// Version reports the protocol version this key was minted for.
func (k *SymmetricKey) Version() int { return k.version }

// String returns the canonical serialized form k<version>.local.<base64url(raw)>.
func (k *SymmetricKey) String() string {
	return serialize(k.version, typeLocal, k.raw[:])
}

// Zero overwrites the key's raw bytes. Recommended on drop, not a
// testable invariant.
func (k *SymmetricKey) Zero() {
	for i := range k.raw {
		k.raw[i] = 0
	}
}

// ParseSymmetricKey decodes a serialized key and validates that its prefix
// matches k<version>.local. exactly before returning the unwrapped key.
// This is the algorithm-lucidity check: a k4.public.* or k4.secret.* value
// is rejected here, before any cryptographic operation runs.
func ParseSymmetricKey(serialized string, version int) (*SymmetricKey, error) {
	raw, err := deserialize(serialized, version, typeLocal)
	if err != nil {
		return nil, err
	}
	return NewSymmetricKey(version, raw)
}

// NewPublicKey wraps raw Ed25519 public key material tagged for version.
func NewPublicKey(version int, raw []byte) (*PublicKey, error) {
	if len(raw) != PublicKeyLength {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", pasetoerrors.ErrInvalidKey, PublicKeyLength, len(raw))
	}
	k := &PublicKey{version: version}
	copy(k.raw[:], raw)
	return k, nil
}

// Bytes returns the raw key material.
func (k *PublicKey) Bytes() []byte { return append([]byte(nil), k.raw[:]...) }

// Version reports the protocol version this key was minted for.
func (k *PublicKey) Version() int { return k.version }

// Ed25519 returns the key as a standard library ed25519.PublicKey.
func (k *PublicKey) Ed25519() ed25519.PublicKey { return ed25519.PublicKey(k.raw[:]) }

// String returns the canonical serialized form k<version>.public.<base64url(raw)>.
func (k *PublicKey) String() string {
	return serialize(k.version, typePublic, k.raw[:])
}

// ParsePublicKey decodes a serialized key and validates its k<version>.public. prefix.
func ParsePublicKey(serialized string, version int) (*PublicKey, error) {
	raw, err := deserialize(serialized, version, typePublic)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(version, raw)
}

// NewSecretKey wraps raw Ed25519 secret key material (seed || public key)
// tagged for version.
func NewSecretKey(version int, raw []byte) (*SecretKey, error) {
	if len(raw) != SecretKeyLength {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", pasetoerrors.ErrInvalidKey, SecretKeyLength, len(raw))
	}
	k := &SecretKey{version: version}
	copy(k.raw[:], raw)
	return k, nil
}

// Bytes returns the raw key material.
func (k *SecretKey) Bytes() []byte { return append([]byte(nil), k.raw[:]...) }

// Version reports the protocol version this key was minted for.
func (k *SecretKey) Version() int { return k.version }

// Ed25519 returns the key as a standard library ed25519.PrivateKey.
func (k *SecretKey) Ed25519() ed25519.PrivateKey { return ed25519.PrivateKey(k.raw[:]) }

// Public derives the public key paired with this secret key.
func (k *SecretKey) Public() *PublicKey {
	pub, _ := NewPublicKey(k.version, k.Ed25519().Public().(ed25519.PublicKey))
	return pub
}

// String returns the canonical serialized form k<version>.secret.<base64url(raw)>.
func (k *SecretKey) String() string {
	return serialize(k.version, typeSecret, k.raw[:])
}

// ParseSecretKey decodes a serialized key and validates its k<version>.secret. prefix.
func ParseSecretKey(serialized string, version int) (*SecretKey, error) {
	raw, err := deserialize(serialized, version, typeSecret)
	if err != nil {
		return nil, err
	}
	return NewSecretKey(version, raw)
}

// Zero overwrites the key's raw bytes.
func (k *SecretKey) Zero() {
	for i := range k.raw {
		k.raw[i] = 0
	}
}

// GenerateAsymmetricKey mints a fresh Ed25519 key pair from r.
func GenerateAsymmetricKey(r io.Reader, version int) (*PublicKey, *SecretKey, error) {
	pub, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, nil, fmt.Errorf("paseto: unable to generate asymmetric key: %w", err)
	}
	publicKey, err := NewPublicKey(version, pub)
	if err != nil {
		return nil, nil, err
	}
	secretKey, err := NewSecretKey(version, priv)
	if err != nil {
		return nil, nil, err
	}
	return publicKey, secretKey, nil
}

func serialize(version int, keyType string, raw []byte) string {
	return prefix(version, keyType) + string(common.Base64URLEncode(raw))
}

func deserialize(serialized string, version int, keyType string) ([]byte, error) {
	want := prefix(version, keyType)
	if len(serialized) < len(want) {
		return nil, fmt.Errorf("%w: expected prefix %q", pasetoerrors.ErrInvalidKey, want)
	}
	// Algorithm lucidity: the prefix check is a security decision, so it
	// runs in constant time rather than as a variable-time string compare.
	if !common.SecureCompare([]byte(serialized[:len(want)]), []byte(want)) {
		return nil, fmt.Errorf("%w: expected prefix %q", pasetoerrors.ErrInvalidKey, want)
	}

	raw, err := common.Base64URLDecode([]byte(serialized[len(want):]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}
	return raw, nil
}

func prefix(version int, keyType string) string {
	return fmt.Sprintf("k%d%s", version, keyType)
}

func readFull(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
