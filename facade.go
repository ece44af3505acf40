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

// Package paseto is the public facade over the v2 and v4 PASETO protocol
// packages: thin entry points grouping encrypt/decrypt/sign/verify per
// version, plus key generation. Callers that want the full protocol
// surface (error taxonomy, typed keys) should import the v2, v4, keys and
// errors packages directly; this package exists for the common case of
// "generate a key, encrypt/decrypt or sign/verify a token".
package paseto

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"github.com/lucidpaseto/paseto/keys"
	"github.com/lucidpaseto/paseto/v2"
	"github.com/lucidpaseto/paseto/v4"
)

// CreateSymmetricKey generates a fresh v4.local symmetric key from the OS
// CSPRNG.
func CreateSymmetricKey() (*keys.SymmetricKey, error) {
	return keys.GenerateSymmetricKey(rand.Reader, 4)
}

// CreateAsymmetricKey generates a fresh v4 Ed25519 key pair from the OS
// CSPRNG.
func CreateAsymmetricKey() (*keys.PublicKey, *keys.SecretKey, error) {
	return keys.GenerateAsymmetricKey(rand.Reader, 4)
}

// SymmetricKeyFromSeed wraps caller-supplied raw material as a v4.local
// key. Intended for test-vector reproducibility; production callers should
// use CreateSymmetricKey.
func SymmetricKeyFromSeed(raw []byte) (*keys.SymmetricKey, error) {
	return keys.NewSymmetricKey(4, raw)
}

// AsymmetricKeyFromSeed derives a v4 Ed25519 key pair from a 32-byte seed,
// deterministically. Intended for test-vector reproducibility; production
// callers should use CreateAsymmetricKey.
func AsymmetricKeyFromSeed(seed []byte) (*keys.PublicKey, *keys.SecretKey, error) {
	sk := ed25519.NewKeyFromSeed(seed)
	secretKey, err := keys.NewSecretKey(4, sk)
	if err != nil {
		return nil, nil, err
	}
	return secretKey.Public(), secretKey, nil
}

// EncryptV2 produces a v2.local token. r supplies the 24 random bytes that
// seed the hedged nonce.
func EncryptV2(r io.Reader, key, m, f []byte) ([]byte, error) {
	return v2.Encrypt(r, key, m, f)
}

// DecryptV2 opens a v2.local token.
func DecryptV2(token, key, f []byte) ([]byte, error) {
	return v2.Decrypt(token, key, f)
}

// SignV2 produces a v2.public token.
func SignV2(m []byte, sk ed25519.PrivateKey, f []byte) ([]byte, error) {
	return v2.Sign(m, sk, f)
}

// VerifyV2 checks a v2.public token and returns the signed message.
func VerifyV2(token []byte, pk ed25519.PublicKey, f []byte) ([]byte, error) {
	return v2.Verify(token, pk, f)
}

// EncryptV4 produces a v4.local token. r supplies the 32-byte random nonce.
func EncryptV4(r io.Reader, key *keys.SymmetricKey, m, f, i []byte) ([]byte, error) {
	return v4.Encrypt(r, key, m, f, i)
}

// DecryptV4 opens a v4.local token.
func DecryptV4(key *keys.SymmetricKey, token, f, i []byte) ([]byte, error) {
	return v4.Decrypt(key, token, f, i)
}

// SignV4 produces a v4.public token.
func SignV4(m []byte, sk *keys.SecretKey, f, i []byte) ([]byte, error) {
	return v4.Sign(m, sk, f, i)
}

// VerifyV4 checks a v4.public token and returns the signed message.
func VerifyV4(token []byte, pk *keys.PublicKey, f, i []byte) ([]byte, error) {
	return v4.Verify(token, pk, f, i)
}
