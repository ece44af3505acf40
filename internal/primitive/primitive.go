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

// Package primitive is the boundary between the protocol state machines
// and the underlying cryptographic algorithms. Every function here is a
// named oracle with a fixed input/output contract; the protocol packages
// perform no cryptographic operation through golang.org/x/crypto or
// crypto/ed25519 directly, and use crypto/ed25519 only for its key types
// and size constants.
package primitive

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
)

// Random reads n bytes from the OS CSPRNG (or a test-controlled reader).
func Random(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("paseto: unable to read random bytes: %w", err)
	}
	return buf, nil
}

// AEADEncrypt seals msg with XChaCha20-Poly1305 under key and nonce,
// authenticating aad. nonce must be 24 bytes.
func AEADEncrypt(key, nonce, msg, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize XChaCha20-Poly1305: %w", err)
	}
	return aead.Seal(nil, nonce, msg, aad), nil
}

// AEADDecrypt opens ct with XChaCha20-Poly1305 under key and nonce,
// verifying aad. Authentication failure is surfaced as ErrAuthFail.
func AEADDecrypt(key, nonce, ct, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize XChaCha20-Poly1305: %w", err)
	}
	msg, err := aead.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrAuthFail, err)
	}
	return msg, nil
}

// StreamXOR XORs msg against the raw XChaCha20 keystream, without any
// authentication tag. nonce must be 24 bytes.
func StreamXOR(key, nonce, msg []byte) ([]byte, error) {
	ciph, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize XChaCha20: %w", err)
	}
	out := make([]byte, len(msg))
	ciph.XORKeyStream(out, msg)
	return out, nil
}

// Blake2b returns the keyed BLAKE2b hash of data with the requested output
// length. outLen must be one blake2b supports (this core only ever asks
// for 24, 32 or 56).
func Blake2b(data, key []byte, outLen int) ([]byte, error) {
	h, err := blake2b.New(outLen, key)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize BLAKE2b: %w", err)
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// Ed25519Sign returns the detached signature of msg under sk.
func Ed25519Sign(sk ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(sk, msg)
}

// Ed25519Verify reports whether sig is a valid detached signature of msg
// under pk.
func Ed25519Verify(pk ed25519.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(pk, msg, sig)
}
