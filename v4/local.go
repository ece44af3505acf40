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

package v4

import (
	"fmt"
	"io"

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
	"github.com/lucidpaseto/paseto/internal/common"
	"github.com/lucidpaseto/paseto/internal/primitive"
	"github.com/lucidpaseto/paseto/keys"
)

// GenerateLocalKey mints a fresh v4.local symmetric key.
func GenerateLocalKey(r io.Reader) (*keys.SymmetricKey, error) {
	return keys.GenerateSymmetricKey(r, 4)
}

// Encrypt implements the PASETO v4.local symmetric encryption primitive.
// Unlike v2, the nonce is not message-hedged: 32 random bytes feed a
// BLAKE2b KDF that derives a distinct encryption key, cipher nonce, and
// authentication key for every call.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#encrypt
func Encrypt(r io.Reader, key *keys.SymmetricKey, m, f, i []byte) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key is nil", pasetoerrors.ErrInvalidKey)
	}
	if key.Version() != 4 {
		return nil, fmt.Errorf("%w: key was not minted for v4", pasetoerrors.ErrInvalidKey)
	}

	n, err := primitive.Random(r, nonceLength)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to generate random seed: %w", err)
	}

	ek, n2, ak, err := kdf(key, n)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}

	c, err := primitive.StreamXOR(ek, n2, m)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to encrypt payload: %w", err)
	}

	t, err := mac(ak, LocalPrefix, n, c, f, i)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to compute MAC: %w", err)
	}

	body := append(append(append([]byte{}, n...), c...), t...)

	final := append([]byte(LocalPrefix), common.Base64URLEncode(body)...)
	if len(f) > 0 {
		final = append(final, '.')
		final = append(final, common.Base64URLEncode(f)...)
	}

	return final, nil
}

// Decrypt implements the PASETO v4.local symmetric decryption primitive.
// The MAC is checked, in constant time, before any plaintext is recovered.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#decrypt
func Decrypt(key *keys.SymmetricKey, token, f, i []byte) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key is nil", pasetoerrors.ErrInvalidKey)
	}
	if key.Version() != 4 {
		return nil, fmt.Errorf("%w: key was not minted for v4", pasetoerrors.ErrInvalidKey)
	}

	tok, err := common.SplitToken(token, LocalPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrInvalidHeader, err)
	}

	if !common.CheckFooter(f, tok.FooterRaw) {
		return nil, pasetoerrors.ErrInvalidFooter
	}

	raw, err := common.Base64URLDecode(tok.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}
	if len(raw) < nonceLength+macLength {
		return nil, fmt.Errorf("%w: token body shorter than nonce plus mac", pasetoerrors.ErrBadInput)
	}

	n := raw[:nonceLength]
	c := raw[nonceLength : len(raw)-macLength]
	t := raw[len(raw)-macLength:]

	ek, n2, ak, err := kdf(key, n)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}

	t2, err := mac(ak, LocalPrefix, n, c, f, i)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to compute MAC: %w", err)
	}

	if !common.SecureCompare(t, t2) {
		return nil, pasetoerrors.ErrInvalidMAC
	}

	return primitive.StreamXOR(ek, n2, c)
}
