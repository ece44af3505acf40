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

package v2

import (
	"fmt"
	"io"

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
	"github.com/lucidpaseto/paseto/internal/common"
	"github.com/lucidpaseto/paseto/internal/primitive"
)

// GenerateLocalKey generates a key for v2.local encryption.
func GenerateLocalKey(r io.Reader) ([]byte, error) {
	key, err := primitive.Random(r, SymmetricKeyLength)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to generate a random key: %w", err)
	}
	return key, nil
}

// Encrypt implements the PASETO v2.local symmetric encryption primitive.
// The nonce is hedged: it is the keyed BLAKE2b hash of the message under
// 24 random bytes, rather than chosen independently of the message.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#encrypt
func Encrypt(r io.Reader, key, m, f []byte) ([]byte, error) {
	if len(key) != SymmetricKeyLength {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", pasetoerrors.ErrInvalidKey, SymmetricKeyLength, len(key))
	}

	seed, err := primitive.Random(r, nonceLength)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to generate random seed: %w", err)
	}

	n, err := primitive.Blake2b(m, seed, nonceLength)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to derive nonce: %w", err)
	}

	preAuth, err := common.PreAuthenticationEncoding([]byte(LocalPrefix), n, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}

	c, err := primitive.AEADEncrypt(key, n, m, preAuth)
	if err != nil {
		return nil, err
	}

	body := append(append([]byte{}, n...), c...)

	final := append([]byte(LocalPrefix), common.Base64URLEncode(body)...)
	if len(f) > 0 {
		final = append(final, '.')
		final = append(final, common.Base64URLEncode(f)...)
	}

	return final, nil
}

// Decrypt implements the PASETO v2.local symmetric decryption primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md#decrypt
func Decrypt(token, key, f []byte) ([]byte, error) {
	if len(key) != SymmetricKeyLength {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", pasetoerrors.ErrInvalidKey, SymmetricKeyLength, len(key))
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
	if len(raw) < nonceLength {
		return nil, fmt.Errorf("%w: token body shorter than nonce", pasetoerrors.ErrBadInput)
	}

	n := raw[:nonceLength]
	c := raw[nonceLength:]

	preAuth, err := common.PreAuthenticationEncoding([]byte(LocalPrefix), n, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}

	return primitive.AEADDecrypt(key, n, c, preAuth)
}
