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

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
	"github.com/lucidpaseto/paseto/internal/common"
	"github.com/lucidpaseto/paseto/internal/primitive"
	"github.com/lucidpaseto/paseto/keys"
)

// Sign implements the PASETO v4.public signature primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#sign
func Sign(m []byte, sk *keys.SecretKey, f, i []byte) ([]byte, error) {
	if sk == nil {
		return nil, fmt.Errorf("%w: secret key is nil", pasetoerrors.ErrInvalidKey)
	}
	if sk.Version() != 4 {
		return nil, fmt.Errorf("%w: key was not minted for v4", pasetoerrors.ErrInvalidKey)
	}

	m2, err := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f, i)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}

	sig := primitive.Ed25519Sign(sk.Ed25519(), m2)

	body := append(append([]byte{}, m...), sig...)

	final := append([]byte(PublicPrefix), common.Base64URLEncode(body)...)
	if len(f) > 0 {
		final = append(final, '.')
		final = append(final, common.Base64URLEncode(f)...)
	}

	return final, nil
}

// Verify implements the PASETO v4.public signature verification primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#verify
func Verify(token []byte, pk *keys.PublicKey, f, i []byte) ([]byte, error) {
	if pk == nil {
		return nil, fmt.Errorf("%w: public key is nil", pasetoerrors.ErrInvalidKey)
	}
	if pk.Version() != 4 {
		return nil, fmt.Errorf("%w: key was not minted for v4", pasetoerrors.ErrInvalidKey)
	}

	tok, err := common.SplitToken(token, PublicPrefix)
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
	if len(raw) < signatureSize {
		return nil, fmt.Errorf("%w: token body shorter than signature", pasetoerrors.ErrBadInput)
	}

	m := raw[:len(raw)-signatureSize]
	sig := raw[len(raw)-signatureSize:]

	m2, err := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f, i)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pasetoerrors.ErrBadInput, err)
	}

	if !primitive.Ed25519Verify(pk.Ed25519(), m2, sig) {
		return nil, pasetoerrors.ErrAuthFail
	}

	return m, nil
}
