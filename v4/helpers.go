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

	"github.com/lucidpaseto/paseto/internal/common"
	"github.com/lucidpaseto/paseto/internal/primitive"
	"github.com/lucidpaseto/paseto/keys"
)

// kdf derives the encryption key (Ek), the cipher nonce (n2), and the
// authentication key (Ak) from a v4.local symmetric key and the per-message
// random nonce n, using domain-separated keyed BLAKE2b.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#encrypt
func kdf(key *keys.SymmetricKey, n []byte) (ek, n2, ak []byte, err error) {
	if key == nil {
		return nil, nil, nil, fmt.Errorf("paseto: unable to derive keys from a nil key")
	}

	tmp, err := primitive.Blake2b(append([]byte("paseto-encryption-key"), n...), key.Bytes(), encryptionKDFLength)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paseto: unable to derive encryption key: %w", err)
	}
	ek = tmp[:KeyLength]
	n2 = tmp[KeyLength:]

	ak, err = primitive.Blake2b(append([]byte("paseto-auth-key-for-aead"), n...), key.Bytes(), authenticationKeyLength)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paseto: unable to derive authentication key: %w", err)
	}

	return ek, n2, ak, nil
}

// mac computes the BLAKE2b-keyed MAC over the pre-authentication encoding
// of the token's components, binding header, nonce, ciphertext, footer and
// implicit assertion.
func mac(ak []byte, h string, n, c, f, i []byte) ([]byte, error) {
	preAuth, err := common.PreAuthenticationEncoding([]byte(h), n, c, f, i)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to compute pre-authentication content: %w", err)
	}
	return primitive.Blake2b(preAuth, ak, macLength)
}
