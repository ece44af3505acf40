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

package keys

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pasetoerrors "github.com/lucidpaseto/paseto/errors"
)

func TestSymmetricKeySerializationRoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte{0x2a}, SymmetricKeyLength)
	k, err := NewSymmetricKey(4, raw)
	assert.NoError(t, err)
	assert.Equal(t, "k4.local.KioqKioqKioqKioqKioqKioqKioqKioqKioqKioqKio", k.String())

	parsed, err := ParseSymmetricKey(k.String(), 4)
	assert.NoError(t, err)
	assert.Equal(t, raw, parsed.Bytes())
}

func TestNewSymmetricKeyWrongLength(t *testing.T) {
	_, err := NewSymmetricKey(4, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, pasetoerrors.ErrInvalidKey))
}

func TestParseSymmetricKeyWrongPurpose(t *testing.T) {
	_, secret, err := GenerateAsymmetricKey(rand.Reader, 4)
	assert.NoError(t, err)

	_, err = ParseSymmetricKey(secret.String(), 4)
	assert.True(t, errors.Is(err, pasetoerrors.ErrInvalidKey), "a k4.secret. value must not parse as a local key")
}

func TestParseSymmetricKeyWrongVersion(t *testing.T) {
	sym, err := GenerateSymmetricKey(rand.Reader, 4)
	assert.NoError(t, err)

	_, err = ParseSymmetricKey(sym.String(), 2)
	assert.True(t, errors.Is(err, pasetoerrors.ErrInvalidKey))
}

func TestAsymmetricKeySerializationRoundTrip(t *testing.T) {
	pub, secret, err := GenerateAsymmetricKey(rand.Reader, 4)
	assert.NoError(t, err)

	parsedPub, err := ParsePublicKey(pub.String(), 4)
	assert.NoError(t, err)
	assert.Equal(t, pub.Bytes(), parsedPub.Bytes())

	parsedSecret, err := ParseSecretKey(secret.String(), 4)
	assert.NoError(t, err)
	assert.Equal(t, secret.Bytes(), parsedSecret.Bytes())

	assert.Equal(t, pub.Bytes(), secret.Public().Bytes())
}

func TestParsePublicKeyRejectsSecretPrefix(t *testing.T) {
	_, secret, err := GenerateAsymmetricKey(rand.Reader, 4)
	assert.NoError(t, err)

	_, err = ParsePublicKey(secret.String(), 4)
	assert.True(t, errors.Is(err, pasetoerrors.ErrInvalidKey))
}

func TestZeroClearsKeyMaterial(t *testing.T) {
	k, err := GenerateSymmetricKey(rand.Reader, 4)
	assert.NoError(t, err)
	assert.NotEqual(t, make([]byte, SymmetricKeyLength), k.Bytes())

	k.Zero()
	assert.Equal(t, make([]byte, SymmetricKeyLength), k.Bytes())
}
