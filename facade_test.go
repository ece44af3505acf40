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

package paseto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucidpaseto/paseto/v2"
)

func TestFacadeV4LocalRoundTrip(t *testing.T) {
	key, err := CreateSymmetricKey()
	assert.NoError(t, err)

	m := []byte("my super secret message")
	f := []byte(`{"kid":"1234567890"}`)
	i := []byte(`{"user_id":"1234567890"}`)

	token, err := EncryptV4(rand.Reader, key, m, f, i)
	assert.NoError(t, err)

	got, err := DecryptV4(key, token, f, i)
	assert.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFacadeV4PublicRoundTrip(t *testing.T) {
	pk, sk, err := CreateAsymmetricKey()
	assert.NoError(t, err)

	m := []byte("my super secret message")
	f := []byte(`{"kid":"1234567890"}`)
	i := []byte(`{"user_id":"1234567890"}`)

	token, err := SignV4(m, sk, f, i)
	assert.NoError(t, err)

	got, err := VerifyV4(token, pk, f, i)
	assert.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFacadeV2LocalRoundTrip(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	assert.NoError(t, err)

	m := []byte("my super secret message")
	token, err := EncryptV2(rand.Reader, key, m, nil)
	assert.NoError(t, err)

	got, err := DecryptV2(token, key, nil)
	assert.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestSymmetricKeyFromSeedIsDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	k1, err := SymmetricKeyFromSeed(seed)
	assert.NoError(t, err)
	k2, err := SymmetricKeyFromSeed(seed)
	assert.NoError(t, err)
	assert.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestAsymmetricKeyFromSeedIsDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	pk1, sk1, err := AsymmetricKeyFromSeed(seed)
	assert.NoError(t, err)
	pk2, sk2, err := AsymmetricKeyFromSeed(seed)
	assert.NoError(t, err)
	assert.Equal(t, pk1.Bytes(), pk2.Bytes())
	assert.Equal(t, sk1.Bytes(), sk2.Bytes())
}
