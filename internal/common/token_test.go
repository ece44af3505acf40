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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitToken(t *testing.T) {
	tok, err := SplitToken([]byte("v4.local.AAAA.ZXhhbXBsZQ"), "v4.local.")
	assert.NoError(t, err)
	assert.Equal(t, []byte("AAAA"), tok.Body)
	assert.Equal(t, []byte("ZXhhbXBsZQ"), tok.FooterRaw)

	tok, err = SplitToken([]byte("v4.local.AAAA"), "v4.local.")
	assert.NoError(t, err)
	assert.Nil(t, tok.FooterRaw)

	_, err = SplitToken([]byte("v4.local.AAAA.foo.bar"), "v4.local.")
	assert.Error(t, err)

	_, err = SplitToken([]byte("v2.local.AAAA"), "v4.local.")
	assert.Error(t, err)
}

func TestCheckFooter(t *testing.T) {
	footer := []byte(`{"kid":"abc"}`)
	raw := Base64URLEncode(footer)

	assert.True(t, CheckFooter(footer, raw))
	assert.True(t, CheckFooter(nil, nil), "absent assertion always passes")
	assert.False(t, CheckFooter(footer, Base64URLEncode([]byte("other"))))
}

func TestDecodeFooter(t *testing.T) {
	got, err := DecodeFooter(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeFooter(Base64URLEncode([]byte("hello")))
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}
