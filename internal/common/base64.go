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
	"encoding/base64"
	"fmt"
)

// padSizeForLength maps a base64 string length modulo 4 to the number of
// '=' characters required to reconstruct valid standard padding. A residue
// of 1 can never occur in a well-formed base64 stream.
var padSizeForLength = [4]int{0, -1, 2, 1}

// Base64URLEncode returns the unpadded RFC 4648 §5 encoding of data.
func Base64URLEncode(data []byte) []byte {
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(data)))
	base64.RawURLEncoding.Encode(out, data)
	return out
}

// Base64URLDecode looks up the padding size for len(data) mod 4 and strictly
// decodes the unpadded RFC 4648 §5 alphabet. A length with residue 1 is
// rejected, since no valid base64 string has that shape, and so is a final
// character whose unused trailing bits are not zero.
func Base64URLDecode(data []byte) ([]byte, error) {
	pad := padSizeForLength[len(data)%4]
	if pad < 0 {
		return nil, fmt.Errorf("paseto: invalid base64 length %d", len(data))
	}

	enc := base64.RawURLEncoding.Strict()
	out := make([]byte, enc.DecodedLen(len(data)))
	n, err := enc.Decode(out, data)
	if err != nil {
		return nil, fmt.Errorf("paseto: invalid base64 encoding: %w", err)
	}

	return out[:n], nil
}
