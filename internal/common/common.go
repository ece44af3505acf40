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
	"crypto/subtle"
)

// le64 appends n to dst as an 8-byte little-endian integer.
func le64(dst []byte, n uint64) []byte {
	for i := 0; i < 8; i++ {
		dst = append(dst, byte(n))
		n >>= 8
	}
	return dst
}

// PreAuthenticationEncoding implements PAE: a little-endian piece count
// followed by each piece as its own little-endian length prefix plus its
// raw bytes. The result is the exact byte string every PASETO MAC and
// signature authenticates.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Common.md#authentication-padding
func PreAuthenticationEncoding(pieces ...[]byte) ([]byte, error) {
	size := 8
	for _, p := range pieces {
		size += 8 + len(p)
	}

	out := make([]byte, 0, size)
	out = le64(out, uint64(len(pieces)))
	for _, p := range pieces {
		out = le64(out, uint64(len(p)))
		out = append(out, p...)
	}
	return out, nil
}

// SecureCompare reports whether given and actual hold equal bytes, in time
// independent of where they first differ. Unequal lengths are rejected
// without ever touching an out-of-range index: on a length mismatch the
// comparison operand is swapped for a same-length zero buffer, the byte
// comparison still runs, and its result is ANDed with the length check.
func SecureCompare(given, actual []byte) bool {
	lenEq := subtle.ConstantTimeEq(int32(len(given)), int32(len(actual)))

	cmp := given
	if lenEq == 0 {
		cmp = make([]byte, len(actual))
	}

	bytesEq := subtle.ConstantTimeCompare(cmp, actual)
	return lenEq&int32(bytesEq) == 1
}
