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
	"bytes"
	"fmt"
)

// Token is a parsed, but not yet decoded, PASETO token: the header has been
// matched and the body and footer are still base64url text.
type Token struct {
	Body      []byte
	FooterRaw []byte // nil when the token carries no footer segment
}

// SplitToken verifies that raw begins with prefix and splits the remainder
// into its base64 body and, when a third dot-delimited segment is present,
// its raw (still base64-encoded) footer. After the header a token must have
// one or two dot-delimited segments (body and optional footer), that is two
// or three counting the header; anything else is a structural fault.
func SplitToken(raw []byte, prefix string) (*Token, error) {
	if !bytes.HasPrefix(raw, []byte(prefix)) {
		return nil, fmt.Errorf("paseto: token does not start with %q", prefix)
	}

	rest := raw[len(prefix):]

	parts := bytes.Split(rest, []byte("."))
	switch len(parts) {
	case 1:
		return &Token{Body: parts[0]}, nil
	case 2:
		return &Token{Body: parts[0], FooterRaw: parts[1]}, nil
	default:
		return nil, fmt.Errorf("paseto: token has %d segments, expected 2 or 3", len(parts)+1)
	}
}

// CheckFooter constant-time compares the base64url encoding of an
// expected footer against the raw footer segment found in the token,
// per the framing rule that footer equality is judged on the wire form
// rather than on decoded bytes. An empty expected footer means the
// caller made no assertion and the check always succeeds.
func CheckFooter(expected, footerRaw []byte) bool {
	if len(expected) == 0 {
		return true
	}
	return SecureCompare(Base64URLEncode(expected), footerRaw)
}

// DecodeFooter decodes a token's raw footer segment, if any, to the bytes
// that participate in pre-authentication encoding.
func DecodeFooter(footerRaw []byte) ([]byte, error) {
	if len(footerRaw) == 0 {
		return nil, nil
	}
	return Base64URLDecode(footerRaw)
}
