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

// Package errors defines the closed set of failure reasons that can cross
// the paseto library boundary. Callers are expected to discriminate with
// errors.Is against these sentinels rather than matching error strings.
package errors

import "errors"

var (
	// ErrInvalidHeader means the token does not start with the expected
	// version/purpose literal.
	ErrInvalidHeader = errors.New("paseto: invalid header")

	// ErrInvalidFooter means the caller-asserted footer does not match
	// the token's footer.
	ErrInvalidFooter = errors.New("paseto: invalid footer")

	// ErrInvalidMAC means the v4.local authentication tag did not match.
	ErrInvalidMAC = errors.New("paseto: invalid mac")

	// ErrAuthFail means the v2.local AEAD or the Ed25519 signature
	// verification failed.
	ErrAuthFail = errors.New("paseto: authentication failed")

	// ErrInvalidKey means a key's serialized prefix does not match the
	// operation's version/purpose, or a raw key has the wrong length.
	ErrInvalidKey = errors.New("paseto: invalid key")

	// ErrBadInput means malformed base64 length, a PAE input that is not
	// a byte-string sequence, or some other structural input fault.
	ErrBadInput = errors.New("paseto: bad input")
)
