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

// Package v4 implements the PASETO v4.local and v4.public protocols, the
// current PASETO versions built entirely on modern, non-NIST primitives:
// BLAKE2b, XChaCha20, and Ed25519.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md
package v4

import "crypto/ed25519"

const (
	// LocalPrefix is the v4.local. token header.
	LocalPrefix = "v4.local."
	// PublicPrefix is the v4.public. token header.
	PublicPrefix = "v4.public."

	// KeyLength is the size of a v4.local symmetric key and of the derived
	// encryption/authentication subkeys.
	KeyLength = 32

	nonceLength             = 32
	macLength               = 32
	encryptionKDFLength     = 56 // Ek (32 bytes) || n2 (24 bytes)
	authenticationKeyLength = 32

	signatureSize = ed25519.SignatureSize
)
