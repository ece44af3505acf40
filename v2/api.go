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

// Package v2 implements the PASETO v2.local and v2.public protocols.
//
// v2 is the historical, pre-algorithm-lucidity PASETO version: keys are
// plain byte slices rather than the typed, serialized keys used by v4.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version2.md
package v2

const (
	// SymmetricKeyLength is the required key size for v2.local.
	SymmetricKeyLength = 32

	nonceLength   = 24
	signatureSize = 64

	// LocalPrefix is the v2.local. token header.
	LocalPrefix = "v2.local."
	// PublicPrefix is the v2.public. token header.
	PublicPrefix = "v2.public."
)
