// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeByteString uint8 = 0x40
	CborTypeTextString uint8 = 0x60
	CborTypeArray      uint8 = 0x80
	CborTypeMap        uint8 = 0xa0
	CborTypeTag        uint8 = 0xc0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0
)

const (
	// Bignum tags (RFC 8949 section 3.4.3)
	CborTagUnsignedBignum uint64 = 2
	CborTagNegativeBignum uint64 = 3
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Aliases for the tag types for convenience
type Tag = _cbor.Tag
type RawTag = _cbor.RawTag
