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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encode/decode
// configuration used throughout the bridge.
//
// Encoding uses RFC 8949 Core Deterministic Encoding so that the same
// logical value always produces identical bytes, which is what allows a
// conformance harness to diff hex output across implementations.
//
// The Value type parses arbitrary CBOR which may contain shapes that Go
// cannot represent natively, such as maps with bytestring keys. ByteString
// is a string-backed bytestring wrapper that stays usable as a map key.
package cbor
