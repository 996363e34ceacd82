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

// Package bridge converts between decoded CBOR values and a JSON-compatible
// representation without losing the CBOR kinds that JSON cannot express
// natively. Byte strings, non-finite floats, and semantic tags travel
// through JSON as small marker objects carrying a reserved key; integers
// outside the safe-integer envelope travel as decimal strings.
//
// A map that genuinely contains one of the reserved keys cannot be told
// apart from a marker object. This is an accepted limitation of the marker
// convention, not something the converter tries to detect or repair.
package bridge

// Reserved keys used by marker objects
const (
	MarkerBytes     = "__cbor_bytes__"
	MarkerFloat     = "__cbor_float__"
	MarkerTag       = "__cbor_tag__"
	MarkerTagValue  = "__cbor_value__"
	MarkerUndefined = "__cbor_undefined__"
)

// Payload strings for the non-finite float marker
const (
	floatNaN    = "NaN"
	floatPosInf = "Infinity"
	floatNegInf = "-Infinity"
)

// Integers outside this range lose precision in JSON consumers that store
// numbers as IEEE-754 doubles, so they're emitted as decimal strings
const (
	maxSafeInteger int64 = 9007199254740991
	minSafeInteger int64 = -9007199254740991
)

// Nesting depth cap shared by both conversion directions, matching the
// decoder's MaxNestedLevels. Beyond the cap the converter degrades to null
// instead of recursing further.
const maxConvertDepth = 256
