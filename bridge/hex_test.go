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

package bridge_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/cborbridge/bridge"
)

func TestHexRoundTrip(t *testing.T) {
	testDefs := [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		{0x00, 0x01, 0x7f, 0x80, 0xff},
	}
	for _, testDef := range testDefs {
		encoded := bridge.HexEncode(testDef)
		decoded, err := bridge.HexDecode(encoded)
		if err != nil {
			t.Fatalf("failed to decode hex: %s", err)
		}
		if !bytes.Equal(decoded, testDef) {
			t.Fatalf(
				"bytes did not round-trip through hex\n  got:    %x\n  wanted: %x",
				decoded,
				testDef,
			)
		}
	}
}

func TestHexDecodeMixedCase(t *testing.T) {
	decoded, err := bridge.HexDecode("DEADbeEF")
	if err != nil {
		t.Fatalf("failed to decode mixed-case hex: %s", err)
	}
	expected := []byte{0xde, 0xad, 0xbe, 0xef}
	if !bytes.Equal(decoded, expected) {
		t.Fatalf(
			"did not get expected bytes\n  got:    %x\n  wanted: %x",
			decoded,
			expected,
		)
	}
	// Re-encoding normalizes to lowercase
	if bridge.HexEncode(decoded) != "deadbeef" {
		t.Fatalf("hex encoding was not lowercase: %s", bridge.HexEncode(decoded))
	}
}

func TestHexDecodeInvalid(t *testing.T) {
	testDefs := []string{
		// Odd length
		"abc",
		// Invalid characters
		"zz",
		"0g",
	}
	for _, testDef := range testDefs {
		if _, err := bridge.HexDecode(testDef); !errors.Is(err, bridge.ErrInvalidHex) {
			t.Fatalf(
				"did not receive expected error for %q, got: %v",
				testDef,
				err,
			)
		}
	}
}
