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
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/cborbridge/bridge"
)

func TestDecodeHex(t *testing.T) {
	result, err := bridge.DecodeHex("182a")
	if err != nil {
		t.Fatalf("failed to decode hex: %s", err)
	}
	if !reflect.DeepEqual(result, int64(42)) {
		t.Fatalf("did not get expected result, got: %#v, wanted: %d", result, 42)
	}
}

func TestDecodeHexInvalidHex(t *testing.T) {
	if _, err := bridge.DecodeHex("zz"); !errors.Is(err, bridge.ErrInvalidHex) {
		t.Fatalf("did not receive expected error, got: %v", err)
	}
}

func TestDecodeHexInvalidCbor(t *testing.T) {
	// Truncated array
	if _, err := bridge.DecodeHex("81"); err == nil {
		t.Fatalf("did not receive expected error for truncated CBOR")
	}
	// Empty payload
	if _, err := bridge.DecodeHex(""); err == nil {
		t.Fatalf("did not receive expected error for empty payload")
	}
}

func TestDecodeHexTrailingData(t *testing.T) {
	if _, err := bridge.DecodeHex("182a00"); err == nil {
		t.Fatalf("did not receive expected error for trailing data")
	}
}

func TestEncodeValue(t *testing.T) {
	testDefs := []struct {
		value       any
		expectedHex string
	}{
		{
			value:       nil,
			expectedHex: "f6",
		},
		{
			value:       map[string]any{"__cbor_bytes__": "deadbeef"},
			expectedHex: "44deadbeef",
		},
	}
	for _, testDef := range testDefs {
		cborHex, err := bridge.EncodeValue(testDef.value)
		if err != nil {
			t.Fatalf("failed to encode value: %s", err)
		}
		if cborHex != testDef.expectedHex {
			t.Fatalf(
				"did not get expected hex, got: %s, wanted: %s",
				cborHex,
				testDef.expectedHex,
			)
		}
	}
}

func TestDiagnoseHex(t *testing.T) {
	diag, err := bridge.DiagnoseHex("83010203")
	if err != nil {
		t.Fatalf("failed to diagnose hex: %s", err)
	}
	if diag != "[1, 2, 3]" {
		t.Fatalf("did not get expected diagnostic notation: %s", diag)
	}
	if _, err := bridge.DiagnoseHex("zz"); !errors.Is(err, bridge.ErrInvalidHex) {
		t.Fatalf("did not receive expected error for invalid hex")
	}
}
