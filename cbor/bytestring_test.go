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

package cbor_test

import (
	"reflect"
	"testing"

	"github.com/blinklabs-io/cborbridge/cbor"
	"github.com/blinklabs-io/cborbridge/internal/test"
)

func TestByteStringDecode(t *testing.T) {
	cborData := test.DecodeHexString("44deadbeef")
	var bs cbor.ByteString
	if _, err := cbor.Decode(cborData, &bs); err != nil {
		t.Fatalf("failed to decode CBOR data: %s", err)
	}
	expectedBytes := test.DecodeHexString("deadbeef")
	if !reflect.DeepEqual(bs.Bytes(), expectedBytes) {
		t.Fatalf(
			"did not get expected bytes\n  got:    %x\n  wanted: %x",
			bs.Bytes(),
			expectedBytes,
		)
	}
	if bs.String() != "deadbeef" {
		t.Fatalf(
			"did not get expected string, got: %s, wanted: %s",
			bs.String(),
			"deadbeef",
		)
	}
}

func TestByteStringAsMapKey(t *testing.T) {
	key := cbor.NewByteString(test.DecodeHexString("abcdef"))
	tmpMap := map[cbor.ByteString]int{
		key: 42,
	}
	if tmpMap[cbor.NewByteString(test.DecodeHexString("abcdef"))] != 42 {
		t.Fatalf("did not find expected value via ByteString map key")
	}
}
