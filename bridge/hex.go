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

package bridge

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHex is returned when a hex payload has odd length or contains a
// character outside [0-9a-fA-F]
var ErrInvalidHex = errors.New("invalid hex")

// HexEncode returns the lowercase hex representation of the provided bytes
func HexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

// HexDecode decodes a hex string into raw bytes. Mixed-case input is
// accepted. This is the only failure point in the conversion core.
func HexDecode(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHex, err)
	}
	return data, nil
}
