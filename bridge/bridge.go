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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/cborbridge/cbor"
)

// DecodeRequest is the request body for the decode operation
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// DecodeResponse is the result envelope for the decode operation
type DecodeResponse struct {
	Success    bool    `json:"success"`
	Result     any     `json:"result,omitempty"`
	Error      string  `json:"error,omitempty"`
	DurationMs float64 `json:"duration_ms,omitempty"`
}

// EncodeRequest is the request body for the encode operation
type EncodeRequest struct {
	Value any `json:"value"`
}

// EncodeResponse is the result envelope for the encode operation
type EncodeResponse struct {
	Success    bool    `json:"success"`
	Hex        string  `json:"hex,omitempty"`
	Error      string  `json:"error,omitempty"`
	DurationMs float64 `json:"duration_ms,omitempty"`
}

// DiagnoseRequest is the request body for the diagnose operation
type DiagnoseRequest struct {
	Hex string `json:"hex"`
}

// DiagnoseResponse is the result envelope for the diagnose operation
type DiagnoseResponse struct {
	Success    bool   `json:"success"`
	Diagnostic string `json:"diagnostic,omitempty"`
	Error      string `json:"error,omitempty"`
}

// DecodeHex decodes a hex-encoded CBOR payload into its JSON-compatible
// representation. It fails on malformed hex, malformed CBOR, or trailing
// bytes after the first CBOR item.
func DecodeHex(hexStr string) (any, error) {
	data, err := HexDecode(hexStr)
	if err != nil {
		return nil, err
	}
	var value cbor.Value
	n, err := cbor.Decode(data, &value)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf(
			"extraneous data after CBOR item: %d bytes",
			len(data)-n,
		)
	}
	return ToJSON(value.Value()), nil
}

// EncodeValue encodes a JSON-compatible value into hex-encoded CBOR
func EncodeValue(value any) (string, error) {
	data, err := cbor.Encode(FromJSON(value))
	if err != nil {
		return "", err
	}
	return HexEncode(data), nil
}

// DiagnoseHex returns the RFC 8949 diagnostic notation for a hex-encoded
// CBOR payload
func DiagnoseHex(hexStr string) (string, error) {
	data, err := HexDecode(hexStr)
	if err != nil {
		return "", err
	}
	return cbor.Diagnose(data)
}

// ParseRequest decodes request JSON with number fidelity: integers larger
// than 2^53 must survive the front door, so numbers are kept as json.Number
// instead of being collapsed to float64
func ParseRequest(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dest)
}
