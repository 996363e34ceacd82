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
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/blinklabs-io/cborbridge/cbor"
)

// FromJSON converts a JSON-compatible value into a value suitable for CBOR
// encoding, inverting the marker objects produced by ToJSON. It is total:
// malformed markers fall through to the ordinary-map branch instead of
// failing, since the markers are a best-effort convention rather than a
// strict schema.
func FromJSON(value any) any {
	return fromJson(value, 0)
}

func fromJson(value any, depth int) any {
	if depth > maxConvertDepth {
		return nil
	}
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return v
	case json.Number:
		return numberValue(v)
	case float64:
		// Only seen when the caller decoded JSON without UseNumber
		if v == math.Trunc(v) && v >= float64(minSafeInteger) &&
			v <= float64(maxSafeInteger) {
			return int64(v)
		}
		return v
	case string:
		if n, ok := parseIntegerString(v); ok {
			return n
		}
		return v
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = fromJson(item, depth+1)
		}
		return result
	case map[string]any:
		return fromJsonObject(v, depth)
	default:
		return v
	}
}

// fromJsonObject checks the marker keys in fixed priority order (bytes,
// float, tag, undefined); the first well-formed marker wins. A marker with
// a malformed payload is skipped, and an object matching no marker is
// treated as an ordinary text-keyed map.
func fromJsonObject(obj map[string]any, depth int) any {
	if raw, ok := obj[MarkerBytes]; ok {
		if hexStr, ok := raw.(string); ok {
			if data, err := HexDecode(hexStr); err == nil {
				return data
			}
		}
	}
	if raw, ok := obj[MarkerFloat]; ok {
		if floatStr, ok := raw.(string); ok {
			switch floatStr {
			case floatNaN:
				return math.NaN()
			case floatPosInf:
				return math.Inf(1)
			case floatNegInf:
				return math.Inf(-1)
			default:
				// Unknown float payloads have no meaningful image
				return nil
			}
		}
	}
	if rawTag, ok := obj[MarkerTag]; ok {
		if rawValue, ok := obj[MarkerTagValue]; ok {
			if tagNum, ok := tagNumber(rawTag); ok {
				return cbor.Tag{
					Number:  tagNum,
					Content: fromJson(rawValue, depth+1),
				}
			}
		}
	}
	if _, ok := obj[MarkerUndefined]; ok {
		// CBOR undefined has no Go representation and collapses to null
		return nil
	}
	result := make(map[string]any, len(obj))
	for key, val := range obj {
		result[key] = fromJson(val, depth+1)
	}
	return result
}

// numberValue maps a JSON number to int64, uint64, big.Int, or float64.
// json.Number preserves the original text, so integers above 2^53 keep
// full precision.
func numberValue(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if v, ok := parseIntegerString(s); ok {
			return v
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil
	}
	return f
}

// parseIntegerString parses a base-10 integer of arbitrary magnitude,
// preferring the smallest machine representation that holds it. Strings
// produced by ToJSON's out-of-range fallback come back as integers this
// way; the cost is that genuine text which happens to look like an integer
// is not representable, an accepted limitation of the marker convention.
func parseIntegerString(s string) (any, bool) {
	if s == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, true
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}

// tagNumber extracts an unsigned tag number from a tag marker payload
func tagNumber(raw any) (uint64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u, true
		}
	case uint64:
		return v, true
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	case float64:
		if v >= 0 && v == math.Trunc(v) && v < float64(math.MaxUint64) {
			return uint64(v), true
		}
	}
	return 0, false
}
