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
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/blinklabs-io/cborbridge/cbor"
)

// ToJSON converts a decoded CBOR value into its JSON-compatible
// representation, wrapping kinds that JSON cannot express natively in
// marker objects. It is total: every input kind has a defined image, and
// anything unrecognized degrades to nil rather than returning an error.
func ToJSON(value any) any {
	return toJson(value, 0)
}

func toJson(value any, depth int) any {
	if depth > maxConvertDepth {
		return nil
	}
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return v
	case string:
		return v
	case uint64:
		if v > uint64(maxSafeInteger) {
			return strconv.FormatUint(v, 10)
		}
		return int64(v)
	case int64:
		if v > maxSafeInteger || v < minSafeInteger {
			return strconv.FormatInt(v, 10)
		}
		return v
	case big.Int:
		if v.IsInt64() {
			if i := v.Int64(); i >= minSafeInteger && i <= maxSafeInteger {
				return i
			}
		}
		return v.String()
	case *big.Int:
		if v == nil {
			return nil
		}
		return toJson(*v, depth)
	case float64:
		if math.IsNaN(v) {
			return map[string]any{MarkerFloat: floatNaN}
		}
		if math.IsInf(v, 1) {
			return map[string]any{MarkerFloat: floatPosInf}
		}
		if math.IsInf(v, -1) {
			return map[string]any{MarkerFloat: floatNegInf}
		}
		return v
	case cbor.ByteString:
		return map[string]any{MarkerBytes: HexEncode(v.Bytes())}
	case []byte:
		return map[string]any{MarkerBytes: HexEncode(v)}
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = toJson(item, depth+1)
		}
		return result
	case map[any]any:
		// Stringified keys that collide are last-write-wins
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[mapKeyString(key, depth)] = toJson(val, depth+1)
		}
		return result
	case cbor.Tag:
		return map[string]any{
			MarkerTag:      v.Number,
			MarkerTagValue: toJson(v.Content, depth+1),
		}
	default:
		// Reserved/unassigned CBOR constructs have no JSON image
		return nil
	}
}

// mapKeyString converts a CBOR map key into a JSON object key. Text keys
// pass through unchanged, integer keys use their decimal form, and
// bytestring keys their hex form. Anything else falls back to a best-effort
// JSON debug string, since JSON cannot key objects on arbitrary types.
func mapKeyString(key any, depth int) string {
	switch k := key.(type) {
	case string:
		return k
	case uint64:
		return strconv.FormatUint(k, 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case big.Int:
		return k.String()
	case cbor.ByteString:
		return HexEncode(k.Bytes())
	default:
		keyJson, err := json.Marshal(toJson(key, depth+1))
		if err != nil {
			return fmt.Sprintf("%v", key)
		}
		return string(keyJson)
	}
}
