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
	"bytes"
	"errors"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

// getEncMode returns a cached EncMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		encOptions := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
			// Non-finite floats use the canonical half-precision forms
			NaNConvert: _cbor.NaNConvert7e00,
			InfConvert: _cbor.InfConvertFloat16,
		}
		cachedEncMode, cachedEncModeErr = encOptions.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	if em == nil {
		return nil, errors.New("CBOR encoder mode not initialized")
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}
