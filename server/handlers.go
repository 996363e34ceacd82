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

package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blinklabs-io/cborbridge/bridge"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Library:  libraryName,
		Version:  libraryVersion,
		Language: "go",
	})
}

func (s *Server) handleDecode(c *gin.Context) {
	var req bridge.DecodeRequest
	if !s.parseBody(c, &req) {
		return
	}
	if req.Hex == "" {
		c.JSON(
			http.StatusBadRequest,
			bridge.DecodeResponse{Error: `Missing "hex" field`},
		)
		return
	}
	start := time.Now()
	result, err := bridge.DecodeHex(req.Hex)
	if err != nil {
		// Payload-level failures are reported in the envelope, not as
		// HTTP errors
		c.JSON(http.StatusOK, bridge.DecodeResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, bridge.DecodeResponse{
		Success:    true,
		Result:     result,
		DurationMs: durationMs(start),
	})
}

func (s *Server) handleEncode(c *gin.Context) {
	var req bridge.EncodeRequest
	if !s.parseBody(c, &req) {
		return
	}
	start := time.Now()
	hexStr, err := bridge.EncodeValue(req.Value)
	if err != nil {
		c.JSON(http.StatusOK, bridge.EncodeResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, bridge.EncodeResponse{
		Success:    true,
		Hex:        hexStr,
		DurationMs: durationMs(start),
	})
}

func (s *Server) handleDiagnose(c *gin.Context) {
	var req bridge.DiagnoseRequest
	if !s.parseBody(c, &req) {
		return
	}
	if req.Hex == "" {
		c.JSON(
			http.StatusBadRequest,
			bridge.DiagnoseResponse{Error: `Missing "hex" field`},
		)
		return
	}
	diag, err := bridge.DiagnoseHex(req.Hex)
	if err != nil {
		c.JSON(http.StatusOK, bridge.DiagnoseResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, bridge.DiagnoseResponse{
		Success:    true,
		Diagnostic: diag,
	})
}

// parseBody reads and decodes the request body with number fidelity. It
// writes the 400 response itself and returns false when the body cannot be
// used.
func (s *Server) parseBody(c *gin.Context, dest any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"success": false, "error": "Invalid request body"},
		)
		return false
	}
	if err := bridge.ParseRequest(body, dest); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"success": false, "error": "Invalid JSON"},
		)
		return false
	}
	return true
}

func durationMs(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1_000_000
}
