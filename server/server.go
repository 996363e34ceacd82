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

// Package server exposes the bridge operations over HTTP for use by a
// conformance harness: GET /health for implementation metadata, POST
// /decode and /encode for the conversion paths, and POST /diagnose for
// human-readable diagnostic notation.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	libraryName    = "fxamacker-cbor"
	libraryVersion = "2.9.0"
)

// HealthResponse describes the implementation behind the bridge, so a
// harness can label results per library
type HealthResponse struct {
	Status   string `json:"status"`
	Library  string `json:"library"`
	Version  string `json:"version"`
	Language string `json:"language"`
}

type Server struct {
	listenAddress string
	logger        zerolog.Logger
	router        *gin.Engine
}

func New(listenAddress string, logger zerolog.Logger) *Server {
	s := &Server{
		listenAddress: listenAddress,
		logger:        logger,
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.GET("/health", s.handleHealth)
	router.POST("/decode", s.handleDecode)
	router.POST("/encode", s.handleEncode)
	router.POST("/diagnose", s.handleDiagnose)
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(
			http.StatusMethodNotAllowed,
			gin.H{"success": false, "error": "Method not allowed"},
		)
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	s.router = router
	return s
}

// Router returns the underlying HTTP handler, mostly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP listener and blocks until the listener fails or the
// provided context is canceled, at which point the server shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listenAddress,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()
	s.logger.Info().
		Str("listen", s.listenAddress).
		Str("library", libraryName).
		Str("version", libraryVersion).
		Msg("listening for bridge requests")
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
