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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/blinklabs-io/cborbridge/bridge"
	"github.com/blinklabs-io/cborbridge/server"
)

const programName = "cbor-bridge"

// cliResult is the single-line envelope printed by the stdin/stdout verbs
type cliResult struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "decode":
		err = runPipe(decodeStdin)
	case "encode":
		err = runPipe(encodeStdin)
	case "diagnose":
		err = runPipe(diagnoseStdin)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(
		os.Stderr,
		"Usage: %s <serve|encode|decode|diagnose> [args]\n",
		programName,
	)
}

// runPipe runs a stdin/stdout verb and prints its envelope as a single JSON
// line. A failed operation still prints a well-formed envelope before the
// non-zero exit.
func runPipe(op func(io.Reader) (any, error)) error {
	result, err := op(os.Stdin)
	out := cliResult{Success: true, Result: result}
	if err != nil {
		out = cliResult{Error: err.Error()}
	}
	line, jsonErr := json.Marshal(out)
	if jsonErr != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal result: %s\n", jsonErr)
		return jsonErr
	}
	fmt.Println(string(line))
	return err
}

func decodeStdin(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bridge.DecodeHex(strings.TrimSpace(string(data)))
}

func encodeStdin(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var value any
	if err := bridge.ParseRequest(data, &value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	hexStr, err := bridge.EncodeValue(value)
	if err != nil {
		return nil, err
	}
	return hexStr, nil
}

func diagnoseStdin(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	diag, err := bridge.DiagnoseHex(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	return diag, nil
}

func runServe(args []string) error {
	flagset := flag.NewFlagSet("serve", flag.ExitOnError)
	listenAddress := flagset.String(
		"listen",
		":8080",
		"address to listen on for bridge requests",
	)
	if err := flagset.Parse(args); err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", programName).Logger()
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	srv := server.New(*listenAddress, logger)
	if err := srv.Run(ctx); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}
