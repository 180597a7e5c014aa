// Copyright 2026 The bigwrite Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"fmt"
	"io"
)

// Method identifies an output codec.
type Method string

const (
	None Method = "none"
	Gzip Method = "gzip"
	Zstd Method = "zstd"
	Lz4  Method = "lz4"
)

// Compressor wraps a sink with a compressing writer.
type Compressor interface {
	// NewWriter returns a writer that compresses into sink. Closing it
	// flushes the codec framing; it does not close sink.
	NewWriter(sink io.Writer) (io.WriteCloser, error)

	// Type returns the compression method.
	Type() Method

	// Extension returns the file extension (".gz", ".zst", ".lz4").
	Extension() string
}

// Config holds compression configuration.
type Config struct {
	Method Method
	Level  int // Compression level (method-specific, 0 = default)
}

// New creates a compressor based on config.
func New(cfg Config) (Compressor, error) {
	if cfg.Method == "" {
		cfg.Method = None
	}

	switch cfg.Method {
	case None:
		return NewNoneCompressor(), nil
	case Gzip:
		return NewGzipCompressor(cfg.Level)
	case Zstd:
		return NewZstdCompressor(cfg.Level)
	case Lz4:
		return NewLz4Compressor(cfg.Level)
	default:
		return nil, fmt.Errorf("unknown compression method: %s", cfg.Method)
	}
}
