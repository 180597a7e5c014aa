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

	"github.com/pierrec/lz4/v4"
)

// Lz4Compressor implements the Compressor interface using lz4.
type Lz4Compressor struct {
	level lz4.CompressionLevel
}

// NewLz4Compressor creates a new lz4 compressor with the specified level.
// If level is 0, uses lz4.Fast (default).
// Valid levels: 0 (fast/default), 1-9 (increasing compression).
func NewLz4Compressor(level int) (*Lz4Compressor, error) {
	if level < 0 || level > 9 {
		return nil, fmt.Errorf("invalid lz4 compression level: %d (must be 0-9)", level)
	}

	var compLevel lz4.CompressionLevel
	switch {
	case level == 0:
		compLevel = lz4.Fast
	default:
		compLevel = lz4.CompressionLevel(1 << (8 + level))
	}

	return &Lz4Compressor{level: compLevel}, nil
}

// NewWriter returns an lz4 writer compressing into sink.
func (c *Lz4Compressor) NewWriter(sink io.Writer) (io.WriteCloser, error) {
	w := lz4.NewWriter(sink)
	if err := w.Apply(lz4.CompressionLevelOption(c.level)); err != nil {
		return nil, fmt.Errorf("failed to configure lz4 writer: %w", err)
	}
	return w, nil
}

// Type returns Lz4.
func (c *Lz4Compressor) Type() Method {
	return Lz4
}

// Extension returns the file extension for lz4 compressed files.
func (c *Lz4Compressor) Extension() string {
	return ".lz4"
}
