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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLz4Compressor_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		level int
	}{
		{name: "simple text", data: "Hello, World!", level: 0},
		{name: "empty", data: "", level: 0},
		{name: "large text", data: strings.Repeat("The quick brown fox jumps over the lazy dog. ", 1000), level: 1},
		{name: "high compression", data: strings.Repeat("aaaa", 512), level: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLz4Compressor(tt.level)
			require.NoError(t, err)

			var sink bytes.Buffer
			w, err := c.NewWriter(&sink)
			require.NoError(t, err)
			_, err = w.Write([]byte(tt.data))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			got, err := io.ReadAll(lz4.NewReader(&sink))
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(got))
		})
	}
}

func TestNewLz4Compressor_InvalidLevel(t *testing.T) {
	_, err := NewLz4Compressor(10)
	assert.Error(t, err)

	_, err = NewLz4Compressor(-1)
	assert.Error(t, err)
}
