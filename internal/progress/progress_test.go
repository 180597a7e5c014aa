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

package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_DisabledPassthrough(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink, Config{Description: "test", TotalBytes: 5, Enabled: false})

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", sink.String())

	// Finish must be safe with no bar attached.
	w.Finish()
}

func TestWriter_EnabledStillWritesThrough(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink, Config{Description: "test", TotalBytes: 10, Enabled: true})

	n, err := w.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "0123456789", sink.String())
	w.Finish()
}

func TestWriter_IndeterminateTotal(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink, Config{Description: "test", TotalBytes: 0, Enabled: true})

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", sink.String())
	w.Finish()
}
