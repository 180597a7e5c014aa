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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Config holds configuration for progress tracking
type Config struct {
	Description string // Description of the operation
	TotalBytes  int64  // Total bytes to process (0 for indeterminate)
	Enabled     bool   // Only true when --progress flag is set
}

// Writer wraps an io.Writer with optional progress tracking
type Writer struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewWriter creates a new progress-tracking writer
// If config.Enabled is false, returns a pass-through writer with no progress bar
func NewWriter(w io.Writer, cfg Config) *Writer {
	if !cfg.Enabled {
		// Silent mode - no progress bar
		return &Writer{writer: w}
	}

	// Progress bar writes to stderr to not interfere with stdout
	var bar *progressbar.ProgressBar
	if cfg.TotalBytes > 0 {
		// Determinate progress bar (known size)
		bar = progressbar.NewOptions64(
			cfg.TotalBytes,
			progressbar.OptionSetDescription(cfg.Description),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
			progressbar.OptionSetWriter(os.Stderr), // Progress to stderr
		)
	} else {
		// Indeterminate progress (spinner)
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(cfg.Description),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
		)
	}

	return &Writer{writer: w, bar: bar}
}

// Write implements io.Writer and updates the progress bar
func (pw *Writer) Write(p []byte) (int, error) {
	n, err := pw.writer.Write(p)
	if pw.bar != nil && n > 0 {
		pw.bar.Add(n)
	}
	return n, err
}

// Finish ensures the progress bar completes
func (pw *Writer) Finish() {
	if pw.bar != nil {
		pw.bar.Finish()
	}
}
