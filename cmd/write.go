package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spillbyte/bigwrite/internal/compress"
	"github.com/spillbyte/bigwrite/internal/drain"
	"github.com/spillbyte/bigwrite/internal/errors"
	"github.com/spillbyte/bigwrite/internal/payload"
	"github.com/spillbyte/bigwrite/internal/progress"
)

var (
	writeSeed     int64
	writeOutput   string
	writeChunk    int
	writeMaxStall int
	writeCompress string
	writeLevel    int
	writeProgress bool
	writeQuiet    bool
)

// successMarker trails the buffer on the primary output. The leading
// newline keeps it on its own line even if the payload is mid-line when a
// terminal is watching.
const successMarker = "\nSUCCESS\n"

func init() {
	rootCmd.Flags().Int64Var(&writeSeed, "seed", 0, "Generator seed (default: derived from the wall clock)")
	rootCmd.Flags().StringVarP(&writeOutput, "output", "o", "-", "Output file (\"-\" for stdout)")
	rootCmd.Flags().IntVar(&writeChunk, "chunk", 0, "Max bytes offered per write call (0 = whole remainder)")
	rootCmd.Flags().IntVar(&writeMaxStall, "max-stall", 0, "Abort after this many consecutive zero-byte writes (0 = retry forever)")
	rootCmd.Flags().StringVar(&writeCompress, "compress", "none", "Compress output (none, gzip, zstd, lz4)")
	rootCmd.Flags().IntVar(&writeLevel, "level", 0, "Compression level (codec-specific, 0 = default)")
	rootCmd.Flags().BoolVar(&writeProgress, "progress", false, "Show a progress bar on stderr")
	rootCmd.Flags().BoolVarP(&writeQuiet, "quiet", "q", false, "Suppress per-write progress lines")
}

// writeConfig carries one fully validated invocation.
type writeConfig struct {
	Count    int
	Seed     int64
	Chunk    int
	MaxStall int
	Compress compress.Config
	Progress bool
	Quiet    bool
}

func runWrite(cmd *cobra.Command, args []string) error {
	count, err := parseCount(args[0])
	if err != nil {
		return err
	}

	seed := writeSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	var out io.Writer = os.Stdout
	if writeOutput != "" && writeOutput != "-" {
		f, err := os.Create(writeOutput)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("Failed to create output file %s", writeOutput),
				"Check that the directory exists and is writable")
		}
		defer f.Close()
		out = f
	}

	cfg := writeConfig{
		Count:    count,
		Seed:     seed,
		Chunk:    writeChunk,
		MaxStall: writeMaxStall,
		Compress: compress.Config{
			Method: compress.Method(writeCompress),
			Level:  writeLevel,
		},
		Progress: writeProgress,
		Quiet:    writeQuiet,
	}

	return writeBuffer(cfg, out, cmd.ErrOrStderr())
}

// parseCount validates the positional buffer-size argument.
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.InvalidCount(arg, "not an integer",
			"Pass the buffer size as a decimal byte count, e.g. bigwrite 1048576")
	}
	if n < 0 {
		return 0, errors.InvalidCount(arg, "count must not be negative",
			"Use 0 for an empty buffer or any positive byte count")
	}
	return n, nil
}

// writeBuffer generates the payload and drains it into out, then emits
// the success marker. Diagnostics (seed, per-write progress, errors that
// bubble up) go to diag.
func writeBuffer(cfg writeConfig, out io.Writer, diag io.Writer) error {
	fmt.Fprintf(diag, "seed %d\n", cfg.Seed)

	gen := payload.NewGenerator(cfg.Seed)
	buf, err := gen.Generate(cfg.Count)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Failed to allocate a %d byte buffer", cfg.Count),
			"Try a smaller count")
	}

	codec, err := compress.New(cfg.Compress)
	if err != nil {
		return errors.Wrap(err, "Failed to initialize compression",
			"Valid methods are none, gzip, zstd and lz4")
	}

	sink := out
	var bar *progress.Writer
	if cfg.Progress {
		bar = progress.NewWriter(sink, progress.Config{
			Description: "writing",
			TotalBytes:  int64(len(buf)),
			Enabled:     true,
		})
		sink = bar
	}

	cw, err := codec.NewWriter(sink)
	if err != nil {
		return errors.Wrap(err, "Failed to initialize compression",
			"Valid methods are none, gzip, zstd and lz4")
	}

	opts := drain.Options{
		ChunkSize: cfg.Chunk,
		MaxStall:  cfg.MaxStall,
	}
	if !cfg.Quiet {
		opts.Report = func(wrote, remaining int) {
			fmt.Fprintf(diag, "wrote %d bytes (%d remaining)\n", wrote, remaining)
		}
	}

	if _, err := drain.WriteAll(cw, buf, opts); err != nil {
		cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to flush compressed output: %w", err)
	}
	if bar != nil {
		bar.Finish()
	}

	// A small write through the same reliable path, proving the sink
	// still accepts data right after the large transfer.
	if _, err := drain.WriteAll(out, []byte(successMarker), drain.Options{}); err != nil {
		return err
	}
	return nil
}
