package payload

import (
	"fmt"
	"math/rand"
)

// Printable characters span space through '}'. The upper bound is
// exclusive, so '~' never appears in generated output.
const (
	printableLo = 0x20
	printableHi = 0x7E
)

// Terminator is the fixed final byte of every non-empty generated buffer.
const Terminator = '\n'

// Generator produces printable random buffers from an owned, seeded
// source. Given the same seed and length it produces identical bytes,
// so any run can be reproduced from its logged seed alone.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate returns a buffer of exactly length bytes: random printable
// characters followed by the terminator. A length of 0 yields an empty
// buffer. A negative length is an error, as is a length the runtime
// cannot allocate.
func (g *Generator) Generate(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("length must not be negative, got %d", length)
	}
	buf, err := alloc(length)
	if err != nil {
		return nil, err
	}
	g.Fill(buf)
	return buf, nil
}

// Fill overwrites buf with random printable characters and sets the final
// byte to the terminator. An empty buf is left untouched.
func (g *Generator) Fill(buf []byte) {
	if len(buf) == 0 {
		return
	}
	for i := range buf[:len(buf)-1] {
		buf[i] = byte(printableLo + g.rng.Intn(printableHi-printableLo))
	}
	buf[len(buf)-1] = Terminator
}

// alloc converts makeslice panics for lengths the runtime rejects into an
// error the caller can report instead of a crash.
func alloc(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot allocate %d bytes: %v", n, r)
		}
	}()
	return make([]byte, n), nil
}
