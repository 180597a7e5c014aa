package payload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "single byte", length: 1},
		{name: "two bytes", length: 2},
		{name: "small", length: 10},
		{name: "page sized", length: 4096},
		{name: "large", length: 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(1)
			buf, err := gen.Generate(tt.length)
			require.NoError(t, err)
			require.Len(t, buf, tt.length)

			assert.Equal(t, byte(Terminator), buf[tt.length-1])
			for i, b := range buf[:tt.length-1] {
				if b < 0x20 || b >= 0x7E {
					t.Fatalf("byte %d = %#x outside printable range [0x20, 0x7E)", i, b)
				}
			}
		})
	}
}

func TestGenerate_Empty(t *testing.T) {
	gen := NewGenerator(1)
	buf, err := gen.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestGenerate_NegativeLength(t *testing.T) {
	gen := NewGenerator(1)
	buf, err := gen.Generate(-1)
	assert.Error(t, err)
	assert.Nil(t, buf)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := NewGenerator(42).Generate(8192)
	require.NoError(t, err)
	b, err := NewGenerator(42).Generate(8192)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "same seed must reproduce identical bytes")

	c, err := NewGenerator(43).Generate(8192)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, c), "different seeds should diverge")
}

func TestGenerate_TildeNeverAppears(t *testing.T) {
	// The sample range is exclusive of 0x7E.
	gen := NewGenerator(7)
	buf, err := gen.Generate(1 << 16)
	require.NoError(t, err)
	assert.NotContains(t, buf[:len(buf)-1], byte('~'))
}

func TestFill(t *testing.T) {
	gen := NewGenerator(5)

	buf := make([]byte, 16)
	gen.Fill(buf)
	assert.Equal(t, byte(Terminator), buf[15])
	for _, b := range buf[:15] {
		assert.GreaterOrEqual(t, b, byte(0x20))
		assert.Less(t, b, byte(0x7E))
	}

	// Empty buffers are a no-op, not an underflow.
	gen.Fill(nil)
	gen.Fill([]byte{})
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(99), NewGenerator(99).Seed())
}
