package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrimes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

func TestRoundtrip(t *testing.T) {
	codecs := []Codec{Zstd{}, LZ4{}}

	for _, codec := range codecs {
		t.Run(codec.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, 50, testPrimes, WithCodec(codec)))

			snap, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, 50, snap.Bound)
			assert.Equal(t, testPrimes, snap.Primes)
		})
	}
}

func TestRoundtrip_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 2, nil))

	snap, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Bound)
	assert.Empty(t, snap.Primes)
}

func TestRoundtrip_DefaultCodec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 50, testPrimes))

	snap, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, testPrimes, snap.Primes)
}

func TestWrite_RejectsUnorderedInput(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 50, []int{2, 5, 3})
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestRead_InvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 50, testPrimes))

	data := buf.Bytes()
	binary.BigEndian.PutUint32(data[0:4], 0xDEADBEEF)

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestRead_UnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 50, testPrimes))

	data := buf.Bytes()
	binary.BigEndian.PutUint32(data[4:8], 99)

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestRead_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 50, testPrimes))

	for _, cut := range []int{0, 4, 11} {
		_, err := Read(bytes.NewReader(buf.Bytes()[:cut]))
		require.ErrorIs(t, err, ErrCorrupt, "cut=%d", cut)
	}
}

func TestRead_UnknownCodec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHeader(&buf, "brotli", 50, 0))

	_, err := Read(&buf)
	require.ErrorIs(t, err, ErrUnknownCodec)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"zstd", "lz4"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("gzip")
	assert.False(t, ok)
}

func TestRoundtrip_LargeRun(t *testing.T) {
	// A synthetic strictly increasing sequence exercises the scratch-buffer
	// batching in writePayload.
	var primes []int
	v := 2
	for len(primes) < 20_000 {
		primes = append(primes, v)
		v += 1 + len(primes)%6
	}
	bound := primes[len(primes)-1] + 1

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bound, primes, WithCodec(LZ4{})))

	snap, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, primes, snap.Primes)
}
