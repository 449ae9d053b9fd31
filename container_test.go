package huffzip

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestContainer_RoundTrip(t *testing.T) {
	p, err := Compress([]byte("abcabcabc"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePayload(&buf, p))

	// magic + version, 62 header bits padded to 8 bytes, bit length, payload
	require.Equal(t, 4+1+8+8+2, buf.Len())
	require.Equal(t, []byte("HZIP\x01"), buf.Bytes()[:5])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 15, 0xb5, 0xac}, buf.Bytes()[13:])

	q, err := ReadPayload(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Codes, q.Codes)
	require.Equal(t, p.BitLength, q.BitLength)
	require.Equal(t, p.Packed, q.Packed)

	out, err := Decompress(q)
	require.NoError(t, err)
	require.Equal(t, "abcabcabc", string(out))
}

func TestContainer_AllInputs(t *testing.T) {
	for _, input := range testInputs() {
		p, err := Compress(input)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WritePayload(&buf, p))
		q, err := ReadPayload(&buf)
		require.NoError(t, err)

		out, err := Decompress(q)
		require.NoError(t, err)
		require.Equal(t, input, out)
	}
}

func TestContainer_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayload(&buf, Payload{}))

	q, err := ReadPayload(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, q.Codes.Len())
	require.Zero(t, q.BitLength)
	require.Empty(t, q.Packed)

	out, err := Decompress(q)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestContainer_InvalidHeader(t *testing.T) {
	testData := map[string][]byte{
		"empty":       nil,
		"short-magic": []byte("HZ"),
		"bad-magic":   []byte("NOPE\x01\x00\x00"),
		"no-version":  []byte("HZIP"),
		"bad-version": []byte("HZIP\x02\x00\x00"),
		"no-count":    []byte("HZIP\x01"),
	}
	for name, raw := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := ReadPayload(bytes.NewReader(raw))
			require.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func TestContainer_InvalidEntries(t *testing.T) {
	type entry struct {
		symbol byte
		size   byte
		bits   string
	}

	write := func(count uint64, entries []entry) []byte {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		_, err := bw.Write([]byte("HZIP\x01"))
		require.NoError(t, err)
		require.NoError(t, bw.WriteBits(count, 9))
		for _, e := range entries {
			require.NoError(t, bw.WriteBits(uint64(e.symbol), 8))
			require.NoError(t, bw.WriteBits(uint64(e.size), 8))
			for _, ch := range e.bits {
				require.NoError(t, bw.WriteBool(ch == '1'))
			}
		}
		_, err = bw.Align()
		require.NoError(t, err)
		require.NoError(t, bw.WriteBits(1, 64))
		require.NoError(t, bw.WriteByte(0x00))
		require.NoError(t, bw.Close())
		return buf.Bytes()
	}

	_, err := ReadPayload(bytes.NewReader(write(300, nil)))
	require.ErrorIs(t, err, ErrInvalidHeader)

	_, err = ReadPayload(bytes.NewReader(write(1, []entry{{'a', 0, ""}})))
	require.ErrorIs(t, err, ErrInvalidHeader)

	_, err = ReadPayload(bytes.NewReader(write(2, []entry{{'a', 1, "0"}, {'a', 1, "1"}})))
	require.ErrorIs(t, err, ErrInvalidHeader)

	_, err = ReadPayload(bytes.NewReader(write(2, []entry{{'a', 1, "0"}})))
	require.ErrorIs(t, err, ErrInvalidHeader)

	// A well-formed header whose table is not prefix-free.
	p, err := ReadPayload(bytes.NewReader(write(2, []entry{{'a', 1, "0"}, {'b', 2, "01"}})))
	require.NoError(t, err)
	_, err = Decompress(p)
	require.ErrorIs(t, err, ErrMalformedStream)
}

func TestContainer_OversizedBitLength(t *testing.T) {
	for _, bitLength := range []uint64{^uint64(0), ^uint64(0) - 6, 1 << 63, 17} {
		var p Payload
		p.Codes.Set('a', MakeCode(1, 0))
		p.BitLength = bitLength
		p.Packed = []byte{0x00, 0x00}

		var buf bytes.Buffer
		require.NoError(t, WritePayload(&buf, p))
		q, err := ReadPayload(&buf)
		require.NoError(t, err)
		require.Equal(t, bitLength, q.BitLength)

		var out []byte
		require.NotPanics(t, func() {
			out, err = Decompress(q)
		})
		require.ErrorIs(t, err, ErrMalformedStream)
		require.Nil(t, out)
	}
}
