package p07

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtectVectors(t *testing.T) {
	t.Run("short, no increment", func(t *testing.T) {
		buf := make([]byte, 24)
		require.NoError(t, Protect(buf, 24, 0x0A0B0C0D, 0, false))
		require.Equal(t, []byte{
			0x1f, 0xb2, 0xe7, 0x37, 0xfc, 0xed, 0xbc, 0xd9,
			0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00, 0x00,
			0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x00,
		}, buf)
	})

	t.Run("short, increment", func(t *testing.T) {
		buf := make([]byte, 24)
		require.NoError(t, Protect(buf, 24, 0x0A0B0C0D, 0, false))
		require.NoError(t, Protect(buf, 24, 0x0A0B0C0D, 0, true))
		require.Equal(t, []byte{
			0x7b, 0xde, 0x72, 0x68, 0xb8, 0xe9, 0xbc, 0x27,
			0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00, 0x01,
			0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x00,
		}, buf)
	})

	t.Run("tunneled at offset 8", func(t *testing.T) {
		buf := make([]byte, 32)
		require.NoError(t, Protect(buf, 32, 0x0A0B0C0D, 8, false))
		require.Equal(t, []byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x17, 0xf7, 0xc8, 0x17, 0x32, 0x38, 0x65, 0xa8,
			0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00,
			0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x00,
		}, buf)

		require.NoError(t, Protect(buf, 32, 0x0A0B0C0D, 8, true))
		require.Equal(t, []byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x73, 0x9b, 0x5d, 0x48, 0x76, 0x3c, 0x65, 0x56,
			0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x01,
			0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x00,
		}, buf)
	})
}

func TestCheckVectors(t *testing.T) {
	ok, err := Check([]byte{
		0x1f, 0xb2, 0xe7, 0x37, 0xfc, 0xed, 0xbc, 0xd9,
		0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00, 0x00,
		0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x00,
	}, 24, 0x0A0B0C0D, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Check([]byte{
		0x1f, 0xb2, 0xe7, 0x37, 0xfc, 0xed, 0xbc, 0xd9,
		0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00, 0x00,
		0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0x00, 0x00, 0x01,
	}, 24, 0x0A0B0C0D, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBitFlipDetected(t *testing.T) {
	buf := make([]byte, 24)
	require.NoError(t, Protect(buf, 24, 0x0A0B0C0D, 0, false))
	for i := 0; i < 20; i++ {
		corrupt := append([]byte(nil), buf...)
		corrupt[i] ^= 0x01
		ok, err := Check(corrupt, 24, 0x0A0B0C0D, 0)
		require.NoError(t, err)
		require.False(t, ok, "byte %d", i)
	}
}
