package p02

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtectVectors(t *testing.T) {
	t.Run("zeroed table", func(t *testing.T) {
		buf := make([]byte, 8)
		dataIDList := make([]byte, 16)
		require.NoError(t, Protect(buf, 7, dataIDList))
		require.Equal(t, []byte{0x45, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, buf)
	})

	t.Run("ramp table", func(t *testing.T) {
		buf := make([]byte, 8)
		for i := range buf {
			buf[i] = byte(i)
		}
		dataIDList := make([]byte, 16)
		for i := range dataIDList {
			dataIDList[i] = byte(i)
		}
		require.NoError(t, Protect(buf, 7, dataIDList))
		require.Equal(t, []byte{0xBC, 0x02, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, buf)
	})
}

func TestCheckVector(t *testing.T) {
	dataIDList := make([]byte, 16)
	for i := range dataIDList {
		dataIDList[i] = byte(i)
	}

	ok, err := Check([]byte{0xBC, 0x02, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 7, dataIDList)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Check([]byte{0xBC, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 7, dataIDList)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRoundTripAndBitFlip(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dataIDList := []byte("0123456789ABCDEF")
	require.NoError(t, Protect(buf, 7, dataIDList))

	ok, err := Check(buf, 7, dataIDList)
	require.NoError(t, err)
	require.True(t, ok)

	for i := 1; i < 8; i++ {
		corrupt := append([]byte(nil), buf...)
		corrupt[i] ^= 0x08
		ok, err := Check(corrupt, 7, dataIDList)
		require.NoError(t, err)
		require.False(t, ok, "byte %d", i)
	}
}

func TestRejectsWrongSizedTable(t *testing.T) {
	buf := make([]byte, 8)
	err := Protect(buf, 7, make([]byte, 15))
	require.Error(t, err)
}
