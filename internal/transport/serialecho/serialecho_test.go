package serialecho

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-e2e/e2e/p06"
)

func TestRoundTripProtectedFrame(t *testing.T) {
	pair := New()
	defer pair.Close()

	sent := make([]byte, 8)
	require.NoError(t, p06.Protect(sent, 8, 0x1234, 0, false))

	errc := make(chan error, 1)
	go func() { errc <- pair.SendFrame(sent) }()

	received := make([]byte, 8)
	require.NoError(t, pair.ReceiveFrame(received))
	require.NoError(t, <-errc)

	require.Equal(t, sent, received)
	ok, err := p06.Check(received, 8, 0x1234, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReceiveDetectsCorruption(t *testing.T) {
	pair := New()
	defer pair.Close()

	sent := make([]byte, 8)
	require.NoError(t, p06.Protect(sent, 8, 0x1234, 0, false))
	sent[6] ^= 0x01

	go func() { _ = pair.SendFrame(sent) }()

	received := make([]byte, 8)
	require.NoError(t, pair.ReceiveFrame(received))

	ok, err := p06.Check(received, 8, 0x1234, 0)
	require.NoError(t, err)
	require.False(t, ok)
}
