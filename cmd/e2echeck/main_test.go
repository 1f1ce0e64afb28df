package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunProtectThenCheckP06(t *testing.T) {
	frame := "00000000000000000000000000000000"
	var protectOut bytes.Buffer
	require.NoError(t, run([]string{"--profile", "p06", "--mode", "protect", "--data-id", "4660"}, strings.NewReader(frame+"\n"), &protectOut))

	protected := strings.TrimSpace(protectOut.String())
	require.NotEmpty(t, protected)

	var checkOut bytes.Buffer
	require.NoError(t, run([]string{"--profile", "p06", "--mode", "check", "--data-id", "4660"}, strings.NewReader(protected+"\n"), &checkOut))
	require.Equal(t, "ok\n", checkOut.String())
}

func TestRunCheckDetectsCorruption(t *testing.T) {
	var protectOut bytes.Buffer
	require.NoError(t, run([]string{"--profile", "p07", "--mode", "protect", "--data-id", "168496141"}, strings.NewReader(strings.Repeat("00", 24)+"\n"), &protectOut))

	protected := strings.TrimSpace(protectOut.String())
	raw, err := hex.DecodeString(protected)
	require.NoError(t, err)
	raw[9] ^= 0x01
	corrupted := hex.EncodeToString(raw)

	var checkOut bytes.Buffer
	require.NoError(t, run([]string{"--profile", "p07", "--mode", "check", "--data-id", "168496141"}, strings.NewReader(corrupted+"\n"), &checkOut))
	require.Equal(t, "FAILED\n", checkOut.String())
}

func TestRunRejectsBadHex(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--profile", "p01", "--mode", "protect"}, strings.NewReader("not-hex\n"), &out)
	require.Error(t, err)
}
