package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	"github.com/muxable/hcicodec/pkg/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "0e 04 01 03 0c 00", "10:01:12")
	require.NoError(t, err)
	assert.Contains(t, out, "CommandComplete {NumHCICommandPackets:1")
	assert.Contains(t, out, "ReturnParameters:{Status:Success}")
	assert.Contains(t, out, "HardwareError {Code:18}")
}

func TestDecodeFailure(t *testing.T) {
	out, err := run(t, "decode", "1a0102", "100112")
	assert.Error(t, err)
	assert.Contains(t, out, "error: hci: event 0x1a: bad link type 0x02 (frame 1a0102)")
	assert.Contains(t, out, "HardwareError")

	_, err = run(t, "decode", "zz")
	assert.Error(t, err)
}

func TestDecodeVendor(t *testing.T) {
	_, err := run(t, "decode", "ff03010001")
	assert.Error(t, err)

	out, err := run(t, "--vendor", "stm32wb", "decode", "ff03010001")
	require.NoError(t, err)
	assert.Equal(t, "HalInitialized {Reason:1}\n", out)
}

func TestDecodeYAML(t *testing.T) {
	out, err := run(t, "--output", "yaml", "decode", "0504000102 13")
	require.NoError(t, err)
	assert.Contains(t, out, "event: DisconnectionComplete")
	assert.Contains(t, out, "reason: RemoteTerminationByUser")
}

func TestNumberOfCompletedPacketsText(t *testing.T) {
	out, err := run(t, "decode", "1305014000 0100")
	require.NoError(t, err)
	assert.Equal(t, "NumberOfCompletedPackets 1 {ConnectionHandle:64 NumCompletedPackets:1}\n", out)
}

func TestConfig(t *testing.T) {
	out, err := run(t, "config", "--role", "1")
	require.NoError(t, err)
	assert.Equal(t, "010cfc03290101\n", out)

	out, err = run(t, "config", "--link-layer-only", "--role", "3")
	require.NoError(t, err)
	assert.Equal(t, "010cfc0428020103\n", out)

	out, err = run(t, "config", "--random-address", "C6:15:14:13:12:11")
	require.NoError(t, err)
	assert.Equal(t, "010cfc082e061112131415c6\n", out)
}

func TestConfigErrors(t *testing.T) {
	tests := [][]string{
		{"config"},
		{"config", "--public-address", "00:11:22:33:44:55", "--encryption-root", "000102030405060708090a0b0c0d0e0f"},
		{"config", "--random-address", "00:11:22:33:44:55", "--role", "1"},
		{"config", "--role", "5"},
		{"config", "--identity-root", "0001"},
		{"config", "--public-address", "00:11:22"},
	}
	for _, args := range tests {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestPcap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := pcapgo.NewWriter(f)
	require.NoError(t, w.WriteFileHeader(65535, capture.LinkTypeH4))
	for _, p := range [][]byte{
		{0x01, 0x03, 0x0C, 0x00},
		{0x04, 0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00},
		{0x04, 0x1A, 0x01, 0x05},
	} {
		require.NoError(t, w.WritePacket(gopacket.CaptureInfo{Timestamp: time.Unix(1700000000, 0), CaptureLength: len(p), Length: len(p)}, p))
	}
	require.NoError(t, f.Close())

	out, err := run(t, "pcap", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CommandComplete")
	assert.Contains(t, out, "error: hci: event 0x1a: bad link type 0x05")
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "--output", "json", "decode", "100112")
	assert.Error(t, err)

	_, err = run(t, "--vendor", "nordic", "decode", "100112")
	assert.Error(t, err)
}
