package uart

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSerial struct {
	in     *bytes.Reader
	out    bytes.Buffer
	writes int
	err    error
	closed bool
}

func (f *fakeSerial) Read(p []byte) (int, error) {
	return f.in.Read(p)
}

func (f *fakeSerial) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.writes++
	return f.out.Write(p)
}

func (f *fakeSerial) Close() error {
	f.closed = true
	return nil
}

func TestWriteCommand(t *testing.T) {
	s := &fakeSerial{in: bytes.NewReader(nil)}
	p := New(s)

	require.NoError(t, hci.Write(p, hci.DisconnectCommand{ConnectionHandle: 0x0040, Reason: hci.StatusRemoteTerminationByUser}))
	assert.Equal(t, 1, s.writes)
	assert.Equal(t, []byte{0x01, 0x06, 0x04, 0x03, 0x40, 0x00, 0x13}, s.out.Bytes())
}

func TestWriteCommandFailure(t *testing.T) {
	broken := errors.New("device gone")
	p := New(&fakeSerial{in: bytes.NewReader(nil), err: broken})

	err := hci.Write(p, hci.Reset)
	var ce *hci.CommError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, broken)
}

func TestReadEventSkipsOtherPackets(t *testing.T) {
	s := &fakeSerial{in: bytes.NewReader([]byte{
		0x02, 0x01, 0x20, 0x01, 0x00, 0xAA,
		0x04, 0x10, 0x01, 0x12,
		0x04, 0x1A, 0x01, 0x01,
	})}
	p := New(s)

	frame, err := p.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x01, 0x12}, frame)

	frame, err = p.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1A, 0x01, 0x01}, frame)

	_, err = p.ReadEvent()
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, p.Close())
	assert.True(t, s.closed)
}
