package stm32wb

import (
	"testing"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func returnParameters(t *testing.T, frame []byte) any {
	t.Helper()
	ev, err := hci.Decode(Vendor{}, frame)
	require.NoError(t, err)
	cc, ok := ev.(*hci.CommandComplete)
	require.True(t, ok, "got %T", ev)
	vr, ok := cc.ReturnParameters.(hci.VendorReturnParameters)
	require.True(t, ok, "got %T", cc.ReturnParameters)
	return vr.Params
}

func TestReturnParameters(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  any
	}{
		{
			"firmware revision",
			[]byte{0x0E, 6, 1, 0x00, 0xFC, 0x00, 0x34, 0x12},
			FirmwareRevision{Status: hci.StatusSuccess, Revision: 0x1234},
		},
		{
			"write config data",
			[]byte{0x0E, 4, 1, 0x0C, 0xFC, 0x00},
			hci.StatusReturn{Status: hci.StatusSuccess},
		},
		{
			"write config data vendor status",
			[]byte{0x0E, 4, 1, 0x0C, 0xFC, 0x47},
			hci.StatusReturn{Status: StatusError},
		},
		{
			"read config data",
			[]byte{0x0E, 10, 1, 0x0D, 0xFC, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
			ReadConfigDataReturn{Status: hci.StatusSuccess, Value: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}},
		},
		{
			"tx power",
			[]byte{0x0E, 4, 1, 0x0F, 0xFC, 0x00},
			hci.StatusReturn{Status: hci.StatusSuccess},
		},
		{
			"tx test packet count",
			[]byte{0x0E, 8, 1, 0x14, 0xFC, 0x00, 0x04, 0x03, 0x02, 0x01},
			TxTestPacketCount{Status: hci.StatusSuccess, Count: 0x01020304},
		},
		{
			"start tone",
			[]byte{0x0E, 4, 1, 0x15, 0xFC, 0x0C},
			hci.StatusReturn{Status: hci.StatusCommandDisallowed},
		},
		{
			"anchor period",
			[]byte{0x0E, 13, 1, 0x19, 0xFC, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00},
			AnchorPeriod{Status: hci.StatusSuccess, AnchorInterval: 0x10, MaxSlot: 0x20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, returnParameters(t, tt.frame))
		})
	}
}

func linkStatusFrame(states [8]byte) []byte {
	frame := []byte{0x0E, 3 + 25, 1, 0x17, 0xFC, 0x00}
	frame = append(frame, states[:]...)
	for i := 0; i < 8; i++ {
		frame = append(frame, byte(i+1), 0x08)
	}
	return frame
}

func TestLinkStatus(t *testing.T) {
	got := returnParameters(t, linkStatusFrame([8]byte{0, 1, 2, 3, 4, 5, 6, 7}))
	ls, ok := got.(LinkStatus)
	require.True(t, ok)
	assert.Equal(t, [8]LinkState{
		LinkStateIdle,
		LinkStateAdvertising,
		LinkStateConnectedAsPeripheral,
		LinkStateScanning,
		LinkStateReserved,
		LinkStateConnectedAsCentral,
		LinkStateTxTest,
		LinkStateRxTest,
	}, ls.States)
	assert.Equal(t, hci.ConnectionHandle(0x0801), ls.ConnectionHandles[0])
	assert.Equal(t, hci.ConnectionHandle(0x0808), ls.ConnectionHandles[7])

	_, err := hci.Decode(Vendor{}, linkStatusFrame([8]byte{0, 0, 0, 8}))
	assert.ErrorIs(t, err, BadLinkState)
}

func TestReturnParametersErrors(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		kind  ErrorKind
	}{
		{"unknown opcode", []byte{0x0E, 4, 1, 0x01, 0xFC, 0x00}, UnknownOpcode},
		{"unknown opcode with bad status", []byte{0x0E, 4, 1, 0x01, 0xFC, 0x80}, UnknownOpcode},
		{"empty", []byte{0x0E, 3, 1, 0x00, 0xFC}, BadLength},
		{"short firmware revision", []byte{0x0E, 5, 1, 0x00, 0xFC, 0x00, 0x34}, BadLength},
		{"long stop tone", []byte{0x0E, 5, 1, 0x16, 0xFC, 0x00, 0x00}, BadLength},
		{"bad status", []byte{0x0E, 4, 1, 0x16, 0xFC, 0x80}, BadStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hci.Decode(Vendor{}, tt.frame)
			assert.ErrorIs(t, err, hci.BadVendorPayload)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}
