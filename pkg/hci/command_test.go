package hci

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockController struct{ mock.Mock }

func (c *mockController) WriteCommand(op Opcode, params []byte) error {
	return c.Called(op, params).Error(0)
}

func TestWriteEncodesOneCommand(t *testing.T) {
	c := &mockController{}
	c.On("WriteCommand", OpcodeDisconnect, []byte{0x01, 0x02, 0x13}).Return(nil).Once()

	err := Write(c, DisconnectCommand{ConnectionHandle: 0x0201, Reason: StatusRemoteTerminationByUser})
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestWriteGenericCommand(t *testing.T) {
	c := &mockController{}
	c.On("WriteCommand", OpcodeReset, []byte{}).Return(nil).Once()

	require.NoError(t, Write(c, Reset))
	c.AssertExpectations(t)
}

func TestWriteValidationFailureSendsNothing(t *testing.T) {
	c := &mockController{}

	err := Write(c, DisconnectCommand{ConnectionHandle: 1, Reason: StatusSuccess})
	var pe *ParameterError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "reason", pe.Field)
	c.AssertNotCalled(t, "WriteCommand", mock.Anything, mock.Anything)
}

func TestWriteTransportFailure(t *testing.T) {
	c := &mockController{}
	broken := errors.New("broken pipe")
	c.On("WriteCommand", OpcodeReset, mock.Anything).Return(broken)

	err := Write(c, Reset)
	var ce *CommError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, broken)
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(SetEventMaskCommand{EventMask: EventMaskDataBufferOverflowEvent})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x0C, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00}, b)

	b, err = Marshal(ReadBDAddr)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x09, 0x10}, b)

	b, err = Marshal(ReadRemoteVersionInformationCommand{ConnectionHandle: 0x0201})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1D, 0x04, 0x01, 0x02}, b)

	b, err = Marshal(LESetAdvertisingEnableCommand{AdvertisingEnable: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x20, 0x01}, b)

	_, err = Marshal(DisconnectCommand{Reason: StatusSuccess})
	assert.Error(t, err)
}

func TestLESetAdvertisingParameters(t *testing.T) {
	cmd := LESetAdvertisingParametersCommand{
		AdvertisingType: AdvertisingTypeNonConnectableUndirectedAdvertising,
		PeerAddress:     BDAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
	}.WithDefaults()
	require.NoError(t, cmd.Validate())

	buf := make([]byte, cmd.MaxLen())
	n := cmd.MarshalTo(buf)
	assert.Equal(t, 15, n)
	assert.Equal(t, []byte{
		0x00, 0x08, 0x00, 0x08,
		0x03, 0x00, 0x00,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x07, 0x00,
	}, buf)
}

func TestLESetAdvertisingParametersValidate(t *testing.T) {
	base := LESetAdvertisingParametersCommand{}.WithDefaults()
	tests := []struct {
		name  string
		edit  func(*LESetAdvertisingParametersCommand)
		field string
	}{
		{"interval too short", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingIntervalMin = 0x1F }, "advertising interval min"},
		{"interval too long", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingIntervalMax = 0x4001 }, "advertising interval max"},
		{"min above max", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingIntervalMin = 0x0900 }, "advertising interval min"},
		{"advertising type", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingType = 5 }, "advertising type"},
		{"own address type", func(c *LESetAdvertisingParametersCommand) { c.OwnAddressType = 4 }, "own address type"},
		{"peer address type", func(c *LESetAdvertisingParametersCommand) { c.PeerAddressType = 2 }, "peer address type"},
		{"channel map", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingChannelMap = 0x08 }, "advertising channel map"},
		{"filter policy", func(c *LESetAdvertisingParametersCommand) { c.AdvertisingFilterPolicy = 4 }, "advertising filter policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.edit(&c)
			var pe *ParameterError
			require.ErrorAs(t, c.Validate(), &pe)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestLESetAdvertisingData(t *testing.T) {
	cmd := LESetAdvertisingDataCommand{AdvertisingData: []DataType{
		FlagsDataTypeLEGeneralDiscoverableMode | FlagsDataTypeBREDRNotSupported,
		CompleteLocalName("hci"),
	}}
	b, err := Marshal(cmd)
	require.NoError(t, err)
	require.Len(t, b, 2+32)
	assert.Equal(t, []byte{0x08, 0x20, 8, 0x02, 0x01, 0x06, 0x04, 0x09, 'h', 'c', 'i'}, b[:11])
	assert.Equal(t, make([]byte, 23), b[11:])
}

func TestLESetAdvertisingDataTooLong(t *testing.T) {
	c := &mockController{}
	cmd := LESetAdvertisingDataCommand{AdvertisingData: []DataType{
		FlagsDataTypeLEGeneralDiscoverableMode,
		ShortLocalName("a name that does not fit"),
		CompleteLocalName("x"),
	}}
	var pe *ParameterError
	require.ErrorAs(t, Write(c, cmd), &pe)
	assert.Equal(t, 3+26+3, pe.Value)
	c.AssertNotCalled(t, "WriteCommand", mock.Anything, mock.Anything)
}

func TestMarshalToPanicsOnShortBuffer(t *testing.T) {
	assert.Panics(t, func() {
		DisconnectCommand{}.MarshalTo(make([]byte, 2))
	})
}
