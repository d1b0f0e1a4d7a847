package hci

import "encoding/binary"

// Section 7.1.6
type DisconnectCommand struct {
	ConnectionHandle ConnectionHandle
	Reason           StatusCode
}

func (c DisconnectCommand) Validate() error {
	switch c.Reason {
	case StatusAuthFailure,
		StatusRemoteTerminationByUser,
		StatusRemoteTerminationLowResources,
		StatusRemoteTerminationPowerOff,
		StatusUnsupportedRemoteFeature,
		StatusPairingWithUnitKeyNotSupported,
		StatusUnacceptableConnectionParameters:
		return nil
	}
	return &ParameterError{Command: "Disconnect", Field: "reason", Value: int(c.Reason)}
}

func (c DisconnectCommand) Opcode() Opcode {
	return OpcodeDisconnect
}

func (c DisconnectCommand) MaxLen() int {
	return 3
}

func (c DisconnectCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 3)
	binary.LittleEndian.PutUint16(buf, uint16(c.ConnectionHandle))
	buf[2] = byte(c.Reason)
	return 3
}

// Section 7.1.23
type ReadRemoteVersionInformationCommand struct {
	ConnectionHandle ConnectionHandle
}

func (c ReadRemoteVersionInformationCommand) Opcode() Opcode {
	return OpcodeReadRemoteVersionInformation
}

func (c ReadRemoteVersionInformationCommand) MaxLen() int {
	return 2
}

func (c ReadRemoteVersionInformationCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 2)
	binary.LittleEndian.PutUint16(buf, uint16(c.ConnectionHandle))
	return 2
}
