package hci

import "encoding/binary"

// ReturnParameters is the payload of a Command Complete event. The concrete
// type depends on the opcode; vendor opcodes produce VendorReturnParameters.
type ReturnParameters interface {
	returnParameters()
}

// NoReturnParameters is carried by a Command Complete for OpcodeNone, which
// only returns command credits.
type NoReturnParameters struct{}

// StatusReturn is the return of every command whose only return parameter
// is its status.
type StatusReturn struct {
	Status Status
}

type ReadBDAddrReturn struct {
	Status Status
	BDAddr BDAddr
}

type ReadFilterAcceptListSizeReturn struct {
	Status Status
	Size   uint8
}

// LEReadBufferSizeReturn carries the ISO fields only when the controller
// reports them.
type LEReadBufferSizeReturn struct {
	Status                   Status
	LEACLDataPacketLength    uint16
	TotalNumLEACLDataPackets uint8
	ISODataPacketLength      uint16
	TotalNumISODataPackets   uint8
}

type LESupportedStates uint64

type LEReadSupportedStatesReturn struct {
	Status Status
	States LESupportedStates
}

// VendorReturnParameters wraps whatever the vendor extension decoded.
type VendorReturnParameters struct {
	Params any
}

func (NoReturnParameters) returnParameters()             {}
func (StatusReturn) returnParameters()                   {}
func (ReadBDAddrReturn) returnParameters()               {}
func (ReadFilterAcceptListSizeReturn) returnParameters() {}
func (LEReadBufferSizeReturn) returnParameters()         {}
func (LEReadSupportedStatesReturn) returnParameters()    {}
func (VendorReturnParameters) returnParameters()         {}

func (d *Decoder) returnParameters(op Opcode, buf []byte) (ReturnParameters, error) {
	switch op {
	case OpcodeNone:
		if err := requireLen(buf, 0); err != nil {
			return nil, err
		}
		return NoReturnParameters{}, nil
	case OpcodeReset,
		OpcodeSetEventMask,
		OpcodeLESetEventMask,
		OpcodeLESetAdvertisingParameters,
		OpcodeLESetAdvertisingData,
		OpcodeLESetAdvertisingEnable,
		OpcodeClearFilterAcceptList:
		if err := requireLen(buf, 1); err != nil {
			return nil, err
		}
		s, err := d.status(buf[0])
		if err != nil {
			return nil, err
		}
		return StatusReturn{Status: s}, nil
	case OpcodeReadBDAddr:
		if err := requireLen(buf, 7); err != nil {
			return nil, err
		}
		s, err := d.status(buf[0])
		if err != nil {
			return nil, err
		}
		r := ReadBDAddrReturn{Status: s}
		copy(r.BDAddr[:], buf[1:7])
		return r, nil
	case OpcodeReadFilterAcceptListSize:
		if err := requireLen(buf, 2); err != nil {
			return nil, err
		}
		s, err := d.status(buf[0])
		if err != nil {
			return nil, err
		}
		return ReadFilterAcceptListSizeReturn{Status: s, Size: buf[1]}, nil
	case OpcodeLEReadBufferSize:
		if len(buf) != 4 && len(buf) != 7 {
			return nil, &DecodeError{Kind: BadLength, Expected: 4, Actual: len(buf)}
		}
		s, err := d.status(buf[0])
		if err != nil {
			return nil, err
		}
		r := LEReadBufferSizeReturn{
			Status:                   s,
			LEACLDataPacketLength:    binary.LittleEndian.Uint16(buf[1:3]),
			TotalNumLEACLDataPackets: buf[3],
		}
		if len(buf) > 4 {
			r.ISODataPacketLength = binary.LittleEndian.Uint16(buf[4:6])
			r.TotalNumISODataPackets = buf[6]
		}
		return r, nil
	case OpcodeLEReadSupportedStates:
		if err := requireLen(buf, 9); err != nil {
			return nil, err
		}
		s, err := d.status(buf[0])
		if err != nil {
			return nil, err
		}
		return LEReadSupportedStatesReturn{
			Status: s,
			States: LESupportedStates(binary.LittleEndian.Uint64(buf[1:9])),
		}, nil
	}
	if !op.IsVendor() {
		return nil, &DecodeError{Kind: UnknownOpcode, Opcode: op}
	}
	p, err := d.vendor().ParseReturnParameters(op, buf)
	if err != nil {
		return nil, &DecodeError{Kind: BadVendorPayload, Opcode: op, Err: err}
	}
	return VendorReturnParameters{Params: p}, nil
}
