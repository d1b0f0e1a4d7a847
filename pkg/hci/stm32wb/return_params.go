package stm32wb

import (
	"encoding/binary"

	"github.com/muxable/hcicodec/pkg/hci"
)

type FirmwareRevision struct {
	Status   hci.Status
	Revision uint16
}

// ReadConfigDataReturn holds the raw field value; its width follows the
// requested ConfigParameter.
type ReadConfigDataReturn struct {
	Status hci.Status
	Value  []byte
}

type TxTestPacketCount struct {
	Status hci.Status
	Count  uint32
}

type LinkState uint8

const (
	LinkStateIdle                  LinkState = 0x00
	LinkStateAdvertising           LinkState = 0x01
	LinkStateConnectedAsPeripheral LinkState = 0x02
	LinkStateScanning              LinkState = 0x03
	LinkStateReserved              LinkState = 0x04
	LinkStateConnectedAsCentral    LinkState = 0x05
	LinkStateTxTest                LinkState = 0x06
	LinkStateRxTest                LinkState = 0x07
)

const linkCount = 8

// LinkStatus reports the state and handle of each of the controller's
// links.
type LinkStatus struct {
	Status            hci.Status
	States            [linkCount]LinkState
	ConnectionHandles [linkCount]hci.ConnectionHandle
}

type AnchorPeriod struct {
	Status hci.Status
	// AnchorInterval is in units of 625 µs.
	AnchorInterval uint32
	// MaxSlot is the largest free slot, in units of 625 µs.
	MaxSlot uint32
}

func parseReturnParameters(op hci.Opcode, buf []byte) (any, error) {
	code := uint16(op)
	if !knownOpcode(op) {
		return nil, &Error{Kind: UnknownOpcode, Code: code}
	}
	if len(buf) < 1 {
		return nil, &Error{Kind: BadLength, Code: code, Expected: 1, Actual: 0}
	}
	s, err := status(code, buf[0])
	if err != nil {
		return nil, err
	}
	switch op {
	case OpcodeHalWriteConfigData,
		OpcodeHalSetTxPowerLevel,
		OpcodeHalStartTone,
		OpcodeHalStopTone:
		if err := requireLen(code, buf, 1); err != nil {
			return nil, err
		}
		return hci.StatusReturn{Status: s}, nil
	case OpcodeHalGetFirmwareRevision:
		if err := requireLen(code, buf, 3); err != nil {
			return nil, err
		}
		return FirmwareRevision{Status: s, Revision: binary.LittleEndian.Uint16(buf[1:])}, nil
	case OpcodeHalReadConfigData:
		return ReadConfigDataReturn{Status: s, Value: append([]byte(nil), buf[1:]...)}, nil
	case OpcodeHalGetTxTestPacketCount:
		if err := requireLen(code, buf, 5); err != nil {
			return nil, err
		}
		return TxTestPacketCount{Status: s, Count: binary.LittleEndian.Uint32(buf[1:])}, nil
	case OpcodeHalGetLinkStatus:
		if err := requireLen(code, buf, 1+linkCount*3); err != nil {
			return nil, err
		}
		r := LinkStatus{Status: s}
		for i := 0; i < linkCount; i++ {
			st := LinkState(buf[1+i])
			if st > LinkStateRxTest {
				return nil, &Error{Kind: BadLinkState, Code: code, Value: buf[1+i]}
			}
			r.States[i] = st
			r.ConnectionHandles[i] = hci.ConnectionHandle(binary.LittleEndian.Uint16(buf[1+linkCount+2*i:]))
		}
		return r, nil
	case OpcodeHalGetAnchorPeriod:
		if err := requireLen(code, buf, 9); err != nil {
			return nil, err
		}
		return AnchorPeriod{
			Status:         s,
			AnchorInterval: binary.LittleEndian.Uint32(buf[1:5]),
			MaxSlot:        binary.LittleEndian.Uint32(buf[5:9]),
		}, nil
	}
	return nil, &Error{Kind: UnknownOpcode, Code: code}
}
