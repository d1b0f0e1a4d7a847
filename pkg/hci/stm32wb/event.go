package stm32wb

import (
	"encoding/binary"

	"github.com/muxable/hcicodec/pkg/hci"
)

// Vendor events arrive under hci.EventCodeVendor with a 16-bit event code
// ahead of the parameters.
const (
	EventHalInitialized                uint16 = 0x0001
	EventGapLimitedDiscoverableTimeout uint16 = 0x0400
	EventGapPairingComplete            uint16 = 0x0401
	EventGapPassKeyRequest             uint16 = 0x0402
	EventGattProcedureComplete         uint16 = 0x0C10
)

// ResetReason is reported by HalInitialized.
type ResetReason uint8

const (
	ResetReasonNormal         ResetReason = 0x01
	ResetReasonUpdaterACI     ResetReason = 0x02
	ResetReasonUpdaterBadFlag ResetReason = 0x03
	ResetReasonUpdaterPin     ResetReason = 0x04
	ResetReasonWatchdog       ResetReason = 0x05
	ResetReasonLockup         ResetReason = 0x06
	ResetReasonBrownout       ResetReason = 0x07
	ResetReasonCrash          ResetReason = 0x08
	ResetReasonECCError       ResetReason = 0x09
)

type PairingStatus uint8

const (
	PairingStatusSuccess PairingStatus = 0x00
	PairingStatusTimeout PairingStatus = 0x01
	PairingStatusFailed  PairingStatus = 0x02
)

// HalInitialized is sent once the firmware has started.
type HalInitialized struct {
	Reason ResetReason
}

type GapLimitedDiscoverableTimeout struct{}

type GapPairingComplete struct {
	ConnectionHandle hci.ConnectionHandle
	Status           PairingStatus
}

type GapPassKeyRequest struct {
	ConnectionHandle hci.ConnectionHandle
}

type GattProcedureComplete struct {
	ConnectionHandle hci.ConnectionHandle
	Status           hci.Status
}

func parseEvent(code hci.EventCode, body []byte) (any, error) {
	if code != hci.EventCodeVendor {
		return nil, &Error{Kind: UnknownEvent, Code: uint16(code)}
	}
	if len(body) < 2 {
		return nil, &Error{Kind: BadLength, Expected: 2, Actual: len(body)}
	}
	ecode := binary.LittleEndian.Uint16(body)
	params := body[2:]
	switch ecode {
	case EventHalInitialized:
		if err := requireLen(ecode, params, 1); err != nil {
			return nil, err
		}
		r := ResetReason(params[0])
		if r < ResetReasonNormal || r > ResetReasonECCError {
			return nil, &Error{Kind: BadResetReason, Code: ecode, Value: params[0]}
		}
		return HalInitialized{Reason: r}, nil
	case EventGapLimitedDiscoverableTimeout:
		if err := requireLen(ecode, params, 0); err != nil {
			return nil, err
		}
		return GapLimitedDiscoverableTimeout{}, nil
	case EventGapPairingComplete:
		if err := requireLen(ecode, params, 3); err != nil {
			return nil, err
		}
		s := PairingStatus(params[2])
		if s > PairingStatusFailed {
			return nil, &Error{Kind: BadPairingStatus, Code: ecode, Value: params[2]}
		}
		return GapPairingComplete{
			ConnectionHandle: hci.ConnectionHandle(binary.LittleEndian.Uint16(params)),
			Status:           s,
		}, nil
	case EventGapPassKeyRequest:
		if err := requireLen(ecode, params, 2); err != nil {
			return nil, err
		}
		return GapPassKeyRequest{ConnectionHandle: hci.ConnectionHandle(binary.LittleEndian.Uint16(params))}, nil
	case EventGattProcedureComplete:
		if err := requireLen(ecode, params, 3); err != nil {
			return nil, err
		}
		s, err := status(ecode, params[2])
		if err != nil {
			return nil, err
		}
		return GattProcedureComplete{
			ConnectionHandle: hci.ConnectionHandle(binary.LittleEndian.Uint16(params)),
			Status:           s,
		}, nil
	}
	return nil, &Error{Kind: UnknownEvent, Code: ecode}
}
