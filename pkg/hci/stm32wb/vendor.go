package stm32wb

import "github.com/muxable/hcicodec/pkg/hci"

// Vendor is the hci.Vendor extension for STM32WB and BlueNRG controllers.
type Vendor struct{}

var _ hci.Vendor = Vendor{}

func (Vendor) ParseStatus(b byte) (hci.Status, error) {
	s, err := ParseStatus(b)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (Vendor) ParseEvent(code hci.EventCode, body []byte) (any, error) {
	return parseEvent(code, body)
}

func (Vendor) ParseReturnParameters(op hci.Opcode, params []byte) (any, error) {
	return parseReturnParameters(op, params)
}

// status parses a status field anywhere in the combined standard and vendor
// space.
func status(code uint16, b byte) (hci.Status, error) {
	s, err := hci.ParseStatus(Vendor{}, b)
	if err != nil {
		return nil, &Error{Kind: BadStatus, Code: code, Value: b}
	}
	return s, nil
}

func requireLen(code uint16, buf []byte, n int) error {
	if len(buf) != n {
		return &Error{Kind: BadLength, Code: code, Expected: n, Actual: len(buf)}
	}
	return nil
}
