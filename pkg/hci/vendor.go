package hci

import "errors"

// Vendor is implemented by a controller family to extend the codec with its
// own status codes, events and command return parameters. The decoder never
// looks inside the values a Vendor returns.
type Vendor interface {
	// ParseStatus converts a byte outside the standard status space. The
	// returned Status must give back b from Byte.
	ParseStatus(b byte) (Status, error)

	// ParseEvent decodes the body of an event whose code is not a standard
	// one.
	ParseEvent(code EventCode, body []byte) (any, error)

	// ParseReturnParameters decodes the return parameters of a Command
	// Complete event for a vendor-specific opcode.
	ParseReturnParameters(op Opcode, params []byte) (any, error)
}

// ErrNoVendor is returned by NoVendor for every vendor-range value.
var ErrNoVendor = errors.New("hci: no vendor extension")

// NoVendor accepts only the standard protocol.
type NoVendor struct{}

func (NoVendor) ParseStatus(byte) (Status, error) {
	return nil, ErrNoVendor
}

func (NoVendor) ParseEvent(EventCode, []byte) (any, error) {
	return nil, ErrNoVendor
}

func (NoVendor) ParseReturnParameters(Opcode, []byte) (any, error) {
	return nil, ErrNoVendor
}
