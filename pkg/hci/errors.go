package hci

import "fmt"

// ErrorKind classifies a DecodeError. Kinds can be used directly as
// errors.Is targets:
//
//	if errors.Is(err, hci.BadLinkType) { ... }
type ErrorKind uint8

const (
	// BadLength: the frame or an event body has the wrong length.
	BadLength ErrorKind = iota + 1
	// BadStatus: a status byte is neither a standard nor a vendor status.
	BadStatus
	// BadReason: a disconnection reason is not a legal status.
	BadReason
	BadLinkType
	BadEncryptionEnabledValue
	BadEncryptionType
	BadRole
	BadPeerAddressType
	BadClockAccuracy
	// PartialRecord: a list of fixed-size records does not divide evenly.
	PartialRecord
	// UnknownOpcode: Command Complete names a standard opcode with no known
	// return parameter layout.
	UnknownOpcode
	UnknownSubevent
	// BadVendorPayload: the vendor extension rejected a frame; Err holds the
	// vendor's error.
	BadVendorPayload
)

var errorKindNames = map[ErrorKind]string{
	BadLength:                 "bad length",
	BadStatus:                 "bad status",
	BadReason:                 "bad reason",
	BadLinkType:               "bad link type",
	BadEncryptionEnabledValue: "bad encryption enabled value",
	BadEncryptionType:         "bad encryption type",
	BadRole:                   "bad role",
	BadPeerAddressType:        "bad peer address type",
	BadClockAccuracy:          "bad central clock accuracy",
	PartialRecord:             "partial record",
	UnknownOpcode:             "unknown opcode",
	UnknownSubevent:           "unknown LE subevent",
	BadVendorPayload:          "bad vendor payload",
}

func (k ErrorKind) String() string {
	if n, ok := errorKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string {
	return "hci: " + k.String()
}

// DecodeError reports the first field of a received frame that failed
// validation.
type DecodeError struct {
	Kind  ErrorKind
	Event EventCode

	// Value is the offending byte for value errors.
	Value byte
	// Expected and Actual are byte counts for BadLength and PartialRecord.
	Expected, Actual int
	// Opcode is set for UnknownOpcode.
	Opcode Opcode
	Err    error

	// Frame is a copy of the complete frame passed to Decode.
	Frame []byte
}

func (e *DecodeError) Error() string {
	var s string
	switch e.Kind {
	case BadLength:
		s = fmt.Sprintf("hci: event %#02x: bad length: expected %d bytes, got %d", uint8(e.Event), e.Expected, e.Actual)
	case PartialRecord:
		s = fmt.Sprintf("hci: event %#02x: %d bytes is not a whole number of %d-byte records", uint8(e.Event), e.Actual, e.Expected)
	case UnknownOpcode:
		s = fmt.Sprintf("hci: event %#02x: unknown opcode %#04x", uint8(e.Event), uint16(e.Opcode))
	case BadVendorPayload:
		s = fmt.Sprintf("hci: event %#02x: bad vendor payload", uint8(e.Event))
	default:
		s = fmt.Sprintf("hci: event %#02x: %s %#02x", uint8(e.Event), e.Kind, e.Value)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// ParameterError is returned before anything is written when a command
// parameter is out of range.
type ParameterError struct {
	Command string
	Field   string
	Value   int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("hci: %s: invalid %s %#x", e.Command, e.Field, e.Value)
}

// CommError is returned when the controller transport fails to accept a
// command. Err is the transport's error, unchanged.
type CommError struct {
	Err error
}

func (e *CommError) Error() string {
	return "hci: communication failure: " + e.Err.Error()
}

func (e *CommError) Unwrap() error {
	return e.Err
}
