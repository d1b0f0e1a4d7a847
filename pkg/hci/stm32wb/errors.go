package stm32wb

import "fmt"

type ErrorKind uint8

const (
	BadStatus ErrorKind = iota + 1
	BadLength
	UnknownEvent
	UnknownOpcode
	BadResetReason
	BadPairingStatus
	BadLinkState
)

var errorKindNames = map[ErrorKind]string{
	BadStatus:        "bad status",
	BadLength:        "bad length",
	UnknownEvent:     "unknown vendor event",
	UnknownOpcode:    "unknown vendor opcode",
	BadResetReason:   "bad reset reason",
	BadPairingStatus: "bad pairing status",
	BadLinkState:     "bad link state",
}

func (k ErrorKind) String() string {
	if n, ok := errorKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string {
	return "stm32wb: " + k.String()
}

// Error is returned by the vendor extension for frames it cannot decode. The
// core decoder wraps it in an hci.DecodeError of kind BadVendorPayload.
type Error struct {
	Kind ErrorKind
	// Code is the vendor event code or opcode involved.
	Code             uint16
	Value            byte
	Expected, Actual int
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadLength:
		return fmt.Sprintf("stm32wb: %#04x: bad length: expected %d bytes, got %d", e.Code, e.Expected, e.Actual)
	case UnknownEvent, UnknownOpcode:
		return fmt.Sprintf("stm32wb: %s %#04x", e.Kind, e.Code)
	}
	return fmt.Sprintf("stm32wb: %#04x: %s %#02x", e.Code, e.Kind, e.Value)
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// InvalidChannelError is returned by StartTone validation for channels above
// MaxChannel. Nothing is sent to the controller.
type InvalidChannelError struct {
	Channel uint8
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("stm32wb: invalid channel %d (max %d)", e.Channel, MaxChannel)
}
