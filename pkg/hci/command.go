package hci

import (
	"encoding/binary"
	"fmt"
)

// Command is a set of command parameters with a fixed wire layout.
type Command interface {
	Opcode() Opcode

	// MaxLen is the largest number of bytes MarshalTo can write.
	MaxLen() int

	// MarshalTo writes the parameters starting at buf[0] and returns the
	// number of bytes written. It panics if buf is shorter than MaxLen.
	MarshalTo(buf []byte) int
}

// Validator is implemented by commands whose parameters have constraints
// beyond their Go types.
type Validator interface {
	Validate() error
}

// Controller is the host side of the transport. WriteCommand submits one
// command and blocks until the transport has accepted it.
type Controller interface {
	WriteCommand(op Opcode, params []byte) error
}

// Write validates cmd, encodes it and submits it with a single
// WriteCommand. Nothing reaches c if validation fails.
func Write(c Controller, cmd Command) error {
	if v, ok := cmd.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	buf := make([]byte, cmd.MaxLen())
	n := cmd.MarshalTo(buf)
	return Send(c, cmd.Opcode(), buf[:n])
}

// Send submits already encoded parameters. Transport failures are returned
// as *CommError.
func Send(c Controller, op Opcode, params []byte) error {
	if err := c.WriteCommand(op, params); err != nil {
		return &CommError{Err: err}
	}
	return nil
}

// Marshal returns the command as [opcode][parameters], the layout
// transports frame.
func Marshal(cmd Command) ([]byte, error) {
	if v, ok := cmd.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	buf := make([]byte, 2+cmd.MaxLen())
	binary.LittleEndian.PutUint16(buf, uint16(cmd.Opcode()))
	n := cmd.MarshalTo(buf[2:])
	return buf[:2+n], nil
}

func checkBuffer(buf []byte, n int) {
	if len(buf) < n {
		panic(fmt.Sprintf("hci: buffer of %d bytes is shorter than %d", len(buf), n))
	}
}

// GenericCommand encompasses many argument-less commands.
type GenericCommand struct {
	opcode Opcode
}

func NewGenericCommand(opcode Opcode) GenericCommand {
	return GenericCommand{opcode}
}

func (c GenericCommand) Opcode() Opcode {
	return c.opcode
}

func (c GenericCommand) MaxLen() int {
	return 0
}

func (c GenericCommand) MarshalTo(buf []byte) int {
	return 0
}

var (
	Reset                    = NewGenericCommand(OpcodeReset)
	ReadBDAddr               = NewGenericCommand(OpcodeReadBDAddr)
	ClearFilterAcceptList    = NewGenericCommand(OpcodeClearFilterAcceptList)
	ReadFilterAcceptListSize = NewGenericCommand(OpcodeReadFilterAcceptListSize)
	LEReadBufferSize         = NewGenericCommand(OpcodeLEReadBufferSize)
	LEReadSupportedStates    = NewGenericCommand(OpcodeLEReadSupportedStates)
)
