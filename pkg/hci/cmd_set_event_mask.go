package hci

import "encoding/binary"

// Section 7.3.1
type EventMask uint64

const (
	EventMaskDisconnectionCompleteEvent        EventMask = (1 << 4)
	EventMaskEncryptionChangeEvent             EventMask = (1 << 7)
	EventMaskHardwareErrorEvent                EventMask = (1 << 15)
	EventMaskDataBufferOverflowEvent           EventMask = (1 << 25)
	EventMaskEncryptionKeyRefreshCompleteEvent EventMask = (1 << 47)
	EventMaskLEMetaEvent                       EventMask = (1 << 61)
)

type SetEventMaskCommand struct {
	EventMask
}

func (c SetEventMaskCommand) Opcode() Opcode {
	return OpcodeSetEventMask
}

func (c SetEventMaskCommand) MaxLen() int {
	return 8
}

func (c SetEventMaskCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 8)
	binary.LittleEndian.PutUint64(buf, uint64(c.EventMask))
	return 8
}
