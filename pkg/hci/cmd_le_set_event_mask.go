package hci

import "encoding/binary"

// Section 7.8.1
type LEEventMask uint64

const (
	LEEventMaskConnectionCompleteEvent             LEEventMask = (1 << 0)
	LEEventMaskAdvertisingReportEvent              LEEventMask = (1 << 1)
	LEEventMaskConnectionUpdateCompleteEvent       LEEventMask = (1 << 2)
	LEEventMaskReadRemoteUsedFeaturesCompleteEvent LEEventMask = (1 << 3)
	LEEventMaskLongTermKeyRequestEvent             LEEventMask = (1 << 4)
)

type LESetEventMaskCommand struct {
	LEEventMask
}

func (c LESetEventMaskCommand) Opcode() Opcode {
	return OpcodeLESetEventMask
}

func (c LESetEventMaskCommand) MaxLen() int {
	return 8
}

func (c LESetEventMaskCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 8)
	binary.LittleEndian.PutUint64(buf, uint64(c.LEEventMask))
	return 8
}
