package hci

// DataType is one advertising data structure (Core Specification Supplement,
// Part A).
type DataType interface {
	Len() int
	MarshalTo(buf []byte) int
}

type FlagsDataType uint8

const (
	FlagsDataTypeLELimitedDiscoverableMode                           FlagsDataType = (1 << 0)
	FlagsDataTypeLEGeneralDiscoverableMode                           FlagsDataType = (1 << 1)
	FlagsDataTypeBREDRNotSupported                                   FlagsDataType = (1 << 2)
	FlagsDataTypeSimultaneousLEAndBREDRTosameDeviceCapableController FlagsDataType = (1 << 3)
)

func (f FlagsDataType) Len() int {
	return 3
}

func (f FlagsDataType) MarshalTo(buf []byte) int {
	checkBuffer(buf, 3)
	buf[0], buf[1], buf[2] = 0x02, 0x01, byte(f)
	return 3
}

type CompleteLocalName string

func (l CompleteLocalName) Len() int {
	return len(l) + 2
}

func (l CompleteLocalName) MarshalTo(buf []byte) int {
	return marshalName(buf, 0x09, string(l))
}

type ShortLocalName string

func (l ShortLocalName) Len() int {
	return len(l) + 2
}

func (l ShortLocalName) MarshalTo(buf []byte) int {
	return marshalName(buf, 0x08, string(l))
}

func marshalName(buf []byte, typ byte, name string) int {
	checkBuffer(buf, len(name)+2)
	buf[0] = byte(len(name) + 1)
	buf[1] = typ
	return 2 + copy(buf[2:], name)
}
