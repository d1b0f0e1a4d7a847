package hci

import "fmt"

// https://software-dl.ti.com/simplelink/esd/simplelink_cc13x2_sdk/1.60.00.29_new/exports/docs/ble5stack/vendor_specific_guide/BLE_Vendor_Specific_HCI_Guide/hci_interface.html

type PacketType uint8

const (
	PacketTypeCommand         PacketType = 0x01
	PacketTypeACLData         PacketType = 0x02
	PacketTypeSynchronousData PacketType = 0x03
	PacketTypeEvent           PacketType = 0x04
	PacketTypeExtendedCommand PacketType = 0x09
)

// Opcode packs a 6-bit OGF and a 10-bit OCF.
type Opcode uint16

// OGFVendor is the command group reserved for vendor-specific commands.
const OGFVendor = 0x3F

func NewOpcode(ogf uint8, ocf uint16) Opcode {
	return Opcode(uint16(ogf&0x3F)<<10 | ocf&0x03FF)
}

func (o Opcode) OGF() uint8 {
	return uint8(o >> 10)
}

func (o Opcode) OCF() uint16 {
	return uint16(o) & 0x03FF
}

func (o Opcode) IsVendor() bool {
	return o.OGF() == OGFVendor
}

func (o Opcode) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o Opcode) String() string {
	return fmt.Sprintf("%#04x (OGF %#02x, OCF %#03x)", uint16(o), o.OGF(), o.OCF())
}

const (
	OpcodeNone                         Opcode = 0x0000
	OpcodeDisconnect                   Opcode = 0x0406
	OpcodeReadRemoteVersionInformation Opcode = 0x041D
	OpcodeSetEventMask                 Opcode = 0x0C01
	OpcodeReset                        Opcode = 0x0C03
	OpcodeReadBDAddr                   Opcode = 0x1009
	OpcodeLESetEventMask               Opcode = 0x2001
	OpcodeLEReadBufferSize             Opcode = 0x2002
	OpcodeLESetAdvertisingParameters   Opcode = 0x2006
	OpcodeLESetAdvertisingData         Opcode = 0x2008
	OpcodeLESetAdvertisingEnable       Opcode = 0x200A
	OpcodeReadFilterAcceptListSize     Opcode = 0x200F
	OpcodeClearFilterAcceptList        Opcode = 0x2010
	OpcodeLEReadSupportedStates        Opcode = 0x201C
)

type EventCode uint8

const (
	EventCodeConnectionComplete                   EventCode = 0x03
	EventCodeDisconnectionComplete                EventCode = 0x05
	EventCodeEncryptionChange                     EventCode = 0x08
	EventCodeReadRemoteVersionInformationComplete EventCode = 0x0C
	EventCodeCommandComplete                      EventCode = 0x0E
	EventCodeCommandStatus                        EventCode = 0x0F
	EventCodeHardwareError                        EventCode = 0x10
	EventCodeNumberOfCompletedPackets             EventCode = 0x13
	EventCodeDataBufferOverflow                   EventCode = 0x1A
	EventCodeEncryptionKeyRefreshComplete         EventCode = 0x30
	EventCodeLEMeta                               EventCode = 0x3E
	EventCodeVendor                               EventCode = 0xFF
)

type LEMetaSubeventCode uint8

const (
	LEMetaSubeventCodeConnectionComplete LEMetaSubeventCode = 0x01
	LEMetaSubeventCodeConnectionUpdate   LEMetaSubeventCode = 0x03
)
