package hci

import (
	"encoding/binary"
	"iter"
)

// Event is a decoded event. The standard events are the types in this file;
// anything the vendor decodes arrives as VendorEvent.
type Event interface {
	EventCode() EventCode
	event()
}

// Section 7.7.3
type ConnectionComplete struct {
	Status            Status
	ConnectionHandle  ConnectionHandle
	BDAddr            BDAddr
	LinkType          LinkType
	EncryptionEnabled bool
}

// Section 7.7.5
type DisconnectionComplete struct {
	Status           Status
	ConnectionHandle ConnectionHandle
	Reason           Status
}

// Section 7.7.8
type EncryptionChange struct {
	Status           Status
	ConnectionHandle ConnectionHandle
	Encryption       Encryption
}

// Section 7.7.12
type ReadRemoteVersionInformationComplete struct {
	Status           Status
	ConnectionHandle ConnectionHandle
	Version          uint8
	ManufacturerName uint16
	Subversion       uint16
}

// Section 7.7.14
type CommandComplete struct {
	NumHCICommandPackets uint8
	CommandOpcode        Opcode
	ReturnParameters     ReturnParameters
}

// Section 7.7.15
type CommandStatus struct {
	Status               Status
	NumHCICommandPackets uint8
	CommandOpcode        Opcode
}

// Section 7.7.16
type HardwareError struct {
	Code uint8
}

// CompletedPackets is one record of a Number Of Completed Packets event.
type CompletedPackets struct {
	ConnectionHandle    ConnectionHandle
	NumCompletedPackets uint16
}

const completedPacketsStride = 4

// NumberOfCompletedPackets (section 7.7.19) holds its records undecoded;
// All walks them in place.
type NumberOfCompletedPackets struct {
	records []byte
}

// Len is the number of records.
func (e *NumberOfCompletedPackets) Len() int {
	return len(e.records) / completedPacketsStride
}

// All yields each record in wire order.
func (e *NumberOfCompletedPackets) All() iter.Seq[CompletedPackets] {
	return func(yield func(CompletedPackets) bool) {
		for b := e.records; len(b) >= completedPacketsStride; b = b[completedPacketsStride:] {
			if !yield(CompletedPackets{
				ConnectionHandle:    ConnectionHandle(binary.LittleEndian.Uint16(b)),
				NumCompletedPackets: binary.LittleEndian.Uint16(b[2:]),
			}) {
				return
			}
		}
	}
}

func (e *NumberOfCompletedPackets) MarshalYAML() (any, error) {
	var out []CompletedPackets
	for r := range e.All() {
		out = append(out, r)
	}
	return out, nil
}

// Section 7.7.26
type DataBufferOverflow struct {
	LinkType LinkType
}

// Section 7.7.39
type EncryptionKeyRefreshComplete struct {
	Status           Status
	ConnectionHandle ConnectionHandle
}

// Section 7.7.65.1
type LEConnectionComplete struct {
	Status               Status
	ConnectionHandle     ConnectionHandle
	Role                 Role
	PeerAddressType      PeerAddressType
	PeerAddress          BDAddr
	ConnectionInterval   uint16
	PeripheralLatency    uint16
	SupervisionTimeout   uint16
	CentralClockAccuracy CentralClockAccuracy
}

// Section 7.7.65.3
type LEConnectionUpdateComplete struct {
	Status             Status
	ConnectionHandle   ConnectionHandle
	ConnectionInterval uint16
	PeripheralLatency  uint16
	SupervisionTimeout uint16
}

// VendorEvent wraps whatever the vendor extension decoded.
type VendorEvent struct {
	Code  EventCode
	Event any
}

func (*ConnectionComplete) EventCode() EventCode    { return EventCodeConnectionComplete }
func (*DisconnectionComplete) EventCode() EventCode { return EventCodeDisconnectionComplete }
func (*EncryptionChange) EventCode() EventCode      { return EventCodeEncryptionChange }
func (*ReadRemoteVersionInformationComplete) EventCode() EventCode {
	return EventCodeReadRemoteVersionInformationComplete
}
func (*CommandComplete) EventCode() EventCode          { return EventCodeCommandComplete }
func (*CommandStatus) EventCode() EventCode            { return EventCodeCommandStatus }
func (*HardwareError) EventCode() EventCode            { return EventCodeHardwareError }
func (*NumberOfCompletedPackets) EventCode() EventCode { return EventCodeNumberOfCompletedPackets }
func (*DataBufferOverflow) EventCode() EventCode       { return EventCodeDataBufferOverflow }
func (*EncryptionKeyRefreshComplete) EventCode() EventCode {
	return EventCodeEncryptionKeyRefreshComplete
}
func (*LEConnectionComplete) EventCode() EventCode       { return EventCodeLEMeta }
func (*LEConnectionUpdateComplete) EventCode() EventCode { return EventCodeLEMeta }
func (e *VendorEvent) EventCode() EventCode              { return e.Code }

func (*ConnectionComplete) event()                   {}
func (*DisconnectionComplete) event()                {}
func (*EncryptionChange) event()                     {}
func (*ReadRemoteVersionInformationComplete) event() {}
func (*CommandComplete) event()                      {}
func (*CommandStatus) event()                        {}
func (*HardwareError) event()                        {}
func (*NumberOfCompletedPackets) event()             {}
func (*DataBufferOverflow) event()                   {}
func (*EncryptionKeyRefreshComplete) event()         {}
func (*LEConnectionComplete) event()                 {}
func (*LEConnectionUpdateComplete) event()           {}
func (*VendorEvent) event()                          {}
