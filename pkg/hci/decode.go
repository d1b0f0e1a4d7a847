package hci

import (
	"encoding/binary"
	"errors"
)

// Decoder turns event frames into Events. It holds no state between calls
// and may be shared by concurrent goroutines.
type Decoder struct {
	Vendor Vendor
}

func NewDecoder(v Vendor) *Decoder {
	return &Decoder{Vendor: v}
}

// Decode decodes one event frame with the given vendor extension.
func Decode(v Vendor, frame []byte) (Event, error) {
	return NewDecoder(v).Decode(frame)
}

// Decode decodes a frame of the form [event code][length][body]. The frame
// must hold exactly one event. Errors are *DecodeError carrying a copy of the
// frame.
func (d *Decoder) Decode(frame []byte) (Event, error) {
	ev, err := d.decode(frame)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			if len(frame) > 0 {
				de.Event = EventCode(frame[0])
			}
			de.Frame = append([]byte(nil), frame...)
		}
		return nil, err
	}
	return ev, nil
}

func (d *Decoder) vendor() Vendor {
	if d.Vendor == nil {
		return NoVendor{}
	}
	return d.Vendor
}

func (d *Decoder) status(b byte) (Status, error) {
	return ParseStatus(d.vendor(), b)
}

func (d *Decoder) reason(b byte) (Status, error) {
	s, err := ParseStatus(d.vendor(), b)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Kind = BadReason
		}
		return nil, err
	}
	return s, nil
}

func requireLen(buf []byte, n int) error {
	if len(buf) != n {
		return &DecodeError{Kind: BadLength, Expected: n, Actual: len(buf)}
	}
	return nil
}

func linkType(b byte) (LinkType, error) {
	switch t := LinkType(b); t {
	case LinkTypeSCO, LinkTypeACL:
		return t, nil
	}
	return 0, &DecodeError{Kind: BadLinkType, Value: b}
}

func handle(b []byte) ConnectionHandle {
	return ConnectionHandle(binary.LittleEndian.Uint16(b))
}

func (d *Decoder) decode(frame []byte) (Event, error) {
	if len(frame) < 2 {
		return nil, &DecodeError{Kind: BadLength, Expected: 2, Actual: len(frame)}
	}
	if len(frame) != 2+int(frame[1]) {
		return nil, &DecodeError{Kind: BadLength, Expected: 2 + int(frame[1]), Actual: len(frame)}
	}
	body := frame[2:]
	switch code := EventCode(frame[0]); code {
	case EventCodeConnectionComplete:
		return d.connectionComplete(body)
	case EventCodeDisconnectionComplete:
		return d.disconnectionComplete(body)
	case EventCodeEncryptionChange:
		return d.encryptionChange(body)
	case EventCodeReadRemoteVersionInformationComplete:
		return d.readRemoteVersionInformationComplete(body)
	case EventCodeCommandComplete:
		return d.commandComplete(body)
	case EventCodeCommandStatus:
		return d.commandStatus(body)
	case EventCodeHardwareError:
		if err := requireLen(body, 1); err != nil {
			return nil, err
		}
		return &HardwareError{Code: body[0]}, nil
	case EventCodeNumberOfCompletedPackets:
		return numberOfCompletedPackets(body)
	case EventCodeDataBufferOverflow:
		if err := requireLen(body, 1); err != nil {
			return nil, err
		}
		t, err := linkType(body[0])
		if err != nil {
			return nil, err
		}
		return &DataBufferOverflow{LinkType: t}, nil
	case EventCodeEncryptionKeyRefreshComplete:
		return d.encryptionKeyRefreshComplete(body)
	case EventCodeLEMeta:
		return d.leMeta(body)
	default:
		ev, err := d.vendor().ParseEvent(code, body)
		if err != nil {
			return nil, &DecodeError{Kind: BadVendorPayload, Err: err}
		}
		return &VendorEvent{Code: code, Event: ev}, nil
	}
}

func (d *Decoder) connectionComplete(b []byte) (Event, error) {
	if err := requireLen(b, 11); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	e := &ConnectionComplete{Status: s, ConnectionHandle: handle(b[1:3])}
	copy(e.BDAddr[:], b[3:9])
	if e.LinkType, err = linkType(b[9]); err != nil {
		return nil, err
	}
	switch b[10] {
	case 0:
	case 1:
		e.EncryptionEnabled = true
	default:
		return nil, &DecodeError{Kind: BadEncryptionEnabledValue, Value: b[10]}
	}
	return e, nil
}

func (d *Decoder) disconnectionComplete(b []byte) (Event, error) {
	if err := requireLen(b, 4); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	r, err := d.reason(b[3])
	if err != nil {
		return nil, err
	}
	return &DisconnectionComplete{Status: s, ConnectionHandle: handle(b[1:3]), Reason: r}, nil
}

func (d *Decoder) encryptionChange(b []byte) (Event, error) {
	if err := requireLen(b, 4); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	switch Encryption(b[3]) {
	case EncryptionOff, EncryptionOn:
	default:
		return nil, &DecodeError{Kind: BadEncryptionType, Value: b[3]}
	}
	return &EncryptionChange{Status: s, ConnectionHandle: handle(b[1:3]), Encryption: Encryption(b[3])}, nil
}

func (d *Decoder) readRemoteVersionInformationComplete(b []byte) (Event, error) {
	if err := requireLen(b, 8); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	return &ReadRemoteVersionInformationComplete{
		Status:           s,
		ConnectionHandle: handle(b[1:3]),
		Version:          b[3],
		ManufacturerName: binary.LittleEndian.Uint16(b[4:6]),
		Subversion:       binary.LittleEndian.Uint16(b[6:8]),
	}, nil
}

func (d *Decoder) commandComplete(b []byte) (Event, error) {
	if len(b) < 3 {
		return nil, &DecodeError{Kind: BadLength, Expected: 3, Actual: len(b)}
	}
	op := Opcode(binary.LittleEndian.Uint16(b[1:3]))
	rp, err := d.returnParameters(op, b[3:])
	if err != nil {
		return nil, err
	}
	return &CommandComplete{NumHCICommandPackets: b[0], CommandOpcode: op, ReturnParameters: rp}, nil
}

func (d *Decoder) commandStatus(b []byte) (Event, error) {
	if err := requireLen(b, 4); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	return &CommandStatus{
		Status:               s,
		NumHCICommandPackets: b[1],
		CommandOpcode:        Opcode(binary.LittleEndian.Uint16(b[2:4])),
	}, nil
}

func numberOfCompletedPackets(b []byte) (Event, error) {
	if len(b) < 1 {
		return nil, &DecodeError{Kind: BadLength, Expected: 1, Actual: 0}
	}
	records := b[1:]
	if len(records)%completedPacketsStride != 0 {
		return nil, &DecodeError{Kind: PartialRecord, Expected: completedPacketsStride, Actual: len(records)}
	}
	if n := int(b[0]) * completedPacketsStride; n != len(records) {
		return nil, &DecodeError{Kind: BadLength, Expected: 1 + n, Actual: len(b)}
	}
	return &NumberOfCompletedPackets{records: append([]byte(nil), records...)}, nil
}

func (d *Decoder) encryptionKeyRefreshComplete(b []byte) (Event, error) {
	if err := requireLen(b, 3); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	return &EncryptionKeyRefreshComplete{Status: s, ConnectionHandle: handle(b[1:3])}, nil
}

func (d *Decoder) leMeta(b []byte) (Event, error) {
	if len(b) < 1 {
		return nil, &DecodeError{Kind: BadLength, Expected: 1, Actual: 0}
	}
	switch LEMetaSubeventCode(b[0]) {
	case LEMetaSubeventCodeConnectionComplete:
		return d.leConnectionComplete(b[1:])
	case LEMetaSubeventCodeConnectionUpdate:
		return d.leConnectionUpdateComplete(b[1:])
	}
	return nil, &DecodeError{Kind: UnknownSubevent, Value: b[0]}
}

func (d *Decoder) leConnectionComplete(b []byte) (Event, error) {
	if err := requireLen(b, 18); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	e := &LEConnectionComplete{
		Status:               s,
		ConnectionHandle:     handle(b[1:3]),
		Role:                 Role(b[3]),
		PeerAddressType:      PeerAddressType(b[4]),
		ConnectionInterval:   binary.LittleEndian.Uint16(b[11:13]),
		PeripheralLatency:    binary.LittleEndian.Uint16(b[13:15]),
		SupervisionTimeout:   binary.LittleEndian.Uint16(b[15:17]),
		CentralClockAccuracy: CentralClockAccuracy(b[17]),
	}
	copy(e.PeerAddress[:], b[5:11])
	if e.Role > RolePeripheral {
		return nil, &DecodeError{Kind: BadRole, Value: b[3]}
	}
	if e.PeerAddressType > PeerAddressTypeRandomDeviceAddress {
		return nil, &DecodeError{Kind: BadPeerAddressType, Value: b[4]}
	}
	if e.CentralClockAccuracy > CentralClockAccuracy20PPM {
		return nil, &DecodeError{Kind: BadClockAccuracy, Value: b[17]}
	}
	return e, nil
}

func (d *Decoder) leConnectionUpdateComplete(b []byte) (Event, error) {
	if err := requireLen(b, 9); err != nil {
		return nil, err
	}
	s, err := d.status(b[0])
	if err != nil {
		return nil, err
	}
	return &LEConnectionUpdateComplete{
		Status:             s,
		ConnectionHandle:   handle(b[1:3]),
		ConnectionInterval: binary.LittleEndian.Uint16(b[3:5]),
		PeripheralLatency:  binary.LittleEndian.Uint16(b[5:7]),
		SupervisionTimeout: binary.LittleEndian.Uint16(b[7:9]),
	}, nil
}
