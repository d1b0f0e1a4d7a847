package hci

import (
	"fmt"
	"strconv"
	"strings"
)

type OwnAddressType uint8

const (
	OwnAddressTypePublicDeviceAddress         OwnAddressType = 0x00
	OwnAddressTypeRandomDeviceAddress         OwnAddressType = 0x01
	OwnAddressTypeControllerGeneratedOrPublic OwnAddressType = 0x02
	OwnAddressTypeControllerGeneratedOrRandom OwnAddressType = 0x03
)

type PeerAddressType uint8

const (
	PeerAddressTypePublicDeviceAddress PeerAddressType = 0x00
	PeerAddressTypeRandomDeviceAddress PeerAddressType = 0x01
)

type Role uint8

const (
	RoleCentral    Role = 0
	RolePeripheral Role = 1
)

type CentralClockAccuracy uint8

const (
	CentralClockAccuracy500PPM CentralClockAccuracy = 0
	CentralClockAccuracy250PPM CentralClockAccuracy = 1
	CentralClockAccuracy150PPM CentralClockAccuracy = 2
	CentralClockAccuracy100PPM CentralClockAccuracy = 3
	CentralClockAccuracy75PPM  CentralClockAccuracy = 4
	CentralClockAccuracy50PPM  CentralClockAccuracy = 5
	CentralClockAccuracy30PPM  CentralClockAccuracy = 6
	CentralClockAccuracy20PPM  CentralClockAccuracy = 7
)

// LinkType is the link type reported by Connection Complete and Data Buffer
// Overflow.
type LinkType uint8

const (
	LinkTypeSCO LinkType = 0x00
	LinkTypeACL LinkType = 0x01
)

func (t LinkType) String() string {
	switch t {
	case LinkTypeSCO:
		return "SCO"
	case LinkTypeACL:
		return "ACL"
	}
	return fmt.Sprintf("LinkType(%#02x)", uint8(t))
}

// Encryption is the encryption state reported by Encryption Change.
type Encryption uint8

const (
	EncryptionOff Encryption = 0x00
	EncryptionOn  Encryption = 0x01
)

// ConnectionHandle identifies a connection on the controller.
type ConnectionHandle uint16

// BDAddr is a device address in wire (least significant byte first) order.
type BDAddr [6]byte

// String formats the address most significant byte first, as in
// 00:11:22:33:44:55.
func (a BDAddr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[5], a[4], a[3], a[2], a[1], a[0])
}

func (a BDAddr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseBDAddr is the inverse of BDAddr.String.
func ParseBDAddr(s string) (BDAddr, error) {
	var addr BDAddr
	parts := strings.Split(s, ":")
	if len(parts) != len(addr) {
		return addr, fmt.Errorf("hci: malformed address %q", s)
	}
	for i, p := range parts {
		b, err := strconv.ParseUint(p, 16, 8)
		if err != nil || len(p) != 2 {
			return addr, fmt.Errorf("hci: malformed address %q", s)
		}
		addr[len(addr)-1-i] = byte(b)
	}
	return addr, nil
}

// EncryptionKey is a 128-bit key in wire order.
type EncryptionKey [16]byte
