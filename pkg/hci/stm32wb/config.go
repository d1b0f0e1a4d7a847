package stm32wb

import (
	"encoding/binary"

	"github.com/muxable/hcicodec/pkg/hci"
)

const (
	// ConfigDataMaxLen is the capacity of a ConfigData value and the most
	// bytes its encoding can take.
	ConfigDataMaxLen = 0x2E

	// configStructureSize is the size of the controller's configuration
	// structure, ending with the random address.
	configStructureSize = 0x34
)

// Offsets of the fields of the configuration structure.
const (
	offsetPublicAddress  = 0
	offsetDiversifier    = 6
	offsetEncryptionRoot = 8
	offsetIdentityRoot   = 24
	offsetLinkLayerOnly  = 40
	offsetRole           = 41
	offsetRandomAddress  = 0x2E
)

// ConfigData is one contiguous run of the controller's low level
// configuration structure, written by HAL Write Config Data.
//
// The controller accepts any contiguous run. The constructors below each
// start at one field and return a stage that can only append the field that
// follows it, or build:
//
//	data := stm32wb.PublicAddress(addr).Diversifier(0x1234).Build()
type ConfigData struct {
	offset uint8
	length uint8
	value  [ConfigDataMaxLen]byte
}

func newConfigData(offset uint8, value ...byte) ConfigData {
	var c ConfigData
	c.offset = offset
	return c.append(value...)
}

func (c ConfigData) append(value ...byte) ConfigData {
	c.length += uint8(copy(c.value[c.length:], value))
	return c
}

func le16(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Offset is where the run starts in the configuration structure.
func (c ConfigData) Offset() uint8 {
	return c.offset
}

// Length is the number of bytes in the run.
func (c ConfigData) Length() uint8 {
	return c.length
}

// Value returns a copy of the run.
func (c ConfigData) Value() []byte {
	return append([]byte(nil), c.value[:c.length]...)
}

func (c ConfigData) Opcode() hci.Opcode {
	return OpcodeHalWriteConfigData
}

func (c ConfigData) MaxLen() int {
	return ConfigDataMaxLen
}

// MarshalTo writes [offset][length][value].
func (c ConfigData) MarshalTo(buf []byte) int {
	n := 2 + int(c.length)
	if len(buf) < n || len(buf) < ConfigDataMaxLen {
		panic("stm32wb: config data buffer too short")
	}
	buf[0] = c.offset
	buf[1] = c.length
	copy(buf[2:], c.value[:c.length])
	return n
}

func PublicAddress(addr hci.BDAddr) DiversifierStage {
	return DiversifierStage{newConfigData(offsetPublicAddress, addr[:]...)}
}

// RandomAddress is the last field of the structure, so nothing can follow
// it.
func RandomAddress(addr hci.BDAddr) CompleteStage {
	return CompleteStage{newConfigData(offsetRandomAddress, addr[:]...)}
}

func Diversifier(d uint16) EncryptionRootStage {
	return EncryptionRootStage{newConfigData(offsetDiversifier, le16(d)...)}
}

func EncryptionRoot(key hci.EncryptionKey) IdentityRootStage {
	return IdentityRootStage{newConfigData(offsetEncryptionRoot, key[:]...)}
}

func IdentityRoot(key hci.EncryptionKey) LinkLayerOnlyStage {
	return LinkLayerOnlyStage{newConfigData(offsetIdentityRoot, key[:]...)}
}

func LinkLayerOnly(llOnly bool) RoleStage {
	return RoleStage{newConfigData(offsetLinkLayerOnly, flag(llOnly))}
}

func Role(role DeviceRole) CompleteStage {
	return CompleteStage{newConfigData(offsetRole, byte(role))}
}

// DiversifierStage follows the public address.
type DiversifierStage struct {
	data ConfigData
}

func (s DiversifierStage) Diversifier(d uint16) EncryptionRootStage {
	return EncryptionRootStage{s.data.append(le16(d)...)}
}

// Build includes only the public address.
func (s DiversifierStage) Build() ConfigData {
	return s.data
}

type EncryptionRootStage struct {
	data ConfigData
}

func (s EncryptionRootStage) EncryptionRoot(key hci.EncryptionKey) IdentityRootStage {
	return IdentityRootStage{s.data.append(key[:]...)}
}

// Build includes everything up to and including the diversifier.
func (s EncryptionRootStage) Build() ConfigData {
	return s.data
}

type IdentityRootStage struct {
	data ConfigData
}

func (s IdentityRootStage) IdentityRoot(key hci.EncryptionKey) LinkLayerOnlyStage {
	return LinkLayerOnlyStage{s.data.append(key[:]...)}
}

// Build includes everything up to and including the encryption root.
func (s IdentityRootStage) Build() ConfigData {
	return s.data
}

type LinkLayerOnlyStage struct {
	data ConfigData
}

func (s LinkLayerOnlyStage) LinkLayerOnly(llOnly bool) RoleStage {
	return RoleStage{s.data.append(flag(llOnly))}
}

// Build includes everything up to and including the identity root.
func (s LinkLayerOnlyStage) Build() ConfigData {
	return s.data
}

type RoleStage struct {
	data ConfigData
}

func (s RoleStage) Role(role DeviceRole) CompleteStage {
	return CompleteStage{s.data.append(byte(role))}
}

// Build includes everything up to and including the link layer only flag.
func (s RoleStage) Build() ConfigData {
	return s.data
}

// CompleteStage has no field left to append.
type CompleteStage struct {
	data ConfigData
}

func (s CompleteStage) Build() ConfigData {
	return s.data
}

// DeviceRole selects the controller's role and memory configuration.
type DeviceRole uint8

const (
	// One connection, 6 KB of RAM retention.
	DeviceRolePeripheral6KB DeviceRole = 1
	// One connection, 12 KB of RAM retention.
	DeviceRolePeripheral12KB DeviceRole = 2
	// Up to 8 connections, 12 KB of RAM retention.
	DeviceRolePrimary12KB DeviceRole = 3
	// Simultaneous advertising and scanning, up to 4 connections.
	DeviceRoleSimultaneousAdvertisingScanning DeviceRole = 4
)

// ConfigParameter selects the field read by HAL Read Config Data. The value
// is the field's offset.
type ConfigParameter uint8

const (
	ConfigParameterPublicAddress  ConfigParameter = offsetPublicAddress
	ConfigParameterRandomAddress  ConfigParameter = offsetRandomAddress
	ConfigParameterDiversifier    ConfigParameter = offsetDiversifier
	ConfigParameterEncryptionRoot ConfigParameter = offsetEncryptionRoot
	ConfigParameterIdentityRoot   ConfigParameter = offsetIdentityRoot
	ConfigParameterLinkLayerOnly  ConfigParameter = offsetLinkLayerOnly
	ConfigParameterRole           ConfigParameter = offsetRole
)

// Len is the width of the field p selects, or 0 if p is not a field.
func (p ConfigParameter) Len() int {
	switch p {
	case ConfigParameterPublicAddress, ConfigParameterRandomAddress:
		return 6
	case ConfigParameterDiversifier:
		return 2
	case ConfigParameterEncryptionRoot, ConfigParameterIdentityRoot:
		return 16
	case ConfigParameterLinkLayerOnly, ConfigParameterRole:
		return 1
	}
	return 0
}
