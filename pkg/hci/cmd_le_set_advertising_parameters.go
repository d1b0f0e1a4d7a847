package hci

import "encoding/binary"

type AdvertisingType uint8

const (
	AdvertisingTypeConnectableAndScannableUndirectedAdvertising AdvertisingType = 0x00
	AdvertisingTypeConnectableHighDutyCycleDirectedAdvertising  AdvertisingType = 0x01
	AdvertisingTypeScannableUndirectedAdvertising               AdvertisingType = 0x02
	AdvertisingTypeNonConnectableUndirectedAdvertising          AdvertisingType = 0x03
	AdvertisingTypeConnectableLowDutyCycleDirectedAdvertising   AdvertisingType = 0x04
)

type AdvertisingChannelMap uint8

const (
	AdvertisingChannelMapChannel37 AdvertisingChannelMap = 0x01
	AdvertisingChannelMapChannel38 AdvertisingChannelMap = 0x02
	AdvertisingChannelMapChannel39 AdvertisingChannelMap = 0x04

	AdvertisingChannelMapDefault AdvertisingChannelMap = 0x07
)

type AdvertisingFilterPolicy uint8

const (
	AdvertisingFilterPolicyProcessScanAndConnectionRequestsFromAllDevices                       AdvertisingFilterPolicy = 0x00
	AdvertisingFilterPolicyProcessConnectionRequestsFromAllDevicesAndScanRequestsFromFilterList AdvertisingFilterPolicy = 0x01
	AdvertisingFilterPolicyProcessScanRequestsFromAllDevicesAndConnectionRequestsFromFilterList AdvertisingFilterPolicy = 0x02
	AdvertisingFilterPolicyProcessScanAndConnectionRequestsFromFilterList                       AdvertisingFilterPolicy = 0x03
)

const (
	advertisingIntervalMin     = 0x0020
	advertisingIntervalMax     = 0x4000
	advertisingIntervalDefault = 0x0800
)

// Section 7.8.5
type LESetAdvertisingParametersCommand struct {
	AdvertisingIntervalMin  uint16
	AdvertisingIntervalMax  uint16
	AdvertisingType         AdvertisingType
	OwnAddressType          OwnAddressType
	PeerAddressType         PeerAddressType
	PeerAddress             BDAddr
	AdvertisingChannelMap   AdvertisingChannelMap
	AdvertisingFilterPolicy AdvertisingFilterPolicy
}

// WithDefaults fills zero intervals and an empty channel map with the
// controller defaults.
func (c LESetAdvertisingParametersCommand) WithDefaults() LESetAdvertisingParametersCommand {
	if c.AdvertisingIntervalMin == 0 {
		c.AdvertisingIntervalMin = advertisingIntervalDefault
	}
	if c.AdvertisingIntervalMax == 0 {
		c.AdvertisingIntervalMax = advertisingIntervalDefault
	}
	if c.AdvertisingChannelMap == 0 {
		c.AdvertisingChannelMap = AdvertisingChannelMapDefault
	}
	return c
}

func (c LESetAdvertisingParametersCommand) Validate() error {
	invalid := func(field string, v int) error {
		return &ParameterError{Command: "LE Set Advertising Parameters", Field: field, Value: v}
	}
	if c.AdvertisingIntervalMin < advertisingIntervalMin || c.AdvertisingIntervalMin > advertisingIntervalMax {
		return invalid("advertising interval min", int(c.AdvertisingIntervalMin))
	}
	if c.AdvertisingIntervalMax < advertisingIntervalMin || c.AdvertisingIntervalMax > advertisingIntervalMax {
		return invalid("advertising interval max", int(c.AdvertisingIntervalMax))
	}
	if c.AdvertisingIntervalMin > c.AdvertisingIntervalMax {
		return invalid("advertising interval min", int(c.AdvertisingIntervalMin))
	}
	if c.AdvertisingType > AdvertisingTypeConnectableLowDutyCycleDirectedAdvertising {
		return invalid("advertising type", int(c.AdvertisingType))
	}
	if c.OwnAddressType > OwnAddressTypeControllerGeneratedOrRandom {
		return invalid("own address type", int(c.OwnAddressType))
	}
	if c.PeerAddressType > PeerAddressTypeRandomDeviceAddress {
		return invalid("peer address type", int(c.PeerAddressType))
	}
	if c.AdvertisingChannelMap == 0 || c.AdvertisingChannelMap > AdvertisingChannelMapDefault {
		return invalid("advertising channel map", int(c.AdvertisingChannelMap))
	}
	if c.AdvertisingFilterPolicy > AdvertisingFilterPolicyProcessScanAndConnectionRequestsFromFilterList {
		return invalid("advertising filter policy", int(c.AdvertisingFilterPolicy))
	}
	return nil
}

func (c LESetAdvertisingParametersCommand) Opcode() Opcode {
	return OpcodeLESetAdvertisingParameters
}

func (c LESetAdvertisingParametersCommand) MaxLen() int {
	return 15
}

func (c LESetAdvertisingParametersCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 15)
	binary.LittleEndian.PutUint16(buf[0:], c.AdvertisingIntervalMin)
	binary.LittleEndian.PutUint16(buf[2:], c.AdvertisingIntervalMax)
	buf[4] = byte(c.AdvertisingType)
	buf[5] = byte(c.OwnAddressType)
	buf[6] = byte(c.PeerAddressType)
	copy(buf[7:13], c.PeerAddress[:])
	buf[13] = byte(c.AdvertisingChannelMap)
	buf[14] = byte(c.AdvertisingFilterPolicy)
	return 15
}
