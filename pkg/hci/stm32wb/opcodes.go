package stm32wb

import "github.com/muxable/hcicodec/pkg/hci"

// HAL commands, OGF 0x3F.
const (
	OpcodeHalGetFirmwareRevision  hci.Opcode = 0xFC00
	OpcodeHalWriteConfigData      hci.Opcode = 0xFC0C
	OpcodeHalReadConfigData       hci.Opcode = 0xFC0D
	OpcodeHalSetTxPowerLevel      hci.Opcode = 0xFC0F
	OpcodeHalGetTxTestPacketCount hci.Opcode = 0xFC14
	OpcodeHalStartTone            hci.Opcode = 0xFC15
	OpcodeHalStopTone             hci.Opcode = 0xFC16
	OpcodeHalGetLinkStatus        hci.Opcode = 0xFC17
	OpcodeHalGetAnchorPeriod      hci.Opcode = 0xFC19
)

func knownOpcode(op hci.Opcode) bool {
	switch op {
	case OpcodeHalGetFirmwareRevision,
		OpcodeHalWriteConfigData,
		OpcodeHalReadConfigData,
		OpcodeHalSetTxPowerLevel,
		OpcodeHalGetTxTestPacketCount,
		OpcodeHalStartTone,
		OpcodeHalStopTone,
		OpcodeHalGetLinkStatus,
		OpcodeHalGetAnchorPeriod:
		return true
	}
	return false
}
