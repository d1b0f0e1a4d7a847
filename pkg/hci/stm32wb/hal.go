package stm32wb

import (
	"fmt"

	"github.com/muxable/hcicodec/pkg/hci"
)

// MaxChannel is the highest BLE channel index accepted by StartTone.
const MaxChannel = 39

var (
	GetFirmwareRevision  = hci.NewGenericCommand(OpcodeHalGetFirmwareRevision)
	GetTxTestPacketCount = hci.NewGenericCommand(OpcodeHalGetTxTestPacketCount)
	StopTone             = hci.NewGenericCommand(OpcodeHalStopTone)
	GetLinkStatus        = hci.NewGenericCommand(OpcodeHalGetLinkStatus)
	GetAnchorPeriod      = hci.NewGenericCommand(OpcodeHalGetAnchorPeriod)
)

func checkBuffer(buf []byte, n int) {
	if len(buf) < n {
		panic(fmt.Sprintf("stm32wb: buffer of %d bytes is shorter than %d", len(buf), n))
	}
}

// ReadConfigDataCommand requests one field of the configuration structure.
type ReadConfigDataCommand struct {
	Parameter ConfigParameter
}

func (c ReadConfigDataCommand) Validate() error {
	if c.Parameter.Len() == 0 {
		return &hci.ParameterError{Command: "HAL Read Config Data", Field: "parameter", Value: int(c.Parameter)}
	}
	return nil
}

func (c ReadConfigDataCommand) Opcode() hci.Opcode {
	return OpcodeHalReadConfigData
}

func (c ReadConfigDataCommand) MaxLen() int {
	return 1
}

func (c ReadConfigDataCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 1)
	buf[0] = byte(c.Parameter)
	return 1
}

// SetTxPowerLevelCommand changes the output power immediately; the level
// holds until the next command or a reboot.
type SetTxPowerLevelCommand struct {
	Level PowerLevel
}

func (c SetTxPowerLevelCommand) Validate() error {
	if c.Level > PowerLevelPlus6dBm {
		return &hci.ParameterError{Command: "HAL Set TX Power Level", Field: "power level", Value: int(c.Level)}
	}
	return nil
}

func (c SetTxPowerLevelCommand) Opcode() hci.Opcode {
	return OpcodeHalSetTxPowerLevel
}

func (c SetTxPowerLevelCommand) MaxLen() int {
	return 2
}

// MarshalTo writes [high power mode][PA level]. STM32WB ignores the high
// power byte, so it is always zero.
func (c SetTxPowerLevelCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 2)
	buf[0] = 0
	buf[1] = byte(c.Level)
	return 2
}

// StartToneCommand starts a carrier on Channel (0 is 2.402 GHz, 1 is
// 2.404 GHz and so on). It is meant for debugging with no other radio
// activity going on.
type StartToneCommand struct {
	Channel         uint8
	FrequencyOffset uint8
}

func (c StartToneCommand) Validate() error {
	if c.Channel > MaxChannel {
		return &InvalidChannelError{Channel: c.Channel}
	}
	return nil
}

func (c StartToneCommand) Opcode() hci.Opcode {
	return OpcodeHalStartTone
}

func (c StartToneCommand) MaxLen() int {
	return 2
}

func (c StartToneCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 2)
	buf[0] = c.Channel
	buf[1] = c.FrequencyOffset
	return 2
}

// HAL issues the vendor HAL commands on a controller. Each method submits
// exactly one command; the results arrive later as Command Complete events.
type HAL struct {
	hci.Controller
}

func (h HAL) GetFirmwareRevision() error {
	return hci.Write(h, GetFirmwareRevision)
}

func (h HAL) WriteConfigData(data ConfigData) error {
	return hci.Write(h, data)
}

func (h HAL) ReadConfigData(p ConfigParameter) error {
	return hci.Write(h, ReadConfigDataCommand{Parameter: p})
}

func (h HAL) SetTxPowerLevel(level PowerLevel) error {
	return hci.Write(h, SetTxPowerLevelCommand{Level: level})
}

func (h HAL) GetTxTestPacketCount() error {
	return hci.Write(h, GetTxTestPacketCount)
}

// StartTone returns *InvalidChannelError without touching the controller if
// channel is above MaxChannel.
func (h HAL) StartTone(channel, freqOffset uint8) error {
	return hci.Write(h, StartToneCommand{Channel: channel, FrequencyOffset: freqOffset})
}

func (h HAL) StopTone() error {
	return hci.Write(h, StopTone)
}

func (h HAL) GetLinkStatus() error {
	return hci.Write(h, GetLinkStatus)
}

func (h HAL) GetAnchorPeriod() error {
	return hci.Write(h, GetAnchorPeriod)
}
