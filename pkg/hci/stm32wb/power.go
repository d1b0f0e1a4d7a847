package stm32wb

// PowerLevel is the single byte PA level used by STM32WB5x. Names give the
// output power, with _ for the decimal point.
type PowerLevel uint8

const (
	PowerLevelMinus40dBm    PowerLevel = 0x00
	PowerLevelMinus20_85dBm PowerLevel = 0x01
	PowerLevelMinus19_75dBm PowerLevel = 0x02
	PowerLevelMinus18_85dBm PowerLevel = 0x03
	PowerLevelMinus17_6dBm  PowerLevel = 0x04
	PowerLevelMinus16_5dBm  PowerLevel = 0x05
	PowerLevelMinus15_25dBm PowerLevel = 0x06
	PowerLevelMinus14_1dBm  PowerLevel = 0x07
	PowerLevelMinus13_15dBm PowerLevel = 0x08
	PowerLevelMinus12_05dBm PowerLevel = 0x09
	PowerLevelMinus10_9dBm  PowerLevel = 0x0A
	PowerLevelMinus9_9dBm   PowerLevel = 0x0B
	PowerLevelMinus8_85dBm  PowerLevel = 0x0C
	PowerLevelMinus7_8dBm   PowerLevel = 0x0D
	PowerLevelMinus6_9dBm   PowerLevel = 0x0E
	PowerLevelMinus5_9dBm   PowerLevel = 0x0F
	PowerLevelMinus4_95dBm  PowerLevel = 0x10
	PowerLevelMinus4dBm     PowerLevel = 0x11
	PowerLevelMinus3_15dBm  PowerLevel = 0x12
	PowerLevelMinus2_45dBm  PowerLevel = 0x13
	PowerLevelMinus1_8dBm   PowerLevel = 0x14
	PowerLevelMinus1_3dBm   PowerLevel = 0x15
	PowerLevelMinus0_85dBm  PowerLevel = 0x16
	PowerLevelMinus0_5dBm   PowerLevel = 0x17
	PowerLevelMinus0_15dBm  PowerLevel = 0x18
	PowerLevel0dBm          PowerLevel = 0x19
	PowerLevelPlus1dBm      PowerLevel = 0x1A
	PowerLevelPlus2dBm      PowerLevel = 0x1B
	PowerLevelPlus3dBm      PowerLevel = 0x1C
	PowerLevelPlus4dBm      PowerLevel = 0x1D
	PowerLevelPlus5dBm      PowerLevel = 0x1E
	PowerLevelPlus6dBm      PowerLevel = 0x1F
)
