package hci

type LESetAdvertisingEnableCommand struct {
	AdvertisingEnable bool
}

func (c LESetAdvertisingEnableCommand) Opcode() Opcode {
	return OpcodeLESetAdvertisingEnable
}

func (c LESetAdvertisingEnableCommand) MaxLen() int {
	return 1
}

func (c LESetAdvertisingEnableCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, 1)
	buf[0] = 0
	if c.AdvertisingEnable {
		buf[0] = 1
	}
	return 1
}
