package hci

// MaxAdvertisingDataLen is the size of the advertising data field.
const MaxAdvertisingDataLen = 31

// Section 7.8.7
type LESetAdvertisingDataCommand struct {
	AdvertisingData []DataType
}

func (c LESetAdvertisingDataCommand) dataLen() int {
	n := 0
	for _, data := range c.AdvertisingData {
		n += data.Len()
	}
	return n
}

func (c LESetAdvertisingDataCommand) Validate() error {
	if n := c.dataLen(); n > MaxAdvertisingDataLen {
		return &ParameterError{Command: "LE Set Advertising Data", Field: "advertising data length", Value: n}
	}
	return nil
}

func (c LESetAdvertisingDataCommand) Opcode() Opcode {
	return OpcodeLESetAdvertisingData
}

func (c LESetAdvertisingDataCommand) MaxLen() int {
	return 1 + MaxAdvertisingDataLen
}

// MarshalTo always writes the full, zero padded field. The data must fit;
// see Validate.
func (c LESetAdvertisingDataCommand) MarshalTo(buf []byte) int {
	checkBuffer(buf, c.MaxLen())
	buf = buf[:c.MaxLen()]
	for i := range buf {
		buf[i] = 0
	}
	n := 1
	for _, data := range c.AdvertisingData {
		n += data.MarshalTo(buf[n:])
	}
	buf[0] = uint8(n - 1)
	return len(buf)
}
