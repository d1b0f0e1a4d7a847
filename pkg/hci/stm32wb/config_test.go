package stm32wb

import (
	"bytes"
	"testing"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPublicAddress = hci.BDAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	testRandomAddress = hci.BDAddr{0x11, 0x12, 0x13, 0x14, 0x15, 0xC6}
	testEncRoot       = hci.EncryptionKey{0: 0xE0, 15: 0xEF}
	testIDRoot        = hci.EncryptionKey{0: 0x10, 15: 0x1F}
)

// structureImage is the configuration structure every test run is a window
// onto.
func structureImage() []byte {
	img := make([]byte, configStructureSize)
	copy(img[offsetPublicAddress:], testPublicAddress[:])
	img[offsetDiversifier] = 0x34
	img[offsetDiversifier+1] = 0x12
	copy(img[offsetEncryptionRoot:], testEncRoot[:])
	copy(img[offsetIdentityRoot:], testIDRoot[:])
	img[offsetLinkLayerOnly] = 1
	img[offsetRole] = byte(DeviceRolePrimary12KB)
	copy(img[offsetRandomAddress:], testRandomAddress[:])
	return img
}

func assertWindow(t *testing.T, c ConfigData, offset, length int) {
	t.Helper()
	assert.Equal(t, uint8(offset), c.Offset())
	assert.Equal(t, uint8(length), c.Length())
	assert.LessOrEqual(t, int(c.Offset())+int(c.Length()), configStructureSize)
	assert.Equal(t, structureImage()[offset:offset+length], c.Value())
}

func TestConfigDataFromPublicAddress(t *testing.T) {
	s1 := PublicAddress(testPublicAddress)
	assertWindow(t, s1.Build(), 0, 6)
	s2 := s1.Diversifier(0x1234)
	assertWindow(t, s2.Build(), 0, 8)
	s3 := s2.EncryptionRoot(testEncRoot)
	assertWindow(t, s3.Build(), 0, 24)
	s4 := s3.IdentityRoot(testIDRoot)
	assertWindow(t, s4.Build(), 0, 40)
	s5 := s4.LinkLayerOnly(true)
	assertWindow(t, s5.Build(), 0, 41)
	assertWindow(t, s5.Role(DeviceRolePrimary12KB).Build(), 0, 42)
}

func TestConfigDataFromEachField(t *testing.T) {
	assertWindow(t, Diversifier(0x1234).EncryptionRoot(testEncRoot).Build(), offsetDiversifier, 18)
	assertWindow(t, EncryptionRoot(testEncRoot).IdentityRoot(testIDRoot).LinkLayerOnly(true).Build(), offsetEncryptionRoot, 33)
	assertWindow(t, IdentityRoot(testIDRoot).Build(), offsetIdentityRoot, 16)
	assertWindow(t, LinkLayerOnly(true).Role(DeviceRolePrimary12KB).Build(), offsetLinkLayerOnly, 2)
	assertWindow(t, Role(DeviceRolePrimary12KB).Build(), offsetRole, 1)
	assertWindow(t, RandomAddress(testRandomAddress).Build(), offsetRandomAddress, 6)
}

func TestConfigDataStagesAreValues(t *testing.T) {
	s := PublicAddress(testPublicAddress)
	a := s.Diversifier(0x0001).Build()
	b := s.Diversifier(0x0002).Build()

	assert.Equal(t, uint8(6), s.Build().Length())
	assert.Equal(t, byte(0x01), a.Value()[6])
	assert.Equal(t, byte(0x02), b.Value()[6])

	v := a.Value()
	v[0] = 0xFF
	assert.Equal(t, byte(0x01), a.Value()[0])
}

func TestConfigDataMarshal(t *testing.T) {
	c := LinkLayerOnly(false).Role(DeviceRolePeripheral6KB).Build()
	buf := make([]byte, c.MaxLen())
	n := c.MarshalTo(buf)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{offsetLinkLayerOnly, 2, 0x00, 0x01}, buf[:n])

	full := PublicAddress(testPublicAddress).
		Diversifier(0x1234).
		EncryptionRoot(testEncRoot).
		IdentityRoot(testIDRoot).
		LinkLayerOnly(true).
		Role(DeviceRolePrimary12KB).
		Build()
	b, err := hci.Marshal(full)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0C, 0xFC, 0x00, 42}, b[:4])
	assert.True(t, bytes.Equal(structureImage()[:42], b[4:]))

	assert.Panics(t, func() { c.MarshalTo(make([]byte, 4)) })
}

func TestConfigParameterLen(t *testing.T) {
	assert.Equal(t, 6, ConfigParameterPublicAddress.Len())
	assert.Equal(t, 6, ConfigParameterRandomAddress.Len())
	assert.Equal(t, 2, ConfigParameterDiversifier.Len())
	assert.Equal(t, 16, ConfigParameterEncryptionRoot.Len())
	assert.Equal(t, 16, ConfigParameterIdentityRoot.Len())
	assert.Equal(t, 1, ConfigParameterLinkLayerOnly.Len())
	assert.Equal(t, 1, ConfigParameterRole.Len())
	assert.Equal(t, 0, ConfigParameter(0x03).Len())
}
