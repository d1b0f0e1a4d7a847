// Package h4 implements the UART transport framing of the Core
// Specification (Vol 4, Part A): every packet is prefixed with a one byte
// packet type.
package h4

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/pkg/errors"
)

// ErrParamsTooLong is returned for command parameters longer than 255 bytes.
var ErrParamsTooLong = errors.New("h4: command parameters too long")

// AppendCommand appends [type][opcode][length][params] to dst.
func AppendCommand(dst []byte, op hci.Opcode, params []byte) ([]byte, error) {
	if len(params) > math.MaxUint8 {
		return nil, ErrParamsTooLong
	}
	dst = append(dst, byte(hci.PacketTypeCommand), 0, 0, byte(len(params)))
	binary.LittleEndian.PutUint16(dst[len(dst)-3:], uint16(op))
	return append(dst, params...), nil
}

// Event returns the event frame carried by an H4 packet, or false if pkt is
// some other packet type.
func Event(pkt []byte) ([]byte, bool) {
	if len(pkt) < 1 || hci.PacketType(pkt[0]) != hci.PacketTypeEvent {
		return nil, false
	}
	return pkt[1:], true
}

// ReadPacket reads one packet from a byte stream. The returned packet does
// not include the type byte.
func ReadPacket(r io.Reader) (hci.PacketType, []byte, error) {
	var t [1]byte
	if _, err := io.ReadFull(r, t[:]); err != nil {
		return 0, nil, err
	}
	typ := hci.PacketType(t[0])

	var hlen int
	switch typ {
	case hci.PacketTypeCommand, hci.PacketTypeSynchronousData:
		hlen = 3
	case hci.PacketTypeACLData:
		hlen = 4
	case hci.PacketTypeEvent:
		hlen = 2
	default:
		return 0, nil, errors.Errorf("h4: unknown packet type %#02x", t[0])
	}

	hdr := make([]byte, hlen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return 0, nil, errors.Wrap(err, "h4: read header")
	}
	var plen int
	switch typ {
	case hci.PacketTypeACLData:
		plen = int(binary.LittleEndian.Uint16(hdr[2:]))
	default:
		plen = int(hdr[hlen-1])
	}

	pkt := make([]byte, hlen+plen)
	copy(pkt, hdr)
	if _, err := io.ReadFull(r, pkt[hlen:]); err != nil {
		return 0, nil, errors.Wrap(err, "h4: read payload")
	}
	return typ, pkt, nil
}
