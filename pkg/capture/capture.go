// Package capture reads HCI event frames back out of pcap and pcapng files
// with an H4 link type, such as those saved by Wireshark or tcpdump.
package capture

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/muxable/hcicodec/pkg/transport/h4"
	"github.com/pkg/errors"
)

const (
	// LinkTypeH4 carries bare H4 packets.
	LinkTypeH4 = layers.LinkType(187)
	// LinkTypeH4WithPHDR prefixes each H4 packet with a 4-byte big endian
	// direction, 0 for host to controller, 1 for controller to host.
	LinkTypeH4WithPHDR = layers.LinkType(201)
)

const (
	DirectionSent     uint32 = 0
	DirectionReceived uint32 = 1
)

// pcapngMagic is the block type of a pcapng section header.
var pcapngMagic = []byte{0x0A, 0x0D, 0x0D, 0x0A}

// packetSource is satisfied by both pcapgo.Reader and pcapgo.NgReader.
type packetSource interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Reader yields the event frames of a capture in file order.
type Reader struct {
	r    packetSource
	phdr bool
}

// NewReader detects pcap or pcapng from the first bytes of r. A pcapng file
// is read with the link type of its first interface.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(pcapngMagic))
	if err != nil {
		return nil, errors.Wrap(err, "capture: read header")
	}
	var pr packetSource
	if bytes.Equal(magic, pcapngMagic) {
		pr, err = pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
	} else {
		pr, err = pcapgo.NewReader(br)
	}
	if err != nil {
		return nil, errors.Wrap(err, "capture: read header")
	}
	switch lt := pr.LinkType(); lt {
	case LinkTypeH4:
		return &Reader{r: pr}, nil
	case LinkTypeH4WithPHDR:
		return &Reader{r: pr, phdr: true}, nil
	default:
		return nil, errors.Errorf("capture: unsupported link type %d", lt)
	}
}

// ReadEvent returns the next event frame, skipping every other packet. It
// returns io.EOF at the end of the capture.
func (r *Reader) ReadEvent() ([]byte, error) {
	for {
		data, _, err := r.r.ReadPacketData()
		if err != nil {
			return nil, err
		}
		if r.phdr {
			if len(data) < 4 || binary.BigEndian.Uint32(data) != DirectionReceived {
				continue
			}
			data = data[4:]
		}
		if frame, ok := h4.Event(data); ok {
			return append([]byte(nil), frame...), nil
		}
	}
}
