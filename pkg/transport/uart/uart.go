// Package uart drives a controller over a serial port using H4 framing.
package uart

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/transport/h4"
	"github.com/pkg/errors"
	"github.com/tarm/serial"
	"go.uber.org/zap"
)

const DefaultBaud = 115200

// Port is an H4 link. It implements hci.Controller, and ReadEvent returns
// the event frames the controller sends.
type Port struct {
	rw  io.ReadWriteCloser
	r   *bufio.Reader
	rmu sync.Mutex
	wmu sync.Mutex
}

var _ hci.Controller = (*Port)(nil)

// Open opens the serial device name, e.g. /dev/ttyACM0. A baud of zero
// selects DefaultBaud.
func Open(name string, baud int) (*Port, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	s, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "uart: open %s", name)
	}
	return New(s), nil
}

// New runs the H4 link over an already opened stream.
func New(rw io.ReadWriteCloser) *Port {
	return &Port{rw: rw, r: bufio.NewReader(rw)}
}

// WriteCommand writes one command packet in a single Write.
func (p *Port) WriteCommand(op hci.Opcode, params []byte) error {
	buf, err := h4.AppendCommand(nil, op, params)
	if err != nil {
		return err
	}
	zap.L().Debug("uart writing", zap.String("packet", fmt.Sprintf("%x", buf)))
	p.wmu.Lock()
	defer p.wmu.Unlock()
	if _, err := p.rw.Write(buf); err != nil {
		return errors.Wrap(err, "uart: write")
	}
	return nil
}

// ReadEvent returns the next event frame, skipping other packet types.
func (p *Port) ReadEvent() ([]byte, error) {
	p.rmu.Lock()
	defer p.rmu.Unlock()
	for {
		typ, pkt, err := h4.ReadPacket(p.r)
		if err != nil {
			return nil, err
		}
		zap.L().Debug("uart reading", zap.Uint8("type", uint8(typ)), zap.String("packet", fmt.Sprintf("%x", pkt)))
		if typ == hci.PacketTypeEvent {
			return pkt, nil
		}
	}
}

func (p *Port) Close() error {
	return p.rw.Close()
}
