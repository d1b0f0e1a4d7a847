//go:build linux

// Package socket drives a controller through a Linux HCI user channel.
package socket

import (
	"fmt"
	"io"
	"math"
	"sync"
	"unsafe"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/transport/h4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func ioR(t, nr, size uintptr) uintptr {
	return (2 << 30) | (t << 8) | nr | (size << 16)
}

func ioW(t, nr, size uintptr) uintptr {
	return (1 << 30) | (t << 8) | nr | (size << 16)
}

func ioctl(fd, op, arg uintptr) error {
	if _, _, ep := unix.Syscall(unix.SYS_IOCTL, fd, op, arg); ep != 0 {
		return ep
	}
	return nil
}

const (
	ioctlSize     = 4
	hciMaxDevices = 16
	typHCI        = 72 // 'H'
)

var (
	hciUpDevice      = ioW(typHCI, 201, ioctlSize) // HCIDEVUP
	hciDownDevice    = ioW(typHCI, 202, ioctlSize) // HCIDEVDOWN
	hciGetDeviceList = ioR(typHCI, 210, ioctlSize) // HCIGETDEVLIST
)

type devListRequest struct {
	devNum     uint16
	devRequest [hciMaxDevices]struct {
		id  uint16
		opt uint32
	}
}

// pollInterval bounds how long Close waits for a blocked Read, in
// milliseconds.
const pollInterval = 100

// Socket is a HCI User Channel. It implements hci.Controller, and
// ReadEvent returns the event frames the controller sends.
type Socket struct {
	// ResetOnClose makes Close send HCI Reset before releasing the channel,
	// undoing whatever state the session left in the controller.
	ResetOnClose bool

	fd     int
	closed chan struct{}
	rmu    sync.Mutex
	wmu    sync.Mutex
}

var _ hci.Controller = (*Socket)(nil)

// Open returns a HCI User Channel of specified device id.
// If id is -1, the first available HCI device is returned.
func Open(id int) (*Socket, error) {
	// Create RAW HCI Socket.
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW, unix.BTPROTO_HCI)
	if err != nil {
		return nil, errors.Wrap(err, "socket: create")
	}

	if id != -1 {
		return open(fd, id)
	}

	req := devListRequest{devNum: hciMaxDevices}
	if err = ioctl(uintptr(fd), hciGetDeviceList, uintptr(unsafe.Pointer(&req))); err != nil {
		return nil, errors.Wrap(err, "socket: list devices")
	}
	var msg string
	for id := 0; id < int(req.devNum); id++ {
		s, err := open(fd, id)
		if err == nil {
			return s, nil
		}
		msg = msg + fmt.Sprintf("(hci%d: %s)", id, err)
	}
	return nil, errors.Errorf("socket: no devices available: %s", msg)
}

func open(fd, id int) (*Socket, error) {
	// Reset the device in case previous session didn't cleanup properly.
	if err := ioctl(uintptr(fd), hciDownDevice, uintptr(id)); err != nil {
		return nil, errors.Wrapf(err, "socket: hci%d down", id)
	}
	if err := ioctl(uintptr(fd), hciUpDevice, uintptr(id)); err != nil {
		return nil, errors.Wrapf(err, "socket: hci%d up", id)
	}

	// HCI User Channel requires exclusive access to the device.
	// The device has to be down at the time of binding.
	if err := ioctl(uintptr(fd), hciDownDevice, uintptr(id)); err != nil {
		return nil, errors.Wrapf(err, "socket: hci%d down", id)
	}

	// Bind the RAW socket to HCI User Channel
	sa := unix.SockaddrHCI{Dev: uint16(id), Channel: unix.HCI_CHANNEL_USER}
	if err := unix.Bind(fd, &sa); err != nil {
		return nil, errors.Wrapf(err, "socket: bind hci%d", id)
	}

	// poll for 20ms to see if any data becomes available, then clear it
	pfds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	unix.Poll(pfds, 20)
	if pfds[0].Revents&unix.POLLIN > 0 {
		b := make([]byte, 100)
		unix.Read(fd, b)
	}

	return &Socket{fd: fd, closed: make(chan struct{})}, nil
}

// Read waits for one packet, checking for Close between polls. It returns
// io.EOF once the socket is closed.
func (s *Socket) Read(p []byte) (int, error) {
	s.rmu.Lock()
	defer s.rmu.Unlock()
	pfds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	for {
		select {
		case <-s.closed:
			return 0, io.EOF
		default:
		}
		n, err := unix.Poll(pfds, pollInterval)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return unix.Read(s.fd, p)
		}
	}
}

func (s *Socket) Write(p []byte) (int, error) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return unix.Write(s.fd, p)
}

// ReadEvent returns the next event frame. Every read on a user channel
// yields one whole packet; packets other than events are dropped.
func (s *Socket) ReadEvent() ([]byte, error) {
	buf := make([]byte, math.MaxUint16)
	for {
		n, err := s.Read(buf)
		if err != nil {
			return nil, err
		}
		zap.L().Debug("bluetooth reading", zap.String("packet", fmt.Sprintf("%x", buf[:n])))
		if frame, ok := h4.Event(buf[:n]); ok {
			return append([]byte(nil), frame...), nil
		}
	}
}

// WriteCommand writes one command packet.
func (s *Socket) WriteCommand(op hci.Opcode, params []byte) error {
	buf, err := h4.AppendCommand(nil, op, params)
	if err != nil {
		return err
	}
	zap.L().Debug("bluetooth writing", zap.String("packet", fmt.Sprintf("%x", buf)))
	_, err = s.Write(buf)
	return err
}

// Close stops pending reads and releases the channel. The controller keeps
// its state unless ResetOnClose is set.
func (s *Socket) Close() error {
	if s.ResetOnClose {
		s.WriteCommand(hci.OpcodeReset, nil)
	}
	close(s.closed)
	// A Read in progress notices within one poll and drops the lock.
	s.rmu.Lock()
	defer s.rmu.Unlock()
	return unix.Close(s.fd)
}
