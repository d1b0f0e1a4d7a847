//go:build linux

package main

import (
	"github.com/muxable/hcicodec/internal/config"
	"github.com/muxable/hcicodec/pkg/transport/socket"
	"github.com/muxable/hcicodec/pkg/transport/uart"
	"github.com/pkg/errors"
)

func openTransport(c config.TransportConfig) (transport, error) {
	switch c.Kind {
	case "socket":
		s, err := socket.Open(c.Device)
		if err != nil {
			return nil, err
		}
		s.ResetOnClose = c.ResetOnClose
		return s, nil
	case "uart":
		return uart.Open(c.Port, c.Baud)
	}
	return nil, errors.Errorf("unknown transport %q", c.Kind)
}
