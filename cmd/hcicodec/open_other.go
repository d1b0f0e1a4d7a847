//go:build !linux

package main

import (
	"github.com/muxable/hcicodec/internal/config"
	"github.com/muxable/hcicodec/pkg/transport/uart"
	"github.com/pkg/errors"
)

func openTransport(c config.TransportConfig) (transport, error) {
	switch c.Kind {
	case "socket":
		return nil, errors.New("the socket transport needs Linux")
	case "uart":
		return uart.Open(c.Port, c.Baud)
	}
	return nil, errors.Errorf("unknown transport %q", c.Kind)
}
