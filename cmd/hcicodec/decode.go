package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/muxable/hcicodec/pkg/capture"
	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/monitor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode event frames given as hex",
		Long: `Decode one event frame per argument. A frame is
[event code][length][parameters]; spaces and colons are ignored.`,
		Example: `  # Command Complete for Reset
  hcicodec decode 0e0401030c00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decodeFrames(args)
		},
	}
}

// parseHex accepts "0e 04", "0e:04" and "0e04".
func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", s)
	}
	return b, nil
}

func (a *app) decodeFrames(args []string) error {
	failed := 0
	for _, arg := range args {
		frame, err := parseHex(arg)
		if err != nil {
			return err
		}
		ev, err := a.dec.Decode(frame)
		if err != nil {
			failed++
			if err := a.out.failure(err); err != nil {
				return err
			}
			continue
		}
		if err := a.out.event(ev); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d frames failed to decode", failed, len(args))
	}
	return nil
}

func newPcapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pcap <file>",
		Short: "Decode every event in an H4 capture",
		Long: `Decode the events of a pcap file with link type
BLUETOOTH_HCI_H4 or BLUETOOTH_HCI_H4_WITH_PHDR, such as one written by
btmon or Wireshark. Packets sent by the host are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decodeCapture(args[0])
		},
	}
}

func (a *app) decodeCapture(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open capture")
	}
	defer f.Close()

	r, err := capture.NewReader(f)
	if err != nil {
		return err
	}
	m := monitor.New(r, a.dec)
	var werr error
	m.Subscribe(func(ev hci.Event, err error) {
		if werr != nil {
			return
		}
		if err != nil {
			werr = a.out.failure(err)
			return
		}
		werr = a.out.event(ev)
	})
	if err := m.Run(); err != nil {
		return err
	}
	return werr
}
