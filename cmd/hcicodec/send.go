package main

import (
	"sync"
	"time"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/hci/stm32wb"
	"github.com/muxable/hcicodec/pkg/monitor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sendFlags struct {
	wait      time.Duration
	transport string
	device    int
	port      string
	baud      int

	resetOnClose bool
}

// transport is a controller that also produces event frames.
type transport interface {
	hci.Controller
	monitor.Source
	Close() error
}

func newSendCmd(a *app) *cobra.Command {
	flags := &sendFlags{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a command to a controller and print the events that follow",
		Long: `Send one command through the configured transport, then print every
event received until --wait elapses. Events are not matched against the
command.`,
	}
	cmd.PersistentFlags().DurationVar(&flags.wait, "wait", time.Second, "How long to print events after sending")
	cmd.PersistentFlags().StringVar(&flags.transport, "transport", "", "Transport (socket or uart), overrides the config file")
	cmd.PersistentFlags().IntVar(&flags.device, "device", -1, "HCI device id for the socket transport")
	cmd.PersistentFlags().StringVar(&flags.port, "port", "", "Serial port for the uart transport")
	cmd.PersistentFlags().IntVar(&flags.baud, "baud", 0, "Serial baud rate")
	cmd.PersistentFlags().BoolVar(&flags.resetOnClose, "reset-on-close", false, "Send HCI Reset when closing the socket transport")

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, flags, func(c hci.Controller) error {
				return hci.Write(c, hci.Reset)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "firmware",
		Short: "Read the STM32WB firmware revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, flags, func(c hci.Controller) error {
				return stm32wb.HAL{Controller: c}.GetFirmwareRevision()
			})
		},
	})

	var channel, offset uint8
	tone := &cobra.Command{
		Use:   "tone",
		Short: "Start an STM32WB test tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, flags, func(c hci.Controller) error {
				return stm32wb.HAL{Controller: c}.StartTone(channel, offset)
			})
		},
	}
	tone.Flags().Uint8Var(&channel, "channel", 0, "BLE channel (0 to 39)")
	tone.Flags().Uint8Var(&offset, "offset", 0, "Frequency offset")
	cmd.AddCommand(tone)

	cmd.AddCommand(&cobra.Command{
		Use:   "stop-tone",
		Short: "Stop the STM32WB test tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, flags, func(c hci.Controller) error {
				return stm32wb.HAL{Controller: c}.StopTone()
			})
		},
	})

	var level uint8
	power := &cobra.Command{
		Use:   "tx-power",
		Short: "Set the STM32WB transmit power level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, flags, func(c hci.Controller) error {
				return stm32wb.HAL{Controller: c}.SetTxPowerLevel(stm32wb.PowerLevel(level))
			})
		},
	}
	power.Flags().Uint8Var(&level, "level", uint8(stm32wb.PowerLevel0dBm), "PA level (0x00 to 0x1F)")
	cmd.AddCommand(power)

	cf := &configFlags{}
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Write STM32WB configuration data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cf.build()
			if err != nil {
				return err
			}
			return a.send(cmd, flags, func(c hci.Controller) error {
				return stm32wb.HAL{Controller: c}.WriteConfigData(data)
			})
		},
	}
	cf.register(configCmd.Flags())
	cmd.AddCommand(configCmd)

	return cmd
}

func (a *app) send(cmd *cobra.Command, flags *sendFlags, write func(hci.Controller) error) error {
	tc := a.cfg.Transport
	if cmd.Flags().Changed("transport") {
		tc.Kind = flags.transport
	}
	if cmd.Flags().Changed("device") {
		tc.Device = flags.device
	}
	if cmd.Flags().Changed("port") {
		tc.Port = flags.port
	}
	if cmd.Flags().Changed("baud") {
		tc.Baud = flags.baud
	}
	if cmd.Flags().Changed("reset-on-close") {
		tc.ResetOnClose = flags.resetOnClose
	}
	if err := tc.Validate(); err != nil {
		return err
	}

	t, err := a.open(tc)
	if err != nil {
		return err
	}
	defer t.Close()

	// Nothing is printed once send returns, even if the monitor is still
	// dispatching a frame.
	var mu sync.Mutex
	stopped := false
	m := monitor.New(t, a.dec)
	id := m.Subscribe(func(ev hci.Event, err error) {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if err != nil {
			_ = a.out.failure(err)
			return
		}
		_ = a.out.event(ev)
	})
	defer func() {
		m.Unsubscribe(id)
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	done := make(chan error, 1)
	go func() {
		done <- m.Run()
	}()

	if err := write(t); err != nil {
		return err
	}
	zap.L().Debug("command sent", zap.Duration("wait", flags.wait))

	select {
	case err := <-done:
		return err
	case <-time.After(flags.wait):
		return nil
	}
}
