package main

import (
	"github.com/muxable/hcicodec/internal/config"
	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	configPath string
	vendor     string
	logLevel   string
	output     string
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg  *config.Config
	dec  *hci.Decoder
	log  *zap.Logger
	undo func()
	out  printer
	open func(config.TransportConfig) (transport, error)
}

func newRootCmd() *cobra.Command {
	return newAppCmd(&app{open: openTransport})
}

func newAppCmd(a *app) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hcicodec",
		Short: "Encode HCI commands and decode HCI events",
		Long: `hcicodec encodes Bluetooth HCI commands and decodes the events a
controller sends back, including STM32WB vendor extensions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.vendor, "vendor", "none", "Vendor extension (stm32wb or none)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&flags.output, "output", "text", "Output format (text or yaml)")

	cmd.AddCommand(newDecodeCmd(a))
	cmd.AddCommand(newPcapCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newSendCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("vendor") {
		cfg.Vendor = flags.vendor
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch flags.output {
	case "text", "yaml":
	default:
		return errors.Errorf("unknown output format %q", flags.output)
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	v, err := cfg.VendorExtension()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.undo = zap.ReplaceGlobals(logger)
	a.dec = hci.NewDecoder(v)
	a.out = printer{w: cmd.OutOrStdout(), yaml: flags.output == "yaml"}
	return nil
}

func (a *app) teardown() {
	if a.log == nil {
		return
	}
	_ = a.log.Sync()
	a.undo()
}
