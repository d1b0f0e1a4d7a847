package main

import (
	"encoding/hex"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/hci/stm32wb"
	"github.com/muxable/hcicodec/pkg/transport/h4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Config fields in structure order. A write covers a contiguous run of them.
var configFieldOrder = []string{
	"public-address",
	"diversifier",
	"encryption-root",
	"identity-root",
	"link-layer-only",
	"role",
}

type configFlags struct {
	publicAddress  string
	randomAddress  string
	diversifier    uint16
	encryptionRoot string
	identityRoot   string
	linkLayerOnly  bool
	role           uint8

	set *pflag.FlagSet
}

func (f *configFlags) register(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.publicAddress, "public-address", "", "Public address, as 00:11:22:33:44:55")
	fs.StringVar(&f.randomAddress, "random-address", "", "Static random address; may not be combined with other fields")
	fs.Uint16Var(&f.diversifier, "diversifier", 0, "Diversifier used to derive CSRK")
	fs.StringVar(&f.encryptionRoot, "encryption-root", "", "Encryption root key, 32 hex digits")
	fs.StringVar(&f.identityRoot, "identity-root", "", "Identity root key, 32 hex digits")
	fs.BoolVar(&f.linkLayerOnly, "link-layer-only", false, "Run the controller in link layer only mode")
	fs.Uint8Var(&f.role, "role", 0, "Device role (1 to 4)")
}

func (f *configFlags) has(name string) bool {
	return f.set.Changed(name)
}

func parseKey(s string) (hci.EncryptionKey, error) {
	var k hci.EncryptionKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return k, errors.Wrap(err, "parse key")
	}
	if len(b) != len(k) {
		return k, errors.Errorf("key must be %d bytes, got %d", len(k), len(b))
	}
	copy(k[:], b)
	return k, nil
}

// build assembles the run selected by the flags through the stm32wb stage
// types, so only structure-ordered runs can be produced.
func (f *configFlags) build() (stm32wb.ConfigData, error) {
	if f.has("random-address") {
		for _, name := range configFieldOrder {
			if f.has(name) {
				return stm32wb.ConfigData{}, errors.Errorf("--random-address cannot be combined with --%s", name)
			}
		}
		addr, err := hci.ParseBDAddr(f.randomAddress)
		if err != nil {
			return stm32wb.ConfigData{}, err
		}
		return stm32wb.RandomAddress(addr).Build(), nil
	}

	first, last := -1, -1
	for i, name := range configFieldOrder {
		if f.has(name) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return stm32wb.ConfigData{}, errors.New("no config field given")
	}
	for _, name := range configFieldOrder[first:last] {
		if !f.has(name) {
			return stm32wb.ConfigData{}, errors.Errorf("config fields must be contiguous: --%s is missing", name)
		}
	}

	if f.has("role") && (f.role < uint8(stm32wb.DeviceRolePeripheral6KB) || f.role > uint8(stm32wb.DeviceRoleSimultaneousAdvertisingScanning)) {
		return stm32wb.ConfigData{}, errors.Errorf("invalid role %d", f.role)
	}

	var encRoot, idRoot hci.EncryptionKey
	var err error
	if f.has("encryption-root") {
		if encRoot, err = parseKey(f.encryptionRoot); err != nil {
			return stm32wb.ConfigData{}, err
		}
	}
	if f.has("identity-root") {
		if idRoot, err = parseKey(f.identityRoot); err != nil {
			return stm32wb.ConfigData{}, err
		}
	}

	s := &stages{f: f, encRoot: encRoot, idRoot: idRoot}
	switch configFieldOrder[first] {
	case "public-address":
		addr, err := hci.ParseBDAddr(f.publicAddress)
		if err != nil {
			return stm32wb.ConfigData{}, err
		}
		return s.afterPublicAddress(stm32wb.PublicAddress(addr)), nil
	case "diversifier":
		return s.afterDiversifier(stm32wb.Diversifier(f.diversifier)), nil
	case "encryption-root":
		return s.afterEncryptionRoot(stm32wb.EncryptionRoot(encRoot)), nil
	case "identity-root":
		return s.afterIdentityRoot(stm32wb.IdentityRoot(idRoot)), nil
	case "link-layer-only":
		return s.afterLinkLayerOnly(stm32wb.LinkLayerOnly(f.linkLayerOnly)), nil
	default:
		return stm32wb.Role(stm32wb.DeviceRole(f.role)).Build(), nil
	}
}

type stages struct {
	f               *configFlags
	encRoot, idRoot hci.EncryptionKey
}

func (s *stages) afterPublicAddress(st stm32wb.DiversifierStage) stm32wb.ConfigData {
	if !s.f.has("diversifier") {
		return st.Build()
	}
	return s.afterDiversifier(st.Diversifier(s.f.diversifier))
}

func (s *stages) afterDiversifier(st stm32wb.EncryptionRootStage) stm32wb.ConfigData {
	if !s.f.has("encryption-root") {
		return st.Build()
	}
	return s.afterEncryptionRoot(st.EncryptionRoot(s.encRoot))
}

func (s *stages) afterEncryptionRoot(st stm32wb.IdentityRootStage) stm32wb.ConfigData {
	if !s.f.has("identity-root") {
		return st.Build()
	}
	return s.afterIdentityRoot(st.IdentityRoot(s.idRoot))
}

func (s *stages) afterIdentityRoot(st stm32wb.LinkLayerOnlyStage) stm32wb.ConfigData {
	if !s.f.has("link-layer-only") {
		return st.Build()
	}
	return s.afterLinkLayerOnly(st.LinkLayerOnly(s.f.linkLayerOnly))
}

func (s *stages) afterLinkLayerOnly(st stm32wb.RoleStage) stm32wb.ConfigData {
	if !s.f.has("role") {
		return st.Build()
	}
	return st.Role(stm32wb.DeviceRole(s.f.role)).Build()
}

// encodeH4 returns cmd as an H4 command packet.
func encodeH4(cmd hci.Command) ([]byte, error) {
	b, err := hci.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	return h4.AppendCommand(nil, cmd.Opcode(), b[2:])
}

func newConfigCmd(a *app) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Encode an STM32WB HAL Write Config Data command",
		Long: `Encode a HAL Write Config Data command as an H4 packet.

Fields are written in structure order and must form a contiguous run:
public address, diversifier, encryption root, identity root, link layer
only, role. The random address is written on its own.`,
		Example: `  # Public address followed by the diversifier
  hcicodec config --public-address 00:80:E1:00:00:01 --diversifier 0x1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := flags.build()
			if err != nil {
				return err
			}
			pkt, err := encodeH4(data)
			if err != nil {
				return err
			}
			return a.out.bytes(pkt)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
