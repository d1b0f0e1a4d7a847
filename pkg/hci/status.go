package hci

import "fmt"

// Status is a completion status reported by the controller. Standard values
// are StatusCode; values outside the standard space belong to the vendor.
type Status interface {
	Byte() byte
	String() string
}

// StatusCode is a standard HCI status (Core Specification Vol 1, Part F).
// Values 0x2B, 0x31 and 0x33 are reserved.
type StatusCode uint8

const (
	StatusSuccess                               StatusCode = 0x00
	StatusUnknownCommand                        StatusCode = 0x01
	StatusUnknownConnectionID                   StatusCode = 0x02
	StatusHardwareFailure                       StatusCode = 0x03
	StatusPageTimeout                           StatusCode = 0x04
	StatusAuthFailure                           StatusCode = 0x05
	StatusPINOrKeyMissing                       StatusCode = 0x06
	StatusOutOfMemory                           StatusCode = 0x07
	StatusConnectionTimeout                     StatusCode = 0x08
	StatusConnectionLimitExceeded               StatusCode = 0x09
	StatusSyncConnectionLimitExceeded           StatusCode = 0x0A
	StatusConnectionAlreadyExists               StatusCode = 0x0B
	StatusCommandDisallowed                     StatusCode = 0x0C
	StatusLimitedResources                      StatusCode = 0x0D
	StatusConnectionRejectedSecurity            StatusCode = 0x0E
	StatusUnacceptableBDAddr                    StatusCode = 0x0F
	StatusAcceptTimeoutExceeded                 StatusCode = 0x10
	StatusUnsupportedFeature                    StatusCode = 0x11
	StatusInvalidParameters                     StatusCode = 0x12
	StatusRemoteTerminationByUser               StatusCode = 0x13
	StatusRemoteTerminationLowResources         StatusCode = 0x14
	StatusRemoteTerminationPowerOff             StatusCode = 0x15
	StatusConnectionTerminatedByHost            StatusCode = 0x16
	StatusRepeatedAttempts                      StatusCode = 0x17
	StatusPairingNotAllowed                     StatusCode = 0x18
	StatusUnknownLMPPDU                         StatusCode = 0x19
	StatusUnsupportedRemoteFeature              StatusCode = 0x1A
	StatusSCOOffsetRejected                     StatusCode = 0x1B
	StatusSCOIntervalRejected                   StatusCode = 0x1C
	StatusSCOAirModeRejected                    StatusCode = 0x1D
	StatusInvalidLMPParameters                  StatusCode = 0x1E
	StatusUnspecifiedError                      StatusCode = 0x1F
	StatusUnsupportedLMPParameterValue          StatusCode = 0x20
	StatusRoleChangeNotAllowed                  StatusCode = 0x21
	StatusLMPResponseTimeout                    StatusCode = 0x22
	StatusLMPTransactionCollision               StatusCode = 0x23
	StatusLMPPDUNotAllowed                      StatusCode = 0x24
	StatusEncryptionModeNotAcceptable           StatusCode = 0x25
	StatusLinkKeyCannotBeChanged                StatusCode = 0x26
	StatusRequestedQoSNotSupported              StatusCode = 0x27
	StatusInstantPassed                         StatusCode = 0x28
	StatusPairingWithUnitKeyNotSupported        StatusCode = 0x29
	StatusDifferentTransactionCollision         StatusCode = 0x2A
	StatusQoSUnacceptableParameter              StatusCode = 0x2C
	StatusQoSRejected                           StatusCode = 0x2D
	StatusChannelClassificationNotSupported     StatusCode = 0x2E
	StatusInsufficientSecurity                  StatusCode = 0x2F
	StatusParameterOutOfMandatoryRange          StatusCode = 0x30
	StatusRoleSwitchPending                     StatusCode = 0x32
	StatusReservedSlotViolation                 StatusCode = 0x34
	StatusRoleSwitchFailed                      StatusCode = 0x35
	StatusExtendedInquiryResponseTooLarge       StatusCode = 0x36
	StatusSecureSimplePairingNotSupportedByHost StatusCode = 0x37
	StatusHostBusyPairing                       StatusCode = 0x38
	StatusConnectionRejectedNoSuitableChannel   StatusCode = 0x39
	StatusControllerBusy                        StatusCode = 0x3A
	StatusUnacceptableConnectionParameters      StatusCode = 0x3B
	StatusAdvertisingTimeout                    StatusCode = 0x3C
	StatusConnectionTerminatedMICFailure        StatusCode = 0x3D
	StatusConnectionFailedToEstablish           StatusCode = 0x3E
	StatusMACConnectionFailed                   StatusCode = 0x3F
	StatusCoarseClockAdjustmentRejected         StatusCode = 0x40
	StatusType0SubmapNotDefined                 StatusCode = 0x41
	StatusUnknownAdvertisingIdentifier          StatusCode = 0x42
	StatusLimitReached                          StatusCode = 0x43
	StatusOperationCancelledByHost              StatusCode = 0x44
)

var statusNames = map[StatusCode]string{
	StatusSuccess:                               "Success",
	StatusUnknownCommand:                        "UnknownCommand",
	StatusUnknownConnectionID:                   "UnknownConnectionID",
	StatusHardwareFailure:                       "HardwareFailure",
	StatusPageTimeout:                           "PageTimeout",
	StatusAuthFailure:                           "AuthFailure",
	StatusPINOrKeyMissing:                       "PINOrKeyMissing",
	StatusOutOfMemory:                           "OutOfMemory",
	StatusConnectionTimeout:                     "ConnectionTimeout",
	StatusConnectionLimitExceeded:               "ConnectionLimitExceeded",
	StatusSyncConnectionLimitExceeded:           "SyncConnectionLimitExceeded",
	StatusConnectionAlreadyExists:               "ConnectionAlreadyExists",
	StatusCommandDisallowed:                     "CommandDisallowed",
	StatusLimitedResources:                      "LimitedResources",
	StatusConnectionRejectedSecurity:            "ConnectionRejectedSecurity",
	StatusUnacceptableBDAddr:                    "UnacceptableBDAddr",
	StatusAcceptTimeoutExceeded:                 "AcceptTimeoutExceeded",
	StatusUnsupportedFeature:                    "UnsupportedFeature",
	StatusInvalidParameters:                     "InvalidParameters",
	StatusRemoteTerminationByUser:               "RemoteTerminationByUser",
	StatusRemoteTerminationLowResources:         "RemoteTerminationLowResources",
	StatusRemoteTerminationPowerOff:             "RemoteTerminationPowerOff",
	StatusConnectionTerminatedByHost:            "ConnectionTerminatedByHost",
	StatusRepeatedAttempts:                      "RepeatedAttempts",
	StatusPairingNotAllowed:                     "PairingNotAllowed",
	StatusUnknownLMPPDU:                         "UnknownLMPPDU",
	StatusUnsupportedRemoteFeature:              "UnsupportedRemoteFeature",
	StatusSCOOffsetRejected:                     "SCOOffsetRejected",
	StatusSCOIntervalRejected:                   "SCOIntervalRejected",
	StatusSCOAirModeRejected:                    "SCOAirModeRejected",
	StatusInvalidLMPParameters:                  "InvalidLMPParameters",
	StatusUnspecifiedError:                      "UnspecifiedError",
	StatusUnsupportedLMPParameterValue:          "UnsupportedLMPParameterValue",
	StatusRoleChangeNotAllowed:                  "RoleChangeNotAllowed",
	StatusLMPResponseTimeout:                    "LMPResponseTimeout",
	StatusLMPTransactionCollision:               "LMPTransactionCollision",
	StatusLMPPDUNotAllowed:                      "LMPPDUNotAllowed",
	StatusEncryptionModeNotAcceptable:           "EncryptionModeNotAcceptable",
	StatusLinkKeyCannotBeChanged:                "LinkKeyCannotBeChanged",
	StatusRequestedQoSNotSupported:              "RequestedQoSNotSupported",
	StatusInstantPassed:                         "InstantPassed",
	StatusPairingWithUnitKeyNotSupported:        "PairingWithUnitKeyNotSupported",
	StatusDifferentTransactionCollision:         "DifferentTransactionCollision",
	StatusQoSUnacceptableParameter:              "QoSUnacceptableParameter",
	StatusQoSRejected:                           "QoSRejected",
	StatusChannelClassificationNotSupported:     "ChannelClassificationNotSupported",
	StatusInsufficientSecurity:                  "InsufficientSecurity",
	StatusParameterOutOfMandatoryRange:          "ParameterOutOfMandatoryRange",
	StatusRoleSwitchPending:                     "RoleSwitchPending",
	StatusReservedSlotViolation:                 "ReservedSlotViolation",
	StatusRoleSwitchFailed:                      "RoleSwitchFailed",
	StatusExtendedInquiryResponseTooLarge:       "ExtendedInquiryResponseTooLarge",
	StatusSecureSimplePairingNotSupportedByHost: "SecureSimplePairingNotSupportedByHost",
	StatusHostBusyPairing:                       "HostBusyPairing",
	StatusConnectionRejectedNoSuitableChannel:   "ConnectionRejectedNoSuitableChannel",
	StatusControllerBusy:                        "ControllerBusy",
	StatusUnacceptableConnectionParameters:      "UnacceptableConnectionParameters",
	StatusAdvertisingTimeout:                    "AdvertisingTimeout",
	StatusConnectionTerminatedMICFailure:        "ConnectionTerminatedMICFailure",
	StatusConnectionFailedToEstablish:           "ConnectionFailedToEstablish",
	StatusMACConnectionFailed:                   "MACConnectionFailed",
	StatusCoarseClockAdjustmentRejected:         "CoarseClockAdjustmentRejected",
	StatusType0SubmapNotDefined:                 "Type0SubmapNotDefined",
	StatusUnknownAdvertisingIdentifier:          "UnknownAdvertisingIdentifier",
	StatusLimitReached:                          "LimitReached",
	StatusOperationCancelledByHost:              "OperationCancelledByHost",
}

// Valid reports whether s is a defined standard status.
func (s StatusCode) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s StatusCode) Byte() byte {
	return byte(s)
}

func (s StatusCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s StatusCode) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("StatusCode(%#02x)", uint8(s))
}

// ParseStatus maps b onto the standard status space, falling back to v for
// anything outside it. A value neither recognizes is a BadStatus error.
func ParseStatus(v Vendor, b byte) (Status, error) {
	if s := StatusCode(b); s.Valid() {
		return s, nil
	}
	if v == nil {
		return nil, &DecodeError{Kind: BadStatus, Value: b}
	}
	s, err := v.ParseStatus(b)
	if err != nil {
		return nil, &DecodeError{Kind: BadStatus, Value: b, Err: err}
	}
	return s, nil
}
