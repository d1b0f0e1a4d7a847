package stm32wb

import "fmt"

// Status is a status value from the STM32WB vendor space. It never overlaps
// a defined standard status.
type Status uint8

const (
	StatusNotAllowed                    Status = 0x46
	StatusError                         Status = 0x47
	StatusAddressNotResolved            Status = 0x48
	StatusFlashReadFailed               Status = 0x49
	StatusFlashWriteFailed              Status = 0x4A
	StatusFlashEraseFailed              Status = 0x4B
	StatusInvalidCID                    Status = 0x50
	StatusTimerNotValidLayer            Status = 0x54
	StatusTimerInsufficientResources    Status = 0x55
	StatusCSRKNotFound                  Status = 0x5A
	StatusIRKNotFound                   Status = 0x5B
	StatusDeviceNotFoundInDatabase      Status = 0x5C
	StatusSecurityDatabaseFull          Status = 0x5D
	StatusDeviceNotBonded               Status = 0x5E
	StatusDeviceInBlacklist             Status = 0x5F
	StatusInvalidHandle                 Status = 0x60
	StatusInvalidParameter              Status = 0x61
	StatusOutOfHandle                   Status = 0x62
	StatusInvalidOperation              Status = 0x63
	StatusInsufficientResources         Status = 0x64
	StatusInsufficientEncryptionKeySize Status = 0x65
	StatusCharacteristicAlreadyExists   Status = 0x66
	StatusNoValidSlot                   Status = 0x82
	StatusScanWindowTooShort            Status = 0x83
	StatusNewIntervalFailed             Status = 0x84
	StatusIntervalTooLarge              Status = 0x85
	StatusLengthFailed                  Status = 0x86
	StatusProfileAlreadyInitialized     Status = 0xF0
	StatusNullParameter                 Status = 0xF1
	StatusTimeout                       Status = 0xFF
)

var statusNames = map[Status]string{
	StatusNotAllowed:                    "NotAllowed",
	StatusError:                         "Error",
	StatusAddressNotResolved:            "AddressNotResolved",
	StatusFlashReadFailed:               "FlashReadFailed",
	StatusFlashWriteFailed:              "FlashWriteFailed",
	StatusFlashEraseFailed:              "FlashEraseFailed",
	StatusInvalidCID:                    "InvalidCID",
	StatusTimerNotValidLayer:            "TimerNotValidLayer",
	StatusTimerInsufficientResources:    "TimerInsufficientResources",
	StatusCSRKNotFound:                  "CSRKNotFound",
	StatusIRKNotFound:                   "IRKNotFound",
	StatusDeviceNotFoundInDatabase:      "DeviceNotFoundInDatabase",
	StatusSecurityDatabaseFull:          "SecurityDatabaseFull",
	StatusDeviceNotBonded:               "DeviceNotBonded",
	StatusDeviceInBlacklist:             "DeviceInBlacklist",
	StatusInvalidHandle:                 "InvalidHandle",
	StatusInvalidParameter:              "InvalidParameter",
	StatusOutOfHandle:                   "OutOfHandle",
	StatusInvalidOperation:              "InvalidOperation",
	StatusInsufficientResources:         "InsufficientResources",
	StatusInsufficientEncryptionKeySize: "InsufficientEncryptionKeySize",
	StatusCharacteristicAlreadyExists:   "CharacteristicAlreadyExists",
	StatusNoValidSlot:                   "NoValidSlot",
	StatusScanWindowTooShort:            "ScanWindowTooShort",
	StatusNewIntervalFailed:             "NewIntervalFailed",
	StatusIntervalTooLarge:              "IntervalTooLarge",
	StatusLengthFailed:                  "LengthFailed",
	StatusProfileAlreadyInitialized:     "ProfileAlreadyInitialized",
	StatusNullParameter:                 "NullParameter",
	StatusTimeout:                       "Timeout",
}

func (s Status) Byte() byte {
	return byte(s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%#02x)", uint8(s))
}

// ParseStatus accepts only the vendor space.
func ParseStatus(b byte) (Status, error) {
	s := Status(b)
	if _, ok := statusNames[s]; !ok {
		return 0, &Error{Kind: BadStatus, Value: b}
	}
	return s, nil
}
