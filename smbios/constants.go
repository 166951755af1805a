package smbios

import "fmt"

// StructureType is the 8-bit type code from a structure header.
type StructureType uint8

// Standard structure types defined by DSP0134.
const (
	TypeBIOSInformation StructureType = iota
	TypeSystemInformation
	TypeBaseboardInformation
	TypeSystemEnclosure
	TypeProcessorInformation
	TypeMemoryControllerInformation
	TypeMemoryModuleInformation
	TypeCacheInformation
	TypePortConnectorInformation
	TypeSystemSlot
	TypeOnBoardDeviceInformation
	TypeOEMStrings
	TypeSystemConfigurationOptions
	TypeBIOSLanguageInformation
	TypeGroupAssociations
	TypeSystemEventLog
	TypePhysicalMemoryArray
	TypeMemoryDevice
	TypeMemoryError32Bit
	TypeMemoryArrayMappedAddress
	TypeMemoryDeviceMappedAddress
	TypeBuiltInPointingDevice
	TypePortableBattery
	TypeSystemReset
	TypeHardwareSecurity
	TypeSystemPowerControls
	TypeVoltageProbe
	TypeCoolingDevice
	TypeTemperatureProbe
	TypeElectricalCurrentProbe
	TypeOutOfBandRemoteAccess
	TypeBootIntegrityServices
	TypeSystemBootInformation
	TypeMemoryError64Bit
	TypeManagementDevice
	TypeManagementDeviceComponent
	TypeManagementDeviceThresholdData
	TypeMemoryChannel
	TypeIPMIDeviceInformation
	TypeSystemPowerSupply
	TypeAdditionalInformation
	TypeOnboardDevicesExtendedInformation
	TypeManagementControllerHostInterface
	TypeTPMDevice
	TypeProcessorAdditionalInformation
	TypeFirmwareInventoryInformation
	TypeStringProperty

	TypeInactive   StructureType = 126
	TypeEndOfTable StructureType = 127
)

// OEM reports whether the type code lies in the vendor-private range.
func (t StructureType) OEM() bool {
	return t >= 128
}

var structureTypeNames = [...]string{
	"BIOS Information",
	"System Information",
	"Baseboard Information",
	"System Enclosure or Chassis",
	"Processor Information",
	"Memory Controller Information",
	"Memory Module Information",
	"Cache Information",
	"Port Connector Information",
	"System Slots",
	"On Board Devices Information",
	"OEM Strings",
	"System Configuration Options",
	"BIOS Language Information",
	"Group Associations",
	"System Event Log",
	"Physical Memory Array",
	"Memory Device",
	"32-Bit Memory Error Information",
	"Memory Array Mapped Address",
	"Memory Device Mapped Address",
	"Built-in Pointing Device",
	"Portable Battery",
	"System Reset",
	"Hardware Security",
	"System Power Controls",
	"Voltage Probe",
	"Cooling Device",
	"Temperature Probe",
	"Electrical Current Probe",
	"Out-of-Band Remote Access",
	"Boot Integrity Services",
	"System Boot Information",
	"64-Bit Memory Error Information",
	"Management Device",
	"Management Device Component",
	"Management Device Threshold Data",
	"Memory Channel",
	"IPMI Device Information",
	"System Power Supply",
	"Additional Information",
	"Onboard Devices Extended Information",
	"Management Controller Host Interface",
	"TPM Device",
	"Processor Additional Information",
	"Firmware Inventory Information",
	"String Property",
}

func (t StructureType) String() string {
	switch {
	case int(t) < len(structureTypeNames):
		return structureTypeNames[t]
	case t == TypeInactive:
		return "Inactive"
	case t == TypeEndOfTable:
		return "End-of-Table"
	case t.OEM():
		return fmt.Sprintf("OEM-specific Type %d", uint8(t))
	default:
		return fmt.Sprintf("Unsupported Type %d", uint8(t))
	}
}

// Handle is the 16-bit identifier a structure is cross-referenced by.
// It is a weak reference: resolving it against a Table is an explicit
// lookup, never a stored link, because the referenced structure may be
// absent from a truncated table.
type Handle uint16

func (h Handle) String() string {
	return fmt.Sprintf("0x%04X", uint16(h))
}
