package smbios

// Kind is the dispatch tag a type code maps to. Every standard code
// defined by the specification has its own kind; everything else,
// including the whole OEM range, is KindUnknown. The mapping is total:
// dispatch never fails, it only falls back.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBIOSInformation
	KindSystemInformation
	KindBaseboardInformation
	KindSystemEnclosure
	KindProcessorInformation
	KindMemoryControllerInformation
	KindMemoryModuleInformation
	KindCacheInformation
	KindPortConnectorInformation
	KindSystemSlot
	KindOnBoardDeviceInformation
	KindOEMStrings
	KindSystemConfigurationOptions
	KindBIOSLanguageInformation
	KindGroupAssociations
	KindSystemEventLog
	KindPhysicalMemoryArray
	KindMemoryDevice
	KindMemoryError32Bit
	KindMemoryArrayMappedAddress
	KindMemoryDeviceMappedAddress
	KindBuiltInPointingDevice
	KindPortableBattery
	KindSystemReset
	KindHardwareSecurity
	KindSystemPowerControls
	KindVoltageProbe
	KindCoolingDevice
	KindTemperatureProbe
	KindElectricalCurrentProbe
	KindOutOfBandRemoteAccess
	KindBootIntegrityServices
	KindSystemBootInformation
	KindMemoryError64Bit
	KindManagementDevice
	KindManagementDeviceComponent
	KindManagementDeviceThresholdData
	KindMemoryChannel
	KindIPMIDeviceInformation
	KindSystemPowerSupply
	KindAdditionalInformation
	KindOnboardDevicesExtendedInformation
	KindManagementControllerHostInterface
	KindTPMDevice
	KindProcessorAdditionalInformation
	KindFirmwareInventoryInformation
	KindStringProperty
	KindInactive
	KindEndOfTable
)

// KindOf maps a type code to its dispatch tag.
func KindOf(t StructureType) Kind {
	switch {
	case t <= TypeStringProperty:
		return Kind(t) + 1
	case t == TypeInactive:
		return KindInactive
	case t == TypeEndOfTable:
		return KindEndOfTable
	default:
		return KindUnknown
	}
}

// Type returns the structure type code for a standard kind. The second
// result is false for KindUnknown, which covers many codes.
func (k Kind) Type() (StructureType, bool) {
	switch {
	case k == KindUnknown:
		return 0, false
	case k == KindInactive:
		return TypeInactive, true
	case k == KindEndOfTable:
		return TypeEndOfTable, true
	default:
		return StructureType(k - 1), true
	}
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "Unknown"
	}
	t, _ := k.Type()
	return t.String()
}
