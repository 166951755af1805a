package smbios

// The field-layout registry. One entry per standard structure kind,
// straight from the DSP0134 structure definitions. Offsets are from
// the structure start, so the first field sits at 0x04.
//
// Structures whose tail is a repeating group (group associations,
// memory channel devices, contained handles) declare their fixed
// prefix here; the repeating part stays reachable through the raw
// Window. Non-scalar fields (the system UUID, contained element
// records) are likewise left to the Window.

func layoutOf(k Kind, fields ...Field) *Layout {
	return &Layout{Kind: k, Fields: fields}
}

var layouts = map[Kind]*Layout{
	KindBIOSInformation: layoutOf(KindBIOSInformation,
		fString("vendor", 0x04),
		fString("bios_version", 0x05),
		fWord("bios_starting_address_segment", 0x06),
		fString("bios_release_date", 0x08),
		fByte("bios_rom_size", 0x09),
		fQWord("bios_characteristics", 0x0A),
		fByte("bios_characteristics_extension_1", 0x12),
		fByte("bios_characteristics_extension_2", 0x13),
		fByte("system_bios_major_release", 0x14),
		fByte("system_bios_minor_release", 0x15),
		fByte("embedded_controller_major_release", 0x16),
		fByte("embedded_controller_minor_release", 0x17),
		fWord("extended_bios_rom_size", 0x18),
	),
	KindSystemInformation: layoutOf(KindSystemInformation,
		fString("manufacturer", 0x04),
		fString("product_name", 0x05),
		fString("version", 0x06),
		fString("serial_number", 0x07),
		// system UUID occupies 0x08..0x17; 16-byte fields are read
		// through the raw Window
		fByte("wakeup_type", 0x18),
		fString("sku_number", 0x19),
		fString("family", 0x1A),
	),
	KindBaseboardInformation: layoutOf(KindBaseboardInformation,
		fString("manufacturer", 0x04),
		fString("product", 0x05),
		fString("version", 0x06),
		fString("serial_number", 0x07),
		fString("asset_tag", 0x08),
		fByte("feature_flags", 0x09),
		fString("location_in_chassis", 0x0A),
		fHandle("chassis_handle", 0x0B),
		fByte("board_type", 0x0D),
		fByte("number_of_contained_object_handles", 0x0E),
	),
	KindSystemEnclosure: layoutOf(KindSystemEnclosure,
		fString("manufacturer", 0x04),
		fByte("chassis_type", 0x05),
		fString("version", 0x06),
		fString("serial_number", 0x07),
		fString("asset_tag_number", 0x08),
		fByte("bootup_state", 0x09),
		fByte("power_supply_state", 0x0A),
		fByte("thermal_state", 0x0B),
		fByte("security_status", 0x0C),
		fDWord("oem_defined", 0x0D),
		fByte("height", 0x11),
		fByte("number_of_power_cords", 0x12),
		fByte("contained_element_count", 0x13),
		fByte("contained_element_record_length", 0x14),
	),
	KindProcessorInformation: layoutOf(KindProcessorInformation,
		fString("socket_designation", 0x04),
		fByte("processor_type", 0x05),
		fByte("processor_family", 0x06),
		fString("processor_manufacturer", 0x07),
		fQWord("processor_id", 0x08),
		fString("processor_version", 0x10),
		fByte("voltage", 0x11),
		fWord("external_clock", 0x12),
		fWord("max_speed", 0x14),
		fWord("current_speed", 0x16),
		fByte("status", 0x18),
		fByte("processor_upgrade", 0x19),
		fHandle("l1_cache_handle", 0x1A),
		fHandle("l2_cache_handle", 0x1C),
		fHandle("l3_cache_handle", 0x1E),
		fString("serial_number", 0x20),
		fString("asset_tag", 0x21),
		fString("part_number", 0x22),
		fByte("core_count", 0x23),
		fByte("core_enabled", 0x24),
		fByte("thread_count", 0x25),
		fWord("processor_characteristics", 0x26),
		fWord("processor_family_2", 0x28),
		fWord("core_count_2", 0x2A),
		fWord("core_enabled_2", 0x2C),
		fWord("thread_count_2", 0x2E),
		fWord("thread_enabled", 0x30),
	),
	KindMemoryControllerInformation: layoutOf(KindMemoryControllerInformation,
		fByte("error_detecting_method", 0x04),
		fByte("error_correcting_capability", 0x05),
		fByte("supported_interleave", 0x06),
		fByte("current_interleave", 0x07),
		fByte("maximum_memory_module_size", 0x08),
		fWord("supported_speeds", 0x09),
		fWord("supported_memory_types", 0x0B),
		fByte("memory_module_voltage", 0x0D),
		fByte("number_of_associated_memory_slots", 0x0E),
	),
	KindMemoryModuleInformation: layoutOf(KindMemoryModuleInformation,
		fString("socket_designation", 0x04),
		fByte("bank_connections", 0x05),
		fByte("current_speed", 0x06),
		fWord("current_memory_type", 0x07),
		fByte("installed_size", 0x09),
		fByte("enabled_size", 0x0A),
		fByte("error_status", 0x0B),
	),
	KindCacheInformation: layoutOf(KindCacheInformation,
		fString("socket_designation", 0x04),
		fWord("cache_configuration", 0x05),
		fWord("maximum_cache_size", 0x07),
		fWord("installed_size", 0x09),
		fWord("supported_sram_type", 0x0B),
		fWord("current_sram_type", 0x0D),
		fByte("cache_speed", 0x0F),
		fByte("error_correction_type", 0x10),
		fByte("system_cache_type", 0x11),
		fByte("associativity", 0x12),
		fDWord("maximum_cache_size_2", 0x13),
		fDWord("installed_cache_size_2", 0x17),
	),
	KindPortConnectorInformation: layoutOf(KindPortConnectorInformation,
		fString("internal_reference_designator", 0x04),
		fByte("internal_connector_type", 0x05),
		fString("external_reference_designator", 0x06),
		fByte("external_connector_type", 0x07),
		fByte("port_type", 0x08),
	),
	KindSystemSlot: layoutOf(KindSystemSlot,
		fString("slot_designation", 0x04),
		fByte("slot_type", 0x05),
		fByte("slot_data_bus_width", 0x06),
		fByte("current_usage", 0x07),
		fByte("slot_length", 0x08),
		fWord("slot_id", 0x09),
		fByte("slot_characteristics_1", 0x0B),
		fByte("slot_characteristics_2", 0x0C),
		fWord("segment_group_number", 0x0D),
		fByte("bus_number", 0x0F),
		fByte("device_function_number", 0x10),
		fByte("data_bus_width", 0x11),
		fByte("peer_grouping_count", 0x12),
	),
	KindOnBoardDeviceInformation: layoutOf(KindOnBoardDeviceInformation,
		// repeating (type, description) pairs; first entry declared
		fByte("device_type", 0x04),
		fString("description", 0x05),
	),
	KindOEMStrings: layoutOf(KindOEMStrings,
		fByte("count", 0x04),
	),
	KindSystemConfigurationOptions: layoutOf(KindSystemConfigurationOptions,
		fByte("count", 0x04),
	),
	KindBIOSLanguageInformation: layoutOf(KindBIOSLanguageInformation,
		fByte("installable_languages", 0x04),
		fByte("flags", 0x05),
		fString("current_language", 0x15),
	),
	KindGroupAssociations: layoutOf(KindGroupAssociations,
		fString("group_name", 0x04),
		fByte("item_type", 0x05),
		fHandle("item_handle", 0x06),
	),
	KindSystemEventLog: layoutOf(KindSystemEventLog,
		fWord("log_area_length", 0x04),
		fWord("log_header_start_offset", 0x06),
		fWord("log_data_start_offset", 0x08),
		fByte("access_method", 0x0A),
		fByte("log_status", 0x0B),
		fDWord("log_change_token", 0x0C),
		fDWord("access_method_address", 0x10),
		fByte("log_header_format", 0x14),
		fByte("number_of_supported_log_type_descriptors", 0x15),
		fByte("length_of_each_log_type_descriptor", 0x16),
	),
	KindPhysicalMemoryArray: layoutOf(KindPhysicalMemoryArray,
		fByte("location", 0x04),
		fByte("use", 0x05),
		fByte("memory_error_correction", 0x06),
		fDWord("maximum_capacity", 0x07),
		fHandle("memory_error_information_handle", 0x0B),
		fWord("number_of_memory_devices", 0x0D),
		fQWord("extended_maximum_capacity", 0x0F),
	),
	KindMemoryDevice: layoutOf(KindMemoryDevice,
		fHandle("physical_memory_array_handle", 0x04),
		fHandle("memory_error_information_handle", 0x06),
		withSentinel(fWord("total_width", 0x08), 0xFFFF),
		withSentinel(fWord("data_width", 0x0A), 0xFFFF),
		withSentinel(fWord("size", 0x0C), 0xFFFF),
		fByte("form_factor", 0x0E),
		fByte("device_set", 0x0F),
		fString("device_locator", 0x10),
		fString("bank_locator", 0x11),
		fByte("memory_type", 0x12),
		fWord("type_detail", 0x13),
		fWord("speed", 0x15),
		fString("manufacturer", 0x17),
		fString("serial_number", 0x18),
		fString("asset_tag", 0x19),
		fString("part_number", 0x1A),
		fByte("attributes", 0x1B),
		fDWord("extended_size", 0x1C),
		fWord("configured_memory_speed", 0x20),
		fWord("minimum_voltage", 0x22),
		fWord("maximum_voltage", 0x24),
		fWord("configured_voltage", 0x26),
		fByte("memory_technology", 0x28),
		fWord("memory_operating_mode_capability", 0x29),
		fString("firmware_version", 0x2B),
		fWord("module_manufacturer_id", 0x2C),
		fWord("module_product_id", 0x2E),
		fWord("memory_subsystem_controller_manufacturer_id", 0x30),
		fWord("memory_subsystem_controller_product_id", 0x32),
		fQWord("non_volatile_size", 0x34),
		fQWord("volatile_size", 0x3C),
		fQWord("cache_size", 0x44),
		fQWord("logical_size", 0x4C),
		fDWord("extended_speed", 0x54),
		fDWord("extended_configured_memory_speed", 0x58),
	),
	KindMemoryError32Bit: layoutOf(KindMemoryError32Bit,
		fByte("error_type", 0x04),
		fByte("error_granularity", 0x05),
		fByte("error_operation", 0x06),
		fDWord("vendor_syndrome", 0x07),
		fDWord("memory_array_error_address", 0x0B),
		fDWord("device_error_address", 0x0F),
		fDWord("error_resolution", 0x13),
	),
	KindMemoryArrayMappedAddress: layoutOf(KindMemoryArrayMappedAddress,
		fDWord("starting_address", 0x04),
		fDWord("ending_address", 0x08),
		fHandle("memory_array_handle", 0x0C),
		fByte("partition_width", 0x0E),
		fQWord("extended_starting_address", 0x0F),
		fQWord("extended_ending_address", 0x17),
	),
	KindMemoryDeviceMappedAddress: layoutOf(KindMemoryDeviceMappedAddress,
		fDWord("starting_address", 0x04),
		fDWord("ending_address", 0x08),
		fHandle("memory_device_handle", 0x0C),
		fHandle("memory_array_mapped_address_handle", 0x0E),
		fByte("partition_row_position", 0x10),
		fByte("interleave_position", 0x11),
		fByte("interleaved_data_depth", 0x12),
		fQWord("extended_starting_address", 0x13),
		fQWord("extended_ending_address", 0x1B),
	),
	KindBuiltInPointingDevice: layoutOf(KindBuiltInPointingDevice,
		fByte("device_type", 0x04),
		fByte("interface", 0x05),
		fByte("number_of_buttons", 0x06),
	),
	KindPortableBattery: layoutOf(KindPortableBattery,
		fString("location", 0x04),
		fString("manufacturer", 0x05),
		fString("manufacture_date", 0x06),
		fString("serial_number", 0x07),
		fString("device_name", 0x08),
		fByte("device_chemistry", 0x09),
		fWord("design_capacity", 0x0A),
		fWord("design_voltage", 0x0C),
		fString("sbds_version_number", 0x0E),
		fByte("maximum_error", 0x0F),
		fWord("sbds_serial_number", 0x10),
		fWord("sbds_manufacture_date", 0x12),
		fString("sbds_device_chemistry", 0x14),
		fByte("design_capacity_multiplier", 0x15),
		fDWord("oem_specific", 0x16),
	),
	KindSystemReset: layoutOf(KindSystemReset,
		fByte("capabilities", 0x04),
		fWord("reset_count", 0x05),
		fWord("reset_limit", 0x07),
		fWord("timer_interval", 0x09),
		fWord("timeout", 0x0B),
	),
	KindHardwareSecurity: layoutOf(KindHardwareSecurity,
		fByte("hardware_security_settings", 0x04),
	),
	KindSystemPowerControls: layoutOf(KindSystemPowerControls,
		fByte("next_scheduled_power_on_month", 0x04),
		fByte("next_scheduled_power_on_day_of_month", 0x05),
		fByte("next_scheduled_power_on_hour", 0x06),
		fByte("next_scheduled_power_on_minute", 0x07),
		fByte("next_scheduled_power_on_second", 0x08),
	),
	KindVoltageProbe: layoutOf(KindVoltageProbe,
		fString("description", 0x04),
		fByte("location_and_status", 0x05),
		withSentinel(fWord("maximum_value", 0x06), 0x8000),
		withSentinel(fWord("minimum_value", 0x08), 0x8000),
		withSentinel(fWord("resolution", 0x0A), 0x8000),
		withSentinel(fWord("tolerance", 0x0C), 0x8000),
		withSentinel(fWord("accuracy", 0x0E), 0x8000),
		fDWord("oem_defined", 0x10),
		withSentinel(fWord("nominal_value", 0x14), 0x8000),
	),
	KindCoolingDevice: layoutOf(KindCoolingDevice,
		fHandle("temperature_probe_handle", 0x04),
		fByte("device_type_and_status", 0x06),
		fByte("cooling_unit_group", 0x07),
		fDWord("oem_defined", 0x08),
		withSentinel(fWord("nominal_speed", 0x0C), 0x8000),
		fString("description", 0x0E),
	),
	KindTemperatureProbe: layoutOf(KindTemperatureProbe,
		fString("description", 0x04),
		fByte("location_and_status", 0x05),
		withSentinel(fWord("maximum_value", 0x06), 0x8000),
		withSentinel(fWord("minimum_value", 0x08), 0x8000),
		withSentinel(fWord("resolution", 0x0A), 0x8000),
		withSentinel(fWord("tolerance", 0x0C), 0x8000),
		withSentinel(fWord("accuracy", 0x0E), 0x8000),
		fDWord("oem_defined", 0x10),
		withSentinel(fWord("nominal_value", 0x14), 0x8000),
	),
	KindElectricalCurrentProbe: layoutOf(KindElectricalCurrentProbe,
		fString("description", 0x04),
		fByte("location_and_status", 0x05),
		withSentinel(fWord("maximum_value", 0x06), 0x8000),
		withSentinel(fWord("minimum_value", 0x08), 0x8000),
		withSentinel(fWord("resolution", 0x0A), 0x8000),
		withSentinel(fWord("tolerance", 0x0C), 0x8000),
		withSentinel(fWord("accuracy", 0x0E), 0x8000),
		fDWord("oem_defined", 0x10),
		withSentinel(fWord("nominal_value", 0x14), 0x8000),
	),
	KindOutOfBandRemoteAccess: layoutOf(KindOutOfBandRemoteAccess,
		fString("manufacturer_name", 0x04),
		fByte("connections", 0x05),
	),
	KindBootIntegrityServices: layoutOf(KindBootIntegrityServices),
	KindSystemBootInformation: layoutOf(KindSystemBootInformation,
		fByte("boot_status", 0x0A),
	),
	KindMemoryError64Bit: layoutOf(KindMemoryError64Bit,
		fByte("error_type", 0x04),
		fByte("error_granularity", 0x05),
		fByte("error_operation", 0x06),
		fDWord("vendor_syndrome", 0x07),
		fQWord("memory_array_error_address", 0x0B),
		fQWord("device_error_address", 0x13),
		fDWord("error_resolution", 0x1B),
	),
	KindManagementDevice: layoutOf(KindManagementDevice,
		fString("description", 0x04),
		fByte("device_type", 0x05),
		fDWord("address", 0x06),
		fByte("address_type", 0x0A),
	),
	KindManagementDeviceComponent: layoutOf(KindManagementDeviceComponent,
		fString("description", 0x04),
		fHandle("management_device_handle", 0x05),
		fHandle("component_handle", 0x07),
		fHandle("threshold_handle", 0x09),
	),
	KindManagementDeviceThresholdData: layoutOf(KindManagementDeviceThresholdData,
		withSentinel(fWord("lower_threshold_non_critical", 0x04), 0x8000),
		withSentinel(fWord("upper_threshold_non_critical", 0x06), 0x8000),
		withSentinel(fWord("lower_threshold_critical", 0x08), 0x8000),
		withSentinel(fWord("upper_threshold_critical", 0x0A), 0x8000),
		withSentinel(fWord("lower_threshold_non_recoverable", 0x0C), 0x8000),
		withSentinel(fWord("upper_threshold_non_recoverable", 0x0E), 0x8000),
	),
	KindMemoryChannel: layoutOf(KindMemoryChannel,
		fByte("channel_type", 0x04),
		fByte("maximum_channel_load", 0x05),
		fByte("memory_device_count", 0x06),
	),
	KindIPMIDeviceInformation: layoutOf(KindIPMIDeviceInformation,
		fByte("interface_type", 0x04),
		fByte("ipmi_specification_revision", 0x05),
		fByte("i2c_target_address", 0x06),
		fByte("nv_storage_device_address", 0x07),
		fQWord("base_address", 0x08),
		fByte("base_address_modifier", 0x10),
		fByte("interrupt_number", 0x11),
	),
	KindSystemPowerSupply: layoutOf(KindSystemPowerSupply,
		fByte("power_unit_group", 0x04),
		fString("location", 0x05),
		fString("device_name", 0x06),
		fString("manufacturer", 0x07),
		fString("serial_number", 0x08),
		fString("asset_tag_number", 0x09),
		fString("model_part_number", 0x0A),
		fString("revision_level", 0x0B),
		withSentinel(fWord("max_power_capacity", 0x0C), 0x8000),
		fWord("power_supply_characteristics", 0x0E),
		fHandle("input_voltage_probe_handle", 0x10),
		fHandle("cooling_device_handle", 0x12),
		fHandle("input_current_probe_handle", 0x14),
	),
	KindAdditionalInformation: layoutOf(KindAdditionalInformation,
		fByte("number_of_additional_information_entries", 0x04),
	),
	KindOnboardDevicesExtendedInformation: layoutOf(KindOnboardDevicesExtendedInformation,
		fString("reference_designation", 0x04),
		fByte("device_type", 0x05),
		fByte("device_type_instance", 0x06),
		fWord("segment_group_number", 0x07),
		fByte("bus_number", 0x09),
		fByte("device_function_number", 0x0A),
	),
	KindManagementControllerHostInterface: layoutOf(KindManagementControllerHostInterface,
		fByte("interface_type", 0x04),
		fByte("interface_type_specific_data_length", 0x05),
	),
	KindTPMDevice: layoutOf(KindTPMDevice,
		fDWord("vendor_id", 0x04),
		fByte("major_spec_version", 0x08),
		fByte("minor_spec_version", 0x09),
		fDWord("firmware_version_1", 0x0A),
		fDWord("firmware_version_2", 0x0E),
		fString("description", 0x12),
		fQWord("characteristics", 0x13),
		fDWord("oem_defined", 0x1B),
	),
	KindProcessorAdditionalInformation: layoutOf(KindProcessorAdditionalInformation,
		fHandle("referenced_handle", 0x04),
	),
	KindFirmwareInventoryInformation: layoutOf(KindFirmwareInventoryInformation,
		fString("firmware_component_name", 0x04),
		fString("firmware_version", 0x05),
		fByte("version_format", 0x06),
		fString("firmware_id", 0x07),
		fByte("firmware_id_format", 0x08),
		fString("release_date", 0x09),
		fString("manufacturer", 0x0A),
		fString("lowest_supported_firmware_version", 0x0B),
		fQWord("image_size", 0x0C),
		fWord("characteristics", 0x14),
		fByte("state", 0x16),
		fByte("number_of_associated_components", 0x17),
	),
	KindStringProperty: layoutOf(KindStringProperty,
		fWord("string_property_id", 0x04),
		fString("string_property_value", 0x06),
		fHandle("parent_handle", 0x07),
	),
	KindInactive:   layoutOf(KindInactive),
	KindEndOfTable: layoutOf(KindEndOfTable),
}
