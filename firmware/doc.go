// Package firmware handles everything that surrounds the structure
// table itself: locating and reading the raw buffers from the host
// environment, and parsing the SMBIOS entry points (anchors).
//
// Two entry-point formats exist. The 32-bit entry point ("_SM_",
// SMBIOS 2.x) embeds an intermediate "_DMI_" anchor describing the
// table; the 64-bit entry point ("_SM3_", SMBIOS 3.x) describes it
// directly. ParseEntryPoint recognizes both.
//
// Entry-point checksums are verified but advisory: a mismatch is
// logged through the package logger and the entry point is still
// returned, matching how dmidecode treats the same condition. Only
// an unrecognized anchor or a short buffer is an error.
//
// Buffer acquisition is deliberately simple and synchronous: a
// SysfsSource reads the kernel-exported files under
// /sys/firmware/dmi/tables on Linux, a FileSource reads dumps. Both
// satisfy the root package's Source interface.
package firmware
