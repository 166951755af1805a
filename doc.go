// Package dmidecode provides decoding of SMBIOS/DMI firmware tables into
// typed, queryable structures.
//
// The library parses the raw structure table exposed by system firmware
// (DMTF SMBIOS Reference Specification, DSP0134) and makes every record
// available both generically (header, raw formatted area, string table)
// and through typed, data-driven field views.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	dmidecode/           Root package with the Source interface and Decode helper
//	├── smbios/          Core table walker, bounds-safe field access, type dispatch
//	├── firmware/        Entry-point parsing, checksums, table acquisition
//	└── errors/          Structured error types for decode failures
//
// # Quick Start
//
// Decode the live firmware table on Linux:
//
//	src := firmware.NewSysfsSource()
//	table, err := dmidecode.Decode(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range table.Records {
//	    fmt.Println(rec.Kind, rec.Structure.Header.Handle)
//	}
//
// Look up a record by handle and read typed fields:
//
//	rec, ok := table.ByHandle(0x002E)
//	if ok {
//	    if view, ok := rec.View(); ok {
//	        loc, _ := view.Str("location")
//	        fmt.Println(loc)
//	    }
//	}
//
// # Fault Tolerance
//
// Truncated or malformed tables never cause out-of-bounds access.
// Structural failures (a declared length overrunning the buffer) stop
// the walk with a structured error while keeping every record decoded
// so far. Field-level absence (offsets past a record's declared length,
// string index zero, out-of-range string indices) is reported through
// comma-ok returns, never as an error.
package dmidecode
