// Package smbios implements the core SMBIOS structure-table decoder.
//
// The package walks a raw table buffer (DMTF DSP0134 layout: a sequence
// of type-tagged, variable-length structures, each followed by an inline
// string table) and produces typed, queryable records.
//
// # Walking
//
// Walk a raw buffer structure by structure:
//
//	w := smbios.NewWalker(buf)
//	for {
//	    s, err := w.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(s.Header.Type, s.Header.Handle)
//	}
//
// Or materialize the whole table at once:
//
//	table, err := smbios.Decode(buf)
//
// Decode returns every record walked before a structural failure, so a
// truncated buffer still yields its valid prefix alongside the error.
//
// # Field Access
//
// Every read goes through the bounds-checked Window over one
// structure's formatted area. Reads past the declared structure length
// return comma-ok false ("absent"), never an error and never an
// out-of-bounds access. This mirrors the version tolerance built into
// the SMBIOS specification: older producers emit shorter structures,
// and trailing fields simply come back absent.
//
// # Typed Views
//
// A data-driven registry maps every standard structure type to a field
// layout (name, offset, width, decode kind). The generic View exposes
// named getters over any recognized record:
//
//	if view, ok := rec.View(); ok {
//	    capacity, ok := view.Uint("design_capacity")
//	    location, ok := view.Str("location")
//	}
//
// Unrecognized type codes (including the OEM range, 128 and above) are
// walked identically and surface as Unknown records that retain the
// full header, formatted area, and string table.
package smbios
