package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	dmidecode "github.com/wippyai/dmi-decode"
	"github.com/wippyai/dmi-decode/firmware"
	"github.com/wippyai/dmi-decode/smbios"
)

func main() {
	var (
		tableFile   = flag.String("file", "", "Path to a raw structure-table dump (default: live sysfs table)")
		entryFile   = flag.String("entry", "", "Path to a raw entry-point dump")
		sysfsDir    = flag.String("sysfs", firmware.DefaultSysfsDir, "Sysfs directory holding the firmware tables")
		typeFilter  = flag.Int("type", -1, "Only show structures of this type code")
		handleQuery = flag.String("handle", "", "Show the structure with this handle (e.g. 0x002E)")
		list        = flag.Bool("list", false, "List structures one per line and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		firmware.SetLogger(logger)
	}

	if err := run(*tableFile, *entryFile, *sysfsDir, *handleQuery, *typeFilter, *list, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSource(tableFile, entryFile, sysfsDir string) dmidecode.Source {
	if tableFile != "" {
		return &firmware.FileSource{TablePath: tableFile, EntryPath: entryFile}
	}
	return &firmware.SysfsSource{Dir: sysfsDir}
}

func run(tableFile, entryFile, sysfsDir, handleQuery string, typeFilter int, list, interactive bool) error {
	src := newSource(tableFile, entryFile, sysfsDir)

	if raw, err := src.EntryPoint(); err == nil && raw != nil {
		if ep, err := firmware.ParseEntryPoint(raw); err == nil {
			fmt.Println(ep)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	table, err := dmidecode.Decode(src)
	if err != nil && table != nil && table.Len() > 0 {
		// Keep the valid prefix of a truncated table.
		fmt.Fprintf(os.Stderr, "Warning: %v (showing %d decoded structures)\n", err, table.Len())
	} else if err != nil {
		return err
	}

	switch {
	case interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(table)

	case handleQuery != "":
		h, err := parseHandle(handleQuery)
		if err != nil {
			return err
		}
		rec, err := table.Lookup(h)
		if err != nil {
			return err
		}
		fmt.Print(rec)
		return nil

	case list:
		for i, rec := range table.Records {
			fmt.Printf("%3d  %s  type %3d  %s\n",
				i, rec.Structure.Header.Handle, uint8(rec.Structure.Header.Type), rec.Kind)
		}
		return nil

	default:
		for _, rec := range table.Records {
			if typeFilter >= 0 && int(rec.Structure.Header.Type) != typeFilter {
				continue
			}
			fmt.Println(rec)
		}
		return nil
	}
}

func parseHandle(s string) (smbios.Handle, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return smbios.Handle(v), nil
}
