package firmware

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/dmi-decode/errors"
)

// DefaultSysfsDir is where the Linux kernel exports the raw SMBIOS
// buffers.
const DefaultSysfsDir = "/sys/firmware/dmi/tables"

const (
	sysfsEntryFile = "smbios_entry_point"
	sysfsTableFile = "DMI"
)

// SysfsSource reads the entry point and structure table from the
// kernel's sysfs export. It satisfies the root package's Source
// interface.
type SysfsSource struct {
	// Dir overrides DefaultSysfsDir, mainly for tests.
	Dir string
}

// NewSysfsSource returns a source over the default sysfs location.
func NewSysfsSource() *SysfsSource {
	return &SysfsSource{Dir: DefaultSysfsDir}
}

func (s *SysfsSource) dir() string {
	if s.Dir != "" {
		return s.Dir
	}
	return DefaultSysfsDir
}

// EntryPoint returns the raw entry-point bytes.
func (s *SysfsSource) EntryPoint() ([]byte, error) {
	return readRaw(filepath.Join(s.dir(), sysfsEntryFile))
}

// Table returns the raw structure-table bytes.
func (s *SysfsSource) Table() ([]byte, error) {
	return readRaw(filepath.Join(s.dir(), sysfsTableFile))
}

// FileSource reads a raw table dump, with an optional entry-point
// dump alongside. It satisfies the root package's Source interface.
type FileSource struct {
	// TablePath is the raw structure-table dump.
	TablePath string

	// EntryPath is the raw entry-point dump; empty means the dump has
	// no anchor and EntryPoint reports nil.
	EntryPath string
}

// EntryPoint returns the raw entry-point bytes, or nil when the
// source has none.
func (s *FileSource) EntryPoint() ([]byte, error) {
	if s.EntryPath == "" {
		return nil, nil
	}
	return readRaw(s.EntryPath)
}

// Table returns the raw structure-table bytes.
func (s *FileSource) Table() ([]byte, error) {
	return readRaw(s.TablePath)
}

func readRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindIO, err, path)
	}
	Logger().Debug("read firmware buffer",
		zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}
