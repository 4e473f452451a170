// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"encoding/binary"
	"strings"

	"github.com/digitalocean/go-smbios/smbios"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// smbiosMemoryDevice is the SMBIOS structure type for a memory device
// (one DIMM slot).
const smbiosMemoryDevice = 17

// Offsets into Structure.Formatted for type 17 fields. Formatted
// excludes the 4-byte header, so each is the DMTF offset minus 4.
const (
	memorySizeOffset            = 0x0C - 4
	memoryLocatorOffset         = 0x10 - 4
	memoryBankLocatorOffset     = 0x11 - 4
	memoryTypeOffset            = 0x12 - 4
	memorySpeedOffset           = 0x15 - 4
	memoryManufacturerOffset    = 0x17 - 4
	memorySerialOffset          = 0x18 - 4
	memoryPartNumberOffset      = 0x1A - 4
	memoryExtendedSizeOffset    = 0x1C - 4
	memoryConfiguredSpeedOffset = 0x20 - 4
)

// memoryTypes maps the type 17 Memory Type byte to a name.
var memoryTypes = map[byte]string{
	0x0F: "SDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x18: "DDR3",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
}

// jedecManufacturers maps JEDEC JEP106 IDs, as firmware commonly
// writes them in the manufacturer string, to vendor names. Both the
// plain and the continuation-bit forms appear in the wild.
var jedecManufacturers = []struct {
	id   string
	name string
}{
	{"0198", "Kingston"},
	{"04CB", "ADATA"},
	{"00AD", "SK Hynix"},
	{"80AD", "SK Hynix"},
	{"00CE", "Samsung"},
	{"80CE", "Samsung"},
	{"012F", "Micron"},
	{"812F", "Micron"},
	{"029E", "Corsair"},
	{"829E", "Corsair"},
	{"0423", "Crucial"},
	{"8423", "Crucial"},
	{"059B", "Crucial"},
	{"859B", "Crucial"},
}

// ManufacturerName resolves a DIMM manufacturer string. Firmware that
// does not decode the SPD manufacturer ID writes the raw JEDEC code;
// known codes become vendor names and anything else passes through.
func ManufacturerName(raw string) string {
	value := known(raw)
	upper := strings.ToUpper(value)
	for _, entry := range jedecManufacturers {
		if strings.Contains(upper, entry.id) {
			return entry.name
		}
	}
	return value
}

// MemoryModules decodes populated DIMM slots from SMBIOS structures.
func MemoryModules(structures []*smbios.Structure) []report.MemoryModule {
	modules := []report.MemoryModule{}
	for _, structure := range structures {
		if structure.Header.Type != smbiosMemoryDevice {
			continue
		}
		module, populated := decodeMemoryDevice(structure)
		if populated {
			modules = append(modules, module)
		}
	}
	return modules
}

// decodeMemoryDevice decodes one type 17 structure. Returns false for
// empty slots and structures too short to carry a size.
func decodeMemoryDevice(structure *smbios.Structure) (report.MemoryModule, bool) {
	formatted := structure.Formatted
	raw, ok := uint16At(formatted, memorySizeOffset)
	if !ok || raw == 0 {
		return report.MemoryModule{}, false
	}

	module := report.MemoryModule{
		Locator:      known(stringAt(structure, memoryLocatorOffset)),
		BankLocator:  known(stringAt(structure, memoryBankLocatorOffset)),
		Manufacturer: ManufacturerName(stringAt(structure, memoryManufacturerOffset)),
		SerialNumber: known(stringAt(structure, memorySerialOffset)),
		PartNumber:   known(stringAt(structure, memoryPartNumberOffset)),
		SizeBytes:    memorySize(formatted, raw),
	}
	if memoryTypeOffset < len(formatted) {
		module.Type = memoryTypes[formatted[memoryTypeOffset]]
	}

	// Configured speed is what the memory controller actually runs
	// at; the rated speed is the fallback for firmware that leaves it
	// unset.
	for _, offset := range []int{memoryConfiguredSpeedOffset, memorySpeedOffset} {
		speed, ok := uint16At(formatted, offset)
		if ok && speed != 0 && speed != 0xFFFF {
			value := int(speed)
			module.SpeedMTs = &value
			break
		}
	}
	return module, true
}

// memorySize decodes the Size word: 0xFFFF is unknown, 0x7FFF defers
// to the Extended Size dword (MiB), and bit 15 selects KiB units.
func memorySize(formatted []byte, raw uint16) uint64 {
	const mebibyte = 1 << 20
	switch {
	case raw == 0xFFFF:
		return 0
	case raw == 0x7FFF:
		if memoryExtendedSizeOffset+4 > len(formatted) {
			return 0
		}
		extended := binary.LittleEndian.Uint32(formatted[memoryExtendedSizeOffset:]) & 0x7FFFFFFF
		return uint64(extended) * mebibyte
	case raw&0x8000 != 0:
		return uint64(raw&0x7FFF) << 10
	default:
		return uint64(raw) * mebibyte
	}
}

func uint16At(formatted []byte, offset int) (uint16, bool) {
	if offset+2 > len(formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(formatted[offset:]), true
}

// stringAt resolves a 1-based string reference byte. Zero means no
// string.
func stringAt(structure *smbios.Structure, offset int) string {
	if offset >= len(structure.Formatted) {
		return ""
	}
	index := int(structure.Formatted[offset])
	if index == 0 || index > len(structure.Strings) {
		return ""
	}
	return structure.Strings[index-1]
}
