package driver

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Level selects which grammar a file is parsed with.
type Level uint8

const (
	// LevelAuto picks the grammar from the file extension.
	LevelAuto Level = iota
	LevelSurface
	LevelCore
)

func (l Level) String() string {
	switch l {
	case LevelSurface:
		return "surface"
	case LevelCore:
		return "core"
	default:
		return "auto"
	}
}

// ParseLevel accepts "auto", "surface" and "core"; empty means auto.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LevelAuto, nil
	case "surface":
		return LevelSurface, nil
	case "core":
		return LevelCore, nil
	}
	return LevelAuto, fmt.Errorf("unknown level %q (want auto, surface or core)", s)
}

// Extensions recognised by CheckDir.
const (
	ExtSurface = ".ddl"
	ExtCore    = ".cddl"
	// ExtCoreLong is the two-part core extension, e.g. shapes.core.ddl.
	ExtCoreLong = ".core.ddl"
)

// DetectLevel derives the grammar from path: .core.ddl and .cddl are core,
// everything else is surface.
func DetectLevel(path string) Level {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ExtCoreLong) || strings.HasSuffix(name, ExtCore) {
		return LevelCore
	}
	return LevelSurface
}

// Resolve replaces LevelAuto with the level detected from path.
func (l Level) Resolve(path string) Level {
	if l == LevelAuto {
		return DetectLevel(path)
	}
	return l
}

// IsSource reports whether path has one of the recognised extensions.
func IsSource(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(name, ExtSurface) || strings.HasSuffix(name, ExtCore)
}
