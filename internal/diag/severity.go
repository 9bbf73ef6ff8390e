package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity is the inverse of Severity.String, case-insensitive on
// the lower-case forms used in golden output.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "INFO", "info":
		return SevInfo, true
	case "WARNING", "warning":
		return SevWarning, true
	case "ERROR", "error":
		return SevError, true
	}
	return SevInfo, false
}
