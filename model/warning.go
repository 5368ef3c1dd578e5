package model

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal diagnostics raised during extraction.
type WarningCode int

const (
	// WarnCrossingChar indicates a character whose bounding span straddles
	// a grid split; it was still assigned by the midpoint rule.
	WarnCrossingChar WarningCode = iota
	// WarnTableSkipped indicates a table was dropped because split
	// filtering exhausted its step budget.
	WarnTableSkipped
)

func (c WarningCode) String() string {
	switch c {
	case WarnCrossingChar:
		return "crossing-char"
	case WarnTableSkipped:
		return "table-skipped"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal diagnostic. Extraction succeeded but the result
// may be imperfect in the described way.
type Warning struct {
	Code    WarningCode
	Page    int // 1-indexed page, 0 if not page-scoped
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
