package record

import (
	"strings"
	"time"
)

// typeSuffix is stripped (once) from the raw collection label, so the
// page's "Garden Waste Collection" becomes the event name "Garden Waste".
const typeSuffix = " Collection"

// rangeSeparator splits title attributes that carry a date range; only
// the start date is kept.
const rangeSeparator = " - "

// Cell is the raw content of one calendar day cell, as extracted from the
// page markup. It carries just enough to decide whether the cell is a
// future collection day.
type Cell struct {
	// DateText is the cell's title attribute, empty if absent.
	DateText string
	// TypeText is the trimmed visible text of the first list item
	// inside the cell. Only meaningful when HasType is true.
	TypeText string
	// HasType reports whether the cell contained a list item at all.
	// Cells without one are not collection days.
	HasType bool
	// PastDate reports whether the cell carried the past-date class.
	PastDate bool
}

// Record is one accepted collection: a date and what gets collected.
type Record struct {
	Date time.Time // midnight UTC, date-only semantics
	Type string    // normalized label, e.g. "General Waste"
}

// SkipReason classifies why a cell did not produce a Record.
type SkipReason int

const (
	// SkipNone means the cell was accepted.
	SkipNone SkipReason = iota
	// SkipPastMarker means the cell was marked past-date in the markup.
	SkipPastMarker
	// SkipNoDate means the cell had no title attribute to read a date from.
	SkipNoDate
	// SkipNoType means the cell had no list item, so no collection type.
	SkipNoType
	// SkipBadDate means the date string did not match the expected layout.
	SkipBadDate
	// SkipPastDate means the date parsed fine but is before today.
	SkipPastDate
	// SkipEmptyType means the type label was empty after normalization.
	SkipEmptyType
)

// String returns a short label used in logs and counters.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "accepted"
	case SkipPastMarker:
		return "past_marker"
	case SkipNoDate:
		return "no_date"
	case SkipNoType:
		return "no_type"
	case SkipBadDate:
		return "bad_date"
	case SkipPastDate:
		return "past_date"
	case SkipEmptyType:
		return "empty_type"
	default:
		return "unknown"
	}
}

// Parser parses cells against a single fixed date layout.
type Parser struct {
	layout string
}

// NewParser creates a Parser for the given date layout.
func NewParser(layout string) *Parser {
	return &Parser{layout: layout}
}

// Parse examines one cell and returns either a Record or the reason the
// cell was skipped. today is the acceptance cutoff: dates on or after it
// are kept. Parse never fails the run; every outcome is a SkipReason.
func (p *Parser) Parse(c Cell, today time.Time) (*Record, SkipReason) {
	if c.PastDate {
		return nil, SkipPastMarker
	}
	if c.DateText == "" {
		return nil, SkipNoDate
	}
	if !c.HasType {
		return nil, SkipNoType
	}

	binType := NormalizeType(c.TypeText)

	dateText := c.DateText
	if i := strings.Index(dateText, rangeSeparator); i >= 0 {
		dateText = strings.TrimSpace(dateText[:i])
	}

	parsed, err := time.Parse(p.layout, dateText)
	if err != nil {
		return nil, SkipBadDate
	}
	date := DateOnly(parsed)

	if date.Before(DateOnly(today)) {
		return nil, SkipPastDate
	}
	if binType == "" {
		return nil, SkipEmptyType
	}

	return &Record{Date: date, Type: binType}, SkipNone
}

// NormalizeType strips one trailing collection suffix and surrounding
// whitespace from a raw type label.
func NormalizeType(raw string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), typeSuffix))
}

// DateOnly truncates t to its calendar date, discarding time-of-day and
// zone so records from different sources compare by date alone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
