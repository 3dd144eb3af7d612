// Package calendar builds and writes the iCalendar output file.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"os"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/jdtait/bincal/internal/record"
)

const (
	// ProdID identifies this generator in the VCALENDAR header.
	ProdID = "-//bincal//Shropshire Bin Collections//EN"
	// uidDomain suffixes event UIDs so they stay globally unique.
	uidDomain = "bins.shropshire.gov.uk"
)

// Build assembles a calendar of all-day events from the accepted records.
// Events are sorted by date, then type, so output is deterministic across
// runs regardless of the page's cell order. Zero records yield a valid
// empty calendar.
func Build(records []*record.Record, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProdID)
	cal.SetCalscale("GREGORIAN")

	sorted := make([]*record.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Type < sorted[j].Type
	})

	for _, rec := range sorted {
		evt := cal.AddEvent(eventUID(rec))
		evt.SetDtStampTime(now.UTC())
		evt.SetAllDayStartAt(rec.Date)
		evt.SetAllDayEndAt(rec.Date.AddDate(0, 0, 1))
		evt.SetSummary(rec.Type)
	}

	return cal
}

// eventUID derives a deterministic UID from the record's stable fields,
// so re-running the tool produces the same UID for the same collection
// and calendar clients can de-duplicate on re-import.
func eventUID(rec *record.Record) string {
	h := sha1.New()
	h.Write([]byte(rec.Date.Format("2006-01-02") + "|" + rec.Type))
	return fmt.Sprintf("%x@%s", h.Sum(nil), uidDomain)
}

// WriteFile serializes the calendar and writes it to path, overwriting
// any previous run's output. The serialized form is UTF-8 text.
func WriteFile(cal *ics.Calendar, path string) error {
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}
