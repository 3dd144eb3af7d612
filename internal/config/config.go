// Package config holds the fixed run parameters for bincal.
//
// The tool deliberately takes no flags, environment variables, or config
// file: every parameter of a run (source URL, request headers, timeout,
// output path, date layout, timezone) lives in a single Config value so
// the pipeline receives them explicitly and tests can substitute them.
package config

import "time"

// Config contains every parameter of one scrape-and-generate run.
type Config struct {
	// URL is the council calendar page for the configured property.
	URL string

	// UserAgent is sent on the fetch request. The council site serves
	// the calendar markup to browser user agents, so we mimic one.
	UserAgent string

	// Timeout bounds the single HTTP GET. There are no retries.
	Timeout time.Duration

	// OutputPath is the iCalendar file written at the end of the run,
	// relative to the working directory unless absolute.
	OutputPath string

	// DateLayout is the only accepted format for the date string in a
	// day cell's title attribute, e.g. "Thursday 08, May 2025".
	DateLayout string

	// Timezone is the IANA zone in which "today" is computed when
	// filtering out past collection dates.
	Timezone string
}

// Default returns the production configuration.
func Default() *Config {
	return &Config{
		URL:        "https://bins.shropshire.gov.uk/property/100070039508#calendar",
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Timeout:    20 * time.Second,
		OutputPath: "shropshire_bin_collections.ics",
		DateLayout: "Monday 02, January 2006",
		Timezone:   "Europe/London",
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
