// Package scraper provides HTTP fetching and HTML cell extraction for the
// council bin-collection calendar page.
//
// The scraper issues one GET against the configured property page and
// selects every calendar day cell by its class marker. It is the only
// package coupled to the page's markup: day cells are reduced to plain
// record.Cell values here, so a change to the council site's structure
// only ever touches the selector logic in this package.
package scraper
