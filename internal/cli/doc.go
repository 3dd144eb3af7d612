// Package cli implements the command-line interface for bincal.
//
// The cli package provides the Cobra-based entry point and runs the whole
// pipeline in strict sequence: fetch the council calendar page, extract
// day cells, parse each cell into a collection record, and write the
// iCalendar output file. The command takes no flags; every parameter of a
// run comes from config.Default(). Progress goes to stdout as structured
// JSON, fatal failures to stderr with a non-zero exit code.
package cli
