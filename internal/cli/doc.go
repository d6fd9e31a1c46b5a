// Package cli implements the command-line interface for gomi-navi.
//
// The cli package provides the Cobra-based CLI with subcommands for the
// upcoming pickup schedule, the sorting-guide listing, keyword search, and
// iCalendar export. It wires together the fetch, calendar, guide, cache,
// schedule and search packages and formats their output as text or JSON.
package cli
