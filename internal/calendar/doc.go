// Package calendar fetches and parses the city's monthly garbage-collection
// calendar pages.
//
// The Fetcher retrieves one month's page and extracts pickup entries from the
// cells of the first HTML table; the Aggregator combines the current and the
// following month into a single date-sorted schedule of upcoming pickups.
// All failures are fail-soft: an unreachable page or a changed layout yields
// an empty result, never an error.
package calendar
