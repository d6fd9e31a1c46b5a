// Package gomi provides the core types for the Nishinomiya garbage-collection
// navigator.
//
// The gomi package defines calendar pickup entries scraped from the city's
// monthly garbage calendar and sorting-guide records crawled from the city's
// waste-separation guide pages. Both are immutable value types: every refresh
// rebuilds them wholesale and the previous snapshot is discarded.
package gomi
