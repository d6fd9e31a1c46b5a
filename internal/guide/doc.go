// Package guide crawls the city's waste-separation guide pages.
//
// The Crawler starts from the guide index page, follows links whose text
// matches the configured category keywords, and extracts the plain-text
// guidance from each linked page. The Mapper reconciles the guide's category
// titles with the vocabulary the garbage calendar uses for its item labels.
// Keyword and mapping membership is content, not logic: both live in a
// Config that can be replaced without touching the crawl code.
package guide
