// Package extractors provides implementations of the Extractor interface
// for the corpus and upload formats the assistant accepts. Each extractor
// knows how to pull plain text out of one file format.
//
// Extractors are registered with the Registry at startup.
package extractors
