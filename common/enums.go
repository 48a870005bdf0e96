// Package common holds enumerations shared by configuration and the packages
// doing the actual work, so neither side has to import the other.
package common

// Stylesheet parser implementation.
// ENUM(tdewolff, douceur)
type ParserBackend int

// Compression algorithm used to estimate transfer size.
// ENUM(gzip, zstd)
type Compression int

// Units for human readable sizes.
// ENUM(si, iec)
type SizeUnits int

// Specification of requested output type.
// ENUM(text, json, yaml)
type OutputFmt int

// Ext returns file name extension suitable for the output format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		return ".txt"
	}
}
