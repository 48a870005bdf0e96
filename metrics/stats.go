package metrics

import (
	"math"
	"strings"
)

// SizeInfo carries sizes computed outside of this package.
type SizeInfo struct {
	RawFileSize       int64
	FileSize          string // human readable RawFileSize
	RawCompressedSize int64
	CompressedSize    string // human readable RawCompressedSize
	Compression       string // algorithm used to get compressed size
}

// StatsRecord is the result of one analysis run.
type StatsRecord struct {
	Source            string  `json:"source,omitempty" yaml:"source,omitempty"`
	TotalRules        int     `json:"total_rules" yaml:"total_rules"`
	TotalSelectors    int     `json:"total_selectors" yaml:"total_selectors"`
	AverageSelectors  float64 `json:"average_selectors" yaml:"average_selectors"`
	AllSelectors      string  `json:"all_selectors" yaml:"all_selectors"`
	AllElements       string  `json:"all_elements" yaml:"all_elements"`
	RawFileSize       int64   `json:"raw_file_size" yaml:"raw_file_size"`
	FileSize          string  `json:"file_size" yaml:"file_size"`
	RawCompressedSize int64   `json:"raw_compressed_size" yaml:"raw_compressed_size"`
	CompressedSize    string  `json:"compressed_size" yaml:"compressed_size"`
	Compression       string  `json:"compression" yaml:"compression"`
}

// HasAverage reports whether AverageSelectors is meaningful. With no rules it
// is 0 and should be shown as not available.
func (s StatsRecord) HasAverage() bool {
	return s.TotalRules > 0
}

// Aggregate combines flattened rules, extracted elements and sizes.
func Aggregate(flat FlatResult, elements []string, size SizeInfo) StatsRecord {
	return StatsRecord{
		TotalRules:        len(flat.Rules),
		TotalSelectors:    len(flat.Selectors),
		AverageSelectors:  AverageSelectors(len(flat.Selectors), len(flat.Rules)),
		AllSelectors:      strings.Join(flat.Selectors, "\n"),
		AllElements:       strings.Join(elements, "\n"),
		RawFileSize:       size.RawFileSize,
		FileSize:          size.FileSize,
		RawCompressedSize: size.RawCompressedSize,
		CompressedSize:    size.CompressedSize,
		Compression:       size.Compression,
	}
}

// AverageSelectors returns selectors per rule rounded to one decimal place, 0
// when there are no rules.
func AverageSelectors(selectors, rules int) float64 {
	if rules == 0 {
		return 0
	}
	return math.Round(float64(selectors)/float64(rules)*10) / 10
}
