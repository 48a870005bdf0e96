package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	yaml "gopkg.in/yaml.v3"

	"cssm/common"
	"cssm/metrics"
)

// Render writes statistics to w in requested format.
func Render(w io.Writer, rec metrics.StatsRecord, format common.OutputFmt) error {
	switch format {
	case common.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case common.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	case common.OutputFmtText:
		return renderText(w, rec)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatAverage returns average selectors per rule with one decimal place,
// "n/a" when there are no rules.
func FormatAverage(rec metrics.StatsRecord) string {
	if !rec.HasAverage() {
		return "n/a"
	}
	return strconv.FormatFloat(rec.AverageSelectors, 'f', 1, 64)
}

func renderText(w io.Writer, rec metrics.StatsRecord) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if rec.Source != "" {
		tw.SetTitle(rec.Source)
	}
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Rules", rec.TotalRules},
		{"Selectors", rec.TotalSelectors},
		{"Selectors per rule", FormatAverage(rec)},
		{"File size", fmt.Sprintf("%s (%d bytes)", rec.FileSize, rec.RawFileSize)},
		{"Compressed size (" + rec.Compression + ")", fmt.Sprintf("%s (%d bytes)", rec.CompressedSize, rec.RawCompressedSize)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	tw.Render()

	if err := writeList(w, "Selectors", rec.AllSelectors); err != nil {
		return err
	}
	return writeList(w, "Elements", rec.AllElements)
}

func writeList(w io.Writer, title, joined string) error {
	var sb strings.Builder
	items := 0
	if joined != "" {
		items = strings.Count(joined, "\n") + 1
	}
	fmt.Fprintf(&sb, "\n%s (%d):\n", title, items)
	if items > 0 {
		for item := range strings.SplitSeq(joined, "\n") {
			sb.WriteString("  ")
			sb.WriteString(item)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
