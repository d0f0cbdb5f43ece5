package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/idelchi/dux/internal/dux"
)

const (
	// SizeWidth is the width of the formatted size column.
	SizeWidth = 10
	// PercentageWidth is the width of the percentage block, delimiting
	// spaces included.
	PercentageWidth = 8
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *dux.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report as an aligned table with a totals footer.
//
// Each surviving entry prints as a right-aligned 10-char size, an
// optional percentage block, a count right-aligned to the width of the
// formatted grand-total count, then the path (directories get a trailing
// separator). Entries whose percentage of the total size falls strictly
// below options.MinPercentage are omitted; they were already folded into
// the footer totals.
func PrintTable(report *dux.Report, options dux.Options, writer io.Writer) error {
	totalCount := dux.FormatCount(report.TotalCount)
	countWidth := len(totalCount)

	for _, entry := range report.Entries {
		pct := report.Percent(entry.Size)
		if pct < options.MinPercentage {
			continue
		}

		fmt.Fprintf(writer, "%*s ", SizeWidth, dux.FormatSize(entry.Size))

		if options.Percentages {
			fmt.Fprintf(writer, " %5.2f%% ", pct)
		}

		fmt.Fprintf(writer, " %*s ", countWidth, dux.FormatCount(entry.Count))

		if entry.IsDir {
			fmt.Fprintf(writer, " %s%c\n", entry.Path, filepath.Separator)
		} else {
			fmt.Fprintf(writer, " %s\n", entry.Path)
		}
	}

	pad := 0
	if options.Percentages {
		pad = PercentageWidth
	}

	// The dash runs sit under the size and count columns; the count run
	// ends flush with the footer's right-aligned total count.
	offset := pad + countWidth + 1

	fmt.Fprintln(writer,
		strings.Repeat("-", SizeWidth)+
			strings.Repeat(" ", pad+2)+
			strings.Repeat("-", offset-pad-1))

	fmt.Fprintf(writer, "%*s %*s\n",
		SizeWidth, dux.FormatSize(report.TotalSize),
		offset, totalCount)

	return nil
}
