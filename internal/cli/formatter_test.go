package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/dux/internal/dux"
)

func renderTable(t *testing.T, report *dux.Report, options dux.Options) string {
	t.Helper()

	var buf bytes.Buffer
	if err := PrintTable(report, options, &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	return buf.String()
}

func TestPrintTable(t *testing.T) {
	sep := string(filepath.Separator)

	report := &dux.Report{
		TotalSize:  2000,
		TotalCount: 3,
		Entries: []dux.Entry{
			{Path: "a", Size: 2000, Count: 3, IsDir: true},
		},
	}

	got := renderTable(t, report, dux.Options{})

	want := "    1.95 K  3  a" + sep + "\n" +
		"----------  -\n" +
		"    1.95 K  3\n"

	if got != want {
		t.Errorf("table mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrintTableWithPercentages(t *testing.T) {
	sep := string(filepath.Separator)

	report := &dux.Report{
		TotalSize:  2000,
		TotalCount: 3,
		Entries: []dux.Entry{
			{Path: "a", Size: 2000, Count: 3, IsDir: true},
		},
	}

	got := renderTable(t, report, dux.Options{Percentages: true})

	want := "    1.95 K  100.00%  3  a" + sep + "\n" +
		"----------          -\n" +
		"    1.95 K          3\n"

	if got != want {
		t.Errorf("table mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrintTableCountAlignment(t *testing.T) {
	report := &dux.Report{
		TotalSize:  1500,
		TotalCount: 1000,
		Entries: []dux.Entry{
			{Path: "small", Size: 500, Count: 2},
			{Path: "large", Size: 1000, Count: 998},
		},
	}

	got := renderTable(t, report, dux.Options{})

	// The grand-total count "1,000" is five characters wide; every
	// per-entry count pads to it.
	want := "  500.00 B      2  small\n" +
		" 1000.00 B    998  large\n" +
		"----------  -----\n" +
		"    1.46 K  1,000\n"

	if got != want {
		t.Errorf("table mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrintTableMinPercentageFilter(t *testing.T) {
	report := &dux.Report{
		TotalSize:  1000,
		TotalCount: 2,
		Entries: []dux.Entry{
			{Path: "quarter", Size: 250, Count: 1},
			{Path: "rest", Size: 750, Count: 1},
		},
	}

	t.Run("boundary entry retained", func(t *testing.T) {
		got := renderTable(t, report, dux.Options{MinPercentage: 25})

		if !strings.Contains(got, "quarter") {
			t.Errorf("entry at exactly the threshold should be retained:\n%s", got)
		}
	})

	t.Run("entry below threshold dropped", func(t *testing.T) {
		got := renderTable(t, report, dux.Options{MinPercentage: 25.01})

		if strings.Contains(got, "quarter") {
			t.Errorf("entry below the threshold should be omitted:\n%s", got)
		}

		if !strings.Contains(got, "rest") {
			t.Errorf("entry above the threshold should survive:\n%s", got)
		}
	})

	t.Run("totals unaffected by filter", func(t *testing.T) {
		got := renderTable(t, report, dux.Options{MinPercentage: 99})

		if !strings.Contains(got, "1000.00 B") {
			t.Errorf("footer must keep the unfiltered totals:\n%s", got)
		}
	})
}

func TestPrintTableZeroTotal(t *testing.T) {
	report := &dux.Report{
		Entries: []dux.Entry{
			{Path: "hollow", Size: 0, Count: 1, IsDir: true},
		},
	}

	t.Run("zero threshold keeps rows", func(t *testing.T) {
		got := renderTable(t, report, dux.Options{Percentages: true})

		if !strings.Contains(got, "hollow") {
			t.Errorf("zero-total entries should pass a zero threshold:\n%s", got)
		}

		if strings.Contains(got, "NaN") {
			t.Errorf("no NaN may reach the output:\n%s", got)
		}
	})

	t.Run("positive threshold drops rows", func(t *testing.T) {
		got := renderTable(t, report, dux.Options{MinPercentage: 0.1})

		if strings.Contains(got, "hollow") {
			t.Errorf("zero-total entries should fail a positive threshold:\n%s", got)
		}
	})

	t.Run("footer renders zero totals", func(t *testing.T) {
		got := renderTable(t, &dux.Report{}, dux.Options{})

		want := fmt.Sprintf("%10s %2s\n", "0.00 B", "0")
		if !strings.HasSuffix(got, want) {
			t.Errorf("footer mismatch\ngot:\n%q\nwant suffix:\n%q", got, want)
		}
	})
}
