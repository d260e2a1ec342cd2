// package formatter renders the festival catalog to plain text and CSV for CLI output
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/desertthunder/festify/internal/models"
)

// FestivalsToText renders the festival catalog as aligned columns.
func FestivalsToText(festivals []models.Festival) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tREGION\tYEARS")
	for _, f := range festivals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.DisplayName, f.Region, yearsString(f.Years))
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush table: %w", err)
	}
	return buf.Bytes(), nil
}

// FestivalsToCSV renders the festival catalog as CSV with columns: Name, DisplayName, Region, Years
func FestivalsToCSV(festivals []models.Festival) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Name", "DisplayName", "Region", "Years"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, f := range festivals {
		record := []string{f.Name, f.DisplayName, f.Region, yearsString(f.Years)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// yearsString joins years as "2022, 2023, 2024".
func yearsString(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
