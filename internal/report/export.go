package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"senthur/internal/domain"
)

var csvHeader = []string{"Order No", "Date", "Customer", "Mobile", "Total", "Advance", "Balance", "Status", "Attendant"}

// WriteCSV writes the spreadsheet export. Every data field is wrapped in
// double quotes and passed through without escaping.
func WriteCSV(w io.Writer, orders []domain.Order) error {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, o := range orders {
		fields := []string{
			o.OrderNumber,
			o.BookingDate,
			o.CustomerName,
			o.Mobile,
			formatFigure(o.Total),
			formatFigure(o.Advance),
			formatFigure(o.Balance),
			o.Status.Label(),
			o.Attendant,
		}
		for i, f := range fields {
			fields[i] = `"` + f + `"`
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("writing csv export: %w", err)
	}
	return nil
}

// ExportFilename names the CSV download for a date range.
func ExportFilename(start, end string) string {
	return fmt.Sprintf("Sri_Senthur_Report_%s_to_%s.csv", start, end)
}

func formatFigure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
