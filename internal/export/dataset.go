package export

import (
	"errors"

	"go-event-form/internal/model"
)

// Supported export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	ErrEmptyDataset  = errors.New("no event data to export")
	ErrUnknownFormat = errors.New("unknown export format")
)

// ValidFormat reports whether the backend can produce format
func ValidFormat(format string) bool {
	return format == FormatCSV || format == FormatXLSX
}

// Dataset flattens the cached query into export rows. Month caches are
// copied as-is; annual caches are flattened in month order with Mes set
// to the parent month name.
func Dataset(cache *model.LastQuery) []model.ExportRow {
	if cache.Empty() {
		return nil
	}

	var rows []model.ExportRow
	switch cache.Period {
	case model.PeriodMonth:
		rows = make([]model.ExportRow, 0, len(cache.Events))
		for _, e := range cache.Events {
			rows = append(rows, model.RowFromEvent(e))
		}
	case model.PeriodYear:
		for _, m := range cache.Months {
			for _, e := range m.Events {
				row := model.RowFromEvent(e)
				row.Mes = m.MonthName
				rows = append(rows, row)
			}
		}
	}
	return rows
}
