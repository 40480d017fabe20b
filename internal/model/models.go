package model

// PeriodMode selects whether a query covers a single month or a full year
type PeriodMode string

const (
	PeriodMonth PeriodMode = "month"
	PeriodYear  PeriodMode = "year"
)

// Valid reports whether m is one of the known period modes
func (m PeriodMode) Valid() bool {
	return m == PeriodMonth || m == PeriodYear
}

// ResultFormat is the user's preferred rendering for month queries
type ResultFormat string

const (
	FormatTable  ResultFormat = "table"
	FormatDetail ResultFormat = "detail"
)

// Valid reports whether f is one of the known result formats
func (f ResultFormat) Valid() bool {
	return f == FormatTable || f == FormatDetail
}

// Event is one commercial event returned by the analysis backend.
// Every field may be missing; renderers substitute placeholders.
type Event struct {
	Date        string `json:"date,omitempty"`
	Name        string `json:"name,omitempty"`
	Impact      string `json:"impact,omitempty"` // Positivo, Negativo, Neutro or free text
	Description string `json:"description,omitempty"`
}

// MonthReport pairs a month name with its events inside an annual report
type MonthReport struct {
	MonthName string  `json:"month_name"`
	Events    []Event `json:"events"`
}

// ExportRow is an Event as sent to the export endpoint.
// Mes is only set when the row was flattened out of an annual report.
type ExportRow struct {
	Date        string `json:"date,omitempty"`
	Name        string `json:"name,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Description string `json:"description,omitempty"`
	Mes         string `json:"Mes,omitempty"`
}

// RowFromEvent copies an event into an export row
func RowFromEvent(e Event) ExportRow {
	return ExportRow{
		Date:        e.Date,
		Name:        e.Name,
		Impact:      e.Impact,
		Description: e.Description,
	}
}
