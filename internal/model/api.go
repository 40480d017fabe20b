package model

import "encoding/json"

// Response types reported by the analysis backend
const (
	ResponseTable        = "table"
	ResponseDetail       = "detail"
	ResponseYearlyReport = "yearly_report"
)

// AnalyzeRequest is the JSON body sent to POST /api/analyze
type AnalyzeRequest struct {
	Fecha        string     `json:"fecha,omitempty"` // YYYY-MM-DD, month mode only
	Departamento string     `json:"departamento"`
	Ciudad       string     `json:"ciudad"`
	Format       string     `json:"format"` // table | detail
	PeriodoType  PeriodMode `json:"periodo_type"`
	YearSelect   string     `json:"year_select,omitempty"` // YYYY, year mode only
}

// AnalyzeResponse is the raw wire shape of an analyze response.
// Result is kept raw until the response is classified.
type AnalyzeResponse struct {
	Error  string          `json:"error,omitempty"`
	Period PeriodMode      `json:"period,omitempty"`
	Type   string          `json:"type"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ExportRequest is the JSON body sent to POST /export/{format}
type ExportRequest struct {
	Events []ExportRow `json:"events"`
}

// ErrorBody is the JSON error shape returned by the backend
type ErrorBody struct {
	Error string `json:"error"`
}
