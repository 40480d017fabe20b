package query

import (
	"bytes"
	"encoding/json"
	"strings"

	"go-event-form/internal/model"
)

// Outcome is the classified analyze response. The set of variants is closed;
// switches over it must handle every one.
//
//sumtype:decl
type Outcome interface {
	outcome()
}

// Failure is an application error reported by the backend
type Failure struct{ Message string }

// MonthTable is a non-empty event list for a month query
type MonthTable struct{ Events []model.Event }

// MonthDetail is the free-text analysis for a month query
type MonthDetail struct{ Text string }

// NoEvents is a month query that produced nothing
type NoEvents struct{}

// YearlyReport is a non-empty annual report
type YearlyReport struct{ Months []model.MonthReport }

// Unavailable covers every response shape the page cannot render
type Unavailable struct{}

func (Failure) outcome()      {}
func (MonthTable) outcome()   {}
func (MonthDetail) outcome()  {}
func (NoEvents) outcome()     {}
func (YearlyReport) outcome() {}
func (Unavailable) outcome()  {}

// Name is a short label for logs and metrics
func Name(o Outcome) string {
	switch o.(type) {
	case Failure:
		return "error"
	case MonthTable:
		return "month_table"
	case MonthDetail:
		return "month_detail"
	case NoEvents:
		return "no_events"
	case YearlyReport:
		return "yearly_report"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

func emptyResult(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}

// Classify maps an analyze response onto an Outcome. A response without a
// period is taken to answer the submitted mode.
func Classify(resp model.AnalyzeResponse, submitted model.PeriodMode) Outcome {
	if msg := strings.TrimSpace(resp.Error); msg != "" {
		return Failure{Message: msg}
	}

	period := resp.Period
	if period == "" {
		period = submitted
	}

	switch period {
	case model.PeriodMonth:
		return classifyMonth(resp)
	case model.PeriodYear:
		return classifyYear(resp)
	default:
		return Unavailable{}
	}
}

func classifyMonth(resp model.AnalyzeResponse) Outcome {
	if emptyResult(resp.Result) {
		return NoEvents{}
	}

	switch resp.Type {
	case model.ResponseTable:
		var events []model.Event
		if err := json.Unmarshal(resp.Result, &events); err != nil {
			return Unavailable{}
		}
		if len(events) == 0 {
			return NoEvents{}
		}
		return MonthTable{Events: events}
	case model.ResponseDetail:
		var text string
		if err := json.Unmarshal(resp.Result, &text); err != nil {
			return Unavailable{}
		}
		if strings.TrimSpace(text) == "" {
			return NoEvents{}
		}
		return MonthDetail{Text: text}
	default:
		return Unavailable{}
	}
}

func classifyYear(resp model.AnalyzeResponse) Outcome {
	if resp.Type != model.ResponseYearlyReport || emptyResult(resp.Result) {
		return Unavailable{}
	}
	var months []model.MonthReport
	if err := json.Unmarshal(resp.Result, &months); err != nil || len(months) == 0 {
		return Unavailable{}
	}
	return YearlyReport{Months: months}
}
